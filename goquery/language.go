package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pantry"
	"golang.org/x/text/language"
)

// Ensure LanguageParser implements pantry.LanguageParser at compile time.
var _ pantry.LanguageParser = (*LanguageParser)(nil)

// LanguageParser reads the lang attribute of a page's root element.
type LanguageParser struct{}

// NewLanguageParser creates a new LanguageParser.
func NewLanguageParser() *LanguageParser {
	return &LanguageParser{}
}

// ParseLanguage returns the primary subtag of the root element's language
// tag, e.g. "en" for lang="en-US". Missing, undetermined or malformed tags
// yield "".
func (p *LanguageParser) ParseLanguage(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	lang, ok := doc.Find("html").First().Attr("lang")
	if !ok {
		return ""
	}
	return PrimarySubtag(lang)
}

// PrimarySubtag returns the base language of a BCP 47 tag as declared,
// without canonicalization ("iw" stays "iw"). Underscores are accepted as
// subtag separators.
func PrimarySubtag(tag string) string {
	tag = strings.ReplaceAll(strings.TrimSpace(tag), "_", "-")
	if tag == "" {
		return ""
	}
	t, err := language.Raw.Parse(tag)
	if err != nil {
		return ""
	}
	// Base infers a language for "und" tags; only an explicit one counts.
	base, conf := t.Base()
	if conf != language.Exact {
		return ""
	}
	return base.String()
}
