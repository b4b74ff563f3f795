package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pantry"
)

// Ensure RegionExtractor implements pantry.FallbackExtractor at compile time.
var _ pantry.FallbackExtractor = (*RegionExtractor)(nil)

// DefaultRecipeClasses lists container classes that recipe blogs commonly
// put their recipe body in.
var DefaultRecipeClasses = []string{
	"body entry-content",
	"entry-content",
	"hrecipe",
	"post-entry",
	"post-content",
	"post-content__body",
	"recept",
	"recipe-content",
}

// RegionExtractor recovers recipe text from pages without structured data
// by reading div elements with well-known content classes.
type RegionExtractor struct {
	classes map[string]bool
}

// RegionOption configures a RegionExtractor.
type RegionOption func(*RegionExtractor)

// WithClasses replaces the class allow-list.
// Defaults to DefaultRecipeClasses if not specified.
func WithClasses(classes ...string) RegionOption {
	return func(e *RegionExtractor) {
		e.classes = classSet(classes)
	}
}

// NewRegionExtractor creates a new RegionExtractor.
func NewRegionExtractor(opts ...RegionOption) *RegionExtractor {
	e := &RegionExtractor{
		classes: classSet(DefaultRecipeClasses),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractText concatenates the text of every matching div in document
// order, without separator. Nested matches contribute their text again.
func (e *RegionExtractor) ExtractText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	var b strings.Builder
	doc.Find("div[class]").Each(func(_ int, sel *goquery.Selection) {
		class, _ := sel.Attr("class")
		if e.matches(class) {
			b.WriteString(sel.Text())
		}
	})
	return b.String()
}

// matches reports whether the class attribute, as a whole or by any single
// class token, is on the allow-list.
func (e *RegionExtractor) matches(class string) bool {
	tokens := strings.Fields(class)
	if len(tokens) == 0 {
		return false
	}
	if e.classes[strings.Join(tokens, " ")] {
		return true
	}
	for _, tok := range tokens {
		if e.classes[tok] {
			return true
		}
	}
	return false
}

func classSet(classes []string) map[string]bool {
	set := make(map[string]bool, len(classes))
	for _, c := range classes {
		if c = strings.Join(strings.Fields(c), " "); c != "" {
			set[c] = true
		}
	}
	return set
}
