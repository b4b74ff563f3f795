// Package goquery implements the markup-facing parts of recipe extraction
// with github.com/PuerkitoBio/goquery: JSON-LD discovery, content-region
// scraping and declared-language parsing.
package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pantry"
)

// Ensure JSONLDSelector implements pantry.StructuredDataSelector at compile time.
var _ pantry.StructuredDataSelector = (*JSONLDSelector)(nil)

const jsonLDType = "application/ld+json"

// JSONLDSelector picks the JSON-LD block a page is most likely to carry its
// recipe in: the longest one. Breadcrumb, organization and website blocks
// that share the page are usually much shorter than the recipe.
type JSONLDSelector struct{}

// NewJSONLDSelector creates a new JSONLDSelector.
func NewJSONLDSelector() *JSONLDSelector {
	return &JSONLDSelector{}
}

// Select returns the longest JSON-LD block by character count. Ties keep
// the block that comes first in the document.
func (s *JSONLDSelector) Select(html string) (string, bool) {
	best, bestLen := "", 0
	for _, block := range s.Blocks(html) {
		if n := utf8.RuneCountInString(block); n > bestLen {
			best, bestLen = block, n
		}
	}
	return best, bestLen > 0
}

// Blocks returns the trimmed text of every non-blank JSON-LD script in
// document order. The type attribute is matched case-insensitively.
func (s *JSONLDSelector) Blocks(html string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	var blocks []string
	doc.Find("script[type]").Each(func(_ int, sel *goquery.Selection) {
		typ, _ := sel.Attr("type")
		if strings.ToLower(strings.TrimSpace(typ)) != jsonLDType {
			return
		}
		text := strings.TrimSpace(sel.Text())
		if text == "" {
			return
		}
		blocks = append(blocks, text)
	})
	return blocks
}
