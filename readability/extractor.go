// Package readability provides an article-text fallback extractor backed by
// go-readability.
package readability

import (
	"strings"

	"github.com/fwojciec/pantry"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements pantry.FallbackExtractor at compile time.
var _ pantry.FallbackExtractor = (*Extractor)(nil)

// Extractor returns the article text of a page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText returns the trimmed article text, or "" when the page has no
// readable article.
func (e *Extractor) ExtractText(rawHTML string) string {
	if strings.TrimSpace(rawHTML) == "" {
		return ""
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(article.TextContent)
}
