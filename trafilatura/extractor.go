// Package trafilatura provides a main-content fallback extractor backed by
// go-trafilatura.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/pantry"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements pantry.FallbackExtractor at compile time.
var _ pantry.FallbackExtractor = (*Extractor)(nil)

// Extractor returns the main-content text of a page, for recipe pages that
// carry none of the known content classes.
type Extractor struct {
	opts trafilatura.Options
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{
		opts: trafilatura.Options{
			EnableFallback:  true,
			ExcludeComments: true,
		},
	}
}

// ExtractText returns the trimmed main-content text, or "" when nothing
// could be extracted.
func (e *Extractor) ExtractText(rawHTML string) string {
	if strings.TrimSpace(rawHTML) == "" {
		return ""
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), e.opts)
	if err != nil || result == nil {
		return ""
	}
	return strings.TrimSpace(result.ContentText)
}
