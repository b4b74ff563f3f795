package mock

import "github.com/fwojciec/pantry"

var (
	_ pantry.StructuredDataSelector = (*StructuredDataSelector)(nil)
	_ pantry.FallbackExtractor      = (*FallbackExtractor)(nil)
	_ pantry.LanguageParser         = (*LanguageParser)(nil)
	_ pantry.LanguageDetector       = (*LanguageDetector)(nil)
)

// StructuredDataSelector is a mock implementation of pantry.StructuredDataSelector.
type StructuredDataSelector struct {
	SelectFn func(html string) (string, bool)
}

func (s *StructuredDataSelector) Select(html string) (string, bool) {
	return s.SelectFn(html)
}

// FallbackExtractor is a mock implementation of pantry.FallbackExtractor.
type FallbackExtractor struct {
	ExtractTextFn func(html string) string
}

func (e *FallbackExtractor) ExtractText(html string) string {
	return e.ExtractTextFn(html)
}

// LanguageParser is a mock implementation of pantry.LanguageParser.
type LanguageParser struct {
	ParseLanguageFn func(html string) string
}

func (p *LanguageParser) ParseLanguage(html string) string {
	return p.ParseLanguageFn(html)
}

// LanguageDetector is a mock implementation of pantry.LanguageDetector.
type LanguageDetector struct {
	DetectLanguageFn func(text string) string
}

func (d *LanguageDetector) DetectLanguage(text string) string {
	return d.DetectLanguageFn(text)
}
