package pantry

// StructuredDataSelector finds the embedded JSON-LD payload of a page.
type StructuredDataSelector interface {
	// Select returns the raw text of the chosen JSON-LD block.
	// It returns false when the page embeds no JSON-LD.
	Select(html string) (string, bool)
}

// FallbackExtractor recovers instruction text from pages without usable
// structured data.
type FallbackExtractor interface {
	// ExtractText returns the recovered text, or "" when nothing matched.
	ExtractText(html string) string
}

// LanguageParser reads the language a page declares for itself.
type LanguageParser interface {
	// ParseLanguage returns the primary language subtag (e.g. "en" for
	// "en-US"), or "" when the page declares none or the tag is unparsable.
	ParseLanguage(html string) string
}

// LanguageDetector guesses the language of free text.
type LanguageDetector interface {
	// DetectLanguage returns a lower-case ISO 639-1 code, or "" when the
	// language cannot be determined reliably.
	DetectLanguage(text string) string
}
