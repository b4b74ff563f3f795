// Package lingua provides statistical language detection for recipe text
// using lingua-go.
package lingua

import (
	"strings"

	"github.com/fwojciec/pantry"
	"github.com/pemistahl/lingua-go"
)

// Ensure Detector implements pantry.LanguageDetector at compile time.
var _ pantry.LanguageDetector = (*Detector)(nil)

// Detector guesses the language of a text among a candidate set.
type Detector struct {
	detector lingua.LanguageDetector
}

// NewDetector creates a Detector choosing among the given ISO 639-1 codes.
// With no codes every supported language is a candidate. Unknown codes are
// reported as EINVALID.
func NewDetector(codes ...string) (*Detector, error) {
	builder := lingua.NewLanguageDetectorBuilder()
	if len(codes) == 0 {
		return &Detector{detector: builder.FromAllLanguages().Build()}, nil
	}

	languages := make([]lingua.Language, 0, len(codes))
	for _, code := range codes {
		l, ok := languageOf(code)
		if !ok {
			return nil, pantry.Errorf(pantry.EINVALID, "unsupported language code %q", code)
		}
		languages = append(languages, l)
	}
	if len(languages) < 2 {
		return nil, pantry.Errorf(pantry.EINVALID, "at least two candidate languages are required")
	}
	return &Detector{detector: builder.FromLanguages(languages...).Build()}, nil
}

// DetectLanguage returns the lower-cased ISO 639-1 code of the most likely
// language, or "" when the text is too ambiguous to tell.
func (d *Detector) DetectLanguage(text string) string {
	l, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return ""
	}
	return strings.ToLower(l.IsoCode639_1().String())
}

func languageOf(code string) (lingua.Language, bool) {
	code = strings.TrimSpace(code)
	for _, l := range lingua.AllLanguages() {
		if strings.EqualFold(l.IsoCode639_1().String(), code) {
			return l, true
		}
	}
	return lingua.Unknown, false
}
