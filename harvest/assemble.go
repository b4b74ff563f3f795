package harvest

import (
	"context"
	"strings"

	"github.com/fwojciec/pantry"
	"github.com/fwojciec/pantry/jsonld"
)

// State is a step of assembling one recipe record.
type State int

const (
	StateFetching State = iota
	StateParsing
	StateFieldResolving
	StateFallback
	StateAssembled
)

func (s State) String() string {
	switch s {
	case StateFetching:
		return "fetching"
	case StateParsing:
		return "parsing"
	case StateFieldResolving:
		return "field-resolving"
	case StateFallback:
		return "fallback"
	case StateAssembled:
		return "assembled"
	default:
		return "unknown"
	}
}

// Assembler turns one URL into one recipe record. It never fails: every
// failure along the way leaves the affected fields empty.
type Assembler struct {
	Pages    pantry.PageFetcher
	Selector pantry.StructuredDataSelector

	// Fallback supplies instructions when structured data yields none.
	// Optional.
	Fallback pantry.FallbackExtractor

	// Detector guesses the language when the page declares none. Optional.
	Detector pantry.LanguageDetector

	// Taxonomy labels are stamped on every record.
	Taxonomy pantry.Taxonomy

	// RepairJSON retries undecodable JSON-LD after repairing it.
	RepairJSON bool

	// Trace receives every state transition. Optional.
	Trace func(url string, s State)
}

// Assemble fetches the page at url and builds its recipe record.
func (a *Assembler) Assemble(ctx context.Context, url string) pantry.Recipe {
	rec := pantry.NewRecipe(url, a.Taxonomy)
	defer a.trace(url, StateAssembled)

	a.trace(url, StateFetching)
	page := a.Pages.FetchPage(ctx, url)
	if !page.OK() {
		return rec
	}
	rec.Language = page.Language

	a.trace(url, StateParsing)
	if root, ok := a.root(page.Content); ok {
		a.trace(url, StateFieldResolving)
		f := jsonld.ExtractFields(root)
		rec.RecipeName = f.RecipeName
		rec.CookTime = f.CookTime
		rec.Ingredients = f.Ingredients
		rec.Instructions = f.Instructions
	}

	if rec.Instructions == "" && a.Fallback != nil {
		a.trace(url, StateFallback)
		rec.Instructions = a.Fallback.ExtractText(page.Content)
	}

	if rec.Language == "" && a.Detector != nil {
		if text := detectionText(rec); text != "" {
			rec.Language = a.Detector.DetectLanguage(text)
		}
	}
	return rec
}

// root selects, decodes and resolves the page's structured data. It reports
// false when there is nothing usable to read fields from.
func (a *Assembler) root(html string) (jsonld.Value, bool) {
	if a.Selector == nil {
		return jsonld.Value{}, false
	}
	raw, ok := a.Selector.Select(html)
	if !ok {
		return jsonld.Value{}, false
	}

	decode := jsonld.Decode
	if a.RepairJSON {
		decode = jsonld.DecodeLenient
	}
	payload, err := decode(raw)
	if err != nil {
		return jsonld.Value{}, false
	}

	root := jsonld.ResolveRoot(jsonld.Primary(payload))
	if root.Len() == 0 {
		return jsonld.Value{}, false
	}
	return root, true
}

func (a *Assembler) trace(url string, s State) {
	if a.Trace != nil {
		a.Trace(url, s)
	}
}

func detectionText(rec pantry.Recipe) string {
	var parts []string
	for _, s := range []string{rec.RecipeName, rec.Ingredients, rec.Instructions} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n")
}
