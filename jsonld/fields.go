package jsonld

import "strings"

// Schema.org Recipe keys read by ExtractFields.
const (
	KeyInstructions = "recipeInstructions"
	KeyIngredients  = "recipeIngredient"
	KeyName         = "name"
	KeyCookTime     = "cookTime"
)

// Fields holds the recipe content read from a resolved root.
// Each field is empty when its key is absent or unusable.
type Fields struct {
	Instructions string
	Ingredients  string
	RecipeName   string
	CookTime     string
}

// ExtractFields locates each recipe field in root independently.
//
// Instructions may be a string, a list of strings, or a list of step objects;
// which list form applies is decided by the first element alone. Step texts
// and string items are concatenated without a separator. Ingredient lists
// are joined one per line.
func ExtractFields(root Value) Fields {
	var f Fields
	if v, ok := Locate(root, KeyInstructions); ok {
		f.Instructions = instructionsText(v)
	}
	if v, ok := Locate(root, KeyIngredients); ok {
		f.Ingredients = lines(v)
	}
	if v, ok := Locate(root, KeyName); ok {
		f.RecipeName = scalarText(v)
	}
	if v, ok := Locate(root, KeyCookTime); ok {
		f.CookTime = scalarText(v)
	}
	return f
}

func instructionsText(v Value) string {
	switch v.kind {
	case String:
		return v.text
	case Object:
		return stepText(v)
	case Array:
		if len(v.items) == 0 {
			return ""
		}
		var b strings.Builder
		if v.items[0].kind == Object {
			for _, item := range v.items {
				b.WriteString(stepText(item))
			}
			return b.String()
		}
		for _, item := range v.items {
			if s, ok := item.Text(); ok {
				b.WriteString(s)
			}
		}
		return b.String()
	case Null, Bool, Number:
	}
	return ""
}

// stepText returns the text of a HowToStep-like object.
func stepText(v Value) string {
	t, ok := v.Get("text")
	if !ok {
		return ""
	}
	s, _ := t.Text()
	return s
}

func lines(v Value) string {
	if v.kind != Array {
		return scalarText(v)
	}
	parts := make([]string, 0, len(v.items))
	for _, item := range v.items {
		if s := scalarText(item); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n")
}

func scalarText(v Value) string {
	switch v.kind {
	case String, Number:
		return v.text
	case Null, Bool, Array, Object:
	}
	return ""
}
