package jsonld

import "strings"

// recipeType is the normalized schema.org type of a recipe entity.
const recipeType = "recipe"

// IsRecipe reports whether v is an object typed as a schema.org Recipe.
// The @type comparison ignores case and surrounding space; when @type is a
// list, any entry may match.
func IsRecipe(v Value) bool {
	t, ok := v.Get("@type")
	if !ok {
		return false
	}
	switch t.kind {
	case String:
		return normalizeType(t.text) == recipeType
	case Array:
		for _, item := range t.items {
			if s, ok := item.Text(); ok && normalizeType(s) == recipeType {
				return true
			}
		}
	case Null, Bool, Number, Object:
	}
	return false
}

func normalizeType(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ResolveRoot picks the recipe entity out of a decoded payload.
//
// A payload that is itself a recipe, or that has more than two members, is
// returned unchanged. Otherwise it is treated as a wrapper such as
// {"@context": ..., "@graph": [...]}: its first non-string member holds the
// candidates and the first recipe among them is returned. A wrapper without
// a recipe candidate yields an empty object; a payload with no non-string
// member is returned unchanged. Anything but an object yields an empty
// object.
func ResolveRoot(payload Value) Value {
	if payload.kind != Object {
		return EmptyObject()
	}
	if IsRecipe(payload) || len(payload.members) > 2 {
		return payload
	}

	content, ok := contentMember(payload)
	if !ok {
		return payload
	}

	var candidates []Value
	switch content.kind {
	case Array:
		candidates = content.items
	case Object:
		candidates = []Value{content}
	case Null, Bool, Number, String:
		return payload
	}

	for _, c := range candidates {
		if IsRecipe(c) {
			return c
		}
	}
	return EmptyObject()
}

// contentMember returns the value of the first member that is not a string.
func contentMember(v Value) (Value, bool) {
	for _, m := range v.members {
		if m.Value.kind != String {
			return m.Value, true
		}
	}
	return Value{}, false
}
