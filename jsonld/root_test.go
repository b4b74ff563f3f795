package jsonld_test

import (
	"testing"

	"github.com/fwojciec/pantry/jsonld"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsRecipe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want bool
	}{
		{"exact type", `{"@type": "Recipe"}`, true},
		{"case and space insensitive", `{"@type": "  rEcIpE "}`, true},
		{"type list", `{"@type": ["NewsArticle", "Recipe"]}`, true},
		{"other type", `{"@type": "HowToStep"}`, false},
		{"no type", `{"name": "Recipe"}`, false},
		{"not an object", `["Recipe"]`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, jsonld.IsRecipe(mustDecode(t, tt.raw)))
		})
	}
}

func TestResolveRoot(t *testing.T) {
	t.Parallel()

	t.Run("unwraps a graph wrapper", func(t *testing.T) {
		t.Parallel()

		payload := mustDecode(t, `{
			"@context": "https://schema.org",
			"@graph": [{"@type": "NutritionInformation"}, {"@type": "Recipe", "name": "X"}]
		}`)

		root := jsonld.ResolveRoot(payload)

		name, ok := root.Get("name")
		require.True(t, ok)
		s, _ := name.Text()
		assert.Equal(t, "X", s)
	})

	t.Run("returns the first recipe candidate", func(t *testing.T) {
		t.Parallel()

		payload := mustDecode(t, `{"@graph": [{"@type": "Recipe", "name": "A"}, {"@type": "Recipe", "name": "B"}]}`)

		name, _ := jsonld.ResolveRoot(payload).Get("name")
		s, _ := name.Text()
		assert.Equal(t, "A", s)
	})

	t.Run("unwraps a single object content member", func(t *testing.T) {
		t.Parallel()

		payload := mustDecode(t, `{"@context": "https://schema.org", "mainEntity": {"@type": "Recipe", "name": "Pie"}}`)

		assert.True(t, jsonld.IsRecipe(jsonld.ResolveRoot(payload)))
	})

	t.Run("returns an empty object when a wrapper has no recipe", func(t *testing.T) {
		t.Parallel()

		payload := mustDecode(t, `{"@context": "https://schema.org", "@graph": [{"@type": "WebSite"}, {"@type": "Organization"}]}`)

		root := jsonld.ResolveRoot(payload)
		assert.Equal(t, jsonld.Object, root.Kind())
		assert.Equal(t, 0, root.Len())
	})

	t.Run("returns a flat recipe unchanged", func(t *testing.T) {
		t.Parallel()

		payload := mustDecode(t, `{"@context": "https://schema.org", "@type": "Recipe", "name": "Pie", "cookTime": "PT1H"}`)

		assert.Equal(t, payload, jsonld.ResolveRoot(payload))
	})

	t.Run("treats a small recipe-typed payload as flat", func(t *testing.T) {
		t.Parallel()

		payload := mustDecode(t, `{"@type": "Recipe", "recipeInstructions": [{"@type": "HowToStep", "text": "Bake."}]}`)

		assert.Equal(t, payload, jsonld.ResolveRoot(payload))
	})

	t.Run("returns payloads with more than two members unchanged", func(t *testing.T) {
		t.Parallel()

		payload := mustDecode(t, `{"@context": "x", "@graph": [{"@type": "Recipe"}], "extra": 1}`)

		assert.Equal(t, payload, jsonld.ResolveRoot(payload))
	})

	t.Run("returns payloads without a content member unchanged", func(t *testing.T) {
		t.Parallel()

		payload := mustDecode(t, `{"@context": "https://schema.org", "name": "Pie"}`)

		assert.Equal(t, payload, jsonld.ResolveRoot(payload))
	})

	t.Run("returns an empty object for non-object payloads", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []string{`[]`, `"Recipe"`, `42`, `null`} {
			root := jsonld.ResolveRoot(mustDecode(t, raw))
			assert.Equal(t, jsonld.Object, root.Kind(), raw)
			assert.Equal(t, 0, root.Len(), raw)
		}
	})
}
