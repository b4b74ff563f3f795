package pantry_test

import (
	"testing"

	"github.com/fwojciec/pantry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecipe(t *testing.T) {
	t.Parallel()

	tax := pantry.Taxonomy{Genus: "baking", Family: "pastry", Species: "croissant"}
	r := pantry.NewRecipe("https://example.com/croissant", tax)

	assert.Equal(t, pantry.Recipe{
		PageGenus:   "baking",
		PageFamily:  "pastry",
		PageSpecies: "croissant",
		URL:         "https://example.com/croissant",
	}, r)
}

func TestRecipe_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts recipe with URL only", func(t *testing.T) {
		t.Parallel()

		r := pantry.Recipe{URL: "https://example.com/pie"}
		require.NoError(t, r.Validate())
	})

	t.Run("rejects recipe without URL", func(t *testing.T) {
		t.Parallel()

		r := pantry.Recipe{RecipeName: "Pie"}
		err := r.Validate()
		require.Error(t, err)
		assert.Equal(t, pantry.EINVALID, pantry.ErrorCode(err))
	})
}

func TestRecipe_Missing(t *testing.T) {
	t.Parallel()

	t.Run("lists every content field for a bare record", func(t *testing.T) {
		t.Parallel()

		r := pantry.Recipe{URL: "https://example.com/pie"}
		assert.Equal(t, []string{"language", "recipeName", "cookTime", "ingredients", "instructions"}, r.Missing())
	})

	t.Run("returns nil for a complete record", func(t *testing.T) {
		t.Parallel()

		r := pantry.Recipe{
			URL:          "https://example.com/pie",
			Language:     "en",
			RecipeName:   "Pie",
			CookTime:     "PT1H",
			Ingredients:  "flour",
			Instructions: "Bake.",
		}
		assert.Nil(t, r.Missing())
	})
}
