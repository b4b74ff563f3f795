package sqlite_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/fwojciec/pantry"
	"github.com/fwojciec/pantry/sqlite"
	"github.com/stretchr/testify/require"
)

// BenchmarkCreateRecipe compares first inserts with upserts of URLs that are
// already stored, the pattern of a repeated harvest.
func BenchmarkCreateRecipe(b *testing.B) {
	b.Run("insert", func(b *testing.B) {
		benchmarkCreateRecipe(b, false)
	})

	b.Run("upsert", func(b *testing.B) {
		benchmarkCreateRecipe(b, true)
	})
}

func benchmarkCreateRecipe(b *testing.B, existing bool) {
	b.Helper()

	db := sqlite.NewDB(filepath.Join(b.TempDir(), "bench.db"))
	require.NoError(b, db.Open())
	defer db.Close()

	ctx := context.Background()
	svc := sqlite.NewRecipeService(db)

	recipe := func(i int) pantry.Recipe {
		return pantry.Recipe{
			PageFamily:   "bench",
			URL:          fmt.Sprintf("https://example.com/recipe/%d", i%100),
			RecipeName:   fmt.Sprintf("Recipe %d", i),
			Ingredients:  "flour\nwater\nsalt",
			Instructions: "Mix the flour and water. Add salt. Knead for ten minutes and bake.",
		}
	}
	if existing {
		for i := range 100 {
			require.NoError(b, svc.CreateRecipe(ctx, recipe(i)))
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r := recipe(i)
		if !existing {
			r.URL = fmt.Sprintf("https://example.com/recipe/new/%d", i)
		}
		if err := svc.CreateRecipe(ctx, r); err != nil {
			b.Fatal(err)
		}
	}
}
