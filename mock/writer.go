package mock

import (
	"context"

	"github.com/fwojciec/pantry"
)

var _ pantry.RecipeWriter = (*RecipeWriter)(nil)

// RecipeWriter is a mock implementation of pantry.RecipeWriter.
type RecipeWriter struct {
	WriteRecipeFn func(ctx context.Context, r pantry.Recipe) error
	CloseFn       func() error
}

func (w *RecipeWriter) WriteRecipe(ctx context.Context, r pantry.Recipe) error {
	return w.WriteRecipeFn(ctx, r)
}

func (w *RecipeWriter) Close() error {
	return w.CloseFn()
}
