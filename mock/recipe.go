package mock

import (
	"context"

	"github.com/fwojciec/pantry"
)

var _ pantry.RecipeService = (*RecipeService)(nil)

// RecipeService is a mock implementation of pantry.RecipeService.
type RecipeService struct {
	CreateRecipeFn    func(ctx context.Context, r pantry.Recipe) error
	FindRecipeByURLFn func(ctx context.Context, url string) (pantry.Recipe, error)
	FindRecipesFn     func(ctx context.Context, filter pantry.RecipeFilter) ([]pantry.Recipe, error)
	ListURLsFn        func(ctx context.Context) ([]string, error)
}

func (s *RecipeService) CreateRecipe(ctx context.Context, r pantry.Recipe) error {
	return s.CreateRecipeFn(ctx, r)
}

func (s *RecipeService) FindRecipeByURL(ctx context.Context, url string) (pantry.Recipe, error) {
	return s.FindRecipeByURLFn(ctx, url)
}

func (s *RecipeService) FindRecipes(ctx context.Context, filter pantry.RecipeFilter) ([]pantry.Recipe, error) {
	return s.FindRecipesFn(ctx, filter)
}

func (s *RecipeService) ListURLs(ctx context.Context) ([]string, error) {
	return s.ListURLsFn(ctx)
}
