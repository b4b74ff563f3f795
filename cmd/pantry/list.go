package main

import (
	"fmt"

	"github.com/fwojciec/pantry"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := pantry.RecipeFilter{Limit: c.Limit}
	if c.Family != "" {
		filter.Family = &c.Family
	}
	if c.Species != "" {
		filter.Species = &c.Species
	}

	recipes, err := deps.Recipes.FindRecipes(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pantry.ErrorMessage(err))
		return err
	}

	if len(recipes) == 0 {
		fmt.Fprintln(deps.Stdout, "No recipes found. Use 'pantry harvest --db' to store some.")
		return nil
	}

	for _, r := range recipes {
		name := r.RecipeName
		if name == "" {
			name = "-"
		}
		fmt.Fprintf(deps.Stdout, "%s  %s/%s  %s\n", r.URL, r.PageFamily, r.PageSpecies, name)
	}

	return nil
}
