package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/pantry"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	r, err := deps.Recipes.FindRecipeByURL(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pantry.ErrorMessage(err))
		return err
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(r)
}
