package pantry

import "context"

// Recipe is the flat record produced for every harvested URL.
// Empty strings mark fields that could not be extracted; no field is ever
// omitted. URL is always set.
type Recipe struct {
	PageGenus    string `json:"pageGenus"`
	PageFamily   string `json:"pageFamily"`
	PageSpecies  string `json:"pageSpecies"`
	URL          string `json:"url"`
	Language     string `json:"language"`
	RecipeName   string `json:"recipeName"`
	CookTime     string `json:"cookTime"`
	Ingredients  string `json:"ingredients"`
	Instructions string `json:"instructions"`
}

// NewRecipe returns a record carrying only the URL and taxonomy labels.
// This is the shape every failed extraction degrades to.
func NewRecipe(url string, tax Taxonomy) Recipe {
	return Recipe{
		PageGenus:   tax.Genus,
		PageFamily:  tax.Family,
		PageSpecies: tax.Species,
		URL:         url,
	}
}

// Validate returns an error if the recipe contains invalid fields.
func (r *Recipe) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "recipe URL required")
	}
	return nil
}

// Missing returns the names of the extracted content fields that are empty,
// in field order.
func (r *Recipe) Missing() []string {
	var missing []string
	if r.Language == "" {
		missing = append(missing, "language")
	}
	if r.RecipeName == "" {
		missing = append(missing, "recipeName")
	}
	if r.CookTime == "" {
		missing = append(missing, "cookTime")
	}
	if r.Ingredients == "" {
		missing = append(missing, "ingredients")
	}
	if r.Instructions == "" {
		missing = append(missing, "instructions")
	}
	return missing
}

// Taxonomy holds the caller-supplied labels identifying which site or
// category a recipe came from. Labels are static per run.
type Taxonomy struct {
	Genus   string `json:"genus" yaml:"genus"`
	Family  string `json:"family" yaml:"family"`
	Species string `json:"species" yaml:"species"`
}

// RecipeWriter writes harvested recipes to a sink.
type RecipeWriter interface {
	WriteRecipe(ctx context.Context, r Recipe) error

	// Close flushes buffered output and releases resources.
	Close() error
}

// RecipeService represents a service for managing stored recipes.
type RecipeService interface {
	// CreateRecipe stores a recipe, replacing any stored recipe with the same URL.
	CreateRecipe(ctx context.Context, r Recipe) error

	// FindRecipeByURL retrieves a recipe by its source URL.
	// Returns ENOTFOUND if the recipe does not exist.
	FindRecipeByURL(ctx context.Context, url string) (Recipe, error)

	// FindRecipes retrieves recipes matching the filter.
	FindRecipes(ctx context.Context, filter RecipeFilter) ([]Recipe, error)

	// ListURLs returns the URLs of all stored recipes.
	ListURLs(ctx context.Context) ([]string, error)
}

// RecipeFilter represents a filter for FindRecipes.
type RecipeFilter struct {
	Family  *string `json:"family"`
	Species *string `json:"species"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
