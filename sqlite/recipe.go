package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/pantry"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var (
	_ pantry.RecipeService = (*RecipeService)(nil)
	_ pantry.RecipeWriter  = (*RecipeService)(nil)
)

const recipeColumns = "url, page_genus, page_family, page_species, language, recipe_name, cook_time, ingredients, instructions"

// RecipeService implements pantry.RecipeService using SQLite.
type RecipeService struct {
	db  *DB
	now func() time.Time
}

// NewRecipeService creates a new RecipeService.
func NewRecipeService(db *DB) *RecipeService {
	return &RecipeService{db: db, now: time.Now}
}

// CreateRecipe stores a recipe. A recipe already stored under the same URL
// is replaced but keeps its ID and insertion position.
func (s *RecipeService) CreateRecipe(ctx context.Context, r pantry.Recipe) error {
	if err := r.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO recipes (id, `+recipeColumns+`, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			page_genus = excluded.page_genus,
			page_family = excluded.page_family,
			page_species = excluded.page_species,
			language = excluded.language,
			recipe_name = excluded.recipe_name,
			cook_time = excluded.cook_time,
			ingredients = excluded.ingredients,
			instructions = excluded.instructions,
			content_hash = excluded.content_hash,
			fetched_at = excluded.fetched_at
	`, uuid.New().String(), r.URL, r.PageGenus, r.PageFamily, r.PageSpecies, r.Language,
		r.RecipeName, r.CookTime, r.Ingredients, r.Instructions,
		contentHash(r), s.now().UTC().Format(time.RFC3339))

	return err
}

// WriteRecipe stores r, so the service can serve as a harvest sink.
func (s *RecipeService) WriteRecipe(ctx context.Context, r pantry.Recipe) error {
	return s.CreateRecipe(ctx, r)
}

// Close is a no-op. The DB is closed by its owner.
func (s *RecipeService) Close() error {
	return nil
}

// FindRecipeByURL retrieves a recipe by its source URL.
func (s *RecipeService) FindRecipeByURL(ctx context.Context, url string) (pantry.Recipe, error) {
	var r pantry.Recipe
	err := s.db.QueryRowContext(ctx, `
		SELECT `+recipeColumns+`
		FROM recipes
		WHERE url = ?
	`, url).Scan(scanTargets(&r)...)

	if errors.Is(err, sql.ErrNoRows) {
		return pantry.Recipe{}, pantry.Errorf(pantry.ENOTFOUND, "recipe not found")
	}
	if err != nil {
		return pantry.Recipe{}, err
	}
	return r, nil
}

// FindRecipes retrieves recipes matching the filter in insertion order.
func (s *RecipeService) FindRecipes(ctx context.Context, filter pantry.RecipeFilter) ([]pantry.Recipe, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + recipeColumns + " FROM recipes WHERE 1=1")

	if filter.Family != nil {
		query.WriteString(" AND page_family = ?")
		args = append(args, *filter.Family)
	}
	if filter.Species != nil {
		query.WriteString(" AND page_species = ?")
		args = append(args, *filter.Species)
	}

	query.WriteString(" ORDER BY rowid ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recipes []pantry.Recipe
	for rows.Next() {
		var r pantry.Recipe
		if err := rows.Scan(scanTargets(&r)...); err != nil {
			return nil, err
		}
		recipes = append(recipes, r)
	}
	return recipes, rows.Err()
}

// ListURLs returns the URLs of all stored recipes in insertion order.
func (s *RecipeService) ListURLs(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT url FROM recipes ORDER BY rowid ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var urls []string
	for rows.Next() {
		var u string
		if err := rows.Scan(&u); err != nil {
			return nil, err
		}
		urls = append(urls, u)
	}
	return urls, rows.Err()
}

func scanTargets(r *pantry.Recipe) []any {
	return []any{&r.URL, &r.PageGenus, &r.PageFamily, &r.PageSpecies, &r.Language,
		&r.RecipeName, &r.CookTime, &r.Ingredients, &r.Instructions}
}
