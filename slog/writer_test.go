package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/pantry"
	"github.com/fwojciec/pantry/mock"
	pslog "github.com/fwojciec/pantry/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingRecipeWriter_WriteRecipe(t *testing.T) {
	t.Parallel()

	t.Run("logs url and missing fields", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		var written pantry.Recipe
		inner := &mock.RecipeWriter{
			WriteRecipeFn: func(_ context.Context, r pantry.Recipe) error {
				written = r
				return nil
			},
		}

		rec := pantry.Recipe{
			URL:          "https://example.com/soup",
			Language:     "en",
			RecipeName:   "Soup",
			Ingredients:  "water",
			Instructions: "Boil.",
		}
		w := pslog.NewLoggingRecipeWriter(inner, logger)
		err := w.WriteRecipe(context.Background(), rec)

		require.NoError(t, err)
		assert.Equal(t, rec, written)
		output := buf.String()
		assert.Contains(t, output, "msg=write")
		assert.Contains(t, output, "url=https://example.com/soup")
		assert.Contains(t, output, "missing=cookTime")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.RecipeWriter{
			WriteRecipeFn: func(_ context.Context, _ pantry.Recipe) error {
				return errors.New("disk full")
			},
		}

		w := pslog.NewLoggingRecipeWriter(inner, logger)
		err := w.WriteRecipe(context.Background(), pantry.Recipe{URL: "https://example.com/soup"})

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"disk full\"")
	})
}

func TestLoggingRecipeWriter_Close(t *testing.T) {
	t.Parallel()

	closed := false
	inner := &mock.RecipeWriter{
		CloseFn: func() error {
			closed = true
			return nil
		},
	}

	w := pslog.NewLoggingRecipeWriter(inner, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	require.NoError(t, w.Close())
	assert.True(t, closed)
}
