package slog

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/fwojciec/pantry"
)

// Ensure LoggingRecipeWriter implements pantry.RecipeWriter.
var _ pantry.RecipeWriter = (*LoggingRecipeWriter)(nil)

// LoggingRecipeWriter wraps a RecipeWriter and logs each record written.
type LoggingRecipeWriter struct {
	next   pantry.RecipeWriter
	logger *slog.Logger
}

// NewLoggingRecipeWriter creates a new LoggingRecipeWriter.
func NewLoggingRecipeWriter(next pantry.RecipeWriter, logger *slog.Logger) *LoggingRecipeWriter {
	return &LoggingRecipeWriter{next: next, logger: logger}
}

// WriteRecipe delegates to the wrapped writer and logs which fields were empty.
func (w *LoggingRecipeWriter) WriteRecipe(ctx context.Context, r pantry.Recipe) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("write",
			"url", r.URL,
			"missing", strings.Join(r.Missing(), ","),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteRecipe(ctx, r)
}

// Close delegates to the wrapped writer.
func (w *LoggingRecipeWriter) Close() error {
	return w.next.Close()
}
