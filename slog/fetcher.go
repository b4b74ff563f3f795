// Package slog provides logging decorators for pantry services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pantry"
)

// Ensure LoggingFetcher implements pantry.Fetcher.
var _ pantry.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher and logs every attempt.
type LoggingFetcher struct {
	next   pantry.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next pantry.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs status, size and timing.
// The header values are not logged.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string, headers pantry.HeaderSet) (resp *pantry.Response, err error) {
	defer func(begin time.Time) {
		status, size := 0, 0
		if resp != nil {
			status, size = resp.StatusCode, len(resp.Content)
		}
		f.logger.Info("fetch",
			"url", url,
			"headers", len(headers),
			"status", status,
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url, headers)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
