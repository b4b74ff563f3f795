package mock

import (
	"context"

	"github.com/fwojciec/pantry"
)

var (
	_ pantry.Fetcher     = (*Fetcher)(nil)
	_ pantry.PageFetcher = (*PageFetcher)(nil)
	_ pantry.Throttle    = (*Throttle)(nil)
)

// Fetcher is a mock implementation of pantry.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string, headers pantry.HeaderSet) (*pantry.Response, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string, headers pantry.HeaderSet) (*pantry.Response, error) {
	return f.FetchFn(ctx, url, headers)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

// PageFetcher is a mock implementation of pantry.PageFetcher.
type PageFetcher struct {
	FetchPageFn func(ctx context.Context, url string) pantry.Page
}

func (f *PageFetcher) FetchPage(ctx context.Context, url string) pantry.Page {
	return f.FetchPageFn(ctx, url)
}

// Throttle is a mock implementation of pantry.Throttle.
type Throttle struct {
	PauseFn func(ctx context.Context, host string) error
}

func (t *Throttle) Pause(ctx context.Context, host string) error {
	return t.PauseFn(ctx, host)
}
