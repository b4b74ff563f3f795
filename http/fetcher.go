// Package http provides an HTTP-based implementation of pantry.Fetcher
// for static recipe pages that don't require JavaScript rendering, and a
// sitemap-backed pantry.SitemapService.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/pantry"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default timeout for a single HTTP attempt.
// Kept consistent with rod.DefaultFetchTimeout (10s).
const DefaultFetchTimeout = 10 * time.Second

// maxBodySize caps how much of a page is read.
const maxBodySize = 16 << 20

// Ensure Fetcher implements pantry.Fetcher at compile time.
var _ pantry.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves pages with plain HTTP GET requests. Redirects are never
// followed; a redirect is reported as its 3xx status.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for each request.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	return f
}

// Fetch performs one GET request with the given headers. The body of a 200
// response is decoded to UTF-8 using the declared or sniffed charset.
func (f *Fetcher) Fetch(ctx context.Context, url string, headers pantry.HeaderSet) (*pantry.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for name, value := range headers {
		req.Header.Set(name, value)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain a little so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return &pantry.Response{StatusCode: resp.StatusCode}, nil
	}

	body, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("decoding body of %s: %w", url, err)
	}
	content, err := io.ReadAll(io.LimitReader(body, maxBodySize))
	if err != nil {
		return nil, err
	}

	return &pantry.Response{
		StatusCode: resp.StatusCode,
		Content:    string(content),
	}, nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
