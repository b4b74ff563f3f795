package harvest

import (
	"context"
	"net/url"
	"time"

	"github.com/fwojciec/pantry"
)

// DefaultAttemptTimeout bounds a single retrieval attempt.
const DefaultAttemptTimeout = 10 * time.Second

// Ensure PageFetcher implements pantry.PageFetcher at compile time.
var _ pantry.PageFetcher = (*PageFetcher)(nil)

// PageFetcher retrieves a page by trying header candidates one at a time
// until one is answered with 200.
type PageFetcher struct {
	// Fetcher performs single attempts.
	Fetcher pantry.Fetcher

	// Language reads the declared page language. Optional.
	Language pantry.LanguageParser

	// Throttle runs after every attempt. Optional.
	Throttle pantry.Throttle

	// Headers are tried in order. Defaults to pantry.DefaultHeaders().
	Headers []pantry.HeaderSet

	// Timeout bounds each attempt. Defaults to DefaultAttemptTimeout.
	Timeout time.Duration
}

// FetchPage never fails. Timeouts and transport errors count as non-200
// attempts with status 0. When no candidate succeeds, the page carries the
// status of the last attempt and no content.
func (f *PageFetcher) FetchPage(ctx context.Context, rawURL string) pantry.Page {
	page := pantry.Page{URL: rawURL}

	headers := f.Headers
	if len(headers) == 0 {
		headers = pantry.DefaultHeaders()
	}
	host := hostOf(rawURL)

	for _, h := range headers {
		if ctx.Err() != nil {
			break
		}

		resp, err := f.attempt(ctx, rawURL, h)
		if err != nil {
			page.StatusCode = 0
		} else {
			page.StatusCode = resp.StatusCode
		}

		paused := f.pause(ctx, host)

		if err == nil && resp.StatusCode == 200 {
			page.Content = resp.Content
			break
		}
		if paused != nil {
			break
		}
	}

	if page.StatusCode == 200 && f.Language != nil {
		page.Language = f.Language.ParseLanguage(page.Content)
	}
	return page
}

func (f *PageFetcher) attempt(ctx context.Context, rawURL string, h pantry.HeaderSet) (*pantry.Response, error) {
	timeout := f.Timeout
	if timeout <= 0 {
		timeout = DefaultAttemptTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return f.Fetcher.Fetch(ctx, rawURL, h)
}

func (f *PageFetcher) pause(ctx context.Context, host string) error {
	if f.Throttle == nil {
		return nil
	}
	return f.Throttle.Pause(ctx, host)
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}
