// Package rod provides a pantry.Fetcher that renders pages in headless
// Chrome, for recipe sites that build their markup with JavaScript.
package rod

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/fwojciec/pantry"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout is the default timeout for a single page load.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements pantry.Fetcher at compile time.
var _ pantry.Fetcher = (*Fetcher)(nil)

// Fetcher loads pages in browser tabs. It is safe for concurrent use.
type Fetcher struct {
	manager *BrowserManager
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout bounds each page load.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		if d > 0 {
			f.timeout = d
		}
	}
}

// NewFetcher creates a Fetcher on manager. Closing the Fetcher closes the
// manager.
func NewFetcher(manager *BrowserManager, opts ...Option) *Fetcher {
	f := &Fetcher{
		manager: manager,
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch loads url in a fresh tab. The User-Agent header becomes a
// user-agent override and other headers are sent as extra request headers.
// A navigation that redirects is reported with the first redirect status
// and no content; content is only read when the document answers 200.
func (f *Fetcher) Fetch(ctx context.Context, url string, headers pantry.HeaderSet) (*pantry.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	page, release, err := f.manager.Page()
	if err != nil {
		return nil, err
	}
	defer release()

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()
	page = page.Context(ctx)

	if err := applyHeaders(page, headers); err != nil {
		return nil, err
	}

	frame := proto.PageFrameID(page.TargetID)
	var status, redirect int
	wait := page.EachEvent(
		func(e *proto.NetworkRequestWillBeSent) {
			if e.RedirectResponse != nil && e.Type == proto.NetworkResourceTypeDocument &&
				e.FrameID == frame && redirect == 0 {
				redirect = e.RedirectResponse.Status
			}
		},
		func(e *proto.NetworkResponseReceived) bool {
			if e.Type != proto.NetworkResourceTypeDocument || e.FrameID != frame {
				return false
			}
			status = e.Response.Status
			return true
		},
	)

	if err := page.Navigate(url); err != nil {
		return nil, fmt.Errorf("navigating to %s: %w", url, err)
	}
	wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if redirect != 0 {
		return &pantry.Response{StatusCode: redirect}, nil
	}
	if status != http.StatusOK {
		return &pantry.Response{StatusCode: status}, nil
	}

	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("waiting for %s: %w", url, err)
	}
	html, err := page.HTML()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", url, err)
	}
	return &pantry.Response{StatusCode: status, Content: html}, nil
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	return f.manager.Close()
}

// LauncherPID returns the process ID of the underlying browser launcher.
func (f *Fetcher) LauncherPID() int {
	return f.manager.LauncherPID()
}

func applyHeaders(page *rod.Page, headers pantry.HeaderSet) error {
	var extra []string
	for name, value := range headers {
		if http.CanonicalHeaderKey(name) == "User-Agent" {
			if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: value}); err != nil {
				return fmt.Errorf("setting user agent: %w", err)
			}
			continue
		}
		extra = append(extra, name, value)
	}
	if len(extra) == 0 {
		return nil
	}
	if _, err := page.SetExtraHeaders(extra); err != nil {
		return fmt.Errorf("setting headers: %w", err)
	}
	return nil
}
