package pantry

import "context"

// HeaderSet is one client identity: the request headers sent on a single
// retrieval attempt. An empty set sends no extra headers.
type HeaderSet map[string]string

// DefaultHeaders returns the header candidates tried, in order, when the
// caller supplies none.
func DefaultHeaders() []HeaderSet {
	return []HeaderSet{
		{"User-Agent": "Mozilla/5.0"},
		{"User-Agent": "XY"},
		{},
	}
}

// Response is the outcome of a single retrieval attempt.
type Response struct {
	StatusCode int

	// Content is the page markup. It is only populated for 200 responses.
	Content string
}

// Fetcher performs a single retrieval attempt without following redirects.
// Implementations may use plain HTTP or browser automation.
type Fetcher interface {
	// Fetch requests the URL with the given headers. Non-200 outcomes,
	// including redirects, are reported through Response.StatusCode.
	// Transport-level failures are returned as errors.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string, headers HeaderSet) (*Response, error)

	// Close releases resources held by the fetcher.
	Close() error
}

// Page is the result of retrieving a URL across all header candidates.
type Page struct {
	URL        string
	StatusCode int

	// Content is empty unless StatusCode is 200.
	Content string

	// Language is the primary subtag of the declared page language.
	Language string
}

// OK reports whether the page was retrieved with usable content.
func (p *Page) OK() bool {
	return p.StatusCode == 200 && p.Content != ""
}

// PageFetcher retrieves a page, hiding header rotation and throttling.
// It never fails: a page that could not be retrieved has empty content.
type PageFetcher interface {
	FetchPage(ctx context.Context, url string) Page
}

// Throttle paces retrieval attempts. Pause is called after every attempt,
// successful or not, with the host of the attempted URL.
type Throttle interface {
	Pause(ctx context.Context, host string) error
}
