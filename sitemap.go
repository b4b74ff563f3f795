package pantry

import (
	"context"
	"regexp"
)

// SitemapService discovers recipe URLs from a site's sitemaps.
type SitemapService interface {
	// DiscoverURLs returns the page URLs listed in the sitemaps of the site
	// at baseURL, in sitemap order without duplicates. Sitemaps are located
	// through robots.txt directives, falling back to /sitemap.xml, and
	// sitemap indexes are followed.
	// A nil filter keeps every URL.
	DiscoverURLs(ctx context.Context, baseURL string, filter *URLFilter) ([]string, error)
}

// URLFilter selects URLs by pattern.
type URLFilter struct {
	// Include keeps only URLs matching at least one pattern, when set.
	Include []*regexp.Regexp

	// Exclude drops URLs matching any pattern. Applied after Include.
	Exclude []*regexp.Regexp
}

// NewURLFilter compiles include patterns into a filter.
// Returns nil when no patterns are given.
func NewURLFilter(include ...string) (*URLFilter, error) {
	if len(include) == 0 {
		return nil, nil
	}
	f := &URLFilter{}
	for _, pattern := range include {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, Errorf(EINVALID, "invalid filter pattern %q: %v", pattern, err)
		}
		f.Include = append(f.Include, re)
	}
	return f, nil
}

// Match reports whether the URL passes the filter.
// A nil filter matches everything.
func (f *URLFilter) Match(url string) bool {
	if f == nil {
		return true
	}

	if len(f.Include) > 0 {
		matched := false
		for _, re := range f.Include {
			if re.MatchString(url) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	for _, re := range f.Exclude {
		if re.MatchString(url) {
			return false
		}
	}
	return true
}
