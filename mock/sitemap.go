package mock

import (
	"context"

	"github.com/fwojciec/pantry"
)

var _ pantry.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of pantry.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *pantry.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *pantry.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}
