package slog

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/pantry"
)

var _ pantry.SitemapService = (*LoggingSitemapService)(nil)

// LoggingSitemapService logs one "sitemap" line per discovery: the site,
// the include patterns applied, how many recipe URLs survived and across
// how many hosts.
type LoggingSitemapService struct {
	next   pantry.SitemapService
	logger *slog.Logger
}

// NewLoggingSitemapService wraps next.
func NewLoggingSitemapService(next pantry.SitemapService, logger *slog.Logger) *LoggingSitemapService {
	return &LoggingSitemapService{next: next, logger: logger}
}

func (s *LoggingSitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *pantry.URLFilter) (urls []string, err error) {
	begin := time.Now()
	urls, err = s.next.DiscoverURLs(ctx, baseURL, filter)

	attrs := []any{"site", baseURL}
	if p := patterns(filter); p != "" {
		attrs = append(attrs, "include", p)
	}
	attrs = append(attrs,
		"urls", len(urls),
		"hosts", hostCount(urls),
		"duration", time.Since(begin),
	)
	if err != nil {
		s.logger.Warn("sitemap", append(attrs, "err", err)...)
		return urls, err
	}
	s.logger.Info("sitemap", attrs...)
	return urls, nil
}

func patterns(f *pantry.URLFilter) string {
	if f == nil {
		return ""
	}
	var out []string
	for _, re := range f.Include {
		out = append(out, re.String())
	}
	return strings.Join(out, ",")
}

// hostCount counts distinct hosts; sitemap indexes may list other domains.
func hostCount(urls []string) int {
	hosts := make(map[string]struct{})
	for _, raw := range urls {
		if u, err := url.Parse(raw); err == nil && u.Host != "" {
			hosts[u.Host] = struct{}{}
		}
	}
	return len(hosts)
}
