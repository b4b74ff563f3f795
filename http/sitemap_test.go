package http_test

import (
	"bytes"
	"compress/gzip"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fwojciec/pantry"
	pantryhttp "github.com/fwojciec/pantry/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSitemapService_DiscoverURLs(t *testing.T) {
	t.Parallel()

	t.Run("reads sitemaps listed in robots.txt", func(t *testing.T) {
		t.Parallel()

		srv := newSitemapServer(t, map[string]string{
			"/robots.txt": "User-agent: *\nDisallow: /wp-admin/\nSitemap: {{BASE}}/recipes.xml\n",
			"/recipes.xml": `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>{{BASE}}/recipes/apple-pie</loc></url>
  <url><loc> {{BASE}}/recipes/brioche </loc></url>
</urlset>`,
		})

		urls, err := pantryhttp.NewSitemapService(srv.Client()).DiscoverURLs(context.Background(), srv.URL, nil)

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/recipes/apple-pie", srv.URL + "/recipes/brioche"}, urls)
	})

	t.Run("falls back to sitemap.xml", func(t *testing.T) {
		t.Parallel()

		srv := newSitemapServer(t, map[string]string{
			"/sitemap.xml": `<urlset><url><loc>{{BASE}}/recept/kanelbullar</loc></url></urlset>`,
		})

		urls, err := pantryhttp.NewSitemapService(srv.Client()).DiscoverURLs(context.Background(), srv.URL+"/recept/", nil)

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/recept/kanelbullar"}, urls)
	})

	t.Run("follows sitemap indexes and deduplicates", func(t *testing.T) {
		t.Parallel()

		srv := newSitemapServer(t, map[string]string{
			"/sitemap.xml": `<sitemapindex>
  <sitemap><loc>{{BASE}}/post-sitemap.xml</loc></sitemap>
  <sitemap><loc>{{BASE}}/page-sitemap.xml</loc></sitemap>
  <sitemap><loc>{{BASE}}/post-sitemap.xml</loc></sitemap>
</sitemapindex>`,
			"/post-sitemap.xml": `<urlset>
  <url><loc>{{BASE}}/pie</loc></url>
  <url><loc>{{BASE}}/cake</loc></url>
</urlset>`,
			"/page-sitemap.xml": `<urlset>
  <url><loc>{{BASE}}/cake</loc></url>
  <url><loc>{{BASE}}/about</loc></url>
</urlset>`,
		})

		urls, err := pantryhttp.NewSitemapService(srv.Client()).DiscoverURLs(context.Background(), srv.URL, nil)

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/pie", srv.URL + "/cake", srv.URL + "/about"}, urls)
	})

	t.Run("applies the filter", func(t *testing.T) {
		t.Parallel()

		srv := newSitemapServer(t, map[string]string{
			"/sitemap.xml": `<urlset>
  <url><loc>{{BASE}}/ricetta/ciambellone</loc></url>
  <url><loc>{{BASE}}/contatti</loc></url>
</urlset>`,
		})
		filter, err := pantry.NewURLFilter(`/ricetta/`)
		require.NoError(t, err)

		urls, err := pantryhttp.NewSitemapService(srv.Client()).DiscoverURLs(context.Background(), srv.URL, filter)

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/ricetta/ciambellone"}, urls)
	})

	t.Run("reads gzipped sitemaps", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		gz := gzip.NewWriter(&buf)
		_, _ = gz.Write([]byte(`<urlset><url><loc>https://example.com/pie</loc></url></urlset>`))
		require.NoError(t, gz.Close())

		srv := newSitemapServer(t, map[string]string{
			"/robots.txt":     "Sitemap: {{BASE}}/sitemap.xml.gz\n",
			"/sitemap.xml.gz": buf.String(),
		})

		urls, err := pantryhttp.NewSitemapService(srv.Client()).DiscoverURLs(context.Background(), srv.URL, nil)

		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/pie"}, urls)
	})

	t.Run("returns empty slice when the site has no sitemap", func(t *testing.T) {
		t.Parallel()

		srv := newSitemapServer(t, map[string]string{})

		urls, err := pantryhttp.NewSitemapService(srv.Client()).DiscoverURLs(context.Background(), srv.URL, nil)

		require.NoError(t, err)
		assert.NotNil(t, urls)
		assert.Empty(t, urls)
	})

	t.Run("returns error for malformed XML", func(t *testing.T) {
		t.Parallel()

		srv := newSitemapServer(t, map[string]string{
			"/sitemap.xml": `<urlset <url>`,
		})

		_, err := pantryhttp.NewSitemapService(srv.Client()).DiscoverURLs(context.Background(), srv.URL, nil)

		require.Error(t, err)
	})

	t.Run("rejects an invalid base URL", func(t *testing.T) {
		t.Parallel()

		_, err := pantryhttp.NewSitemapService(nil).DiscoverURLs(context.Background(), "not a url", nil)

		require.Error(t, err)
		assert.Equal(t, pantry.EINVALID, pantry.ErrorCode(err))
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := pantryhttp.NewSitemapService(nil).DiscoverURLs(ctx, "https://example.com", nil)

		require.ErrorIs(t, err, context.Canceled)
	})
}

// newSitemapServer serves fixed bodies by path, replacing {{BASE}} with the
// server URL. Unknown paths return 404.
func newSitemapServer(t *testing.T, content map[string]string) *httptest.Server {
	t.Helper()

	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := content[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		if r.URL.Path == "/robots.txt" {
			w.Header().Set("Content-Type", "text/plain")
		} else {
			w.Header().Set("Content-Type", "application/xml")
		}
		_, _ = w.Write([]byte(strings.ReplaceAll(body, "{{BASE}}", srv.URL)))
	}))
	t.Cleanup(srv.Close)

	return srv
}
