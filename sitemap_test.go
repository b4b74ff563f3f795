package pantry_test

import (
	"regexp"
	"testing"

	"github.com/fwojciec/pantry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLFilter_Match(t *testing.T) {
	t.Parallel()

	t.Run("nil filter matches everything", func(t *testing.T) {
		t.Parallel()

		var f *pantry.URLFilter
		assert.True(t, f.Match("https://example.com/anything"))
	})

	t.Run("include keeps matching URLs only", func(t *testing.T) {
		t.Parallel()

		f := &pantry.URLFilter{Include: []*regexp.Regexp{regexp.MustCompile(`/recipes/`)}}
		assert.True(t, f.Match("https://example.com/recipes/pie"))
		assert.False(t, f.Match("https://example.com/about"))
	})

	t.Run("exclude applies after include", func(t *testing.T) {
		t.Parallel()

		f := &pantry.URLFilter{
			Include: []*regexp.Regexp{regexp.MustCompile(`/recipes/`)},
			Exclude: []*regexp.Regexp{regexp.MustCompile(`/print$`)},
		}
		assert.True(t, f.Match("https://example.com/recipes/pie"))
		assert.False(t, f.Match("https://example.com/recipes/pie/print"))
	})
}

func TestNewURLFilter(t *testing.T) {
	t.Parallel()

	t.Run("returns nil without patterns", func(t *testing.T) {
		t.Parallel()

		f, err := pantry.NewURLFilter()
		require.NoError(t, err)
		assert.Nil(t, f)
	})

	t.Run("compiles include patterns", func(t *testing.T) {
		t.Parallel()

		f, err := pantry.NewURLFilter(`/recept/`, `/ricetta/`)
		require.NoError(t, err)
		assert.True(t, f.Match("https://example.se/recept/kanelbullar"))
		assert.True(t, f.Match("https://example.it/ricetta/ciambellone"))
		assert.False(t, f.Match("https://example.it/contatti"))
	})

	t.Run("rejects invalid pattern", func(t *testing.T) {
		t.Parallel()

		_, err := pantry.NewURLFilter(`(`)
		require.Error(t, err)
		assert.Equal(t, pantry.EINVALID, pantry.ErrorCode(err))
	})
}
