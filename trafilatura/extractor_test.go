package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/pantry"
	"github.com/fwojciec/pantry/trafilatura"
	"github.com/stretchr/testify/assert"
)

var _ pantry.FallbackExtractor = (*trafilatura.Extractor)(nil)

func page(body string) string {
	return "<!DOCTYPE html><html><head><title>Recipe</title></head><body>" + body + "</body></html>"
}

func TestExtractor_ExtractText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		html    string
		want    []string
		notWant []string
	}{
		{
			name: "article paragraphs",
			html: page(`<nav><a href="/">Home</a><a href="/recipes">Recipes</a></nav>
<article><h1>Apple Pie</h1>
<p>Peel and slice six apples, then toss them with sugar, cinnamon and a squeeze of lemon.</p>
<p>Line the dish with pastry, fill it with the apples and cover with a lattice top.</p>
</article><aside>Sidebar content</aside>`),
			want: []string{"toss them with sugar", "lattice top"},
		},
		{
			name: "navigation dropped",
			html: page(`<nav class="main-nav"><ul><li><a href="/">Home</a></li><li><a href="/about">About Us Page</a></li></ul></nav>
<main><h1>Pancakes</h1><p>Whisk flour, milk and eggs into a smooth batter and rest it for half an hour.</p></main>`),
			want:    []string{"smooth batter"},
			notWant: []string{"About Us Page"},
		},
		{
			name: "footer dropped",
			html: page(`<article><h1>Risotto</h1><p>Toast the rice in butter, then add hot stock one ladle at a time while stirring.</p></article>
<footer><p>Copyright 2024 Example Kitchen</p></footer>`),
			want:    []string{"one ladle at a time"},
			notWant: []string{"Copyright 2024 Example Kitchen"},
		},
		{
			name: "bare paragraph",
			html: `<html><body><p>Simple content</p></body></html>`,
			want: []string{"Simple content"},
		},
	}

	ext := trafilatura.NewExtractor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			text := ext.ExtractText(tt.html)
			for _, s := range tt.want {
				assert.Contains(t, text, s)
			}
			for _, s := range tt.notWant {
				assert.NotContains(t, text, s)
			}
		})
	}

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, ext.ExtractText(""))
	})
}
