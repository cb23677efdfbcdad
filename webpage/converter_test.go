package webpage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `<!DOCTYPE html>
<html>
<head><title>Resolution 40505 of 2025</title></head>
<body>
<nav>Home | Regulations | Contact</nav>
<header>Site Header</header>
<script>trackVisit();</script>
<style>body { color: red; }</style>
<article>
<h1>Resolution 40505</h1>
<p>The energy commission issued resolution 40505 establishing new tariff rules
for the wholesale market. The measure was signed by the acting director and
takes effect immediately upon publication in the official gazette.</p>
<p>Market participants have sixty days to file comments on the implementation
schedule described in the annex.</p>
</article>
<aside>Related links</aside>
<footer>Copyright 2025</footer>
<iframe src="https://ads.example.com"></iframe>
</body>
</html>`

func TestConverter_Convert(t *testing.T) {
	result, err := NewConverter().Convert([]byte(samplePage), nil)
	require.NoError(t, err)

	assert.Equal(t, "Resolution 40505 of 2025", result.Title)
	assert.Contains(t, result.Text, "resolution 40505")
	assert.Contains(t, result.Text, "sixty days")

	// Noise elements must not leak into the text
	assert.NotContains(t, result.Text, "trackVisit")
	assert.NotContains(t, result.Text, "color: red")
	assert.NotContains(t, result.Text, "Site Header")
	assert.NotContains(t, result.Text, "Copyright 2025")
	assert.NotContains(t, result.Text, "Related links")
}

func TestConverter_Convert_TitleFromHeading(t *testing.T) {
	page := `<html><body><article><h1>Fallback Heading</h1><p>Body text that is long enough to matter for extraction purposes.</p></article></body></html>`

	result, err := NewConverter().Convert([]byte(page), nil)
	require.NoError(t, err)
	assert.Equal(t, "Fallback Heading", result.Title)
}

func TestConverter_Convert_EmptyInput(t *testing.T) {
	result, err := NewConverter().Convert([]byte(""), nil)
	require.NoError(t, err)
	assert.Empty(t, result.Title)
	assert.Empty(t, result.Text)
}

func TestTruncate(t *testing.T) {
	t.Run("short content untouched", func(t *testing.T) {
		assert.Equal(t, "hello", Truncate("hello", 100))
	})

	t.Run("long content cut with marker", func(t *testing.T) {
		content := strings.Repeat("a", 200)
		got := Truncate(content, 100)
		assert.True(t, strings.HasSuffix(got, "[Content truncated...]"))
		assert.LessOrEqual(t, len(got), 100+len("\n\n[Content truncated...]"))
	})

	t.Run("prefers paragraph boundary", func(t *testing.T) {
		content := strings.Repeat("b", 80) + "\n\n" + strings.Repeat("c", 80)
		got := Truncate(content, 100)
		assert.False(t, strings.Contains(got, "c"), "should cut at the paragraph break")
		assert.True(t, strings.HasSuffix(got, "[Content truncated...]"))
	})

	t.Run("counts runes not bytes", func(t *testing.T) {
		content := strings.Repeat("ñ", 150)
		got := Truncate(content, 100)
		runes := []rune(strings.TrimSuffix(got, "\n\n[Content truncated...]"))
		assert.Len(t, runes, 100)
	})
}
