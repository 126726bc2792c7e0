package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clean(t *testing.T, preset string, html string) string {
	t.Helper()
	s, err := New(preset)
	require.NoError(t, err)
	out, err := s.Clean(html)
	require.NoError(t, err)
	return out
}

func TestNewRejectsUnknownPreset(t *testing.T) {
	_, err := New("deep")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown sanitize preset")

	for _, preset := range []string{PresetMinimal, PresetStandard, PresetAggressive} {
		s, err := New(preset)
		require.NoError(t, err)
		assert.Equal(t, preset, s.Preset())
	}
}

func TestCleanMinimal(t *testing.T) {
	in := `<html><body>
		<script>alert("x")</script>
		<style>p { color: red }</style>
		<!-- tracking comment -->
		<nav>site nav</nav>
		<p>content</p>
	</body></html>`

	out := clean(t, PresetMinimal, in)
	assert.NotContains(t, out, "alert(")
	assert.NotContains(t, out, "color: red")
	assert.NotContains(t, out, "tracking comment")
	assert.Contains(t, out, "site nav")
	assert.Contains(t, out, "<p>content</p>")
}

func TestCleanStandardRemovesChrome(t *testing.T) {
	in := `<html><body>
		<header>SITE-BANNER</header>
		<nav>NAV-LINKS</nav>
		<div class="sidebar">SIDEBAR</div>
		<article>
			<header><h1>ARTICLE-TITLE</h1></header>
			<p>Body text.</p>
			<form action="/subscribe"><input name="email"></form>
			<iframe src="https://ads.example"></iframe>
		</article>
		<footer>PAGE-FOOTER</footer>
	</body></html>`

	out := clean(t, PresetStandard, in)
	assert.NotContains(t, out, "SITE-BANNER")
	assert.NotContains(t, out, "NAV-LINKS")
	assert.NotContains(t, out, "SIDEBAR")
	assert.NotContains(t, out, "PAGE-FOOTER")
	assert.NotContains(t, out, "subscribe")
	assert.NotContains(t, out, "iframe")

	// The article's own header survives; it holds the title.
	assert.Contains(t, out, "ARTICLE-TITLE")
	assert.Contains(t, out, "Body text.")
}

func TestCleanAggressiveScrubsAttributes(t *testing.T) {
	in := `<html><body>
		<p id="intro" style="color:red" onclick="track()" data-x="1">Hi</p>
		<a href="/about" target="_blank" rel="noopener">About</a>
		<img src="a.png" alt="A" loading="lazy">
		<ol start="5"><li value="9">item</li></ol>
	</body></html>`

	out := clean(t, PresetAggressive, in)
	assert.Contains(t, out, `id="intro"`)
	assert.Contains(t, out, `href="/about"`)
	assert.Contains(t, out, `src="a.png"`)
	assert.Contains(t, out, `alt="A"`)
	assert.Contains(t, out, `start="5"`)

	assert.NotContains(t, out, "style=")
	assert.NotContains(t, out, "onclick")
	assert.NotContains(t, out, "data-x")
	assert.NotContains(t, out, "target=")
	assert.NotContains(t, out, "loading=")
	assert.NotContains(t, out, "value=")
}

func TestCleanKeepsHeadMetadata(t *testing.T) {
	in := `<html><head>
		<title>My Page</title>
		<meta name="description" content="About things">
		<link rel="canonical" href="https://example.com/p">
	</head><body><p>x</p></body></html>`

	for _, preset := range []string{PresetMinimal, PresetStandard, PresetAggressive} {
		out := clean(t, preset, in)
		assert.Contains(t, out, "<title>My Page</title>", "preset %s", preset)
		assert.Contains(t, out, `name="description"`, "preset %s", preset)
		assert.Contains(t, out, `content="About things"`, "preset %s", preset)
		assert.Contains(t, out, `href="https://example.com/p"`, "preset %s", preset)
	}
}

func TestCleanAggressiveDropsDrawingSurfaces(t *testing.T) {
	in := `<html><body>
		<svg viewBox="0 0 1 1"><circle r="1"/></svg>
		<canvas id="chart"></canvas>
		<img src="photo.png" alt="Photo">
		<p>kept</p>
	</body></html>`

	out := clean(t, PresetAggressive, in)
	assert.NotContains(t, out, "svg")
	assert.NotContains(t, out, "canvas")
	assert.Contains(t, out, `src="photo.png"`)
	assert.Contains(t, out, "<p>kept</p>")
}
