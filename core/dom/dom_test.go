package dom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func parse(t *testing.T, src string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(src))
	require.NoError(t, err)
	return doc
}

func TestRolePredicates(t *testing.T) {
	assert.True(t, IsBlock("p"))
	assert.True(t, IsBlock("blockquote"))
	assert.True(t, IsBlock("li"))
	assert.False(t, IsBlock("span"))
	assert.False(t, IsBlock("unknown-tag"))

	assert.True(t, IsInline("em"))
	assert.True(t, IsInline("img"))
	assert.True(t, IsInline("wbr"))
	assert.False(t, IsInline("div"))
	assert.False(t, IsInline(""))

	assert.True(t, IsPreserve("pre"))
	assert.True(t, IsPreserve("script"))
	assert.False(t, IsPreserve("code"))
}

func TestHeadingHelpers(t *testing.T) {
	assert.True(t, IsHeading("h1"))
	assert.True(t, IsHeading("h6"))
	assert.False(t, IsHeading("h7"))
	assert.False(t, IsHeading("hr"))
	assert.False(t, IsHeading("header"))

	assert.Equal(t, 3, HeadingLevel("h3"))
	assert.Equal(t, 0, HeadingLevel("table"))
}

func TestNodeHelpers(t *testing.T) {
	doc := parse(t, `<html><body><p id="lead" class="x">Hello <b>bold</b> text</p></body></html>`)

	body := Body(doc)
	require.NotNil(t, body)
	assert.Equal(t, "body", Name(body))

	p := FindFirst(doc, "p")
	require.NotNil(t, p)
	assert.Equal(t, "p", Name(p))
	assert.Equal(t, "lead", Attr(p, "id"))
	assert.Equal(t, "", Attr(p, "title"))
	assert.True(t, HasAttr(p, "class"))
	assert.False(t, HasAttr(p, "title"))

	assert.Equal(t, "Hello bold text", TextContent(p))
	assert.Equal(t, "", Name(p.FirstChild), "text nodes have no tag name")
}

func TestFindFirstMissing(t *testing.T) {
	doc := parse(t, "<p>x</p>")
	assert.Nil(t, FindFirst(doc, "table"))
	assert.Nil(t, Body(nil))
}
