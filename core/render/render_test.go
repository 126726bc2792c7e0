package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/htmlmd/core"
)

const sampleMarkdown = `Title
=====

Intro paragraph with a [link](https://example.com/docs "Docs") and 2\. escaped.

Section One
-----------

Some **bold** text and <https://example.com>.

* item one
* item two

` + "```go\n# not a heading\nfmt.Println(\"hi\")\n```" + `

### Deep Dive

An image: ![diagram](diagram.png)

| A | B |
| --- | --- |
| 1 | 2 |
`

func TestMarkdownRendererPassthrough(t *testing.T) {
	r := NewMarkdownRenderer()
	data, err := r.Render(sampleMarkdown, core.DocumentMeta{Title: "Title"})
	require.NoError(t, err)
	assert.Equal(t, sampleMarkdown, string(data))
	assert.Equal(t, ".md", r.Extension())
}

func TestJSONRendererStructure(t *testing.T) {
	r := NewJSONRenderer()
	meta := core.DocumentMeta{URL: "https://example.com/docs", Title: "Title"}

	data, err := r.Render(sampleMarkdown, meta)
	require.NoError(t, err)
	assert.Equal(t, ".json", r.Extension())

	var page core.DocumentJSON
	require.NoError(t, json.Unmarshal(data, &page))

	assert.Equal(t, "https://example.com/docs", page.Metadata.URL)
	assert.Equal(t, "Title", page.Metadata.Title)
	assert.Equal(t, sampleMarkdown, page.Content.Markdown)

	require.Len(t, page.Structure.Headings, 3)
	assert.Equal(t, core.Heading{Level: 1, Text: "Title"}, page.Structure.Headings[0])
	assert.Equal(t, core.Heading{Level: 2, Text: "Section One"}, page.Structure.Headings[1])
	assert.Equal(t, core.Heading{Level: 3, Text: "Deep Dive"}, page.Structure.Headings[2])

	require.Len(t, page.Structure.Links, 2)
	assert.Equal(t, core.Link{Text: "link", Href: "https://example.com/docs"}, page.Structure.Links[0])
	assert.Equal(t, core.Link{Text: "https://example.com", Href: "https://example.com"}, page.Structure.Links[1])

	assert.Equal(t, 1, page.Structure.CodeBlocks)
	assert.Equal(t, 1, page.Structure.Tables)
	assert.Equal(t, 2, page.Structure.Lists)

	require.Len(t, page.Content.Sections, 3)
	assert.Equal(t, "Title", page.Content.Sections[0].Heading)
	assert.Equal(t, 1, page.Content.Sections[0].Level)
	assert.Contains(t, page.Content.Sections[0].Text, "Intro paragraph")
	assert.Equal(t, "Section One", page.Content.Sections[1].Heading)
	assert.Contains(t, page.Content.Sections[1].Text, "item two")
	assert.Equal(t, "Deep Dive", page.Content.Sections[2].Heading)
	assert.Contains(t, page.Content.Sections[2].Text, "| 1 | 2 |")

	text := page.Content.Text
	assert.Contains(t, text, "Intro paragraph")
	assert.Contains(t, text, "2. escaped")
	assert.Contains(t, text, "bold")
	assert.NotContains(t, text, "**")
	assert.NotContains(t, text, "=====")
	assert.NotContains(t, text, "```")
	assert.NotContains(t, text, "](")
}

func TestJSONRendererIgnoresFrontMatter(t *testing.T) {
	md := "---\ntitle: My Page\n---\n\nReal Heading\n============\n\nBody.\n"

	data, err := NewJSONRenderer().Render(md, core.DocumentMeta{})
	require.NoError(t, err)

	var page core.DocumentJSON
	require.NoError(t, json.Unmarshal(data, &page))

	require.Len(t, page.Structure.Headings, 1)
	assert.Equal(t, "Real Heading", page.Structure.Headings[0].Text)
	assert.Equal(t, md, page.Content.Markdown)
	assert.NotContains(t, page.Content.Text, "title: My Page")
}

func TestJSONRendererEmptyDocument(t *testing.T) {
	data, err := NewJSONRenderer().Render("", core.DocumentMeta{})
	require.NoError(t, err)

	var page core.DocumentJSON
	require.NoError(t, json.Unmarshal(data, &page))
	assert.Empty(t, page.Structure.Headings)
	assert.Empty(t, page.Content.Sections)
	assert.Zero(t, page.Structure.CodeBlocks)
}

func TestPDFRendererProducesDocument(t *testing.T) {
	r := NewPDFRenderer()
	md := "Overview\n========\n\nPlain paragraph.\n\n* bullet point\n\n1. numbered\n\n" +
		"```\ncode line\n```\n\n> quoted text\n\n---\n\nDone.\n"

	data, err := r.Render(md, core.DocumentMeta{Title: "Overview", URL: "https://example.com"})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "output should be a PDF document")
	assert.Greater(t, len(data), 500)
	assert.Equal(t, ".pdf", r.Extension())
}

func TestPDFRendererWithoutMetadata(t *testing.T) {
	data, err := NewPDFRenderer().Render("Just text.\n", core.DocumentMeta{})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestCleanInlineMarkdown(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"**bold** and `code`", "bold and code"},
		{"[text](https://x.example)", "text"},
		{"a ~~gone~~ ==marked== b", "a gone marked b"},
		{`escaped 2\. and \*star\*`, "escaped 2. and *star*"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, cleanInlineMarkdown(tc.in), "input %q", tc.in)
	}
}
