// Package render — JSON renderer.
// Builds the structured JSON output from Markdown and document metadata.
// Parses the Markdown to extract structural information (headings, links,
// code blocks, tables, lists) without inferring any business-specific
// fields. Both setext (underlined) and ATX headings are recognized, since
// the converter emits either depending on the heading style option.
package render

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/htmlmd/core"
)

// JSONRenderer produces structured JSON output from Markdown.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render converts Markdown and metadata into the document JSON structure.
func (r *JSONRenderer) Render(markdown string, meta core.DocumentMeta) ([]byte, error) {
	body := stripFrontMatter(markdown)

	page := core.DocumentJSON{
		Metadata: meta,
		Content: core.DocumentContent{
			Text:     stripMarkdown(body),
			Markdown: markdown,
			Sections: buildSections(body),
		},
		Structure: core.DocumentStructure{
			Headings:   extractHeadings(body),
			Links:      extractLinks(body),
			CodeBlocks: countCodeBlocks(body),
			Tables:     countTables(body),
			Lists:      countLists(body),
		},
	}

	data, err := json.MarshalIndent(page, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}

// --- Markdown parsing helpers ---

var (
	atxHeadingRegex    = regexp.MustCompile(`(?m)^(#{1,6})\s+(.*?)\s*$`)
	closingHashesRegex = regexp.MustCompile(`\s+#+$`)
	setextEqualsRegex  = regexp.MustCompile(`^=+\s*$`)
	setextDashesRegex  = regexp.MustCompile(`^-{2,}\s*$`)
)

// headingAt reports whether a heading starts at line i, returning the
// parsed heading and the number of lines it spans (two for setext).
func headingAt(lines []string, i int) (core.Heading, int, bool) {
	if m := atxHeadingRegex.FindStringSubmatch(lines[i]); m != nil {
		text := closingHashesRegex.ReplaceAllString(m[2], "")
		return core.Heading{Level: len(m[1]), Text: strings.TrimSpace(text)}, 1, true
	}
	if text := strings.TrimSpace(lines[i]); text != "" && i+1 < len(lines) {
		switch {
		case setextEqualsRegex.MatchString(lines[i+1]):
			return core.Heading{Level: 1, Text: text}, 2, true
		case setextDashesRegex.MatchString(lines[i+1]):
			return core.Heading{Level: 2, Text: text}, 2, true
		}
	}
	return core.Heading{}, 0, false
}

// extractHeadings collects every heading in the Markdown, skipping
// fenced code blocks.
func extractHeadings(md string) []core.Heading {
	lines := strings.Split(md, "\n")
	var headings []core.Heading
	inFence := false

	for i := 0; i < len(lines); i++ {
		if strings.HasPrefix(strings.TrimSpace(lines[i]), "```") {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}
		if h, span, ok := headingAt(lines, i); ok {
			headings = append(headings, h)
			i += span - 1
		}
	}
	return headings
}

// buildSections splits the Markdown into heading-delimited sections.
// Text before the first heading belongs to no section.
func buildSections(md string) []core.Section {
	lines := strings.Split(md, "\n")
	var sections []core.Section
	var current *core.Section
	var body []string
	inFence := false

	flush := func() {
		if current != nil {
			current.Text = strings.TrimSpace(strings.Join(body, "\n"))
			sections = append(sections, *current)
		}
	}

	for i := 0; i < len(lines); i++ {
		fenceLine := strings.HasPrefix(strings.TrimSpace(lines[i]), "```")
		if fenceLine {
			inFence = !inFence
		}
		if !inFence && !fenceLine {
			if h, span, ok := headingAt(lines, i); ok {
				flush()
				current = &core.Section{Heading: h.Text, Level: h.Level}
				body = nil
				i += span - 1
				continue
			}
		}
		if current != nil {
			body = append(body, lines[i])
		}
	}
	flush()

	return sections
}

// linkRegex matches Markdown links [text](target), with an optional
// leading ! marking an image so images can be skipped.
var linkRegex = regexp.MustCompile(`(!?)\[([^\]]*)\]\(([^)]+)\)`)

// autolinkRegex matches autolinks like <https://example.com>.
var autolinkRegex = regexp.MustCompile(`<(https?://[^>\s]+)>`)

func extractLinks(md string) []core.Link {
	matches := linkRegex.FindAllStringSubmatch(md, -1)
	links := make([]core.Link, 0, len(matches))
	for _, m := range matches {
		if m[1] == "!" {
			continue // image, not a link
		}
		href := m[3]
		if idx := strings.IndexByte(href, ' '); idx > 0 {
			href = href[:idx] // drop a quoted title
		}
		links = append(links, core.Link{Text: m[2], Href: href})
	}
	for _, m := range autolinkRegex.FindAllStringSubmatch(md, -1) {
		links = append(links, core.Link{Text: m[1], Href: m[1]})
	}
	return links
}

// countCodeBlocks counts fenced code blocks (``` delimited).
func countCodeBlocks(md string) int {
	return strings.Count(md, "```") / 2
}

// countTables counts Markdown tables by looking for separator rows (|---|).
var tableRowRegex = regexp.MustCompile(`(?m)^\|[-:| ]+\|$`)

func countTables(md string) int {
	return len(tableRowRegex.FindAllString(md, -1))
}

// countLists counts list items: bulleted (-, *, + markers) or numbered.
var listItemRegex = regexp.MustCompile(`(?m)^\s*[-*+]\s|^\s*\d+\.\s`)

func countLists(md string) int {
	return len(listItemRegex.FindAllString(md, -1))
}

var (
	setextUnderlineRegex = regexp.MustCompile(`(?m)^(=+|-{2,})\s*$`)
	boldItalicRegex      = regexp.MustCompile(`\*{1,3}([^*]+)\*{1,3}`)
	inlineCodeRegex      = regexp.MustCompile("`([^`]+)`")
	escapedCharRegex     = regexp.MustCompile(`\\(.)`)
	blankRunRegex        = regexp.MustCompile(`\n{3,}`)
)

// stripMarkdown removes common Markdown formatting to produce plain text.
func stripMarkdown(md string) string {
	text := md
	// Remove heading markers and underlines.
	text = atxHeadingRegex.ReplaceAllString(text, "$2")
	text = setextUnderlineRegex.ReplaceAllString(text, "")
	// Remove bold/italic.
	text = boldItalicRegex.ReplaceAllString(text, "$1")
	// Remove links and images, keep text.
	text = linkRegex.ReplaceAllString(text, "$2")
	text = autolinkRegex.ReplaceAllString(text, "$1")
	// Remove code block fences.
	text = strings.ReplaceAll(text, "```", "")
	// Remove inline code.
	text = inlineCodeRegex.ReplaceAllString(text, "$1")
	// Undo backslash escaping.
	text = escapedCharRegex.ReplaceAllString(text, "$1")
	// Collapse whitespace.
	text = blankRunRegex.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}

// stripFrontMatter removes a leading YAML front matter block so that
// structural extraction only sees the document body.
func stripFrontMatter(md string) string {
	if !strings.HasPrefix(md, "---\n") {
		return md
	}
	rest := md[len("---\n"):]
	idx := strings.Index(rest, "\n---\n")
	if idx < 0 {
		return md
	}
	return strings.TrimPrefix(rest[idx+len("\n---\n"):], "\n")
}
