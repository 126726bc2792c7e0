// Package convert turns parsed HTML trees into Markdown.
//
// The walker renders each node bottom-up: children first, then the
// node's own Markdown form around them. Spacing between siblings is
// decided once, at splice time, from the element roles on either side,
// so individual renderers never emit their own leading or trailing
// blank lines.
package convert

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/gaurav-prasanna/htmlmd/core"
	"github.com/gaurav-prasanna/htmlmd/core/dom"
	"github.com/gaurav-prasanna/htmlmd/core/meta"
)

// Converter renders HTML as Markdown according to a fixed set of
// options. A Converter is immutable and safe for concurrent use.
type Converter struct {
	opts core.Options

	keepImagesIn map[string]bool
	strip        map[string]bool
	allow        map[string]bool
}

// New validates opts and builds a Converter from them.
func New(opts core.Options) (*Converter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validating options: %w", err)
	}

	c := &Converter{
		opts:         opts,
		keepImagesIn: map[string]bool{"td": true, "th": true},
	}
	for _, tag := range opts.KeepInlineImagesIn {
		c.keepImagesIn[tag] = true
	}
	if len(opts.StripTags) > 0 {
		c.strip = make(map[string]bool, len(opts.StripTags))
		for _, tag := range opts.StripTags {
			c.strip[tag] = true
		}
	}
	if len(opts.ConvertTags) > 0 {
		c.allow = make(map[string]bool, len(opts.ConvertTags))
		for _, tag := range opts.ConvertTags {
			c.allow[tag] = true
		}
	}
	return c, nil
}

// ConvertString converts an HTML document to Markdown using the
// default options.
func ConvertString(src string) (string, error) {
	c, err := New(core.DefaultOptions())
	if err != nil {
		return "", err
	}
	return c.ConvertString(src)
}

// ConvertString parses src and renders it as Markdown. Front matter is
// prepended when metadata extraction is on. Empty and whitespace-only
// input yields an empty document.
func (c *Converter) ConvertString(src string) (string, error) {
	if strings.TrimSpace(src) == "" {
		return "", nil
	}

	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return "", fmt.Errorf("parsing document: %w", err)
	}

	out := c.Render(doc)
	if c.opts.ExtractMetadata && !c.opts.ConvertAsInline {
		if front := meta.FrontMatter(meta.Extract(doc)); front != "" {
			out = front + out
		}
	}
	return out, nil
}

// Render converts a parsed tree to Markdown. It is total: every tree
// shape yields some output. The document body, when present, is the
// render root. Output is trimmed and ends with exactly one newline, or
// is empty.
func (c *Converter) Render(n *html.Node) string {
	root := n
	if body := dom.Body(n); body != nil {
		root = body
	}

	out := c.renderChildren(root, renderState{inline: c.opts.ConvertAsInline})
	out = strings.TrimSpace(out)
	if out == "" {
		return ""
	}
	return out + "\n"
}

// shouldConvert applies the strip/convert tag filters. A filtered tag
// keeps its children; only its own markup disappears.
func (c *Converter) shouldConvert(name string) bool {
	if c.strip != nil {
		return !c.strip[name]
	}
	if c.allow != nil {
		return c.allow[name]
	}
	return true
}

// renderNode dispatches one node to its renderer.
func (c *Converter) renderNode(n *html.Node, st renderState) string {
	switch n.Type {
	case html.TextNode:
		return c.renderText(n, st)
	case html.ElementNode:
	default:
		// Comments, doctypes and the like render as nothing.
		return ""
	}

	name := n.Data
	switch name {
	case "script", "style", "head", "template":
		return ""
	}

	if !c.shouldConvert(name) {
		childSt := st
		if dom.IsHeading(name) || name == "td" || name == "th" {
			childSt.inline = true
		}
		return c.renderChildren(n, childSt)
	}

	switch name {
	case "b", "strong":
		return c.renderInlineWrap(n, st, strings.Repeat(c.opts.StrongEmSymbol, 2))
	case "i", "em":
		return c.renderInlineWrap(n, st, c.opts.StrongEmSymbol)
	case "dfn", "var":
		return c.renderInlineWrap(n, st, "*")
	case "del", "s":
		return c.renderInlineWrap(n, st, "~~")
	case "ins":
		return c.renderInlineWrap(n, st, "==")
	case "sub":
		return c.renderInlineWrap(n, st, c.opts.SubSymbol)
	case "sup":
		return c.renderInlineWrap(n, st, c.opts.SupSymbol)
	case "u", "small", "bdi", "bdo":
		return c.renderInlineWrap(n, st, "")
	case "code", "kbd", "samp":
		return c.renderCode(n, st)
	case "a":
		return c.renderAnchor(n, st)
	case "img":
		return c.renderImage(n, st)
	case "br":
		return c.renderLineBreak(st)
	case "wbr":
		return ""
	case "abbr":
		return c.renderAbbr(n, st)
	case "cite":
		return c.renderCite(n, st)
	case "q":
		return c.renderQuoted(n, st)
	case "mark":
		return c.renderMark(n, st)
	case "time":
		return c.renderTime(n, st)
	case "data":
		return c.renderData(n, st)

	case "h1", "h2", "h3", "h4", "h5", "h6":
		return c.renderHeading(n, st, dom.HeadingLevel(name))
	case "p":
		return c.renderParagraph(n, st)
	case "blockquote":
		return c.renderBlockquote(n, st)
	case "pre":
		return c.renderPre(n, st)
	case "hr":
		return "---"
	case "dt":
		return c.renderTerm(n, st)
	case "dd":
		return c.renderDefinition(n, st)
	case "details":
		return c.renderDetails(n, st)
	case "summary":
		return c.renderSummary(n, st)

	case "ul", "ol":
		return c.renderList(n, st)
	case "li":
		return c.renderLoneItem(n, st)

	case "table":
		return c.renderTable(n, st)
	case "caption":
		return c.renderChildren(n, st)
	case "colgroup", "col":
		return ""

	case "audio":
		return c.renderAudio(n, st)
	case "video":
		return c.renderVideo(n, st)
	case "iframe":
		return c.renderIframe(n)

	case "form":
		return c.renderForm(n, st)
	case "fieldset":
		return c.renderFieldset(n, st)
	case "legend":
		return c.renderLegend(n, st)
	case "label":
		return c.renderLabel(n, st)
	case "input":
		return c.renderInput(n, st)
	case "textarea":
		return c.renderTextarea(n)
	case "select":
		return c.renderSelect(n, st)
	case "option":
		return c.renderOption(n, st)
	case "optgroup":
		return c.renderOptgroup(n, st)
	case "button":
		return c.renderButton(n, st)
	case "progress":
		return c.renderProgress(n, st)
	case "meter":
		return c.renderMeter(n, st)
	case "output":
		return c.renderOutput(n, st)
	case "datalist":
		return c.renderDatalist(n, st)
	}

	// Everything else is a transparent container: children pass
	// through and sibling spacing comes from the element's role.
	childSt := st
	if name == "td" || name == "th" {
		childSt.inline = true
	}
	return c.renderChildren(n, childSt)
}
