package convert

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/gaurav-prasanna/htmlmd/core"
	"github.com/gaurav-prasanna/htmlmd/core/dom"
	"github.com/gaurav-prasanna/htmlmd/core/text"
)

// renderInlineWrap renders an inline element by wrapping its chomped
// content in markup. Edge whitespace moves outside the delimiters so
// the emphasis markers always hug the text. Inside code-like subtrees
// the markup is dropped and the content passes through.
func (c *Converter) renderInlineWrap(n *html.Node, st renderState, markup string) string {
	if st.noEscape {
		return c.renderChildren(n, st)
	}
	inner := c.renderChildren(n, st)
	if strings.TrimSpace(inner) == "" {
		return ""
	}
	prefix, suffix, core := text.Chomp(inner)
	return prefix + markup + core + markup + suffix
}

// renderCode renders code, kbd and samp spans. Their content is never
// escaped; nested code-like elements collapse into the outermost
// backtick pair.
func (c *Converter) renderCode(n *html.Node, st renderState) string {
	if st.noEscape {
		return c.renderChildren(n, st)
	}
	childSt := st
	childSt.noEscape = true
	inner := c.renderChildren(n, childSt)
	if strings.TrimSpace(inner) == "" {
		return ""
	}
	prefix, suffix, core := text.Chomp(inner)
	return prefix + "`" + core + "`" + suffix
}

func (c *Converter) renderAnchor(n *html.Node, st renderState) string {
	inner := c.renderChildren(n, st)
	prefix, suffix, core := text.Chomp(inner)
	if core == "" {
		return ""
	}

	href := dom.Attr(n, "href")
	title := dom.Attr(n, "title")

	// A bare link whose text is its destination becomes an autolink.
	// The text has already been escaped, so unescape underscores
	// before comparing.
	if c.opts.Autolinks &&
		strings.ReplaceAll(core, `\_`, "_") == href &&
		title == "" && !c.opts.DefaultTitle {
		return "<" + href + ">"
	}
	if c.opts.DefaultTitle && title == "" {
		title = href
	}
	if href == "" {
		return core
	}

	titlePart := ""
	if title != "" {
		titlePart = ` "` + strings.ReplaceAll(title, `"`, `\"`) + `"`
	}
	return prefix + "[" + core + "](" + href + titlePart + ")" + suffix
}

func (c *Converter) renderImage(n *html.Node, st renderState) string {
	alt := dom.Attr(n, "alt")
	src := dom.Attr(n, "src")
	title := dom.Attr(n, "title")
	width := dom.Attr(n, "width")
	height := dom.Attr(n, "height")

	// In inline contexts an image collapses to its alt text unless its
	// parent is one of the keep-list tags (table cells by default).
	if st.inline && !c.keepImagesIn[dom.Name(n.Parent)] {
		return alt
	}

	if width != "" || height != "" {
		return "<img src='" + src + "' alt='" + alt + "' title='" + title +
			"' width='" + width + "' height='" + height + "' />"
	}

	titlePart := ""
	if title != "" {
		titlePart = ` "` + strings.ReplaceAll(title, `"`, `\"`) + `"`
	}
	return "![" + alt + "](" + src + titlePart + ")"
}

// renderLineBreak maps br onto the configured Markdown hard break.
// Inside headings a break can only be a space; inside table cells it
// becomes an HTML break when those are kept, since a newline would end
// the row.
func (c *Converter) renderLineBreak(st renderState) string {
	if st.inHeading {
		return " "
	}
	if st.inCell && c.opts.BrInTables {
		return "<br>"
	}
	if c.opts.NewlineStyle == core.NewlineBackslash {
		return "\\\n"
	}
	return "  \n"
}

func (c *Converter) renderAbbr(n *html.Node, st renderState) string {
	inner := c.renderChildren(n, st)
	if title := dom.Attr(n, "title"); title != "" {
		return inner + " (" + title + ")"
	}
	return inner
}

func (c *Converter) renderCite(n *html.Node, st renderState) string {
	if st.inline {
		return c.renderChildren(n, st)
	}
	inner := strings.TrimSpace(c.renderChildren(n, st))
	if inner == "" {
		return ""
	}
	return "*" + inner + "*"
}

func (c *Converter) renderQuoted(n *html.Node, st renderState) string {
	inner := strings.TrimSpace(c.renderChildren(n, st))
	return `"` + strings.ReplaceAll(inner, `"`, `\"`) + `"`
}

func (c *Converter) renderMark(n *html.Node, st renderState) string {
	inner := c.renderChildren(n, st)
	if st.inline || strings.TrimSpace(inner) == "" {
		return inner
	}
	switch c.opts.HighlightStyle {
	case core.HighlightDoubleEqual:
		return "==" + inner + "=="
	case core.HighlightBold:
		return "**" + inner + "**"
	case core.HighlightHTML:
		return "<mark>" + inner + "</mark>"
	default:
		return inner
	}
}

func (c *Converter) renderTime(n *html.Node, st renderState) string {
	inner := strings.TrimSpace(c.renderChildren(n, st))
	if datetime := dom.Attr(n, "datetime"); datetime != "" {
		return `<time datetime="` + datetime + `">` + inner + "</time>"
	}
	return inner
}

func (c *Converter) renderData(n *html.Node, st renderState) string {
	inner := strings.TrimSpace(c.renderChildren(n, st))
	if value := dom.Attr(n, "value"); value != "" {
		return `<data value="` + value + `">` + inner + "</data>"
	}
	return inner
}
