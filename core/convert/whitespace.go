package convert

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/gaurav-prasanna/htmlmd/core"
	"github.com/gaurav-prasanna/htmlmd/core/dom"
	"github.com/gaurav-prasanna/htmlmd/core/text"
)

// renderText converts a text node. Normalized mode classifies the node
// by its neighborhood and rewrites its edge whitespace accordingly;
// strict mode emits the source text verbatim. Escaping happens last,
// and never inside code-like subtrees.
func (c *Converter) renderText(n *html.Node, st renderState) string {
	raw := n.Data
	if raw == "" {
		return ""
	}

	if c.opts.StripNewlines && !st.preserve {
		raw = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(raw)
	}

	if c.opts.WhitespaceMode == core.WhitespaceStrict {
		return c.escape(raw, st)
	}

	norm := text.NormalizeUnicode(raw)
	if st.preserve {
		return norm
	}

	var out string
	if strings.TrimSpace(norm) == "" {
		out = whitespaceOnlyText(norm, n)
	} else {
		out = contentText(norm, raw, n)
	}
	return c.escape(out, st)
}

func (c *Converter) escape(s string, st renderState) string {
	if st.noEscape {
		return s
	}
	return text.Escape(s, c.opts.EscapeAsterisks, c.opts.EscapeUnderscores, c.opts.EscapeMisc)
}

func isBlockNode(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode && dom.IsBlock(n.Data)
}

func isInlineNode(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode && dom.IsInline(n.Data)
}

// whitespaceOnlyText decides whether a whitespace-only node survives.
// Between blocks it is formatting noise; touching inline content it
// collapses to the single space that keeps words apart.
func whitespaceOnlyText(norm string, n *html.Node) string {
	if isBlockNode(n.PrevSibling) && isBlockNode(n.NextSibling) {
		return ""
	}
	if strings.Contains(norm, "\n") {
		return ""
	}
	if isInlineNode(n.PrevSibling) || isInlineNode(n.NextSibling) {
		return " "
	}
	return ""
}

// contentText collapses interior space runs and keeps an edge space
// only where the source (pre-normalization) had one and the neighbor
// makes it significant.
func contentText(norm, raw string, n *html.Node) string {
	core := text.CollapseSpaces(strings.TrimSpace(norm))

	switch dom.Name(n.Parent) {
	case "ruby", "select", "datalist":
		// Space-only padding is kept in these containers; any tab or
		// newline marks the padding as formatting and drops it.
		if !strings.ContainsAny(raw, "\n\t") {
			if raw[0] == ' ' {
				core = " " + core
			}
			if raw[len(raw)-1] == ' ' {
				core += " "
			}
		}
		return core
	}

	if isInlineNode(n.Parent) {
		if raw[0] == ' ' {
			core = " " + core
		}
		if raw[len(raw)-1] == ' ' {
			core += " "
		}
		return core
	}

	return standaloneText(core, raw, n)
}

// standaloneText handles text whose parent is a block or the root.
// Leading and trailing source whitespace becomes a space next to
// inline siblings; newline and tab edges vanish next to anything else.
func standaloneText(core, raw string, n *html.Node) string {
	prev, next := n.PrevSibling, n.NextSibling
	first, last := raw[0], raw[len(raw)-1]

	switch {
	case first == ' ' && (isInlineNode(prev) || isBlockNode(prev) || prev == nil):
		core = " " + core
	case (first == '\n' || first == '\t') && isInlineNode(prev):
		core = " " + core
	}
	switch {
	case last == ' ' && (isInlineNode(next) || isBlockNode(next) || next == nil):
		core += " "
	case (last == '\n' || last == '\t') && isInlineNode(next):
		core += " "
	}
	return core
}
