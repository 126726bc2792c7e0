package convert

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/gaurav-prasanna/htmlmd/core"
	"github.com/gaurav-prasanna/htmlmd/core/dom"
)

// kind buckets a rendered sibling for spacing decisions.
type kind int

const (
	kindText kind = iota
	kindInline
	kindBlock
	kindHeading
	kindItem
	kindNeutral
)

// itemTags are block children whose spacing is owned by their
// container: list items, definition terms and table rows/cells.
var itemTags = map[string]bool{
	"li": true, "dt": true, "dd": true,
	"tr": true, "td": true, "th": true,
}

func classify(n *html.Node) kind {
	if n.Type == html.TextNode {
		return kindText
	}
	name := dom.Name(n)
	switch {
	case itemTags[name]:
		return kindItem
	case dom.IsHeading(name):
		return kindHeading
	case dom.IsBlock(name):
		return kindBlock
	case dom.IsInline(name):
		return kindInline
	default:
		return kindNeutral
	}
}

// piece is one non-empty rendered sibling awaiting splicing.
type piece struct {
	text string
	k    kind
	tag  string
}

// separator returns the newline run spliced between two adjacent
// non-empty siblings. Blocks and headings announce themselves with a
// blank line; items chain with single newlines; inline runs and text
// flow together except ahead of the handful of tags that open their
// own line.
func separator(prev, next piece) string {
	switch prev.k {
	case kindItem:
		return "\n"
	case kindHeading:
		return "\n\n"
	case kindBlock:
		if next.k == kindNeutral {
			return "\n"
		}
		return "\n\n"
	default:
		switch {
		case next.k == kindHeading:
			return "\n\n"
		case next.tag == "table" || next.tag == "hr" || next.tag == "figcaption":
			return "\n\n"
		case next.tag == "blockquote" || next.tag == "pre":
			return "\n"
		default:
			return ""
		}
	}
}

// plainJoin reports whether children should be concatenated without
// separators: inline contexts, preserved subtrees and strict mode.
func (c *Converter) plainJoin(st renderState) bool {
	return st.inline || st.preserve || c.opts.WhitespaceMode == core.WhitespaceStrict
}

// renderChildren renders and splices a node's children. Empty
// renderings never contribute separators.
func (c *Converter) renderChildren(n *html.Node, st renderState) string {
	var pieces []piece
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		out := c.renderNode(child, st)
		if out == "" {
			continue
		}
		pieces = append(pieces, piece{text: out, k: classify(child), tag: dom.Name(child)})
	}
	return splicePieces(pieces, c.plainJoin(st))
}

// splicePieces joins pre-rendered pieces with the separator rules
// above. List items use it directly to assemble their non-list runs.
func splicePieces(pieces []piece, plain bool) string {
	if len(pieces) == 0 {
		return ""
	}
	var b strings.Builder
	for i, p := range pieces {
		if i > 0 && !plain {
			b.WriteString(separator(pieces[i-1], p))
		}
		b.WriteString(p.text)
	}
	return b.String()
}
