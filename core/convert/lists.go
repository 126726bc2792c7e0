package convert

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/gaurav-prasanna/htmlmd/core"
	"github.com/gaurav-prasanna/htmlmd/core/dom"
	"github.com/gaurav-prasanna/htmlmd/core/text"
)

// listIndent returns the marker-line indentation for a list nested at
// the given depth. Tab indentation ignores the configured width.
func (c *Converter) listIndent(depth int) string {
	if c.opts.ListIndentType == core.IndentTabs {
		return strings.Repeat("\t", depth)
	}
	return strings.Repeat(" ", depth*c.opts.ListIndentWidth)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// listStart reads the start ordinal from an ol element. Non-numeric,
// fractional and non-positive values all fall back to 1.
func listStart(n *html.Node) int {
	v := dom.Attr(n, "start")
	if !isDigits(v) {
		return 1
	}
	parsed, err := strconv.Atoi(v)
	if err != nil || parsed <= 0 {
		return 1
	}
	return parsed
}

// renderList assembles a ul or ol. The list owns its children: li
// elements become items, a list nested directly under another list
// (no li between them) renders one level deeper, and whitespace
// between tags disappears. Items join with single newlines, or blank
// lines once any item spans multiple paragraphs.
func (c *Converter) renderList(n *html.Node, st renderState) string {
	indent := c.listIndent(st.listDepth)
	ordered := dom.Name(n) == "ol"

	childSt := st
	childSt.listDepth++
	if !ordered {
		childSt.ulDepth++
	}

	ordinal := listStart(n)
	bullets := []rune(c.opts.Bullets)
	bullet := string(bullets[st.ulDepth%len(bullets)])

	var items []string
	loose := false
	add := func(out string) {
		if out == "" {
			return
		}
		if strings.Contains(out, "\n\n") {
			loose = true
		}
		items = append(items, out)
	}

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		switch {
		case child.Type == html.TextNode:
			add(strings.TrimSpace(c.renderText(child, childSt)))
		case child.Type != html.ElementNode:
		case child.Data == "li":
			marker := bullet
			width := 2
			if ordered {
				marker = strconv.Itoa(ordinal) + "."
				width = len(marker) + 1
				ordinal++
			}
			add(c.renderListItem(child, childSt, marker, width, indent))
		case child.Data == "ul" || child.Data == "ol":
			add(c.renderList(child, childSt))
		default:
			add(c.renderNode(child, childSt))
		}
	}

	sep := "\n"
	if loose {
		sep = "\n\n"
	}
	return strings.Join(items, sep)
}

// findCheckbox returns the first checkbox input under the item, which
// turns the item into a task-list entry.
func findCheckbox(li *html.Node) *html.Node {
	var walk func(*html.Node) *html.Node
	walk = func(n *html.Node) *html.Node {
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			if child.Type == html.ElementNode && child.Data == "input" &&
				strings.EqualFold(dom.Attr(child, "type"), "checkbox") {
				return child
			}
			if found := walk(child); found != nil {
				return found
			}
		}
		return nil
	}
	return walk(li)
}

// renderListItem renders one li as its marker line plus continuation
// lines. The first run of non-list children rides the marker line.
// Nested lists start on their own line and carry only their own
// depth's indentation. Later non-list runs are separated by a blank
// line and indented to the content column.
func (c *Converter) renderListItem(li *html.Node, st renderState, marker string, markerWidth int, indent string) string {
	st.inListItem = true

	if box := findCheckbox(li); box != nil {
		markerWidth = 2
		if dom.HasAttr(box, "checked") {
			marker = "- [x]"
		} else {
			marker = "- [ ]"
		}
	}

	type segment struct {
		text string
		list bool
	}
	var segs []segment
	var run []piece
	flush := func() {
		if len(run) == 0 {
			return
		}
		if out := strings.TrimSpace(splicePieces(run, c.plainJoin(st))); out != "" {
			segs = append(segs, segment{text: out})
		}
		run = nil
	}

	for child := li.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.ElementNode && (child.Data == "ul" || child.Data == "ol") {
			flush()
			if out := c.renderList(child, st); out != "" {
				segs = append(segs, segment{text: out, list: true})
			}
			continue
		}
		out := c.renderNode(child, st)
		if out == "" {
			continue
		}
		run = append(run, piece{text: out, k: classify(child), tag: dom.Name(child)})
	}
	flush()

	if len(segs) == 0 {
		return indent + marker
	}

	contPrefix := indent + strings.Repeat(" ", markerWidth)
	var b strings.Builder
	for i, seg := range segs {
		switch {
		case i == 0 && seg.list:
			b.WriteString(indent + marker + "\n" + seg.text)
		case i == 0:
			lines := strings.Split(seg.text, "\n")
			b.WriteString(indent + marker + " " + lines[0])
			for _, line := range lines[1:] {
				b.WriteString("\n")
				if line != "" {
					b.WriteString(contPrefix + line)
				}
			}
		case seg.list:
			b.WriteString("\n" + seg.text)
		default:
			b.WriteString("\n\n" + text.Indent(seg.text, contPrefix))
		}
	}
	return b.String()
}

// renderLoneItem handles an li with no list parent. It takes the last
// configured bullet and no indentation.
func (c *Converter) renderLoneItem(n *html.Node, st renderState) string {
	bullets := []rune(c.opts.Bullets)
	marker := string(bullets[len(bullets)-1])
	return c.renderListItem(n, st, marker, 2, c.listIndent(st.listDepth))
}
