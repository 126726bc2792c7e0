package convert

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/gaurav-prasanna/htmlmd/core/dom"
)

func cellColspan(cell *html.Node) int {
	v := dom.Attr(cell, "colspan")
	if !isDigits(v) {
		return 1
	}
	parsed, err := strconv.Atoi(v)
	if err != nil || parsed < 1 {
		return 1
	}
	return parsed
}

func cellElements(tr *html.Node) []*html.Node {
	var cells []*html.Node
	for child := tr.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.ElementNode && (child.Data == "td" || child.Data == "th") {
			cells = append(cells, child)
		}
	}
	return cells
}

func prevElement(n *html.Node) *html.Node {
	for sib := n.PrevSibling; sib != nil; sib = sib.PrevSibling {
		if sib.Type == html.ElementNode {
			return sib
		}
	}
	return nil
}

func hasTheadChild(table *html.Node) bool {
	if table == nil {
		return false
	}
	for child := table.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.ElementNode && child.Data == "thead" {
			return true
		}
	}
	return false
}

func separatorRow(columns int) string {
	cells := make([]string, columns)
	for i := range cells {
		cells[i] = "---"
	}
	return "| " + strings.Join(cells, " | ") + " |"
}

func emptyHeaderRow(columns int) string {
	return "| " + strings.Join(make([]string, columns), " | ") + " |"
}

// renderTable assembles the caption and every row, one line each. Row
// grouping sections contribute their rows in document order.
func (c *Converter) renderTable(n *html.Node, st renderState) string {
	var parts []string
	var collect func(parent *html.Node)
	collect = func(parent *html.Node) {
		for child := parent.FirstChild; child != nil; child = child.NextSibling {
			if child.Type != html.ElementNode {
				continue
			}
			switch child.Data {
			case "caption":
				if caption := strings.TrimSpace(c.renderChildren(child, st)); caption != "" {
					parts = append(parts, caption)
				}
			case "thead", "tbody", "tfoot":
				collect(child)
			case "tr":
				if row := c.renderRow(child, st); row != "" {
					parts = append(parts, row)
				}
			}
		}
	}
	collect(n)
	return strings.Join(parts, "\n")
}

// renderRow renders one tr. A leading header row is underlined with a
// separator line; a table opening with a plain data row gets a
// synthetic empty header so the result still parses as a table.
func (c *Converter) renderRow(tr *html.Node, st renderState) string {
	cells := cellElements(tr)

	var content strings.Builder
	content.WriteByte('|')
	for _, cell := range cells {
		content.WriteString(c.renderCell(cell, st))
	}

	allHead := true
	for _, cell := range cells {
		if cell.Data != "th" {
			allHead = false
			break
		}
	}

	parentName := dom.Name(tr.Parent)
	first := prevElement(tr) == nil
	var grand *html.Node
	if tr.Parent != nil {
		grand = tr.Parent.Parent
	}

	headRow := allHead ||
		(first && parentName != "tbody") ||
		(first && parentName == "tbody" && !hasTheadChild(grand))

	switch {
	case headRow && first:
		full := 0
		for _, cell := range cells {
			full += cellColspan(cell)
		}
		return content.String() + "\n" + separatorRow(full)
	case first && (parentName == "table" || (parentName == "tbody" && prevElement(tr.Parent) == nil)):
		return emptyHeaderRow(len(cells)) + "\n" + separatorRow(len(cells)) + "\n" + content.String()
	default:
		return content.String()
	}
}

// renderCell flattens a td or th to a single pipe-terminated segment.
// Cell content renders inline, and any surviving newline becomes a
// space so the row stays on one line. Colspan repeats the terminator
// to keep the column count aligned.
func (c *Converter) renderCell(cell *html.Node, st renderState) string {
	childSt := st
	childSt.inline = true
	childSt.inCell = true
	inner := c.renderChildren(cell, childSt)
	flat := strings.ReplaceAll(strings.TrimSpace(inner), "\n", " ")
	return " " + flat + strings.Repeat(" |", cellColspan(cell))
}
