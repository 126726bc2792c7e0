package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// Name returns the lowercase tag name of an element node, or "" for
// text, comment, and document nodes.
func Name(n *html.Node) string {
	if n == nil || n.Type != html.ElementNode {
		return ""
	}
	return n.Data
}

// Attr returns the value of the named attribute, or "" when absent.
func Attr(n *html.Node, key string) string {
	if n == nil {
		return ""
	}
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// HasAttr reports whether the named attribute is present, even empty.
func HasAttr(n *html.Node, key string) bool {
	if n == nil {
		return false
	}
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}

// TextContent returns the concatenated raw text of the subtree.
func TextContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	if n != nil {
		walk(n)
	}
	return b.String()
}

// FindFirst returns the first descendant element with the given tag
// name in document order, or nil.
func FindFirst(n *html.Node, name string) *html.Node {
	if n == nil {
		return nil
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == name {
			return c
		}
		if found := FindFirst(c, name); found != nil {
			return found
		}
	}
	return nil
}

// Body returns the <body> element of a parsed document, or nil.
func Body(doc *html.Node) *html.Node {
	if doc == nil {
		return nil
	}
	if doc.Type == html.ElementNode && doc.Data == "body" {
		return doc
	}
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if b := Body(c); b != nil {
			return b
		}
	}
	return nil
}
