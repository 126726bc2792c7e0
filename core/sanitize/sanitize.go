// Package sanitize implements the Sanitizer interface.
// It cleans raw HTML before conversion by removing markup that carries
// no content (scripts, styles, comments) and, at the stronger presets,
// page chrome and presentation attributes, so the converter sees only
// the document's substance. The <head> survives every preset so that
// metadata extraction keeps working on cleaned documents.
package sanitize

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Presets, from least to most destructive.
const (
	PresetMinimal    = "minimal"
	PresetStandard   = "standard"
	PresetAggressive = "aggressive"
)

// minimalSelectors remove non-content markup only.
var minimalSelectors = []string{
	"script", "style", "noscript", "template",
}

// chromeSelectors remove page chrome and interactive widgets. Site-level
// header and footer go, but headers nested in articles stay since they
// usually hold the title.
var chromeSelectors = []string{
	"nav", "aside",
	"body > header", "body > footer",
	"form", "button", "input", "select", "textarea", "label", "fieldset",
	"iframe", "object", "embed",
	".sidebar", ".menu", ".navigation", ".breadcrumb", ".breadcrumbs",
	".ads", ".advertisement", ".banner", ".cookie", ".popup", ".modal",
	"#sidebar", "#comments",
}

// aggressiveSelectors additionally remove drawing surfaces that cannot
// be expressed in Markdown. Images stay; the converter handles them.
var aggressiveSelectors = []string{
	"svg", "canvas", "map",
}

// globalAttrs are kept on every element by the aggressive preset.
var globalAttrs = map[string]bool{
	"id": true, "class": true, "lang": true, "dir": true, "title": true,
}

// tagAttrs are the per-tag attributes kept by the aggressive preset.
// The list covers what the converter and the metadata extractor read.
var tagAttrs = map[string]map[string]bool{
	"a":          {"href": true},
	"img":        {"src": true, "alt": true, "width": true, "height": true},
	"td":         {"colspan": true, "rowspan": true, "scope": true},
	"th":         {"colspan": true, "rowspan": true, "scope": true},
	"ol":         {"start": true},
	"blockquote": {"cite": true},
	"time":       {"datetime": true},
	"data":       {"value": true},
	"meta":       {"name": true, "property": true, "http-equiv": true, "content": true, "charset": true},
	"link":       {"rel": true, "href": true},
	"base":       {"href": true},
}

// Sanitizer removes unwanted markup from HTML documents.
type Sanitizer struct {
	preset string
}

// New creates a Sanitizer for the given preset.
func New(preset string) (*Sanitizer, error) {
	switch preset {
	case PresetMinimal, PresetStandard, PresetAggressive:
		return &Sanitizer{preset: preset}, nil
	}
	return nil, fmt.Errorf("unknown sanitize preset %q (valid: %s, %s, %s)",
		preset, PresetMinimal, PresetStandard, PresetAggressive)
}

// Preset returns the preset this Sanitizer was created with.
func (s *Sanitizer) Preset() string {
	return s.preset
}

// Clean parses the HTML, applies the preset's removals, and returns the
// cleaned document.
func (s *Sanitizer) Clean(rawHTML string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	selectors := make([]string, 0, len(minimalSelectors)+len(chromeSelectors)+len(aggressiveSelectors))
	selectors = append(selectors, minimalSelectors...)
	if s.preset != PresetMinimal {
		selectors = append(selectors, chromeSelectors...)
	}
	if s.preset == PresetAggressive {
		selectors = append(selectors, aggressiveSelectors...)
	}
	for _, sel := range selectors {
		doc.Find(sel).Remove()
	}

	for _, n := range doc.Nodes {
		removeComments(n)
		if s.preset == PresetAggressive {
			scrubAttrs(n)
		}
	}

	out, err := doc.Html()
	if err != nil {
		return "", fmt.Errorf("serializing document: %w", err)
	}
	return out, nil
}

// removeComments strips comment nodes from the subtree rooted at n.
func removeComments(n *html.Node) {
	var next *html.Node
	for c := n.FirstChild; c != nil; c = next {
		next = c.NextSibling
		if c.Type == html.CommentNode {
			n.RemoveChild(c)
			continue
		}
		removeComments(c)
	}
}

// scrubAttrs drops every attribute not on the allow-list.
func scrubAttrs(n *html.Node) {
	if n.Type == html.ElementNode {
		perTag := tagAttrs[n.Data]
		kept := n.Attr[:0]
		for _, a := range n.Attr {
			if globalAttrs[a.Key] || perTag[a.Key] {
				kept = append(kept, a)
			}
		}
		n.Attr = kept
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		scrubAttrs(c)
	}
}
