// Package meta extracts document metadata (title, meta tags, canonical
// and related links) and renders it as YAML front matter.
package meta

import (
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"gopkg.in/yaml.v3"
)

// linkRels are the link relations surfaced as front-matter fields, one
// value each (the first matching link wins).
var linkRels = []string{"author", "license", "alternate"}

// Extract pulls metadata fields out of a parsed document. Meta tags
// are keyed by their name, property or http-equiv attribute, in that
// precedence order, lowercased and prefixed with "meta-"; property
// namespaces keep their structure with ":" mapped to "-"
// (og:title becomes meta-og-title).
func Extract(doc *html.Node) map[string]string {
	q := goquery.NewDocumentFromNode(doc)
	fields := make(map[string]string)

	if title := strings.TrimSpace(q.Find("title").First().Text()); title != "" {
		fields["title"] = title
	}
	if href, ok := q.Find("base[href]").First().Attr("href"); ok && href != "" {
		fields["base-href"] = href
	}

	q.Find("meta").Each(func(_ int, s *goquery.Selection) {
		content, ok := s.Attr("content")
		if !ok {
			return
		}
		if name, ok := s.Attr("name"); ok && name != "" {
			fields["meta-"+strings.ToLower(name)] = content
			return
		}
		if property, ok := s.Attr("property"); ok && property != "" {
			key := strings.ReplaceAll(strings.ToLower(property), ":", "-")
			fields["meta-"+key] = content
			return
		}
		if equiv, ok := s.Attr("http-equiv"); ok && equiv != "" {
			fields["meta-"+strings.ToLower(equiv)] = content
		}
	})

	if href, ok := q.Find(`link[rel~="canonical"][href]`).First().Attr("href"); ok && href != "" {
		fields["canonical"] = href
	}
	for _, rel := range linkRels {
		if href, ok := q.Find(`link[rel~="` + rel + `"][href]`).First().Attr("href"); ok && href != "" {
			fields["link-"+rel] = href
		}
	}
	return fields
}

// FrontMatter serializes fields as a YAML front matter block with keys
// in sorted order, or returns "" when there is nothing to emit.
func FrontMatter(fields map[string]string) string {
	if len(fields) == 0 {
		return ""
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range keys {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: fields[k]},
		)
	}

	out, err := yaml.Marshal(node)
	if err != nil {
		return ""
	}
	return "---\n" + string(out) + "---\n\n"
}
