// Package render provides output renderers over converted Markdown.
// This file implements the Markdown renderer, which is a passthrough
// since Markdown is the converter's native output format.
package render

import (
	"github.com/gaurav-prasanna/htmlmd/core"
)

// MarkdownRenderer writes Markdown as-is.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render returns the Markdown as bytes (passthrough).
func (r *MarkdownRenderer) Render(markdown string, meta core.DocumentMeta) ([]byte, error) {
	return []byte(markdown), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}
