// Package core defines the shared types, conversion options, and pipeline
// interfaces for htmlmd. Each stage of the pipeline is a clean, testable
// interface.
package core

import "context"

// FetchResult holds the raw HTML and response metadata from a fetch.
type FetchResult struct {
	URL        string
	StatusCode int
	HTML       string
}

// DocumentMeta holds metadata about a converted document: where it came
// from and the key/value pairs extracted from its <head>.
type DocumentMeta struct {
	URL    string            `json:"url,omitempty"`
	Title  string            `json:"title,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}

// Section represents a heading-delimited section of converted content.
type Section struct {
	Heading string `json:"heading"`
	Level   int    `json:"level"`
	Text    string `json:"text"`
}

// Heading represents a single heading found in the converted content.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// Link represents a hyperlink found in the converted content.
type Link struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// DocumentContent holds the text and structured content of a document.
type DocumentContent struct {
	Text     string    `json:"text"`
	Markdown string    `json:"markdown"`
	Sections []Section `json:"sections"`
}

// DocumentStructure holds structural counts parsed from the content.
type DocumentStructure struct {
	Headings   []Heading `json:"headings"`
	Links      []Link    `json:"links"`
	CodeBlocks int       `json:"code_blocks"`
	Tables     int       `json:"tables"`
	Lists      int       `json:"lists"`
}

// DocumentJSON is the complete JSON output for a single document.
type DocumentJSON struct {
	Metadata  DocumentMeta      `json:"metadata"`
	Content   DocumentContent   `json:"content"`
	Structure DocumentStructure `json:"structure"`
}

// Fetcher retrieves raw HTML from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// Sanitizer cleans raw HTML before parsing, stripping noise and
// disallowed markup. Pure string to string.
type Sanitizer interface {
	Clean(html string) (string, error)
}

// Converter turns HTML into Markdown (the canonical output format).
type Converter interface {
	ConvertString(html string) (string, error)
}

// Renderer converts Markdown (and metadata) into a final output format.
type Renderer interface {
	Render(markdown string, meta DocumentMeta) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".md", ".pdf").
	Extension() string
}
