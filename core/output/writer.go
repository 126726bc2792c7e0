// Package output handles file naming and writing for htmlmd outputs.
// Single-page conversion derives a flat filename from the source URL
// (e.g., example_com_docs.md); crawling mirrors the URL path structure.
package output

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Writer writes rendered output to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory, creating
// it if needed. An empty outputDir means the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	return &Writer{OutputDir: outputDir}, nil
}

// WritePage writes a single page under a flat, URL-derived filename.
// Example: https://example.com/docs/intro → example_com_docs_intro.md
func (w *Writer) WritePage(rawURL string, data []byte, ext string) (string, error) {
	return w.WriteFile(filenameFromURL(rawURL), data, ext)
}

// WriteFile writes data under the given name stem plus extension,
// directly inside the output directory.
func (w *Writer) WriteFile(name string, data []byte, ext string) (string, error) {
	path := filepath.Join(w.OutputDir, name+ext)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// WriteMirror writes a crawled page, mirroring the URL path structure.
// Example: https://site.com/docs/intro → <dir>/docs/intro.md
// The site root maps to index.<ext>.
func (w *Writer) WriteMirror(rawURL string, data []byte, ext string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parsing URL: %w", err)
	}

	rel := strings.Trim(parsed.Path, "/")
	if rel == "" {
		rel = "index"
	}

	fullPath := filepath.Join(w.OutputDir, rel+ext)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("creating directory %s: %w", filepath.Dir(fullPath), err)
	}
	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", fullPath, err)
	}
	return fullPath, nil
}

// filenameFromURL flattens a URL into a single filename stem, joining
// the host and path segments with underscores.
// Example: https://example.com/docs/intro → example_com_docs_intro
func filenameFromURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return sanitize(rawURL)
	}

	stem := sanitize(parsed.Host)
	for _, seg := range strings.Split(strings.Trim(parsed.Path, "/"), "/") {
		if seg != "" {
			stem += "_" + sanitize(seg)
		}
	}
	return stem
}

// sanitize keeps ASCII letters and digits and turns everything else
// into underscores.
func sanitize(s string) string {
	out := []rune(s)
	for i, ch := range out {
		switch {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9':
		default:
			out[i] = '_'
		}
	}
	return string(out)
}
