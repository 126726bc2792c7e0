// Package cmd — convert command.
// This is the main command that orchestrates the pipeline:
// read → sanitize → convert → render → write.
package cmd

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gaurav-prasanna/htmlmd/core"
	"github.com/gaurav-prasanna/htmlmd/core/convert"
	"github.com/gaurav-prasanna/htmlmd/core/fetch"
	"github.com/gaurav-prasanna/htmlmd/core/meta"
	"github.com/gaurav-prasanna/htmlmd/core/output"
	"github.com/gaurav-prasanna/htmlmd/core/render"
	"github.com/gaurav-prasanna/htmlmd/core/sanitize"
	"github.com/spf13/cobra"
	"golang.org/x/net/html"
)

// Flag variables.
var (
	flagFormat    string
	flagOutputDir string
	flagSanitize  bool
	flagPreset    string
)

var convertCmd = &cobra.Command{
	Use:   "convert <file|url|->",
	Short: "Convert a single HTML document to Markdown, JSON, or PDF",
	Long: `Convert reads HTML from a local file, a URL, or standard input ("-"),
optionally cleans it, and renders it in the requested output format.
Output goes to stdout unless an output directory is given.

Examples:
  htmlmd convert page.html
  htmlmd convert https://example.com/docs --sanitize -o ./out
  htmlmd convert page.html --format json --metadata=false
  cat page.html | htmlmd convert - --heading-style atx`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVarP(&flagFormat, "format", "f", "md", "output format: md, json, or pdf")
	convertCmd.Flags().StringVarP(&flagOutputDir, "output-dir", "o", "", "directory to write output into (default: stdout)")
	convertCmd.Flags().BoolVar(&flagSanitize, "sanitize", false, "clean the document before converting")
	convertCmd.Flags().StringVar(&flagPreset, "preset", sanitize.PresetStandard, "sanitize preset: minimal, standard, or aggressive")
}

func runConvert(cmd *cobra.Command, args []string) error {
	input := args[0]

	// Validate everything before touching the input.
	renderer, err := selectRenderer(flagFormat)
	if err != nil {
		return err
	}
	opts := buildOptions()
	if flagFormat != "md" {
		// Metadata rides in the renderer's structured output instead of
		// front matter for non-Markdown formats.
		opts.ExtractMetadata = false
	}
	conv, err := convert.New(opts)
	if err != nil {
		return err
	}
	var cleaner *sanitize.Sanitizer
	if flagSanitize {
		if cleaner, err = sanitize.New(flagPreset); err != nil {
			return err
		}
	}

	rawHTML, sourceURL, err := readInput(cmd, input)
	if err != nil {
		return err
	}

	if cleaner != nil {
		if rawHTML, err = cleaner.Clean(rawHTML); err != nil {
			return fmt.Errorf("sanitize: %w", err)
		}
	}

	markdown, err := conv.ConvertString(rawHTML)
	if err != nil {
		return fmt.Errorf("convert: %w", err)
	}

	data, err := renderer.Render(markdown, buildMetadata(sourceURL, rawHTML))
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	return writeOutput(cmd, input, sourceURL, data, renderer.Extension())
}

// readInput loads the HTML source from a file path, a URL, or stdin
// ("-"). The second return value is the source URL for URL inputs.
func readInput(cmd *cobra.Command, input string) (string, string, error) {
	if input == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), "", nil
	}

	if parsed, err := url.Parse(input); err == nil && parsed.Scheme != "" && parsed.Host != "" {
		result, err := fetch.New().Fetch(cmd.Context(), input)
		if err != nil {
			return "", "", fmt.Errorf("fetch: %w", err)
		}
		return result.HTML, result.URL, nil
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return "", "", fmt.Errorf("reading %s: %w", input, err)
	}
	return string(data), "", nil
}

// buildMetadata extracts document metadata from the HTML head.
func buildMetadata(sourceURL string, rawHTML string) core.DocumentMeta {
	docMeta := core.DocumentMeta{URL: sourceURL}

	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return docMeta
	}
	fields := meta.Extract(doc)
	docMeta.Title = fields["title"]
	if len(fields) > 0 {
		docMeta.Fields = fields
	}
	return docMeta
}

// selectRenderer picks the renderer for the requested output format.
func selectRenderer(format string) (core.Renderer, error) {
	switch format {
	case "md", "markdown":
		return render.NewMarkdownRenderer(), nil
	case "json":
		return render.NewJSONRenderer(), nil
	case "pdf":
		return render.NewPDFRenderer(), nil
	default:
		return nil, fmt.Errorf("unknown format %q (valid: md, json, pdf)", format)
	}
}

// writeOutput writes the rendered bytes to stdout, or into the output
// directory under a name derived from the input.
func writeOutput(cmd *cobra.Command, input string, sourceURL string, data []byte, ext string) error {
	if flagOutputDir == "" {
		if _, err := cmd.OutOrStdout().Write(data); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		return nil
	}

	writer, err := output.New(flagOutputDir)
	if err != nil {
		return err
	}

	var path string
	if sourceURL != "" {
		path, err = writer.WritePage(sourceURL, data, ext)
	} else {
		path, err = writer.WriteFile(outputName(input), data, ext)
	}
	if err != nil {
		return err
	}

	if flagVerbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%s)\n", path, humanize.Bytes(uint64(len(data))))
	}
	return nil
}

// outputName derives an output filename stem from a local input path.
func outputName(input string) string {
	if input == "-" {
		return "stdin"
	}
	base := filepath.Base(input)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
