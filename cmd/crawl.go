// Package cmd — crawl command.
// Converts every discovered page of a site and mirrors the URL path
// structure under the output directory.
package cmd

import (
	"context"
	"fmt"
	"net/url"

	"github.com/dustin/go-humanize"
	"github.com/gaurav-prasanna/htmlmd/core"
	"github.com/gaurav-prasanna/htmlmd/core/convert"
	"github.com/gaurav-prasanna/htmlmd/core/fetch"
	"github.com/gaurav-prasanna/htmlmd/core/output"
	"github.com/gaurav-prasanna/htmlmd/core/sanitize"
	"github.com/gaurav-prasanna/htmlmd/crawl"
	"github.com/spf13/cobra"
)

var (
	flagCrawlFormat    string
	flagCrawlOutputDir string
	flagCrawlLimit     int
	flagCrawlSanitize  bool
	flagCrawlPreset    string
)

var crawlCmd = &cobra.Command{
	Use:   "crawl <url>",
	Short: "Convert every page of a website into a mirrored output tree",
	Long: `Crawl discovers the internal pages of a site (sitemap.xml first, link
crawling as fallback) and converts each one, mirroring the URL path
structure under the output directory.

Examples:
  htmlmd crawl https://example.com
  htmlmd crawl https://example.com -o ./docs --limit 50
  htmlmd crawl https://example.com --format json --sanitize=false`,
	Args: cobra.ExactArgs(1),
	RunE: runCrawl,
}

func init() {
	rootCmd.AddCommand(crawlCmd)

	crawlCmd.Flags().StringVarP(&flagCrawlFormat, "format", "f", "md", "output format: md, json, or pdf")
	crawlCmd.Flags().StringVarP(&flagCrawlOutputDir, "output-dir", "o", "site", "directory for the mirrored output tree")
	crawlCmd.Flags().IntVar(&flagCrawlLimit, "limit", 100, "maximum number of pages to convert")
	crawlCmd.Flags().BoolVar(&flagCrawlSanitize, "sanitize", true, "clean each page before converting")
	crawlCmd.Flags().StringVar(&flagCrawlPreset, "preset", sanitize.PresetStandard, "sanitize preset: minimal, standard, or aggressive")
}

func runCrawl(cmd *cobra.Command, args []string) error {
	baseURL := args[0]
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("invalid URL %q: crawling needs an absolute http(s) URL", baseURL)
	}

	renderer, err := selectRenderer(flagCrawlFormat)
	if err != nil {
		return err
	}
	opts := buildOptions()
	if flagCrawlFormat != "md" {
		opts.ExtractMetadata = false
	}
	conv, err := convert.New(opts)
	if err != nil {
		return err
	}
	var cleaner *sanitize.Sanitizer
	if flagCrawlSanitize {
		if cleaner, err = sanitize.New(flagCrawlPreset); err != nil {
			return err
		}
	}
	writer, err := output.New(flagCrawlOutputDir)
	if err != nil {
		return err
	}

	fetcher := fetch.New()
	ctx := cmd.Context()

	fmt.Fprintf(cmd.OutOrStdout(), "discovering pages on %s...\n", parsed.Host)
	urls, err := crawl.Discover(ctx, baseURL, fetcher, flagCrawlLimit)
	if err != nil {
		return fmt.Errorf("discovering pages: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "found %d pages\n", len(urls))

	var converted int
	var totalBytes uint64
	for _, pageURL := range urls {
		path, size, err := convertPage(ctx, pageURL, fetcher, cleaner, conv, renderer, writer)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "  ✗ %s: %v\n", pageURL, err)
			continue
		}
		converted++
		totalBytes += size
		if flagVerbose {
			fmt.Fprintf(cmd.OutOrStdout(), "  ✓ %s → %s (%s)\n", pageURL, path, humanize.Bytes(size))
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "  ✓ %s\n", pageURL)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "converted %d/%d pages (%s) into %s\n",
		converted, len(urls), humanize.Bytes(totalBytes), writer.OutputDir)
	return nil
}

// convertPage runs the fetch, sanitize, convert, render, write pipeline
// for a single page.
func convertPage(ctx context.Context, pageURL string, fetcher core.Fetcher, cleaner *sanitize.Sanitizer, conv *convert.Converter, renderer core.Renderer, writer *output.Writer) (string, uint64, error) {
	result, err := fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return "", 0, fmt.Errorf("fetch: %w", err)
	}

	rawHTML := result.HTML
	if cleaner != nil {
		if rawHTML, err = cleaner.Clean(rawHTML); err != nil {
			return "", 0, fmt.Errorf("sanitize: %w", err)
		}
	}

	markdown, err := conv.ConvertString(rawHTML)
	if err != nil {
		return "", 0, fmt.Errorf("convert: %w", err)
	}

	data, err := renderer.Render(markdown, buildMetadata(pageURL, rawHTML))
	if err != nil {
		return "", 0, fmt.Errorf("render: %w", err)
	}

	path, err := writer.WriteMirror(pageURL, data, renderer.Extension())
	if err != nil {
		return "", 0, fmt.Errorf("write: %w", err)
	}
	return path, uint64(len(data)), nil
}
