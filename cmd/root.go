// Package cmd implements the CLI commands for htmlmd using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagVerbose bool

var rootCmd = &cobra.Command{
	Use:   "htmlmd",
	Short: "htmlmd — convert HTML documents and websites into Markdown",
	Long: `htmlmd converts HTML into Markdown, structured JSON, or PDF.

It reads a local file, a URL, or standard input, optionally cleans the
document first, and renders it with configurable Markdown conventions.

Usage:
  htmlmd convert <file|url|-> [flags]
  htmlmd crawl <url> [flags]`,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "report progress and output sizes")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
