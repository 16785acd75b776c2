// Package cmd implements the CLI commands for opmlpipe using Cobra.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/opmlpipe/internal/logging"
)

var flagVerbose bool

var rootCmd = &cobra.Command{
	Use:   "opmlpipe",
	Short: "Read, expand and convert OPML outlines",
	Long: `opmlpipe reads OPML outlines from URLs or files, optionally expands their
include nodes, and converts them to OPML, HTML, Markdown, JSON, or PDF.

Usage:
  opmlpipe convert <url|path> [flags]
  opmlpipe discover <url> [flags]`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log include fetches and other debug detail to stderr")
}

// logger returns the logger selected by --verbose.
func logger() *slog.Logger {
	return logging.New(logging.Level(flagVerbose))
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
