// Package cmd: discover command.
// Lists the outlines a page advertises, or with --includes every outline
// reachable through include nodes.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/opmlpipe/core/fetch"
	"github.com/gaurav-prasanna/opmlpipe/discover"
)

var (
	flagIncludes    bool
	flagMaxOutlines int
)

var discoverCmd = &cobra.Command{
	Use:   "discover <url|path>",
	Short: "List outline URLs found at a page or reachable through includes",
	Long: `Discover prints one outline URL per line.

By default it reads the page as HTML and reports its OPML <link> tags and
links to .opml files; a page that is itself an outline is reported as is.
With --includes it walks the include graph of the outline instead.

Examples:
  opmlpipe discover https://example.com/blogroll
  opmlpipe discover http://example.com/index.opml --includes`,
	Args: cobra.ExactArgs(1),
	RunE: runDiscover,
}

func init() {
	rootCmd.AddCommand(discoverCmd)

	discoverCmd.Flags().BoolVar(&flagIncludes, "includes", false, "Walk include nodes instead of HTML links")
	discoverCmd.Flags().IntVar(&flagMaxOutlines, "max_outlines", discover.DefaultMaxOutlines, "Maximum outlines to fetch with --includes")
}

func runDiscover(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	fetcher := fetch.New()
	log := logger()

	var (
		urls []string
		err  error
	)
	if flagIncludes {
		urls, err = discover.Includes(ctx, args[0], fetcher, flagMaxOutlines)
	} else {
		urls, err = discover.Outlines(ctx, args[0], fetcher)
	}
	if err != nil {
		return fmt.Errorf("discovering outlines: %w", err)
	}

	log.Debug("discovery finished", "source", args[0], "found", len(urls))
	for _, u := range urls {
		fmt.Fprintln(cmd.OutOrStdout(), u)
	}
	return nil
}
