// Package cmd: convert command.
// This is the main command that orchestrates the pipeline:
// fetch → parse → expand → render → write.
//
// It handles flag validation, renderer selection, and the --only / --all modes.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/opmlpipe"
	"github.com/gaurav-prasanna/opmlpipe/core"
	"github.com/gaurav-prasanna/opmlpipe/core/expand"
	"github.com/gaurav-prasanna/opmlpipe/core/fetch"
	"github.com/gaurav-prasanna/opmlpipe/core/output"
	"github.com/gaurav-prasanna/opmlpipe/core/render"
	"github.com/gaurav-prasanna/opmlpipe/discover"
)

// Flag variables.
var (
	flagOnly      bool
	flagAll       bool
	flagOPML      bool
	flagHTML      bool
	flagMarkdown  bool
	flagJSON      bool
	flagPDF       bool
	flagExpand    bool
	flagMaxDepth  int
	flagOutputDir string
)

var convertCmd = &cobra.Command{
	Use:   "convert <url|path>",
	Short: "Convert an outline to the specified output format",
	Long: `Convert reads an OPML outline, optionally expands its include nodes, and
converts it to the specified output format (OPML, HTML, Markdown, JSON, or PDF).

Without --output_dir the result is written to stdout.

Examples:
  opmlpipe convert http://example.com/states.opml --html
  opmlpipe convert ./reading.opml --expand --opml
  opmlpipe convert https://example.com/blogroll --all --markdown --output_dir ./out
  opmlpipe convert https://example.com/states.opml --pdf --output_dir ./out`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	// Mode flags.
	convertCmd.Flags().BoolVar(&flagOnly, "only", false, "Convert only the given outline (default)")
	convertCmd.Flags().BoolVar(&flagAll, "all", false, "Convert every outline discovered on the given page")

	// Output format flags (mutually exclusive).
	convertCmd.Flags().BoolVar(&flagOPML, "opml", false, "Output OPML")
	convertCmd.Flags().BoolVar(&flagHTML, "html", false, "Output nested-list HTML")
	convertCmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "Output Markdown")
	convertCmd.Flags().BoolVar(&flagJSON, "json", false, "Output JSON")
	convertCmd.Flags().BoolVar(&flagPDF, "pdf", false, "Output PDF")

	// Include expansion.
	convertCmd.Flags().BoolVar(&flagExpand, "expand", false, "Expand include nodes and drop comment nodes")
	convertCmd.Flags().IntVar(&flagMaxDepth, "max_depth", expand.DefaultMaxDepth, "Deepest include chain to follow with --expand")

	// Output directory.
	convertCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Output directory (default: stdout, or the current directory with --all)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	source := args[0]

	if err := validateFlags(); err != nil {
		return err
	}

	renderer, err := selectRenderer()
	if err != nil {
		return err
	}

	log := logger()
	fetcher := fetch.New()
	var expander *expand.Expander
	if flagExpand {
		expander = expand.New(fetcher, expand.WithLogger(log), expand.WithMaxDepth(flagMaxDepth))
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if flagAll {
		writer, err := output.New(flagOutputDir)
		if err != nil {
			return fmt.Errorf("initializing output writer: %w", err)
		}
		return runAll(ctx, cmd, source, fetcher, expander, renderer, writer, log)
	}
	return runOnly(ctx, cmd.OutOrStdout(), source, fetcher, expander, renderer, log)
}

// runOnly processes a single outline through the pipeline.
func runOnly(
	ctx context.Context,
	stdout io.Writer,
	source string,
	fetcher core.Fetcher,
	expander *expand.Expander,
	renderer core.Renderer,
	log *slog.Logger,
) error {
	data, err := processOutline(ctx, source, fetcher, expander, renderer)
	if err != nil {
		return err
	}

	if flagOutputDir == "" {
		_, err := stdout.Write(data)
		return err
	}

	writer, err := output.New(flagOutputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}
	path, err := writer.WriteOnly(source, data, renderer.Extension())
	if err != nil {
		return err
	}
	log.Debug("wrote output", "path", path)
	fmt.Fprintf(stdout, "✓ Written: %s\n", path)
	return nil
}

// runAll discovers the outlines linked from a page and processes each one.
func runAll(
	ctx context.Context,
	cmd *cobra.Command,
	page string,
	fetcher core.Fetcher,
	expander *expand.Expander,
	renderer core.Renderer,
	writer *output.Writer,
	log *slog.Logger,
) error {
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
	fmt.Fprintf(stdout, "Discovering outlines from %s...\n", page)

	urls, err := discover.Outlines(ctx, page, fetcher)
	if err != nil {
		return fmt.Errorf("discovering outlines: %w", err)
	}

	fmt.Fprintf(stdout, "Found %d outlines to process\n", len(urls))

	var errCount int
	for i, outlineURL := range urls {
		fmt.Fprintf(stdout, "[%d/%d] Processing %s\n", i+1, len(urls), outlineURL)

		data, err := processOutline(ctx, outlineURL, fetcher, expander, renderer)
		if err != nil {
			log.Debug("outline failed", "url", outlineURL, "error", err)
			fmt.Fprintf(stderr, "  ✗ Error: %v\n", err)
			errCount++
			continue
		}

		path, err := writer.WriteAll(outlineURL, data, renderer.Extension())
		if err != nil {
			fmt.Fprintf(stderr, "  ✗ Write error: %v\n", err)
			errCount++
			continue
		}
		fmt.Fprintf(stdout, "  ✓ Written: %s\n", path)
	}

	if errCount > 0 {
		fmt.Fprintf(stderr, "\n%d/%d outlines failed\n", errCount, len(urls))
	}
	return nil
}

// processOutline runs a single outline through the full pipeline.
func processOutline(
	ctx context.Context,
	source string,
	fetcher core.Fetcher,
	expander *expand.Expander,
	renderer core.Renderer,
) ([]byte, error) {
	// 1. Fetch and parse
	doc, err := opmlpipe.ReadOutlineWith(ctx, fetcher, source)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	// 2. Expand includes
	if expander != nil {
		doc, err = expander.Expand(ctx, doc)
		if err != nil {
			return nil, fmt.Errorf("expand: %w", err)
		}
	}

	// 3. Render to output format
	data, err := renderer.Render(doc)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return data, nil
}

// validateFlags checks that exactly one output format is chosen and
// that --only and --all are not both specified.
func validateFlags() error {
	if flagOnly && flagAll {
		return fmt.Errorf("--only and --all are mutually exclusive")
	}

	formatCount := 0
	for _, set := range []bool{flagOPML, flagHTML, flagMarkdown, flagJSON, flagPDF} {
		if set {
			formatCount++
		}
	}

	if formatCount == 0 {
		return fmt.Errorf("exactly one output format is required: --opml, --html, --markdown, --json, or --pdf")
	}
	if formatCount > 1 {
		return fmt.Errorf("only one output format allowed per run (got %d)", formatCount)
	}

	if flagMaxDepth <= 0 {
		return fmt.Errorf("--max_depth must be positive")
	}
	return nil
}

// selectRenderer creates the appropriate Renderer based on flags.
func selectRenderer() (core.Renderer, error) {
	switch {
	case flagOPML:
		return render.NewOPMLRenderer(), nil
	case flagHTML:
		return render.NewHTMLRenderer(), nil
	case flagMarkdown:
		return render.NewMarkdownRenderer(), nil
	case flagJSON:
		return render.NewJSONRenderer(), nil
	case flagPDF:
		return render.NewPDFRenderer(), nil
	default:
		return nil, fmt.Errorf("no output format selected")
	}
}
