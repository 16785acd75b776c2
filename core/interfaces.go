// Package core defines the outline data model and the pipeline interfaces
// for opmlpipe. Each stage of the pipeline is a clean, testable interface.
package core

import "context"

const (
	// Version is the opmlpipe release stamped into parsed documents.
	Version = "0.1.0"

	// Generator is written to head.generator by every parse.
	Generator = "opmlpipe v" + Version + " (github.com/gaurav-prasanna/opmlpipe)"
)

// FetchResult holds the raw text and response metadata from a fetch.
type FetchResult struct {
	URL        string
	StatusCode int
	Body       string
}

// Fetcher retrieves raw text from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// Renderer converts an outline document into a final output format.
type Renderer interface {
	Render(doc *Document) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".opml", ".pdf").
	Extension() string
}
