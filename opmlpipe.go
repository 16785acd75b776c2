// Package opmlpipe reads, writes and expands OPML outlines.
//
// Parse and Stringify convert between OPML text and *core.Document without
// loss apart from attribute order and layout whitespace. ExpandIncludes
// builds a new document in which every include node carries the body of
// the outline it points at, with comment nodes removed. ToHTML renders the
// outline as nested unordered lists.
package opmlpipe

import (
	"context"

	"github.com/gaurav-prasanna/opmlpipe/core"
	"github.com/gaurav-prasanna/opmlpipe/core/expand"
	"github.com/gaurav-prasanna/opmlpipe/core/fetch"
	"github.com/gaurav-prasanna/opmlpipe/core/normalize"
	"github.com/gaurav-prasanna/opmlpipe/core/render"
)

// Parse reads OPML text into a Document.
func Parse(text string) (*core.Document, error) {
	return normalize.Parse(text)
}

// Stringify returns the OPML text for doc.
func Stringify(doc *core.Document) (string, error) {
	data, err := render.NewOPMLRenderer().Render(doc)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ExpandIncludes resolves the includes of doc over HTTP or the local
// filesystem. See expand.Expander for the rules.
func ExpandIncludes(ctx context.Context, doc *core.Document) (*core.Document, error) {
	return expand.New(fetch.New()).Expand(ctx, doc)
}

// ToHTML renders the body of doc as nested <ul> lists.
func ToHTML(doc *core.Document) string {
	return render.OutlineHTML(doc)
}

// ReadOutline fetches and parses the outline at url.
func ReadOutline(ctx context.Context, url string) (*core.Document, error) {
	return ReadOutlineWith(ctx, fetch.New(), url)
}

// ReadOutlineWith is ReadOutline using fetcher.
func ReadOutlineWith(ctx context.Context, fetcher core.Fetcher, url string) (*core.Document, error) {
	text, err := fetch.Text(ctx, fetcher, url)
	if err != nil {
		return nil, err
	}
	doc, err := normalize.Parse(text)
	if err != nil {
		return nil, err
	}
	doc.Source = url
	return doc, nil
}
