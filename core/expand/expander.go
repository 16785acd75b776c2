// Package expand resolves include nodes. It walks an outline depth-first,
// copies every non-comment node into a brand-new tree and, for each
// include, fetches the referenced outline and splices its body in under a
// copy of the include node. The input document is never modified.
package expand

import (
	"context"
	"io"
	"log/slog"
	"slices"

	"github.com/gaurav-prasanna/opmlpipe/core"
	"github.com/gaurav-prasanna/opmlpipe/core/fetch"
	"github.com/gaurav-prasanna/opmlpipe/core/normalize"
	"github.com/gaurav-prasanna/opmlpipe/discover"
)

// DefaultMaxDepth is the deepest include chain Expand follows.
const DefaultMaxDepth = 32

// Expander expands include nodes using a Fetcher.
type Expander struct {
	fetcher  core.Fetcher
	logger   *slog.Logger
	maxDepth int
}

// Option configures an Expander.
type Option func(*Expander)

// WithLogger sets the logger used for per-include debug lines.
func WithLogger(l *slog.Logger) Option {
	return func(e *Expander) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithMaxDepth bounds the include chain length.
func WithMaxDepth(n int) Option {
	return func(e *Expander) {
		if n > 0 {
			e.maxDepth = n
		}
	}
}

// New creates an Expander that fetches includes with fetcher.
func New(fetcher core.Fetcher, opts ...Option) *Expander {
	e := &Expander{
		fetcher:  fetcher,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Expand returns a new document with every include resolved and every
// comment node dropped. Includes are fetched one at a time in document
// order. Any fetch or parse failure aborts the expansion with an
// *core.IncludeResolutionError and no document.
func (e *Expander) Expand(ctx context.Context, doc *core.Document) (*core.Document, error) {
	w := &walker{ctx: ctx, e: e, source: doc.Source}
	if doc.Source != "" {
		w.chain = append(w.chain, discover.NormalizeURL(doc.Source))
	}

	body := doc.Body
	if body == nil {
		body = &core.Node{}
	}
	newBody, err := w.expandBody(body)
	if err != nil {
		return nil, err
	}

	head := &core.Node{}
	if doc.Head != nil {
		head = doc.Head.ScalarCopy()
	}
	return &core.Document{
		Attrs:  doc.Attrs.Clone(),
		Head:   head,
		Body:   newBody,
		Source: doc.Source,
	}, nil
}

// walker carries the traversal state of one Expand call. current is the
// destination node receiving copies, stack holds the enclosing
// destinations and last is the node most recently emitted, which becomes
// current when a level is entered.
type walker struct {
	ctx    context.Context
	e      *Expander
	source string

	current *core.Node
	last    *core.Node
	stack   []*core.Node

	// chain lists the normalized URLs of the outlines being expanded,
	// outermost first, starting with the document's own source when known.
	// bases holds the fetched include URLs only.
	chain []string
	bases []string
}

func (w *walker) expandBody(body *core.Node) (*core.Node, error) {
	root := &core.Node{}
	w.last = root
	w.enterLevel()
	if err := w.walkBody(body); err != nil {
		return nil, err
	}
	w.leaveLevel()
	return root, nil
}

// walkBody copies the children of body into the current level. A body that
// is itself an include is replaced by the included body.
func (w *walker) walkBody(body *core.Node) error {
	if body.IsInclude() {
		return w.splice(body.URL())
	}
	return w.doLevel(body)
}

func (w *walker) doLevel(src *core.Node) error {
	for _, sub := range src.Children {
		if sub.IsComment() {
			continue
		}
		w.emit(sub)

		switch {
		case sub.IsInclude():
			w.enterLevel()
			if err := w.splice(sub.URL()); err != nil {
				return err
			}
			w.leaveLevel()
		case sub.Children != nil:
			w.enterLevel()
			if err := w.doLevel(sub); err != nil {
				return err
			}
			w.leaveLevel()
		}
	}
	return nil
}

// emit appends a scalar-only copy of n to the current level.
func (w *walker) emit(n *core.Node) {
	c := n.ScalarCopy()
	w.current.Children = append(w.current.Children, c)
	w.last = c
}

func (w *walker) enterLevel() {
	w.stack = append(w.stack, w.current)
	w.current = w.last
	w.current.Children = []*core.Node{}
}

func (w *walker) leaveLevel() {
	w.current = w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]
}

// splice fetches and parses the outline at ref and walks its body into the
// current level.
func (w *walker) splice(ref string) error {
	target := discover.ResolveURL(ref, w.base())
	key := discover.NormalizeURL(target)

	if slices.Contains(w.chain, key) {
		return &core.IncludeResolutionError{URL: target, Err: core.ErrIncludeCycle}
	}
	if len(w.bases) >= w.e.maxDepth {
		return &core.IncludeResolutionError{URL: target, Err: core.ErrIncludeDepth}
	}

	w.e.logger.Debug("expanding include", "url", target, "depth", len(w.bases)+1)
	text, err := fetch.Text(w.ctx, w.e.fetcher, target)
	if err != nil {
		return &core.IncludeResolutionError{URL: target, Err: err}
	}
	doc, err := normalize.Parse(text)
	if err != nil {
		return &core.IncludeResolutionError{URL: target, Err: err}
	}

	w.chain = append(w.chain, key)
	w.bases = append(w.bases, target)
	defer func() {
		w.chain = w.chain[:len(w.chain)-1]
		w.bases = w.bases[:len(w.bases)-1]
	}()
	return w.walkBody(doc.Body)
}

// base is the location relative include URLs resolve against.
func (w *walker) base() string {
	if len(w.bases) > 0 {
		return w.bases[len(w.bases)-1]
	}
	return w.source
}
