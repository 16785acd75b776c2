// Package render: OPML renderer.
// Turns an outline document back into OPML text. It is the structural
// inverse of the normalizer: character escaping and tag emission are left
// to the markup bridge.
package render

import (
	"bytes"
	"fmt"

	"github.com/gaurav-prasanna/opmlpipe/core"
	"github.com/gaurav-prasanna/opmlpipe/core/markup"
)

const defaultOPMLVersion = "2.0"

// OPMLRenderer serializes a document as OPML.
type OPMLRenderer struct{}

// NewOPMLRenderer creates an OPMLRenderer.
func NewOPMLRenderer() *OPMLRenderer {
	return &OPMLRenderer{}
}

// Render returns the OPML text for doc.
func (r *OPMLRenderer) Render(doc *core.Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := markup.Render(&buf, Element(doc)); err != nil {
		return nil, fmt.Errorf("writing OPML: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for OPML output.
func (r *OPMLRenderer) Extension() string {
	return ".opml"
}

// Element builds the generic markup tree for doc.
func Element(doc *core.Document) *markup.Element {
	root := &markup.Element{Name: "opml"}
	if !doc.Attrs.Has("version") {
		root.Attrs = append(root.Attrs, markup.Attr{Name: "version", Value: defaultOPMLVersion})
	}
	for k, v := range doc.Attrs.All() {
		root.Attrs = append(root.Attrs, markup.Attr{Name: k, Value: v})
	}

	head := &markup.Element{Name: "head"}
	if doc.Head != nil {
		head = headElement("head", doc.Head)
	}
	body := &markup.Element{Name: "body"}
	if doc.Body != nil {
		body = bodyElement("body", doc.Body)
	}
	root.Children = []*markup.Element{head, body}
	return root
}

// headElement writes every scalar as a text-only child element.
func headElement(name string, n *core.Node) *markup.Element {
	el := &markup.Element{Name: name}
	for k, v := range n.Attrs.All() {
		el.Children = append(el.Children, &markup.Element{Name: k, Text: v})
	}
	for _, g := range n.Groups {
		el.Children = append(el.Children, headElement(g.Name, g.Node))
	}
	for _, c := range n.Children {
		el.Children = append(el.Children, bodyElement("outline", c))
	}
	return el
}

// bodyElement writes scalars as attributes and children as outline elements.
func bodyElement(name string, n *core.Node) *markup.Element {
	el := &markup.Element{Name: name}
	for k, v := range n.Attrs.All() {
		el.Attrs = append(el.Attrs, markup.Attr{Name: k, Value: v})
	}
	for _, g := range n.Groups {
		el.Children = append(el.Children, bodyElement(g.Name, g.Node))
	}
	for _, c := range n.Children {
		el.Children = append(el.Children, bodyElement("outline", c))
	}
	return el
}
