// Package normalize converts the generic markup tree produced by the markup
// bridge into the canonical outline tree, which serves as the intermediate
// format for every downstream stage.
package normalize

import (
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/opmlpipe/core"
	"github.com/gaurav-prasanna/opmlpipe/core/markup"
)

const (
	rootElement    = "opml"
	headElement    = "head"
	bodyElement    = "body"
	outlineElement = "outline"

	// childrenKey names the children list in the JSON shape of an outline.
	// An XML attribute with this name would shadow it and is dropped.
	childrenKey = "subs"
)

// Parse reads OPML text into a Document.
func Parse(text string) (*core.Document, error) {
	root, err := markup.Parse(text)
	if err != nil {
		return nil, err
	}
	return Normalize(root)
}

// Normalize converts a generic opml element tree into a Document. The head
// is stamped with core.Generator, and head and body are always non-nil.
func Normalize(root *markup.Element) (*core.Document, error) {
	if root == nil {
		return nil, &core.ParseError{Err: core.ErrNoDocument}
	}
	if root.Name != rootElement {
		return nil, &core.ParseError{Err: fmt.Errorf("%w: got <%s>", core.ErrNotOutline, root.Name)}
	}

	doc := &core.Document{}
	for _, a := range root.Attrs {
		doc.Attrs.Set(a.Name, a.Value)
	}
	for _, el := range root.Children {
		switch el.Name {
		case headElement:
			if doc.Head == nil {
				doc.Head = &core.Node{}
			}
			convert(el, doc.Head)
		case bodyElement:
			if doc.Body == nil {
				doc.Body = &core.Node{}
			}
			convert(el, doc.Body)
		}
	}

	addGenerator(doc)
	if doc.Head == nil {
		doc.Head = &core.Node{}
	}
	if doc.Body == nil {
		doc.Body = &core.Node{}
	}
	return doc, nil
}

// addGenerator is best effort: a document without a head is left alone.
func addGenerator(doc *core.Document) {
	if doc.Head == nil {
		return
	}
	doc.Head.Attrs.Set("generator", core.Generator)
}

// NormalizeNode converts a single generic element into a Node.
func NormalizeNode(el *markup.Element) *core.Node {
	n := &core.Node{}
	convert(el, n)
	return n
}

// convert copies src into dst. XML attributes come first and are never
// overwritten by same-named text-only child elements.
func convert(src *markup.Element, dst *core.Node) {
	fromAttr := make(map[string]bool, len(src.Attrs))
	for _, a := range src.Attrs {
		if a.Name == childrenKey {
			continue
		}
		dst.Attrs.Set(a.Name, a.Value)
		fromAttr[a.Name] = true
	}

	for _, el := range src.Children {
		switch {
		case el.Name == outlineElement:
			child := &core.Node{}
			convert(el, child)
			dst.Children = append(dst.Children, child)
		case el.IsScalar():
			if fromAttr[el.Name] {
				continue
			}
			dst.Attrs.Set(el.Name, scalarText(el.Text))
		default:
			group := &core.Node{}
			convert(el, group)
			dst.Groups = append(dst.Groups, core.Group{Name: el.Name, Node: group})
		}
	}
}

// scalarText keeps text as written unless it is only layout whitespace.
func scalarText(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	return s
}
