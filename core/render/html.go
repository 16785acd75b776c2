// Package render: HTML renderer.
// Flattens the outline body into nested unordered lists, one <li> line per
// node. Text is emitted verbatim: outline text commonly carries markup of
// its own and callers decide how to sanitize it.
package render

import (
	"strings"

	"github.com/gaurav-prasanna/opmlpipe/core"
)

// HTMLRenderer renders the outline body as nested <ul> lists.
type HTMLRenderer struct{}

// NewHTMLRenderer creates an HTMLRenderer.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{}
}

// Render returns the nested-list HTML for doc.
func (r *HTMLRenderer) Render(doc *core.Document) ([]byte, error) {
	return []byte(OutlineHTML(doc)), nil
}

// Extension returns the file extension for HTML output.
func (r *HTMLRenderer) Extension() string {
	return ".html"
}

// OutlineHTML walks the body pre-order and writes one <ul> block per level,
// indented with one tab per depth.
func OutlineHTML(doc *core.Document) string {
	var sb strings.Builder
	body := doc.Body
	if body == nil {
		body = &core.Node{}
	}
	writeList(&sb, body, 0)
	return sb.String()
}

func writeList(sb *strings.Builder, n *core.Node, depth int) {
	line := func(depth int, s string) {
		sb.WriteString(strings.Repeat("\t", depth))
		sb.WriteString(s)
		sb.WriteByte('\n')
	}

	line(depth, "<ul>")
	for _, child := range n.Children {
		line(depth+1, "<li>"+child.Text()+"</li>")
		if child.Children != nil {
			writeList(sb, child, depth+1)
		}
	}
	line(depth, "</ul>")
}
