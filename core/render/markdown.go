// Package render provides output renderers for the opmlpipe pipeline.
// This file implements the Markdown renderer. It builds well-formed nested
// list HTML for the outline and hands it to html-to-markdown.
package render

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"golang.org/x/net/html"

	"github.com/gaurav-prasanna/opmlpipe/core"
)

// MarkdownRenderer renders an outline as a Markdown bullet list, headed by
// the document title when there is one.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render converts doc into Markdown.
func (r *MarkdownRenderer) Render(doc *core.Document) ([]byte, error) {
	var sb strings.Builder
	if title := doc.Title(); title != "" {
		sb.WriteString("<h1>" + html.EscapeString(title) + "</h1>\n")
	}
	if doc.Body != nil && len(doc.Body.Children) > 0 {
		writeNestedList(&sb, doc.Body.Children)
	}

	markdown, err := htmltomarkdown.ConvertString(sb.String())
	if err != nil {
		return nil, fmt.Errorf("converting outline to markdown: %w", err)
	}
	return []byte(markdown + "\n"), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}

// writeNestedList places each sublist inside its parent <li>, which is the
// shape html-to-markdown expects for nested bullets.
func writeNestedList(sb *strings.Builder, nodes []*core.Node) {
	sb.WriteString("<ul>")
	for _, n := range nodes {
		sb.WriteString("<li>")
		sb.WriteString(n.Text())
		if len(n.Children) > 0 {
			writeNestedList(sb, n.Children)
		}
		sb.WriteString("</li>")
	}
	sb.WriteString("</ul>")
}
