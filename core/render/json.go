// Package render: JSON renderer.
// Emits the outline in the JSON shape used by the OPML tooling ecosystem:
// attributes become object members and children are listed under "subs".
package render

import (
	"encoding/json"
	"fmt"

	"github.com/gaurav-prasanna/opmlpipe/core"
)

// JSONRenderer produces the JSON form of an outline.
type JSONRenderer struct {
	// Indent is the per-level indent; empty means compact output.
	Indent string
}

// NewJSONRenderer creates a JSONRenderer with two-space indentation.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{Indent: "  "}
}

// Render converts doc into JSON.
func (r *JSONRenderer) Render(doc *core.Document) ([]byte, error) {
	opml := make(map[string]any, doc.Attrs.Len()+2)
	for k, v := range doc.Attrs.All() {
		opml[k] = v
	}
	opml["head"] = nodeObject(orEmpty(doc.Head))
	opml["body"] = nodeObject(orEmpty(doc.Body))

	var (
		data []byte
		err  error
	)
	tree := map[string]any{"opml": opml}
	if r.Indent != "" {
		data, err = json.MarshalIndent(tree, "", r.Indent)
	} else {
		data, err = json.Marshal(tree)
	}
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}

func nodeObject(n *core.Node) map[string]any {
	obj := make(map[string]any, n.Attrs.Len()+len(n.Groups)+1)
	for k, v := range n.Attrs.All() {
		obj[k] = v
	}
	for _, g := range n.Groups {
		obj[g.Name] = nodeObject(g.Node)
	}
	if n.Children != nil {
		subs := make([]map[string]any, 0, len(n.Children))
		for _, c := range n.Children {
			subs = append(subs, nodeObject(c))
		}
		obj["subs"] = subs
	}
	return obj
}

func orEmpty(n *core.Node) *core.Node {
	if n == nil {
		return &core.Node{}
	}
	return n
}
