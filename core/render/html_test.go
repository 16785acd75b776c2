package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/gaurav-prasanna/opmlpipe/core"
	"github.com/gaurav-prasanna/opmlpipe/core/render"
)

func TestOutlineHTML_ConcreteScenario(t *testing.T) {
	doc := mustParse(t, `<opml version="2.0"><head/><body><outline text="A"><outline text="B"/></outline></body></opml>`)

	assert.Equal(t, "<ul>\n\t<li>A</li>\n\t<ul>\n\t\t<li>B</li>\n\t</ul>\n</ul>\n", render.OutlineHTML(doc))
}

func TestOutlineHTML_EmptyBody(t *testing.T) {
	assert.Equal(t, "<ul>\n</ul>\n", render.OutlineHTML(core.NewDocument()))
	assert.Equal(t, "<ul>\n</ul>\n", render.OutlineHTML(&core.Document{}))
}

func TestOutlineHTML_TextIsVerbatim(t *testing.T) {
	doc := core.NewDocument()
	doc.Body.Append(core.NewNode(`<a href="http://example.com/">link</a> & more`))

	assert.Contains(t, render.OutlineHTML(doc), "\t<li><a href=\"http://example.com/\">link</a> & more</li>\n")
}

func TestOutlineHTML_EmptyContainerStillNests(t *testing.T) {
	doc := core.NewDocument()
	doc.Body.Append(&core.Node{Children: []*core.Node{}})
	doc.Body.Children[0].Attrs.Set(core.AttrText, "X")

	assert.Equal(t, "<ul>\n\t<li>X</li>\n\t<ul>\n\t</ul>\n</ul>\n", render.OutlineHTML(doc))
}

// TestHTMLRenderer_Structure parses the output and checks list nesting
// rather than layout.
func TestHTMLRenderer_Structure(t *testing.T) {
	doc := mustParse(t, statesOPML)

	data, err := render.NewHTMLRenderer().Render(doc)
	require.NoError(t, err)
	assert.Equal(t, ".html", render.NewHTMLRenderer().Extension())

	root, err := html.Parse(strings.NewReader(string(data)))
	require.NoError(t, err)

	// Collect (depth, text) for every <li>, where depth counts enclosing <ul>.
	type item struct {
		depth int
		text  string
	}
	var items []item
	var walk func(n *html.Node, depth int)
	walk = func(n *html.Node, depth int) {
		if n.Type == html.ElementNode && n.Data == "ul" {
			depth++
		}
		if n.Type == html.ElementNode && n.Data == "li" && n.FirstChild != nil {
			items = append(items, item{depth, n.FirstChild.Data})
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c, depth)
		}
	}
	walk(root, 0)

	assert.Equal(t, []item{
		{1, "United States"},
		{2, "Far West"},
		{3, "Alaska"},
		{3, "California"},
		{2, "South"},
		{3, "Alabama"},
	}, items)
}
