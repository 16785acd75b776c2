package opmlpipe_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/opmlpipe"
	"github.com/gaurav-prasanna/opmlpipe/core"
)

const listOPML = `<?xml version="1.0" encoding="UTF-8"?>
<opml version="2.0">
	<head>
		<title>Reading</title>
	</head>
	<body>
		<outline text="Local"/>
		<outline text="Shared" type="include" url="shared.opml"/>
		<outline text="note to self" iscomment="true"/>
	</body>
</opml>`

const sharedOPML = `<opml version="2.0"><head/><body><outline text="Scripting News"/></body></opml>`

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	pages := map[string]string{
		"/list.opml":   listOPML,
		"/shared.opml": sharedOPML,
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := pages[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/x-opml")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestReadOutline(t *testing.T) {
	srv := newServer(t)

	doc, err := opmlpipe.ReadOutline(context.Background(), srv.URL+"/list.opml")
	require.NoError(t, err)

	assert.Equal(t, srv.URL+"/list.opml", doc.Source)
	assert.Equal(t, "Reading", doc.Title())
	require.Len(t, doc.Body.Children, 3)
	assert.True(t, doc.Body.Children[1].IsInclude())
}

func TestReadOutline_NotFound(t *testing.T) {
	srv := newServer(t)

	_, err := opmlpipe.ReadOutline(context.Background(), srv.URL+"/missing.opml")
	var fe *core.FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, http.StatusNotFound, fe.StatusCode)
}

func TestReadOutline_LocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shared.opml")
	require.NoError(t, os.WriteFile(path, []byte(sharedOPML), 0644))

	doc, err := opmlpipe.ReadOutline(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "Scripting News", doc.Body.Children[0].Text())
}

func TestExpandIncludes(t *testing.T) {
	srv := newServer(t)
	ctx := context.Background()

	doc, err := opmlpipe.ReadOutline(ctx, srv.URL+"/list.opml")
	require.NoError(t, err)

	expanded, err := opmlpipe.ExpandIncludes(ctx, doc)
	require.NoError(t, err)

	assert.Equal(t, "<ul>\n\t<li>Local</li>\n\t<li>Shared</li>\n\t<ul>\n\t\t<li>Scripting News</li>\n\t</ul>\n</ul>\n",
		opmlpipe.ToHTML(expanded))

	// The input document is left alone.
	assert.Len(t, doc.Body.Children, 3)
}

func TestStringify_RoundTrip(t *testing.T) {
	doc, err := opmlpipe.Parse(listOPML)
	require.NoError(t, err)

	text, err := opmlpipe.Stringify(doc)
	require.NoError(t, err)

	again, err := opmlpipe.Parse(text)
	require.NoError(t, err)
	assert.Equal(t, "Reading", again.Title())
	require.Len(t, again.Body.Children, 3)
	for i, n := range doc.Body.Children {
		assert.Equal(t, n.Attrs.Map(), again.Body.Children[i].Attrs.Map())
	}
}

func TestParse_Errors(t *testing.T) {
	_, err := opmlpipe.Parse("")
	assert.ErrorIs(t, err, core.ErrNoDocument)

	_, err = opmlpipe.Parse("<rss/>")
	assert.ErrorIs(t, err, core.ErrNotOutline)

	var pe *core.ParseError
	_, err = opmlpipe.Parse("<opml><body></opml>")
	assert.ErrorAs(t, err, &pe)
}

func ExampleParse() {
	doc, err := opmlpipe.Parse(`<opml version="2.0"><head><title>States</title></head><body><outline text="Alabama"/><outline text="Alaska"/></body></opml>`)
	if err != nil {
		panic(err)
	}
	fmt.Println(doc.Title())
	for _, n := range doc.Body.Children {
		fmt.Println(n.Text())
	}
	// Output:
	// States
	// Alabama
	// Alaska
}
