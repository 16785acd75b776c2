package fetch_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/opmlpipe/core"
	"github.com/gaurav-prasanna/opmlpipe/core/fetch"
)

func TestHTTPFetcher_FetchesBody(t *testing.T) {
	var gotUA, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte("<opml/>"))
	}))
	defer srv.Close()

	res, err := fetch.New().Fetch(context.Background(), srv.URL+"/a.opml")
	require.NoError(t, err)

	assert.Equal(t, "<opml/>", res.Body)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, srv.URL+"/a.opml", res.URL)
	assert.Contains(t, gotUA, "opmlpipe/")
	assert.Contains(t, gotAccept, "text/x-opml")
}

func TestHTTPFetcher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := fetch.New().Fetch(context.Background(), srv.URL+"/missing.opml")

	var fe *core.FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, http.StatusNotFound, fe.StatusCode)
	assert.Equal(t, "Not Found", fe.Reason)
	assert.Equal(t, srv.URL+"/missing.opml", fe.URL)
}

func TestHTTPFetcher_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := fetch.New().Fetch(context.Background(), url)

	var fe *core.FetchError
	require.ErrorAs(t, err, &fe)
	assert.Zero(t, fe.StatusCode)
	assert.Error(t, fe.Err)
}

func TestHTTPFetcher_Options(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
	}))
	defer srv.Close()

	f := fetch.New(fetch.WithClient(srv.Client()), fetch.WithUserAgent("test-agent"))
	_, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "test-agent", gotUA)
}

func TestHTTPFetcher_LocalFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "local.opml")
	require.NoError(t, os.WriteFile(path, []byte("<opml/>"), 0644))

	for _, src := range []string{path, "file://" + filepath.ToSlash(path)} {
		res, err := fetch.New().Fetch(context.Background(), src)
		require.NoError(t, err, src)
		assert.Equal(t, "<opml/>", res.Body)
	}

	_, err := fetch.New().Fetch(context.Background(), filepath.Join(dir, "missing.opml"))
	var fe *core.FetchError
	require.ErrorAs(t, err, &fe)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestHTTPFetcher_UnsupportedScheme(t *testing.T) {
	_, err := fetch.New().Fetch(context.Background(), "ftp://example.com/a.opml")
	var fe *core.FetchError
	require.ErrorAs(t, err, &fe)
	assert.Contains(t, fe.Error(), `unsupported scheme "ftp"`)
}

func TestText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("body"))
	}))
	defer srv.Close()

	text, err := fetch.Text(context.Background(), fetch.New(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "body", text)
}
