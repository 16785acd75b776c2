package discover_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gaurav-prasanna/opmlpipe/discover"
)

func TestIsOutlineURL(t *testing.T) {
	assert.True(t, discover.IsOutlineURL("http://example.com/a.opml"))
	assert.True(t, discover.IsOutlineURL("http://example.com/A.OPML?x=1"))
	assert.False(t, discover.IsOutlineURL("http://example.com/a.html"))
	assert.False(t, discover.IsOutlineURL("http://example.com/opml"))
}

func TestResolveURL(t *testing.T) {
	tests := []struct {
		name      string
		ref, base string
		want      string
	}{
		{"no base", "a.opml", "", "a.opml"},
		{"absolute ref", "https://other.com/x.opml", "http://example.com/lists/", "https://other.com/x.opml"},
		{"relative to file url", "b.opml", "http://example.com/lists/a.opml", "http://example.com/lists/b.opml"},
		{"parent dir", "../b.opml", "http://example.com/lists/sub/a.opml", "http://example.com/lists/b.opml"},
		{"root relative", "/b.opml", "http://example.com/lists/a.opml", "http://example.com/b.opml"},
		{"fragment dropped", "b.opml#top", "http://example.com/a.opml", "http://example.com/b.opml"},
		{"file scheme", "b.opml", "file:///srv/lists/a.opml", "file:///srv/lists/b.opml"},
		{"local path", "b.opml", filepath.Join("lists", "a.opml"), filepath.Join("lists", "b.opml")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, discover.ResolveURL(tt.ref, tt.base))
		})
	}
}

func TestNormalizeURL(t *testing.T) {
	assert.Equal(t, "http://example.com/a", discover.NormalizeURL("http://example.com/a/#x"))
	assert.Equal(t, "http://example.com/", discover.NormalizeURL("http://example.com/"))
	assert.Equal(t, "lists/a.opml", discover.NormalizeURL("lists/a.opml"))
}
