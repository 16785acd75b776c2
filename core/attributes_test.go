package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gaurav-prasanna/opmlpipe/core"
)

func TestAttributes_SetKeepsInsertionOrder(t *testing.T) {
	var a core.Attributes
	a.Set("text", "A")
	a.Set("type", "link")
	a.Set("url", "http://example.com/")
	a.Set("text", "B")

	assert.Equal(t, []string{"text", "type", "url"}, a.Keys())
	assert.Equal(t, "B", a.Value("text"))
	assert.Equal(t, 3, a.Len())
}

func TestAttributes_Delete(t *testing.T) {
	var a core.Attributes
	a.Set("a", "1")
	a.Set("b", "2")
	a.Set("c", "3")

	a.Delete("b")
	a.Delete("missing")

	assert.Equal(t, []string{"a", "c"}, a.Keys())
	assert.False(t, a.Has("b"))
	_, ok := a.Get("b")
	assert.False(t, ok)
}

func TestAttributes_ZeroValue(t *testing.T) {
	var a core.Attributes
	assert.Equal(t, 0, a.Len())
	assert.Equal(t, "", a.Value("text"))
	assert.Empty(t, a.Keys())
	for range a.All() {
		t.Fatal("zero value must not yield entries")
	}
}

func TestAttributes_CloneIsIndependent(t *testing.T) {
	var a core.Attributes
	a.Set("text", "A")

	c := a.Clone()
	c.Set("text", "changed")
	c.Set("extra", "x")

	assert.Equal(t, "A", a.Value("text"))
	assert.False(t, a.Has("extra"))
	assert.Equal(t, map[string]string{"text": "changed", "extra": "x"}, c.Map())
}

func TestAttributes_AllStopsEarly(t *testing.T) {
	var a core.Attributes
	a.Set("a", "1")
	a.Set("b", "2")

	var seen []string
	for k := range a.All() {
		seen = append(seen, k)
		break
	}
	assert.Equal(t, []string{"a"}, seen)
}
