package core

import "iter"

// Attributes is an insertion-ordered mapping from attribute name to scalar
// value. The zero value is an empty, ready to use mapping.
type Attributes struct {
	keys   []string
	values map[string]string
}

// Get returns the value stored under name.
func (a *Attributes) Get(name string) (string, bool) {
	v, ok := a.values[name]
	return v, ok
}

// Value returns the value stored under name, or "" if absent.
func (a *Attributes) Value(name string) string {
	return a.values[name]
}

// Has reports whether name is set.
func (a *Attributes) Has(name string) bool {
	_, ok := a.values[name]
	return ok
}

// Set stores value under name. Overwriting keeps the original position.
func (a *Attributes) Set(name, value string) {
	if a.values == nil {
		a.values = make(map[string]string)
	}
	if _, ok := a.values[name]; !ok {
		a.keys = append(a.keys, name)
	}
	a.values[name] = value
}

// Delete removes name if present.
func (a *Attributes) Delete(name string) {
	if _, ok := a.values[name]; !ok {
		return
	}
	delete(a.values, name)
	for i, k := range a.keys {
		if k == name {
			a.keys = append(a.keys[:i:i], a.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of entries.
func (a *Attributes) Len() int {
	return len(a.keys)
}

// Keys returns the names in insertion order.
func (a *Attributes) Keys() []string {
	return append([]string(nil), a.keys...)
}

// All iterates over the entries in insertion order.
func (a *Attributes) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, k := range a.keys {
			if !yield(k, a.values[k]) {
				return
			}
		}
	}
}

// Clone returns an independent copy.
func (a *Attributes) Clone() Attributes {
	var c Attributes
	for k, v := range a.All() {
		c.Set(k, v)
	}
	return c
}

// Map returns the entries as a plain map. Order is lost.
func (a *Attributes) Map() map[string]string {
	m := make(map[string]string, len(a.keys))
	for k, v := range a.All() {
		m[k] = v
	}
	return m
}
