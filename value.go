// File: settings/value.go
package settings

import (
	"sort"
	"strings"
)

// valueKind discriminates the two representations a property can have.
type valueKind int

const (
	kindString valueKind = iota
	kindList
)

// Value is a property value: either a single string or an ordered list
// of strings. The zero Value is the empty single string.
type Value struct {
	kind valueKind
	str  string
	list []string
}

// StringValue wraps a single string.
func StringValue(s string) Value {
	return Value{kind: kindString, str: s}
}

// ListValue wraps an ordered list of strings. The elements are copied.
func ListValue(elems ...string) Value {
	list := make([]string, len(elems))
	copy(list, elems)
	return Value{kind: kindList, list: list}
}

// IsList reports whether the value holds an ordered list.
func (v Value) IsList() bool {
	return v.kind == kindList
}

// AsString returns the single-string form of the value. The second
// return is false for list-typed values.
func (v Value) AsString() (string, bool) {
	if v.kind != kindString {
		return "", false
	}
	return v.str, true
}

// AsList returns a copy of the list form of the value. The second
// return is false for string-typed values.
func (v Value) AsList() ([]string, bool) {
	if v.kind != kindList {
		return nil, false
	}
	out := make([]string, len(v.list))
	copy(out, v.list)
	return out, true
}

// encoded returns the wire form: the string itself, or the list
// segments joined by ',' with no surrounding whitespace.
func (v Value) encoded() string {
	if v.kind == kindList {
		return strings.Join(v.list, ",")
	}
	return v.str
}

// Table is the in-memory settings table: unique keys mapped to values,
// last write wins. Insertion order is not tracked; Keys returns keys in
// lexicographic order so serialized output is diff-stable.
type Table struct {
	entries map[string]Value
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{entries: make(map[string]Value)}
}

// Set inserts or overwrites the entry for key.
func (t *Table) Set(key string, v Value) {
	t.entries[key] = v
}

// Get returns the value stored under key.
func (t *Table) Get(key string) (Value, bool) {
	v, ok := t.entries[key]
	return v, ok
}

// Delete removes key and reports whether it was present.
func (t *Table) Delete(key string) bool {
	_, ok := t.entries[key]
	if ok {
		delete(t.entries, key)
	}
	return ok
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Keys returns all keys in lexicographic order.
func (t *Table) Keys() []string {
	keys := make([]string, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
