// File: settings/settings.go
package settings

import (
	"fmt"
	"strings"
)

// Store owns the in-memory settings table and mediates all reads and
// writes. Persistence is delegated to the codec the store was built
// with. A Store is not internally synchronized; guard it with external
// locking if it is shared between goroutines.
type Store struct {
	codec    Codec
	table    *Table
	warnings []Warning
}

// New returns an empty store bound to the properties codec. It is
// shorthand for NewBuilder().FileTypeProperties().Build().
func New() *Store {
	return NewBuilder().FileTypeProperties().Build()
}

// SetProperty inserts or overwrites a single-string property. The table
// is left unmodified if key or value fails validation.
func (s *Store) SetProperty(key, value string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if err := validateValue(value); err != nil {
		return err
	}

	s.table.Set(key, StringValue(value))
	return nil
}

// SetPropertySlice inserts or overwrites a list property. The key
// follows the same validation as SetProperty and each element is
// validated like a single value.
func (s *Store) SetPropertySlice(key string, values []string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	for _, v := range values {
		if err := validateValue(v); err != nil {
			return err
		}
	}

	s.table.Set(key, ListValue(values...))
	return nil
}

// Property returns the single-string property stored under key. The
// second return is false if the key is absent or holds a list; a type
// mismatch is not an error, list-typed keys are read with
// PropertySlice.
func (s *Store) Property(key string) (string, bool) {
	v, ok := s.table.Get(key)
	if !ok {
		return "", false
	}
	return v.AsString()
}

// PropertySlice returns a copy of the list property stored under key.
// The second return is false if the key is absent or holds a single
// string.
func (s *Store) PropertySlice(key string) ([]string, bool) {
	v, ok := s.table.Get(key)
	if !ok {
		return nil, false
	}
	return v.AsList()
}

// RemoveProperty deletes key and reports whether it was present.
func (s *Store) RemoveProperty(key string) bool {
	return s.table.Delete(key)
}

// PropertyNames returns all keys in lexicographic order.
func (s *Store) PropertyNames() []string {
	return s.table.Keys()
}

// Len returns the number of properties in the store.
func (s *Store) Len() int {
	return s.table.Len()
}

// Warnings returns the warnings produced by the most recent successful
// load, such as duplicate keys in the source file. It returns nil if
// the last load was clean or no load has happened.
func (s *Store) Warnings() []Warning {
	return s.warnings
}

// validateKey rejects keys the properties format cannot represent.
func validateKey(key string) error {
	if key == "" {
		return fmt.Errorf("%w: key is empty", ErrInvalidKey)
	}
	if strings.ContainsAny(key, "=\n\r") {
		return fmt.Errorf("%w: key %q contains '=' or a line break", ErrInvalidKey, key)
	}
	return nil
}

// validateValue rejects values the properties format cannot represent.
func validateValue(value string) error {
	if strings.ContainsAny(value, "\n\r") {
		return fmt.Errorf("%w: value %q contains a line break", ErrInvalidValue, value)
	}
	return nil
}
