// File: settings/errors.go
package settings

import "errors"

// Sentinel errors returned by the package. Returned errors wrap these
// with context; match with errors.Is.
var (
	// ErrInvalidKey reports a property key that is empty or contains an
	// '=' or a line break.
	ErrInvalidKey = errors.New("invalid property key")

	// ErrInvalidValue reports a property value the file format cannot
	// represent (it contains a line break).
	ErrInvalidValue = errors.New("invalid property value")

	// ErrParse reports malformed input encountered while decoding.
	ErrParse = errors.New("settings parse error")

	// ErrIO reports a file open, read, or write failure. The underlying
	// OS error is wrapped alongside it.
	ErrIO = errors.New("settings file I/O error")
)
