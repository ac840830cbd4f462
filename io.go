// File: settings/io.go
package settings

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ReadFrom reads r until EOF, decodes the contents with the store's
// codec, and replaces the table with the result. The load is
// all-or-nothing: on a read or parse failure the previous table is left
// untouched. It implements io.ReaderFrom.
func (s *Store) ReadFrom(r io.Reader) (int64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return int64(len(data)), fmt.Errorf("%w: failed to read settings stream: %w", ErrIO, err)
	}

	table, warnings, err := s.codec.Decode(data)
	if err != nil {
		return int64(len(data)), err
	}

	s.table = table
	s.warnings = warnings
	return int64(len(data)), nil
}

// WriteTo encodes the current table and writes it to w. The table is
// never mutated by this call. It implements io.WriterTo.
func (s *Store) WriteTo(w io.Writer) (int64, error) {
	data, err := s.codec.Encode(s.table)
	if err != nil {
		return 0, err
	}

	n, err := w.Write(data)
	if err != nil {
		return int64(n), fmt.Errorf("%w: failed to write settings stream: %w", ErrIO, err)
	}
	return int64(n), nil
}

// LoadFromFile reads the full contents of the file at path and replaces
// the store's table with the parsed result. The load is all-or-nothing:
// on an I/O or parse failure the in-memory table is unchanged.
func (s *Store) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: failed to read settings file '%s': %w", ErrIO, path, err)
	}

	table, warnings, err := s.codec.Decode(data)
	if err != nil {
		return err
	}

	s.table = table
	s.warnings = warnings
	return nil
}

// StoreToFile encodes the current table and writes it to path, creating
// or replacing the target file. The write is atomic: data lands in a
// temporary file that is synced and renamed over the destination, so
// the on-disk file is never left half-written. The table is never
// mutated by this call.
func (s *Store) StoreToFile(path string) error {
	data, err := s.codec.Encode(s.table)
	if err != nil {
		return err
	}
	return atomicWriteFile(path, data)
}

// atomicWriteFile performs atomic file write
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: failed to create directory '%s': %w", ErrIO, dir, err)
	}

	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: failed to create temporary file: %w", ErrIO, err)
	}

	tempPath := tempFile.Name()
	defer os.Remove(tempPath) // Clean up on any error

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("%w: failed to write temporary file '%s': %w", ErrIO, tempPath, err)
	}

	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("%w: failed to sync temporary file '%s': %w", ErrIO, tempPath, err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("%w: failed to close temporary file '%s': %w", ErrIO, tempPath, err)
	}

	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("%w: failed to set permissions on '%s': %w", ErrIO, tempPath, err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("%w: failed to rename temporary file to '%s': %w", ErrIO, path, err)
	}

	return nil
}
