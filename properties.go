// File: settings/properties.go
package settings

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"strings"
)

// PropertiesCodec implements the line-oriented "key = value" properties
// format: one entry per non-comment, non-blank line, '#' or '!' comment
// prefix, and ","-joined list values.
//
// The format has no quoting or escape mechanism. A single string value
// containing a literal ',' is indistinguishable from a list on the wire
// and parses back as a list; this is a representational constraint of
// the format, not an error.
type PropertiesCodec struct{}

// Decode parses properties text into a table. A malformed line (missing
// '=' separator, or an empty key) does not abort parsing: every
// remaining line is still examined, and all line errors are returned
// joined together, each matching ErrParse. Duplicate keys follow
// last-wins semantics and are reported as warnings.
func (PropertiesCodec) Decode(data []byte) (*Table, []Warning, error) {
	table := NewTable()
	var warnings []Warning
	var lineErrs []error

	sc := bufio.NewScanner(bytes.NewReader(data))
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' || line[0] == '!' {
			continue
		}

		key, raw, found := strings.Cut(line, "=")
		if !found {
			lineErrs = append(lineErrs, fmt.Errorf("line %d: %w: missing '=' separator", n, ErrParse))
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			lineErrs = append(lineErrs, fmt.Errorf("line %d: %w: empty key", n, ErrParse))
			continue
		}

		if _, exists := table.Get(key); exists {
			warnings = append(warnings, Warning{
				Line: n,
				Text: fmt.Sprintf("duplicate key %q: later value overrides the earlier one", key),
			})
		}
		table.Set(key, decodeValue(strings.TrimSpace(raw)))
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if len(lineErrs) > 0 {
		return nil, nil, errors.Join(lineErrs...)
	}

	return table, warnings, nil
}

// decodeValue interprets a raw value: a value containing ',' is a list,
// split on ',' with each segment trimmed of surrounding whitespace;
// anything else is a single string. Internal whitespace is preserved.
func decodeValue(raw string) Value {
	if !strings.Contains(raw, ",") {
		return StringValue(raw)
	}
	segments := strings.Split(raw, ",")
	for i, seg := range segments {
		segments[i] = strings.TrimSpace(seg)
	}
	return ListValue(segments...)
}

// Encode serializes the table as one "key = value" line per entry, keys
// in lexicographic order. List values are joined by ',' with no extra
// whitespace so Decode re-splits them into the same segments. An empty
// table encodes to empty output; there is no trailing blank line.
func (PropertiesCodec) Encode(t *Table) ([]byte, error) {
	var buf bytes.Buffer
	for _, key := range t.Keys() {
		v, _ := t.Get(key)
		buf.WriteString(key)
		buf.WriteString(" = ")
		buf.WriteString(v.encoded())
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}
