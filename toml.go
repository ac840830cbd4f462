// File: settings/toml.go
package settings

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/BurntSushi/toml"
)

// TOMLCodec implements the Codec contract on top of TOML. Dotted
// property keys map to nested tables on the wire, string arrays map to
// list values, and non-string scalars decode to their string form.
// Unlike the properties format, TOML strings are quoted, so values with
// literal commas survive a round trip as single strings.
type TOMLCodec struct{}

// Decode parses TOML into a table. Nested tables are flattened into
// dotted keys.
func (TOMLCodec) Decode(data []byte) (*Table, []Warning, error) {
	raw := make(map[string]any)
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	table := NewTable()
	for key, value := range flattenMap(raw, "") {
		v, err := tomlValue(value)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: key %q: %w", ErrParse, key, err)
		}
		table.Set(key, v)
	}

	return table, nil, nil
}

// tomlValue converts a decoded TOML value into a property value.
func tomlValue(value any) (Value, error) {
	switch v := value.(type) {
	case string:
		return StringValue(v), nil
	case []any:
		elems := make([]string, len(v))
		for i, e := range v {
			s, err := scalarString(e)
			if err != nil {
				return Value{}, err
			}
			elems[i] = s
		}
		return ListValue(elems...), nil
	default:
		s, err := scalarString(v)
		if err != nil {
			return Value{}, err
		}
		return StringValue(s), nil
	}
}

// scalarString renders a scalar TOML value as a property string.
func scalarString(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("unsupported TOML value of type %T", value)
	}
}

// Encode serializes the table as TOML. Dotted keys are rebuilt into
// nested tables so the output round-trips through Decode. The encoder
// writes keys in sorted order, keeping the output deterministic.
func (TOMLCodec) Encode(t *Table) ([]byte, error) {
	nested := make(map[string]any, t.Len())
	for _, key := range t.Keys() {
		v, _ := t.Get(key)
		if list, ok := v.AsList(); ok {
			setNestedValue(nested, key, list)
		} else {
			str, _ := v.AsString()
			setNestedValue(nested, key, str)
		}
	}

	var buf bytes.Buffer
	encoder := toml.NewEncoder(&buf)
	if err := encoder.Encode(nested); err != nil {
		return nil, fmt.Errorf("failed to marshal settings to TOML: %w", err)
	}

	return buf.Bytes(), nil
}
