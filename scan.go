// File: settings/scan.go
package settings

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
)

// tagName is the struct tag read by Scan and SetFromStruct.
const tagName = "settings"

// Scan decodes the store's current table into the target struct or map.
// The target must be a non-nil pointer. Fields are matched through the
// `settings` struct tag (falling back to the field name); nested
// structs map to dotted keys. Input is weakly typed: single string
// values convert into numeric, boolean, and time.Duration fields, and
// comma-separated strings convert into slices.
func (s *Store) Scan(target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("target of Scan must be a non-nil pointer, got %T", target)
	}

	nested := make(map[string]any, s.table.Len())
	for _, key := range s.table.Keys() {
		v, _ := s.table.Get(key)
		if list, ok := v.AsList(); ok {
			setNestedValue(nested, key, list)
		} else {
			str, _ := v.AsString()
			setNestedValue(nested, key, str)
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          tagName,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(nested); err != nil {
		return fmt.Errorf("failed to scan settings into %T: %w", target, err)
	}

	return nil
}

// SetFromStruct populates the store from the exported fields of a
// struct or struct pointer. Nested structs become dotted keys, []string
// fields become list properties, and other scalar fields are formatted
// into single string properties. A `settings:"-"` tag skips a field.
func (s *Store) SetFromStruct(src any) error {
	v := reflect.ValueOf(src)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return fmt.Errorf("SetFromStruct requires a non-nil struct pointer or value")
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return fmt.Errorf("SetFromStruct requires a struct or struct pointer, got %T", src)
	}

	return s.setFields(v, "")
}

// setFields walks struct fields recursively, building dotted keys.
func (s *Store) setFields(v reflect.Value, prefix string) error {
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		fieldValue := v.Field(i)

		if !field.IsExported() {
			continue
		}

		tag := field.Tag.Get(tagName)
		if tag == "-" {
			continue
		}

		key := field.Name
		if tag != "" {
			parts := strings.Split(tag, ",")
			if parts[0] != "" {
				key = parts[0]
			}
		}
		if prefix != "" {
			key = prefix + "." + key
		}

		// Nested structs (and pointers to them) recurse with a dotted
		// prefix. Nil pointers have no well-defined values to set.
		if fieldValue.Kind() == reflect.Ptr && fieldValue.Type().Elem().Kind() == reflect.Struct {
			if fieldValue.IsNil() {
				continue
			}
			fieldValue = fieldValue.Elem()
		}
		if fieldValue.Kind() == reflect.Struct {
			if err := s.setFields(fieldValue, key); err != nil {
				return err
			}
			continue
		}

		if fieldValue.Kind() == reflect.Slice && fieldValue.Type().Elem().Kind() == reflect.String {
			elems := make([]string, fieldValue.Len())
			for j := 0; j < fieldValue.Len(); j++ {
				elems[j] = fieldValue.Index(j).String()
			}
			if err := s.SetPropertySlice(key, elems); err != nil {
				return fmt.Errorf("field %s: %w", field.Name, err)
			}
			continue
		}

		str, err := formatScalar(fieldValue)
		if err != nil {
			return fmt.Errorf("field %s: %w", field.Name, err)
		}
		if err := s.SetProperty(key, str); err != nil {
			return fmt.Errorf("field %s: %w", field.Name, err)
		}
	}

	return nil
}

// formatScalar renders a scalar field value as a property string.
// time.Duration uses its "1m30s" form so Scan's duration hook can parse
// it back.
func formatScalar(v reflect.Value) (string, error) {
	if v.Type() == reflect.TypeOf(time.Duration(0)) {
		return v.Interface().(time.Duration).String(), nil
	}

	switch v.Kind() {
	case reflect.String:
		return v.String(), nil
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("unsupported field type %s", v.Type())
	}
}
