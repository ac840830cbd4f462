// File: settings/toml_test.go
package settings

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTOMLDecode tests TOML parsing into the settings table
func TestTOMLDecode(t *testing.T) {
	codec := TOMLCodec{}

	t.Run("NestedTablesFlatten", func(t *testing.T) {
		input := "[server]\nhost = \"localhost\"\nport = 8081\n"
		table, warnings, err := codec.Decode([]byte(input))
		require.NoError(t, err)
		assert.Empty(t, warnings)

		v, ok := table.Get("server.host")
		require.True(t, ok)
		s, _ := v.AsString()
		assert.Equal(t, "localhost", s)

		v, ok = table.Get("server.port")
		require.True(t, ok)
		s, _ = v.AsString()
		assert.Equal(t, "8081", s)
	})

	t.Run("ScalarsBecomeStrings", func(t *testing.T) {
		input := "enabled = true\nratio = 1.5\ncount = 42\n"
		table, _, err := codec.Decode([]byte(input))
		require.NoError(t, err)

		for key, want := range map[string]string{
			"enabled": "true",
			"ratio":   "1.5",
			"count":   "42",
		} {
			v, ok := table.Get(key)
			require.True(t, ok, "key %q", key)
			s, ok := v.AsString()
			require.True(t, ok, "key %q", key)
			assert.Equal(t, want, s, "key %q", key)
		}
	})

	t.Run("ArraysBecomeLists", func(t *testing.T) {
		table, _, err := codec.Decode([]byte("levels = [\"Debug\", \"Warn\"]\nports = [8080, 8081]\n"))
		require.NoError(t, err)

		levels, ok := table.Get("levels")
		require.True(t, ok)
		list, ok := levels.AsList()
		require.True(t, ok)
		assert.Equal(t, []string{"Debug", "Warn"}, list)

		ports, _ := table.Get("ports")
		list, _ = ports.AsList()
		assert.Equal(t, []string{"8080", "8081"}, list)
	})

	t.Run("CommaInStringSurvives", func(t *testing.T) {
		// TOML quotes strings, so a literal comma does not turn the
		// value into a list the way the properties format does.
		table, _, err := codec.Decode([]byte("url = \"mongodb://10.11.1.5,10.11.1.6/\"\n"))
		require.NoError(t, err)

		v, _ := table.Get("url")
		require.False(t, v.IsList())
		s, _ := v.AsString()
		assert.Equal(t, "mongodb://10.11.1.5,10.11.1.6/", s)
	})

	t.Run("MalformedInput", func(t *testing.T) {
		table, _, err := codec.Decode([]byte("not valid toml ="))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrParse)
		assert.Nil(t, table)
	})
}

// TestTOMLEncode tests TOML serialization from the settings table
func TestTOMLEncode(t *testing.T) {
	codec := TOMLCodec{}

	t.Run("RoundTrip", func(t *testing.T) {
		table := NewTable()
		table.Set("debug", StringValue("true"))
		table.Set("server.host", StringValue("localhost"))
		table.Set("server.levels", ListValue("Debug", "Info"))

		out, err := codec.Encode(table)
		require.NoError(t, err)

		back, _, err := codec.Decode(out)
		require.NoError(t, err)
		require.Equal(t, table.Len(), back.Len())

		for _, key := range table.Keys() {
			want, _ := table.Get(key)
			got, ok := back.Get(key)
			require.True(t, ok, "missing key %q after round trip", key)
			assert.Equal(t, want, got, "key %q", key)
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		table := NewTable()
		table.Set("b", StringValue("2"))
		table.Set("a", StringValue("1"))

		first, err := codec.Encode(table)
		require.NoError(t, err)
		second, err := codec.Encode(table)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

// TestTOMLStore tests a TOML-backed store end to end
func TestTOMLStore(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.toml")

	p := NewBuilder().FileTypeTOML().Build()
	require.NoError(t, p.SetProperty("server.host", "localhost"))
	require.NoError(t, p.SetPropertySlice("server.levels", []string{"Debug", "Warn"}))
	require.NoError(t, p.StoreToFile(file))

	q := NewBuilder().FileTypeTOML().Build()
	require.NoError(t, q.LoadFromFile(file))

	host, ok := q.Property("server.host")
	require.True(t, ok)
	assert.Equal(t, "localhost", host)

	levels, ok := q.PropertySlice("server.levels")
	require.True(t, ok)
	assert.Equal(t, []string{"Debug", "Warn"}, levels)
}
