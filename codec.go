// File: settings/codec.go
package settings

// Codec translates between the in-memory settings table and one file
// format. Implementations must be stateless: Decode and Encode are pure
// functions of their input.
type Codec interface {
	// Decode parses data into a table. Warnings carry non-fatal
	// conditions (currently duplicate keys); a non-nil error means the
	// input could not be fully parsed and the table must be discarded.
	Decode(data []byte) (*Table, []Warning, error)

	// Encode serializes the table into the file format. Output is
	// deterministic: the same table always produces identical bytes.
	Encode(t *Table) ([]byte, error)
}

// Warning describes a non-fatal condition encountered while decoding,
// such as a duplicate key whose earlier value was overwritten.
type Warning struct {
	Line int
	Text string
}
