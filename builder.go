// File: settings/builder.go
package settings

// Builder selects the file format a new Store is bound to. Build is
// pure object construction: no validation, no I/O.
type Builder struct {
	codec Codec
}

// NewBuilder creates a new store builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// FileTypeProperties binds the store to the line-oriented
// "key = value" properties format.
func (b *Builder) FileTypeProperties() *Builder {
	b.codec = PropertiesCodec{}
	return b
}

// FileTypeTOML binds the store to the TOML format.
func (b *Builder) FileTypeTOML() *Builder {
	b.codec = TOMLCodec{}
	return b
}

// WithCodec binds the store to a caller-supplied codec. This is the
// extension point for additional formats.
func (b *Builder) WithCodec(c Codec) *Builder {
	b.codec = c
	return b
}

// Build constructs an empty store bound to the selected codec. With no
// selection the properties codec is used.
func (b *Builder) Build() *Store {
	codec := b.codec
	if codec == nil {
		codec = PropertiesCodec{}
	}

	return &Store{
		codec: codec,
		table: NewTable(),
	}
}
