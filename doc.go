// File: settings/doc.go

// Package settings provides an in-memory settings store for Go
// applications, persisted through pluggable file codecs. The primary
// format is the line-oriented properties format ("key = value" lines,
// '#'/'!' comment prefixes, ","-joined list values); a TOML backend is
// included as a second codec behind the same contract.
//
// Quick Start:
//
//	p := settings.NewBuilder().FileTypeProperties().Build()
//	p.SetProperty("HttpPort", "8081")
//	p.SetPropertySlice("LogLevel", []string{"Debug", "Info", "Warn"})
//	if err := p.StoreToFile("config.properties"); err != nil {
//	    log.Fatal(err)
//	}
//
//	q := settings.New()
//	if err := q.LoadFromFile("config.properties"); err != nil {
//	    log.Fatal(err)
//	}
//	port, _ := q.Property("HttpPort")
//	levels, _ := q.PropertySlice("LogLevel")
//
// Which produces:
//
//	HttpPort = 8081
//	LogLevel = Debug,Info,Warn
//
// A property is either a single string or an ordered list of strings,
// distinguished at lookup time by which accessor is called: Property
// reads single strings, PropertySlice reads lists. The properties wire
// format has no quoting or escaping, so a single string containing a
// literal ',' parses back as a list; values that must carry commas
// verbatim need a format with richer quoting, such as the TOML backend.
//
// Serialization is deterministic: entries are written sorted by key, so
// stored files are diff-stable regardless of insertion order.
//
// Thread Safety:
// A Store is not internally synchronized. Share one between goroutines
// only behind external locking.
package settings
