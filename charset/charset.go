// Package charset resolves charset names to golang.org/x/text encodings.
package charset

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// Lookup returns the encoding registered under the given IANA name
// (matching is case-insensitive; "latin1", "ISO-8859-1", "utf-8" all work).
// An empty name means UTF-8.
func Lookup(name string) (encoding.Encoding, error) {
	if name == "" {
		return unicode.UTF8, nil
	}
	e, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("charset: unknown charset %q: %w", name, err)
	}
	if e == nil {
		// registered name without an implementation in x/text
		return nil, fmt.Errorf("charset: unsupported charset %q", name)
	}
	return e, nil
}

// Name returns a human-readable name for e, for diagnostics. The preferred
// MIME name is used when the registry has one.
func Name(e encoding.Encoding) string {
	if n, err := ianaindex.MIME.Name(e); err == nil {
		return n
	}
	if n, err := ianaindex.IANA.Name(e); err == nil {
		return n
	}
	if s, ok := e.(fmt.Stringer); ok {
		return s.String()
	}
	return "unknown"
}
