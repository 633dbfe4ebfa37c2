// Package unitenc serializes decoded units for downstream transport or
// storage (e.g. handing fragments to a queue or a byte sink). It is the
// boundary after the codec: the codec produces Units, a Marshaler turns them
// into payload bytes.
package unitenc

import "github.com/unkn0wn-root/delimcodec"

// Marshaler converts Units to payload bytes and back.
type Marshaler interface {
	Marshal(u delimcodec.Unit) ([]byte, error)
	Unmarshal(b []byte) (delimcodec.Unit, error)
}
