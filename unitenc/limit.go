package unitenc

import (
	"fmt"

	"github.com/unkn0wn-root/delimcodec"
)

// Limit wraps another Marshaler to enforce a maximum payload size at
// Unmarshal time. Marshal is forwarded to Inner unchanged. If MaxUnmarshal
// <= 0, size limiting is disabled.
//
// Typical use: protect against oversized or hostile payloads arriving from
// a shared transport.
type Limit struct {
	// Inner is the underlying Marshaler being wrapped. It must be set.
	Inner Marshaler
	// MaxUnmarshal is the maximum permitted payload length in bytes. Longer
	// payloads are rejected without invoking Inner.
	MaxUnmarshal int
}

func (l Limit) Marshal(u delimcodec.Unit) ([]byte, error) { return l.Inner.Marshal(u) }
func (l Limit) Unmarshal(b []byte) (delimcodec.Unit, error) {
	if l.MaxUnmarshal > 0 && len(b) > l.MaxUnmarshal {
		return nil, fmt.Errorf("unitenc: payload too large: %d > %d", len(b), l.MaxUnmarshal)
	}
	return l.Inner.Unmarshal(b)
}
