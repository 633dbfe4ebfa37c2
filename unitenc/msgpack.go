package unitenc

import (
	"github.com/vmihailenco/msgpack/v5"

	"github.com/unkn0wn-root/delimcodec"
)

// Msgpack marshals units with vmihailenco/msgpack/v5. The zero value is
// ready to use. Compact and fast; prefer it over JSON when the other side
// is also Go.
type Msgpack struct{}

func (Msgpack) Marshal(u delimcodec.Unit) ([]byte, error) {
	return msgpack.Marshal(u)
}

func (Msgpack) Unmarshal(b []byte) (delimcodec.Unit, error) {
	var u delimcodec.Unit
	err := msgpack.Unmarshal(b, &u)
	return u, err
}
