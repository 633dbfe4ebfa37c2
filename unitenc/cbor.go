package unitenc

import (
	"github.com/fxamacker/cbor/v2"

	"github.com/unkn0wn-root/delimcodec"
)

// CBOR marshals units with fxamacker/cbor. The zero value is NOT ready to
// use; construct with NewCBOR or MustCBOR.
//
// With deterministic=true the encoder uses RFC 8949 Core Deterministic
// options, giving byte-for-byte stable output for equal units (useful for
// content hashing or dedup). Otherwise the preferred unsorted options apply.
type CBOR struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

var _ Marshaler = CBOR{}

func NewCBOR(deterministic bool) (CBOR, error) {
	var eo cbor.EncOptions
	if deterministic {
		eo = cbor.CoreDetEncOptions()
	} else {
		eo = cbor.PreferredUnsortedEncOptions()
	}
	eo.Time = cbor.TimeRFC3339Nano

	em, err := eo.EncMode()
	if err != nil {
		return CBOR{}, err
	}
	dm, err := (cbor.DecOptions{}).DecMode()
	if err != nil {
		return CBOR{}, err
	}
	return CBOR{enc: em, dec: dm}, nil
}

// MustCBOR is like NewCBOR but panics on error. Handy for package-level
// variables in tests and examples.
func MustCBOR(deterministic bool) CBOR {
	c, err := NewCBOR(deterministic)
	if err != nil {
		panic(err)
	}
	return c
}

func (c CBOR) Marshal(u delimcodec.Unit) ([]byte, error) {
	return c.enc.Marshal(u)
}

func (c CBOR) Unmarshal(b []byte) (delimcodec.Unit, error) {
	var u delimcodec.Unit
	err := c.dec.Unmarshal(b, &u)
	return u, err
}
