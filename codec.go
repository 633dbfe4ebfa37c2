package delimcodec

import (
	"errors"
	"strings"

	"github.com/segmentio/ksuid"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/unkn0wn-root/delimcodec/charset"
	"github.com/unkn0wn-root/delimcodec/event"
)

const defaultDelimiter = ","

// pendingEncode is the Pending arm of the encode state machine: the event
// whose serialization is in flight and the unconsumed part of its source
// text. Idle is represented by a nil *pendingEncode, so the two fields can
// never get out of sync.
//
// src holds UTF-8 source characters, not target bytes: the transform stops
// on rune boundaries, so re-feeding the suffix can never split a multi-byte
// sequence in the target charset.
type pendingEncode struct {
	ev  *event.Event
	src []byte
}

type plain struct {
	id      string
	delim   string
	cs      encoding.Encoding
	csName  string
	replace bool
	log     Logger

	enc     *encoding.Encoder
	dec     *encoding.Decoder
	pending *pendingEncode
}

var _ Codec = (*plain)(nil)

func newPlain(opts Options) *plain {
	c := &plain{
		id:      ksuid.New().String(),
		delim:   coalesce(opts.Delimiter, defaultDelimiter),
		cs:      opts.Charset,
		replace: opts.ReplaceUnsupported,
	}
	if c.cs == nil {
		c.cs = unicode.UTF8
	}
	c.csName = charset.Name(c.cs)
	c.log = coalesce[Logger](opts.Logger, NopLogger{})

	c.enc = c.cs.NewEncoder()
	if c.replace {
		c.enc = encoding.ReplaceUnsupported(c.enc)
	}
	c.dec = c.cs.NewDecoder()

	c.log.Debug("codec created", Fields{"id": c.id, "delimiter": c.delim, "charset": c.csName})
	return c
}

func (c *plain) ID() string { return c.id }

func (c *plain) Decode(p []byte, emit EmitFunc) {
	if len(p) == 0 {
		return
	}
	for _, frag := range strings.Split(c.decodeText(p), c.delim) {
		emit(Unit{MessageField: frag})
	}
}

// Flush drains remaining input at end of stream. No partial decode state is
// carried between calls in this implementation, so it is a plain Decode.
func (c *plain) Flush(p []byte, emit EmitFunc) {
	c.Decode(p, emit)
}

func (c *plain) Encode(ev *event.Event, dst []byte) (int, bool, error) {
	switch {
	case c.pending != nil && c.pending.ev != ev:
		return 0, false, ErrEventPending
	case c.pending == nil:
		c.enc.Reset()
		c.pending = &pendingEncode{ev: ev, src: []byte(ev.String() + c.delim)}
	}

	nDst, nSrc, err := c.enc.Transform(dst, c.pending.src, true)
	c.pending.src = c.pending.src[nSrc:]

	switch {
	case err == nil:
		c.pending = nil
		return nDst, true, nil
	case errors.Is(err, transform.ErrShortDst):
		// dst exhausted before the source; stay pending.
		return nDst, false, nil
	default:
		c.pending = nil
		return nDst, false, &TransformError{CodecID: c.id, Charset: c.csName, Err: err}
	}
}

func (c *plain) Clone() Codec {
	nc := newPlain(Options{
		Delimiter:          c.delim,
		Charset:            c.cs,
		ReplaceUnsupported: c.replace,
		Logger:             c.log,
	})
	c.log.Debug("codec cloned", Fields{"id": c.id, "clone": nc.id})
	return nc
}

// decodeText converts wire bytes to text. Unicode decoders substitute
// malformed sequences with U+FFFD; if the charset's decoder reports a hard
// error the raw bytes are used as-is. Either way decoding is best-effort and
// never fails the call.
func (c *plain) decodeText(p []byte) string {
	b, err := c.dec.Bytes(p)
	if err != nil {
		return string(p)
	}
	return string(b)
}
