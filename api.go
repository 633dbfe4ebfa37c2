package delimcodec

import (
	"golang.org/x/text/encoding"

	"github.com/unkn0wn-root/delimcodec/event"
)

// MessageField is the well-known key under which Decode places each text
// fragment in the emitted Unit.
const MessageField = "message"

// Unit is one decoded output: a single-key mapping carrying one text
// fragment. A fresh Unit is created per fragment and handed to the consumer;
// the codec retains no reference to it.
type Unit map[string]any

// EmitFunc receives decoded Units. It is invoked synchronously, once per
// fragment, in input order, before Decode/Flush return.
type EmitFunc func(Unit)

// Codec is a stateful delimiter codec. Instances are single-goroutine;
// use Clone for one instance per concurrent worker.
type Codec interface {
	// ID returns the identity token fixed at construction (or at clone time
	// for clones). It never changes afterwards.
	ID() string

	// Decode interprets p as text in the configured charset, splits it on
	// every occurrence of the delimiter (literal match, delimiter consumed)
	// and emits one Unit per fragment, including empty fragments between
	// consecutive delimiters and after a trailing one. Empty input emits
	// nothing. Malformed byte sequences are decoded best-effort (lossy
	// replacement), never reported as an error.
	//
	// Each call is self-contained: no input is carried over to the next
	// call, so a record split across chunks comes out truncated.
	Decode(p []byte, emit EmitFunc)

	// Flush drains the stream at end of input: it processes any remaining
	// bytes exactly like Decode. Call it once, after the last Decode.
	Flush(p []byte, emit EmitFunc)

	// Encode writes the serialization of ev (its textual form plus the
	// delimiter) into dst, as much as fits. It returns the number of bytes
	// written; dst[:n] is ready for reading on every return.
	//
	// done=false means dst filled up first: the remainder is retained and
	// the caller must call Encode again with the same ev and a fresh buffer
	// until done=true. Supplying a different event while one is pending
	// fails with ErrEventPending and writes nothing.
	//
	// A charset transform failure is returned as *TransformError; the
	// pending event is abandoned and the codec returns to idle.
	Encode(ev *event.Event, dst []byte) (n int, done bool, err error)

	// Clone returns an independent codec with the same configuration, a
	// fresh identity and no in-flight encode state.
	Clone() Codec
}

// Options configure a codec. The zero value is usable: delimiter ",",
// charset UTF-8, no logging.
type Options struct {
	// Delimiter splits decode input and terminates each encoded event.
	// Default ",".
	Delimiter string

	// Charset converts between wire bytes and text. Default UTF-8.
	// See the charset package for lookup by IANA name.
	Charset encoding.Encoding

	// ReplaceUnsupported substitutes runes the charset cannot represent
	// instead of failing the encode with *TransformError.
	ReplaceUnsupported bool

	// Logger receives debug-level lifecycle diagnostics (construction,
	// clone). Errors are returned to the caller, never logged here.
	// If nil, logging is disabled.
	Logger Logger
}

// New constructs a codec in the idle state.
func New(opts Options) (Codec, error) {
	return newPlain(opts), nil
}
