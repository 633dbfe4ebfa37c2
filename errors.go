package delimcodec

import (
	"errors"
	"fmt"
)

// ErrEventPending is returned by Encode when a new event is supplied while a
// previous event's serialization is still partially written. It signals
// caller misuse of the state machine, not a data problem: drain the in-flight
// event first by calling Encode with it and fresh buffers until done=true.
var ErrEventPending = errors.New("delimcodec: new event supplied before encoding of previous event was completed")

// TransformError reports that an event's textual form could not be converted
// to the configured charset. It is fatal for that encode attempt: the codec
// abandons the event and returns to idle. Distinct from ErrEventPending so
// callers can treat a caller bug and a data problem differently.
type TransformError struct {
	CodecID string
	Charset string
	Err     error
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("delimcodec: codec %s: encode to %s failed: %v", e.CodecID, e.Charset, e.Err)
}

func (e *TransformError) Unwrap() error { return e.Err }
