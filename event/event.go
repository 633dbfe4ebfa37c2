// Package event holds the record type flowing through the codec: a flat,
// schemaless field map with a stable textual form. The codec never looks
// inside an event; it only serializes the textual form.
package event

import (
	"encoding/json"
	"fmt"
)

// Event is one structured record. Not safe for concurrent mutation.
//
// Events are compared by pointer: the encoder uses identity, not field
// equality, to recognize the event it is in the middle of writing.
type Event struct {
	fields map[string]any
}

func New() *Event {
	return &Event{fields: make(map[string]any)}
}

// SetField sets or replaces one field.
func (e *Event) SetField(key string, value any) {
	e.fields[key] = value
}

// Field returns the value stored under key.
func (e *Event) Field(key string) (any, bool) {
	v, ok := e.fields[key]
	return v, ok
}

// Fields returns a shallow copy of all fields.
func (e *Event) Fields() map[string]any {
	out := make(map[string]any, len(e.fields))
	for k, v := range e.fields {
		out[k] = v
	}
	return out
}

// String is the event's textual form: its fields as a JSON object. Keys are
// emitted in sorted order, so the same fields always produce the same text.
func (e *Event) String() string {
	b, err := json.Marshal(e.fields)
	if err != nil {
		// non-serializable field values; last resort formatting
		return fmt.Sprintf("%v", e.fields)
	}
	return string(b)
}

// Clone returns an event with a copied field map. Nested reference values
// are shared; replace them on the clone rather than mutating in place.
func (e *Event) Clone() *Event {
	return &Event{fields: e.Fields()}
}
