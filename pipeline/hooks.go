package pipeline

// Hooks lightweight callbacks for high-signal pump events.
// Implementations MUST be cheap and non-blocking: the pump calls them on hot
// paths. Wrap with asynchook for expensive handlers.
type Hooks interface {
	// One input chunk was decoded into units fragments.
	ChunkDecoded(codecID string, chunkBytes, units int)

	// End of stream: the final chunk was drained through Flush.
	FlushDrained(codecID string, units int)

	// Encode filled the output buffer without finishing the event; written
	// bytes were handed to the sink and another call follows.
	EncodeOverflow(codecID string, written int)

	// The sink rejected an encoded frame.
	SinkWriteError(codecID string, err error)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) ChunkDecoded(string, int, int) {}
func (NopHooks) FlushDrained(string, int)      {}
func (NopHooks) EncodeOverflow(string, int)    {}
func (NopHooks) SinkWriteError(string, error)  {}
