// Package pipeline drives a delimcodec.Codec over byte transports: it feeds
// input chunks to Decode, drains Flush at end of stream, and pumps encoded
// frames into a sink across however many buffer-limited Encode calls one
// event needs.
//
// Transports implement Source and Sink. Buffer ownership follows the codec
// contract: a chunk handed to Decode is fully consumed before Next is called
// again, and the encode output buffer is reset between Encode calls by the
// pump, never by the codec.
package pipeline

import (
	"context"
	"io"
)

// Source produces input chunks for decoding.
type Source interface {
	// Next returns the next available chunk. io.EOF ends the stream; a final
	// non-empty chunk may be returned together with io.EOF. The returned
	// slice is only valid until the next call.
	Next(ctx context.Context) ([]byte, error)
}

// Sink consumes encoded frames. Implementations must not retain frame after
// Write returns.
type Sink interface {
	Write(ctx context.Context, frame []byte) error
}

// ReaderSource adapts an io.Reader into a Source with a fixed chunk size,
// simulating a transport that delivers input in bounded buffers.
type ReaderSource struct {
	r   io.Reader
	buf []byte
}

func NewReaderSource(r io.Reader, chunkSize int) *ReaderSource {
	if chunkSize <= 0 {
		chunkSize = 4096
	}
	return &ReaderSource{r: r, buf: make([]byte, chunkSize)}
}

func (s *ReaderSource) Next(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	n, err := s.r.Read(s.buf)
	return s.buf[:n], err
}

// WriterSink adapts an io.Writer into a Sink.
type WriterSink struct{ W io.Writer }

func (s WriterSink) Write(_ context.Context, frame []byte) error {
	_, err := s.W.Write(frame)
	return err
}
