package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/unkn0wn-root/delimcodec"
	"github.com/unkn0wn-root/delimcodec/event"
)

const defaultOutBufferSize = 4096

// Options tune a Pump. All fields are optional.
type Options struct {
	// OutBufferSize is the fixed encode buffer handed to the codec; it must
	// be large enough to hold at least one encoded character. 0 => 4096.
	OutBufferSize int
	// Logger receives pump diagnostics. If nil, logging is disabled.
	Logger delimcodec.Logger
	// Hooks receive high-signal pump events. If nil, NopHooks is used.
	Hooks Hooks
}

// Pump drives one codec instance. Like the codec itself, a Pump is
// single-goroutine; use Fanout for parallel decoding.
type Pump struct {
	codec delimcodec.Codec
	log   delimcodec.Logger
	hooks Hooks
	out   []byte
}

func NewPump(c delimcodec.Codec, opts Options) *Pump {
	size := opts.OutBufferSize
	if size <= 0 {
		size = defaultOutBufferSize
	}
	p := &Pump{
		codec: c,
		out:   make([]byte, size),
	}
	if opts.Logger != nil {
		p.log = opts.Logger
	} else {
		p.log = delimcodec.NopLogger{}
	}
	if opts.Hooks != nil {
		p.hooks = opts.Hooks
	} else {
		p.hooks = NopHooks{}
	}
	return p
}

// DecodeFrom reads chunks from src until io.EOF, decoding each one and
// emitting every fragment to emit. The final chunk (possibly empty) is
// drained through Flush. Any other source error stops the pump and is
// returned as-is.
func (p *Pump) DecodeFrom(ctx context.Context, src Source, emit delimcodec.EmitFunc) error {
	for {
		chunk, err := src.Next(ctx)
		switch {
		case err == nil:
			units := 0
			p.codec.Decode(chunk, func(u delimcodec.Unit) {
				units++
				emit(u)
			})
			p.hooks.ChunkDecoded(p.codec.ID(), len(chunk), units)
		case errors.Is(err, io.EOF):
			units := 0
			p.codec.Flush(chunk, func(u delimcodec.Unit) {
				units++
				emit(u)
			})
			p.hooks.FlushDrained(p.codec.ID(), units)
			p.log.Debug("source drained", delimcodec.Fields{"codec": p.codec.ID(), "tail_units": units})
			return nil
		default:
			return err
		}
	}
}

// EncodeTo writes ev's full serialization to snk, calling Encode as many
// times as the fixed output buffer requires and handing each filled buffer
// to the sink in order.
func (p *Pump) EncodeTo(ctx context.Context, ev *event.Event, snk Sink) error {
	for {
		n, done, err := p.codec.Encode(ev, p.out)
		if err != nil {
			return err
		}
		if n > 0 {
			if werr := snk.Write(ctx, p.out[:n]); werr != nil {
				p.hooks.SinkWriteError(p.codec.ID(), werr)
				return werr
			}
		}
		if done {
			return nil
		}
		p.hooks.EncodeOverflow(p.codec.ID(), n)
		if n == 0 {
			// the next character doesn't fit in an empty buffer; looping
			// again would never make progress
			return fmt.Errorf("pipeline: output buffer too small to encode next character (size %d)", len(p.out))
		}
	}
}

// Fanout decodes every source in parallel, one cloned codec and one pump per
// source, so no decode state is shared between workers. emit must be safe
// for concurrent use; fragments stay ordered per source, not across sources.
// The first worker error cancels the rest.
func Fanout(ctx context.Context, base delimcodec.Codec, srcs []Source, emit delimcodec.EmitFunc, opts Options) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, src := range srcs {
		src := src
		pump := NewPump(base.Clone(), opts)
		g.Go(func() error {
			return pump.DecodeFrom(ctx, src, emit)
		})
	}
	return g.Wait()
}
