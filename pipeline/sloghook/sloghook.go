// Package sloghook logs pump events through log/slog, with sampling for the
// per-chunk and per-continuation events that fire on every buffer.
package sloghook

import (
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/delimcodec/pipeline"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	ChunkEvery    uint64
	OverflowEvery uint64
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	chunkCtr    atomic.Uint64
	overflowCtr atomic.Uint64
}

var _ pipeline.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func sampled(ctr *atomic.Uint64, every uint64) bool {
	if every <= 1 {
		return true
	}
	return ctr.Add(1)%every == 1
}

func (h *Hooks) ChunkDecoded(id string, chunkBytes, units int) {
	if !sampled(&h.chunkCtr, h.opts.ChunkEvery) {
		return
	}
	h.l.Debug("chunk decoded",
		slog.String("codec", id),
		slog.Int("bytes", chunkBytes),
		slog.Int("units", units),
	)
}

func (h *Hooks) FlushDrained(id string, units int) {
	h.l.Debug("stream flushed",
		slog.String("codec", id),
		slog.Int("units", units),
	)
}

func (h *Hooks) EncodeOverflow(id string, written int) {
	if !sampled(&h.overflowCtr, h.opts.OverflowEvery) {
		return
	}
	h.l.Debug("encode continued past buffer",
		slog.String("codec", id),
		slog.Int("written", written),
	)
}

func (h *Hooks) SinkWriteError(id string, err error) {
	h.l.Error("sink write failed",
		slog.String("codec", id),
		slog.Any("err", err),
	)
}
