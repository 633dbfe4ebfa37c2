// Package asynchook decouples hook handlers from the pump's hot path: events
// are queued to a bounded channel and delivered by background workers. When
// the queue is full, events are dropped rather than blocking the pump.
package asynchook

import (
	"sync"

	"github.com/unkn0wn-root/delimcodec/pipeline"
)

type Hooks struct {
	inner pipeline.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ pipeline.Hooks = (*Hooks)(nil)

func New(inner pipeline.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

// Close stops the workers after the queue drains. Call it once the pumps
// using these hooks have finished.
func (h *Hooks) Close() {
	h.once.Do(func() {
		close(h.q)
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) ChunkDecoded(id string, chunkBytes, units int) {
	h.try(func() { h.inner.ChunkDecoded(id, chunkBytes, units) })
}

func (h *Hooks) FlushDrained(id string, units int) {
	h.try(func() { h.inner.FlushDrained(id, units) })
}

func (h *Hooks) EncodeOverflow(id string, written int) {
	h.try(func() { h.inner.EncodeOverflow(id, written) })
}

func (h *Hooks) SinkWriteError(id string, err error) {
	h.try(func() { h.inner.SinkWriteError(id, err) })
}
