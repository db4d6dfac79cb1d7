// usage:
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{
//	    DecodeRejectedEvery: 10, // sample logs: ~every 10th rejection
//	})
//
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	api := jsonbridge.Configure(jsoniter.Config{}, jsonbridge.Options{Hooks: hooks})
package asynchook

import (
	"sync"

	"github.com/unkn0wn-root/jsonbridge"
)

// Hooks forwards events to inner on background workers. Events are dropped
// when the queue is full and after Close.
type Hooks struct {
	inner jsonbridge.Hooks
	q     chan func()
	wg    sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

var _ jsonbridge.Hooks = (*Hooks)(nil)

func New(inner jsonbridge.Hooks, workers, qlen int) *Hooks {
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

// Close stops accepting events, runs the queued ones and waits for workers.
func (h *Hooks) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	close(h.q)
	h.mu.Unlock()
	h.wg.Wait()
}

func (h *Hooks) try(f func()) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		return
	}
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) AdapterBound(t string) { h.try(func() { h.inner.AdapterBound(t) }) }
func (h *Hooks) DecodeRejected(t string, err error) {
	h.try(func() { h.inner.DecodeRejected(t, err) })
}
func (h *Hooks) EncodeFailed(t string, err error) {
	h.try(func() { h.inner.EncodeFailed(t, err) })
}
func (h *Hooks) PayloadTooLarge(t string, size, limit int) {
	h.try(func() { h.inner.PayloadTooLarge(t, size, limit) })
}
