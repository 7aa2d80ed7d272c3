package refresh

import (
	"sync"
	"time"
)

// Handle owns at most one pending callback. The zero value is idle and ready
// to use.
type Handle struct {
	mu    sync.Mutex
	timer Timer
	// gen is bumped on every arm and cancel, invalidating any callback whose
	// timer fired but which has not yet acquired the lock.
	gen uint64
}

// Arm schedules f to run after d, first cancelling any callback already
// armed.
func (h *Handle) Arm(s Scheduler, d time.Duration, f func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.cancel()
	gen := h.gen
	h.timer = s.AfterFunc(d, func() {
		h.mu.Lock()
		if h.gen != gen {
			// cancelled or re-armed in the meantime
			h.mu.Unlock()
			return
		}
		h.timer = nil
		h.mu.Unlock()

		f()
	})
}

// Cancel cancels the pending callback, if any. It is safe to call more than
// once, and on a handle whose callback has already fired.
func (h *Handle) Cancel() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.cancel()
}

// Armed reports whether a callback is pending.
func (h *Handle) Armed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.timer != nil
}

func (h *Handle) cancel() {
	h.gen++
	if h.timer != nil {
		h.timer.Stop()
		h.timer = nil
	}
}
