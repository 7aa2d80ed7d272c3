package refresh

import (
	"sort"
	"sync"
	"time"
)

// fakeHost is a Host with a manual clock. Timers only fire when the clock is
// advanced.
type fakeHost struct {
	mu      sync.Mutex
	now     time.Time
	timers  []*fakeTimer
	updates []Update
}

func newFakeHost(now time.Time) *fakeHost {
	return &fakeHost{now: now}
}

func (h *fakeHost) Now() time.Time {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.now
}

func (h *fakeHost) AfterFunc(d time.Duration, f func()) Timer {
	h.mu.Lock()
	defer h.mu.Unlock()

	t := &fakeTimer{host: h, when: h.now.Add(d), f: f, delay: d}
	h.timers = append(h.timers, t)
	return t
}

func (h *fakeHost) Invalidate(u Update) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.updates = append(h.updates, u)
}

// Advance moves the clock forward by d, firing due timers in order.
func (h *fakeHost) Advance(d time.Duration) {
	h.mu.Lock()
	h.now = h.now.Add(d)
	var due []*fakeTimer
	for _, t := range h.timers {
		if !t.stopped && !t.fired && !t.when.After(h.now) {
			t.fired = true
			due = append(due, t)
		}
	}
	h.mu.Unlock()

	sort.Slice(due, func(i, j int) bool { return due[i].when.Before(due[j].when) })
	for _, t := range due {
		t.f()
	}
}

// Pending returns timers that have neither fired nor been stopped.
func (h *fakeHost) Pending() []*fakeTimer {
	h.mu.Lock()
	defer h.mu.Unlock()

	var pending []*fakeTimer
	for _, t := range h.timers {
		if !t.stopped && !t.fired {
			pending = append(pending, t)
		}
	}
	return pending
}

func (h *fakeHost) Updates() []Update {
	h.mu.Lock()
	defer h.mu.Unlock()

	return append([]Update(nil), h.updates...)
}

type fakeTimer struct {
	host    *fakeHost
	when    time.Time
	delay   time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	t.host.mu.Lock()
	defer t.host.mu.Unlock()

	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}
