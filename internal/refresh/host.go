package refresh

import (
	"time"

	"github.com/google/uuid"
)

// Timer is a pending one-shot callback.
type Timer interface {
	// Stop prevents the callback from firing. It reports whether the timer
	// was stopped before it fired.
	Stop() bool
}

// Scheduler arms one-shot callbacks. Callbacks must not be invoked from within
// AfterFunc itself.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Update notifies the presentation layer that a binding's label has been
// re-computed.
type Update struct {
	BindingID uuid.UUID
	Label     string
}

// Host is the environment a binding is embedded in.
type Host interface {
	Scheduler

	// Now returns the current time.
	Now() time.Time
	// Invalidate asks the presentation layer to re-render with the updated
	// label.
	Invalidate(Update)
}

// NewTimerHost returns a Host backed by the system clock and runtime timers,
// that relays updates to notify.
func NewTimerHost(notify func(Update)) Host {
	return &timerHost{notify: notify}
}

type timerHost struct {
	notify func(Update)
}

func (h *timerHost) Now() time.Time { return time.Now() }

func (h *timerHost) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

func (h *timerHost) Invalidate(u Update) {
	if h.notify != nil {
		h.notify(u)
	}
}
