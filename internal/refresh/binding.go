package refresh

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/leg100/timeago/internal/logging"
	"github.com/leg100/timeago/internal/timeago"
)

// Binding is a single usage site of a time-ago label. It owns at most one
// pending refresh at any time.
type Binding struct {
	id        uuid.UUID
	host      Host
	formatter timeago.Formatter
	logger    logging.Interface

	mu        sync.Mutex
	timestamp string
	label     string
	elapsed   float64
	closed    bool
	handle    Handle
	// armed identifies the most recently armed refresh; a callback for any
	// other refresh is stale.
	armed uint64

	stop func() bool
}

type BindingOptions struct {
	Formatter timeago.Formatter
	Logger    logging.Interface
}

// NewBinding constructs a binding embedded in host. The binding is closed once
// ctx is done.
func NewBinding(ctx context.Context, host Host, opts BindingOptions) *Binding {
	if opts.Logger == nil {
		opts.Logger = logging.Discard
	}
	b := &Binding{
		id:        uuid.New(),
		host:      host,
		formatter: opts.Formatter,
		logger:    opts.Logger,
	}
	// Close runs in its own goroutine if ctx is already done, so hold the
	// lock until stop is assigned.
	b.mu.Lock()
	b.stop = context.AfterFunc(ctx, b.Close)
	b.mu.Unlock()
	return b
}

func (b *Binding) ID() uuid.UUID { return b.id }

// Set formats timestamp against the current time, schedules a refresh for when
// the label would next change, and returns the label. Any previously scheduled
// refresh is cancelled.
func (b *Binding) Set(timestamp string) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.timestamp = timestamp
	return b.update()
}

// Label returns the most recently computed label.
func (b *Binding) Label() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.label
}

// Timestamp returns the timestamp last passed to Set.
func (b *Binding) Timestamp() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.timestamp
}

// Pending reports whether a refresh is scheduled.
func (b *Binding) Pending() bool {
	return b.handle.Armed()
}

// Close cancels any pending refresh. Once closed, Set still formats but no
// longer schedules refreshes.
func (b *Binding) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	b.stop()
	b.handle.Cancel()
	b.logger.Debug("closed time-ago binding", "binding", b.id)
}

// update must be called with b.mu held.
func (b *Binding) update() string {
	b.handle.Cancel()
	b.armed++

	b.label, b.elapsed = b.formatter.Format(b.timestamp, b.host.Now())
	if b.closed {
		return b.label
	}
	delay := DelayFor(b.elapsed)
	seq := b.armed
	b.handle.Arm(b.host, delay, func() { b.fire(seq) })
	b.logger.Debug("scheduled time-ago refresh",
		"binding", b.id,
		"label", b.label,
		"delay", delay,
	)
	return b.label
}

// fire refreshes the label for the refresh identified by seq. It does nothing
// if the binding has since been closed, re-set or refreshed.
func (b *Binding) fire(seq uint64) {
	b.mu.Lock()
	if b.closed || seq != b.armed {
		b.mu.Unlock()
		return
	}
	label := b.update()
	b.mu.Unlock()

	b.host.Invalidate(Update{BindingID: b.id, Label: label})
}
