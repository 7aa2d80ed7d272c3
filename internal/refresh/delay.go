// Package refresh keeps time-ago labels current by re-formatting them whenever
// they would next visibly change.
package refresh

import (
	"math"
	"time"
)

type step struct {
	// below is the exclusive upper bound of elapsed seconds for this step.
	below float64
	delay time.Duration
}

var steps = []step{
	{below: 1, delay: 2 * time.Second},
	{below: 60, delay: 30 * time.Second},
	{below: 3600, delay: 300 * time.Second},
	{below: 86400, delay: 3600 * time.Second},
}

const (
	// FallbackDelay is the delay for anything older than the last step.
	FallbackDelay = 3600 * time.Second
	// SentinelDelay is the delay used when elapsed time is unknown, i.e. the
	// timestamp could not be parsed.
	SentinelDelay = 1000 * time.Second
)

// NextDelay returns how long to wait before re-formatting a label for a
// timestamp that is elapsed seconds old.
func NextDelay(elapsed float64) time.Duration {
	for _, s := range steps {
		if elapsed < s.below {
			return s.delay
		}
	}
	return FallbackDelay
}

// DelayFor is NextDelay but returns SentinelDelay when elapsed is NaN.
func DelayFor(elapsed float64) time.Duration {
	if math.IsNaN(elapsed) {
		return SentinelDelay
	}
	return NextDelay(elapsed)
}
