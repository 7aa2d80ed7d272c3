package timeago

import (
	"fmt"
	"math"
	"time"
)

// Default formats with the default interval table and OverflowAtThreshold.
var Default = Formatter{}

// Formatter buckets elapsed time into a label. The zero value uses the default
// interval table and OverflowAtThreshold.
type Formatter struct {
	// Intervals overrides the default interval table. It must be strictly
	// increasing by Seconds and must not be modified after use.
	Intervals []Interval
	Overflow  Overflow
}

// Format parses timestamp and describes how long ago it was relative to now.
// Alongside the label it returns the elapsed whole seconds. An unparseable
// timestamp yields an empty label and NaN seconds.
func Format(timestamp string, now time.Time) (string, float64) {
	return Default.Format(timestamp, now)
}

// FormatTime describes how long ago t was relative to now.
func FormatTime(t, now time.Time) (string, float64) {
	return Default.FormatTime(t, now)
}

func (f Formatter) Format(timestamp string, now time.Time) (string, float64) {
	t, err := ParseTimestamp(timestamp)
	if err != nil {
		return "", math.NaN()
	}
	return f.FormatTime(t, now)
}

func (f Formatter) FormatTime(t, now time.Time) (string, float64) {
	elapsed := Elapsed(t, now)
	return f.Label(elapsed), elapsed
}

// Label buckets elapsed seconds into a label. It returns an empty string if
// elapsed is not finite or if no unit can represent it.
func (f Formatter) Label(elapsed float64) string {
	if math.IsNaN(elapsed) || math.IsInf(elapsed, 0) {
		return ""
	}
	table := f.Intervals
	if table == nil {
		table = intervals
	}
	for i, interval := range table {
		count := math.Round(math.Abs(elapsed / interval.Seconds))
		if count >= f.limit(table, i) {
			continue
		}
		if count == 0 || count == 1 {
			return fmt.Sprintf("a %s ago", interval.Label)
		}
		return fmt.Sprintf("%d %ss ago", int64(count), interval.Label)
	}
	return ""
}

// limit returns the count at which the i'th interval overflows.
func (f Formatter) limit(table []Interval, i int) float64 {
	if f.Overflow == OverflowAtNextUnit {
		if i == len(table)-1 {
			return math.Inf(1)
		}
		return table[i+1].Seconds / table[i].Seconds
	}
	return table[i].Seconds
}

// Elapsed returns the absolute difference between t and now, rounded to whole
// seconds. Unlike time.Time.Sub it does not saturate for instants centuries
// apart.
func Elapsed(t, now time.Time) float64 {
	secs := float64(now.Unix()-t.Unix()) + float64(now.Nanosecond()-t.Nanosecond())/1e9
	return math.Round(math.Abs(secs))
}
