// Package timeago renders the distance between two instants as a short
// English phrase, e.g. "5 minutes ago".
package timeago

// Interval is a unit of time used to bucket elapsed seconds.
type Interval struct {
	// Seconds is the number of seconds in one unit. It also doubles as the
	// largest count the unit may display under OverflowAtThreshold.
	Seconds float64
	// Label is the singular name of the unit.
	Label string
}

// intervals must be strictly increasing by Seconds.
var intervals = []Interval{
	{Seconds: 1, Label: "second"},
	{Seconds: 60, Label: "minute"},
	{Seconds: 3600, Label: "hour"},
	{Seconds: 86400, Label: "day"},
	{Seconds: 2592000, Label: "month"},
	{Seconds: 31536000, Label: "year"},
}

// Intervals returns a copy of the default interval table.
func Intervals() []Interval {
	return append([]Interval(nil), intervals...)
}

// Overflow determines when a bucket's count is too large for its unit, at
// which point the next, larger unit is tried.
type Overflow int

const (
	// OverflowAtThreshold selects the first unit whose count is less than the
	// unit's own number of seconds. Seconds are therefore only ever shown for
	// sub-second differences, and hours are shown for up to 3599 hours.
	OverflowAtThreshold Overflow = iota
	// OverflowAtNextUnit selects the first unit whose count is less than the
	// number of such units in the next unit, i.e. 60 seconds, 60 minutes, 24
	// hours, and so on. The last unit never overflows.
	OverflowAtNextUnit
)

func (o Overflow) String() string {
	switch o {
	case OverflowAtThreshold:
		return "threshold"
	case OverflowAtNextUnit:
		return "unit"
	default:
		return "unknown"
	}
}

// ParseOverflow parses the string form of an Overflow.
func ParseOverflow(s string) (Overflow, bool) {
	switch s {
	case "threshold":
		return OverflowAtThreshold, true
	case "unit":
		return OverflowAtNextUnit, true
	default:
		return 0, false
	}
}
