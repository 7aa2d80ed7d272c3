package testutils

import "time"

// Ago returns a timestamp d before now, formatted as RFC 3339 with
// nanoseconds.
func Ago(d time.Duration) string {
	return time.Now().Add(-d).Format(time.RFC3339Nano)
}
