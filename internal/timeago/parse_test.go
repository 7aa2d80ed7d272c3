package timeago

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	utc := time.Date(2024, 5, 1, 10, 30, 15, 0, time.UTC)

	tests := []struct {
		name string
		s    string
		want time.Time
	}{
		{"rfc3339", "2024-05-01T10:30:15Z", utc},
		{"javascript iso string", "2024-05-01T10:30:15.000Z", utc},
		{"fractional seconds", "2024-05-01T10:30:15.25Z", utc.Add(250 * time.Millisecond)},
		{"offset", "2024-05-01T12:30:15+02:00", utc},
		{"no seconds", "2024-05-01T10:30Z", utc.Add(-15 * time.Second)},
		{"date only is utc", "2024-05-01", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		{"surrounding whitespace", "  2024-05-01T10:30:15Z\n", utc},
		{"rfc1123", "Wed, 01 May 2024 10:30:15 GMT", utc},
		{"no zone is local", "2024-05-01T10:30:15", time.Date(2024, 5, 1, 10, 30, 15, 0, time.Local)},
		{"space separated", "2024-05-01 10:30:15", time.Date(2024, 5, 1, 10, 30, 15, 0, time.Local)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.s)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestParseTimestamp_Invalid(t *testing.T) {
	for _, s := range []string{"", "   ", "invalid-date", "2024-13-45", "yesterday"} {
		t.Run(s, func(t *testing.T) {
			_, err := ParseTimestamp(s)
			assert.True(t, errors.Is(err, ErrInvalidTimestamp))
		})
	}
}
