package sqlite

import (
	"time"
)

// TimestampLayout matches the ISO-8601 shape used for task creation times:
// UTC with millisecond precision and a trailing Z.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// FormatTimeForDB formats a time.Time value in UTC for consistent storage
func FormatTimeForDB(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimeFromDB parses a stored timestamp. Any RFC3339 variant is accepted.
func ParseTimeFromDB(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}
