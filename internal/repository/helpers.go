package repository

import "time"

// timeLayout is how timestamps are stored.
const timeLayout = time.RFC3339

// parseStoredTime parses a stored timestamp, returning the zero time for
// empty or malformed values.
func parseStoredTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// timeToString formats t for storage, using the current time when t is zero.
func timeToString(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.UTC().Format(timeLayout)
}
