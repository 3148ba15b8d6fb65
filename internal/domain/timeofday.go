package domain

import (
	"fmt"
	"time"
)

// TimeOfDay is an offset from midnight. Presence reports use it both for
// clock times (arrival, departure) and for spans.
type TimeOfDay time.Duration

// NewTimeOfDay builds a TimeOfDay from clock components.
func NewTimeOfDay(h, m, s int) TimeOfDay {
	return TimeOfDay(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(s)*time.Second)
}

// TimeOfDayFromSeconds converts seconds since midnight, truncating fractions.
func TimeOfDayFromSeconds(sec float64) TimeOfDay {
	return TimeOfDay(time.Duration(sec) * time.Second)
}

// Duration returns the offset as a time.Duration.
func (t TimeOfDay) Duration() time.Duration { return time.Duration(t) }

// Seconds returns the offset in whole seconds.
func (t TimeOfDay) Seconds() int64 { return int64(time.Duration(t) / time.Second) }

// Clock returns the hour, minute and second components.
func (t TimeOfDay) Clock() (h, m, s int) {
	total := t.Seconds()
	neg := total < 0
	if neg {
		total = -total
	}
	h = int(total / 3600)
	m = int(total % 3600 / 60)
	s = int(total % 60)
	if neg {
		h = -h
	}
	return h, m, s
}

// String formats the offset as HH:MM:SS.
func (t TimeOfDay) String() string {
	h, m, s := t.Clock()
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
