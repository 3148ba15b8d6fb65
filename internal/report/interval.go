package report

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/presence/internal/domain"
)

// ParseInterval converts an interval string into a time of day. It accepts
// "H:M:S", "H:M" and plain seconds ("30047.5").
func ParseInterval(s string) (domain.TimeOfDay, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidInterval)
	}

	parts := strings.Split(s, ":")
	if len(parts) == 1 {
		sec, err := strconv.ParseFloat(s, 64)
		if err != nil || sec < 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidInterval, s)
		}
		return domain.TimeOfDayFromSeconds(sec), nil
	}
	if len(parts) > 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidInterval, s)
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 {
		return 0, fmt.Errorf("%w: hours in %q", ErrInvalidInterval, s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: minutes in %q", ErrInvalidInterval, s)
	}
	sec := 0.0
	if len(parts) == 3 {
		sec, err = strconv.ParseFloat(parts[2], 64)
		if err != nil || sec < 0 || sec >= 60 {
			return 0, fmt.Errorf("%w: seconds in %q", ErrInvalidInterval, s)
		}
	}
	return domain.TimeOfDayFromSeconds(float64(h*3600+m*60) + sec), nil
}

// decodeInterval reads an interval cell that is either a JSON number of
// seconds or an interval string.
func decodeInterval(raw json.RawMessage) (domain.TimeOfDay, error) {
	var sec float64
	if err := json.Unmarshal(raw, &sec); err == nil {
		if sec < 0 {
			return 0, fmt.Errorf("%w: negative seconds %v", ErrInvalidInterval, sec)
		}
		return domain.TimeOfDayFromSeconds(sec), nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidInterval, string(raw))
	}
	return ParseInterval(s)
}
