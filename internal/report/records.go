package report

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/alexanderramin/presence/internal/api"
	"github.com/alexanderramin/presence/internal/domain"
)

// MeanTimeRecord is one weekday of the mean presence time report.
type MeanTimeRecord struct {
	Weekday string
	Mean    domain.TimeOfDay
}

func (r MeanTimeRecord) cells() []any { return []any{r.Weekday, r.Mean} }

// StartEndRecord is one weekday of the mean arrival/departure report.
type StartEndRecord struct {
	Weekday string
	Start   domain.TimeOfDay
	End     domain.TimeOfDay
}

func (r StartEndRecord) cells() []any { return []any{r.Weekday, r.Start, r.End} }

// OvertimeRecord is one user's overtime in a quarter. Hours keeps only the
// whole part of what the API reports.
type OvertimeRecord struct {
	User  string
	Hours int
}

func (r OvertimeRecord) cells() []any { return []any{r.User, r.Hours} }

// tuple splits one response row into its cells, checking the arity.
func tuple(raw json.RawMessage, want int) ([]json.RawMessage, error) {
	var cells []json.RawMessage
	if err := json.Unmarshal(raw, &cells); err != nil {
		return nil, fmt.Errorf("not an array: %s", string(raw))
	}
	if len(cells) != want {
		return nil, fmt.Errorf("got %d cells, want %d", len(cells), want)
	}
	return cells, nil
}

func decodeString(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("want string, got %s", string(raw))
	}
	return s, nil
}

// DecodeMeanTime reads [weekday, interval] rows.
func DecodeMeanTime(rows api.Rows) ([]MeanTimeRecord, error) {
	out := make([]MeanTimeRecord, 0, len(rows))
	for i, raw := range rows {
		cells, err := tuple(raw, 2)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrSchema, i, err)
		}
		day, err := decodeString(cells[0])
		if err != nil {
			return nil, fmt.Errorf("%w: row %d weekday: %v", ErrSchema, i, err)
		}
		mean, err := decodeInterval(cells[1])
		if err != nil {
			return nil, fmt.Errorf("%w: row %d mean: %v", ErrSchema, i, err)
		}
		out = append(out, MeanTimeRecord{Weekday: day, Mean: mean})
	}
	return out, nil
}

// DecodeStartEnd reads [weekday, start, end] rows.
func DecodeStartEnd(rows api.Rows) ([]StartEndRecord, error) {
	out := make([]StartEndRecord, 0, len(rows))
	for i, raw := range rows {
		cells, err := tuple(raw, 3)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrSchema, i, err)
		}
		day, err := decodeString(cells[0])
		if err != nil {
			return nil, fmt.Errorf("%w: row %d weekday: %v", ErrSchema, i, err)
		}
		start, err := decodeInterval(cells[1])
		if err != nil {
			return nil, fmt.Errorf("%w: row %d start: %v", ErrSchema, i, err)
		}
		end, err := decodeInterval(cells[2])
		if err != nil {
			return nil, fmt.Errorf("%w: row %d end: %v", ErrSchema, i, err)
		}
		out = append(out, StartEndRecord{Weekday: day, Start: start, End: end})
	}
	return out, nil
}

// overtimeUser is the nested user reference in an overtime row.
type overtimeUser struct {
	UserID int    `json:"user_id"`
	Name   string `json:"name"`
}

// DecodeOvertime reads [{user_id, name, ...}, hours] rows, replacing the
// nested user with its display name.
func DecodeOvertime(rows api.Rows) ([]OvertimeRecord, error) {
	out := make([]OvertimeRecord, 0, len(rows))
	for i, raw := range rows {
		cells, err := tuple(raw, 2)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrSchema, i, err)
		}
		var u overtimeUser
		if err := json.Unmarshal(cells[0], &u); err != nil {
			return nil, fmt.Errorf("%w: row %d user: want object, got %s", ErrSchema, i, string(cells[0]))
		}
		if u.Name == "" {
			return nil, fmt.Errorf("%w: row %d user: missing name", ErrSchema, i)
		}
		var hours float64
		if err := json.Unmarshal(cells[1], &hours); err != nil {
			return nil, fmt.Errorf("%w: row %d hours: want number, got %s", ErrSchema, i, string(cells[1]))
		}
		out = append(out, OvertimeRecord{User: u.Name, Hours: int(math.Trunc(hours))})
	}
	return out, nil
}

// DecodeChartRows reads rows that are already laid out for a chart: a
// header row of labels followed by data rows of strings and numbers.
func DecodeChartRows(rows api.Rows) ([][]any, error) {
	out := make([][]any, 0, len(rows))
	for i, raw := range rows {
		var cells []any
		if err := json.Unmarshal(raw, &cells); err != nil {
			return nil, fmt.Errorf("%w: row %d: not an array: %s", ErrSchema, i, string(raw))
		}
		out = append(out, cells)
	}
	return out, nil
}
