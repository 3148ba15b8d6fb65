package api

import "encoding/json"

// User is one row of GET /api/v1/users.
type User struct {
	UserID int    `json:"user_id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// Quarter is one row of GET /api/v1/quarters.
type Quarter struct {
	QuarterID int    `json:"quarter_id"`
	Name      string `json:"name"`
}

// Rows is a report response: a JSON array of fixed-shape tuples, each kept
// raw so the report package can decode it against its own schema.
type Rows []json.RawMessage

// Report endpoint prefixes, joined with the entity ID.
const (
	PathUsers            = "/api/v1/users"
	PathQuarters         = "/api/v1/quarters"
	PathMeanTimeWeekday  = "/api/v1/mean_time_weekday"
	PathPresenceStartEnd = "/api/v1/presence_start_end"
	PathPresenceWeekday  = "/api/v1/presence_weekday"
	PathOvertimeQuarter  = "/api/v1/overtime_in_quarter"
)
