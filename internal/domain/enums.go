package domain

// ReportKind identifies one of the presence reports a panel can show.
type ReportKind string

const (
	ReportMeanTime ReportKind = "mean-time"
	ReportStartEnd ReportKind = "start-end"
	ReportWeekday  ReportKind = "weekday"
	ReportOvertime ReportKind = "overtime"
)

// EntitySource names the selector list an entity was loaded from.
type EntitySource string

const (
	SourceUsers    EntitySource = "users"
	SourceQuarters EntitySource = "quarters"
)
