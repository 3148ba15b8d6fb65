package domain

import "time"

// PanelSelection remembers which entity a report panel showed last.
type PanelSelection struct {
	Report     ReportKind
	EntityID   int
	EntityName string
	UpdatedAt  time.Time
}
