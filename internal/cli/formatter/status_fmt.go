package formatter

import (
	"fmt"
	"strings"
	"time"
)

// StatusView summarizes the API connection and the remembered selections.
type StatusView struct {
	BaseURL    string
	Available  bool
	Selections []SelectionView
}

// SelectionView is one remembered panel selection.
type SelectionView struct {
	Report    string
	Entity    string
	UpdatedAt time.Time
}

// FormatStatus renders the status command output.
func FormatStatus(v StatusView) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n\n", AvailabilityIndicator(v.Available), StyleFg.Render(v.BaseURL)))

	b.WriteString(Header("Last selections"))
	b.WriteString("\n")
	if len(v.Selections) == 0 {
		b.WriteString(Dim("Nothing selected yet."))
		b.WriteString("\n")
		return b.String()
	}

	rows := make([][]string, 0, len(v.Selections))
	for _, s := range v.Selections {
		rows = append(rows, []string{
			Bold(s.Report),
			s.Entity,
			Dim(HumanTimestamp(s.UpdatedAt)),
		})
	}
	b.WriteString(RenderTable([]string{"REPORT", "SELECTED", "WHEN"}, rows))
	return b.String()
}
