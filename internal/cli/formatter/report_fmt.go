package formatter

import "strings"

// ReportView is the text output of one report for one entity.
type ReportView struct {
	Title      string
	Entity     string
	AvatarURL  string
	ShowAvatar bool
	Body       string
}

// FormatReport renders a report result inside a titled box.
func FormatReport(v ReportView) string {
	var b strings.Builder
	if v.Entity != "" {
		b.WriteString(Bold(v.Entity))
		b.WriteString("\n")
	}
	if v.ShowAvatar {
		b.WriteString(Avatar(v.AvatarURL))
		b.WriteString("\n")
	}
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	b.WriteString(strings.TrimRight(v.Body, "\n"))
	return RenderBox(v.Title, b.String()) + "\n"
}
