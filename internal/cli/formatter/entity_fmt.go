package formatter

import (
	"strconv"
	"strings"

	"github.com/alexanderramin/presence/internal/domain"
)

// FormatEntities renders a selector list as a table, in the order given.
// Users get an avatar column; quarters do not.
func FormatEntities(source domain.EntitySource, entities []domain.Entity) string {
	if len(entities) == 0 {
		return Dim("No "+string(source)+" found.") + "\n"
	}

	headers := []string{"ID", "NAME"}
	if source == domain.SourceUsers {
		headers = append(headers, "AVATAR")
	}
	rows := make([][]string, 0, len(entities))
	for _, e := range entities {
		row := []string{strconv.Itoa(e.ID), e.Name}
		if source == domain.SourceUsers {
			avatar := e.AvatarURL
			if avatar == "" {
				avatar = "--"
			}
			row = append(row, avatar)
		}
		rows = append(rows, row)
	}

	var b strings.Builder
	b.WriteString(Header(string(source)))
	b.WriteString("\n")
	b.WriteString(RenderTable(headers, rows))
	return b.String()
}

// EntityLabel is the one-line label for an entity in selectors and titles.
func EntityLabel(e domain.Entity) string {
	if e.Name == "" {
		return "#" + strconv.Itoa(e.ID)
	}
	return e.Name
}
