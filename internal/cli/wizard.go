package cli

import (
	"fmt"

	"github.com/alexanderramin/presence/internal/cli/formatter"
	"github.com/alexanderramin/presence/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// presenceHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func presenceHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// wizardSelectEntity creates a huh form to pick one entity of a report's
// selector list. It returns nil when there is nothing to pick.
func wizardSelectEntity(title string, entities []domain.Entity, result *int) *huh.Form {
	if len(entities) == 0 {
		return nil
	}

	options := make([]huh.Option[int], 0, len(entities))
	for _, e := range entities {
		label := formatter.EntityLabel(e)
		if e.Name != "" {
			label = fmt.Sprintf("%s (#%d)", e.Name, e.ID)
		}
		options = append(options, huh.NewOption(label, e.ID))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title(title).
				Options(options...).
				Height(min(len(options)+2, 12)).
				Value(result),
		),
	).WithTheme(presenceHuhTheme()).WithShowHelp(false)
}
