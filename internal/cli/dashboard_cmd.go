package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/presence/internal/repository"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"ui"},
		Short:   "Open the interactive report dashboard",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RunDashboard(app)
		},
	}
}

// runDashboard runs the TUI full-screen and remembers the final selections.
func runDashboard(app *App) error {
	final, err := tea.NewProgram(newAppModel(app), tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("running dashboard: %w", err)
	}
	if m, ok := final.(appModel); ok {
		return rememberSelections(context.Background(), app, m)
	}
	return nil
}

// rememberSelections stores what every panel showed when the dashboard
// closed.
func rememberSelections(ctx context.Context, app *App, m appModel) error {
	if !app.remembers() || app.UoW == nil {
		return nil
	}
	chosen, cleared := m.selections()
	if err := repository.SyncSelections(ctx, app.UoW, chosen, cleared); err != nil {
		return fmt.Errorf("saving selections: %w", err)
	}
	return nil
}
