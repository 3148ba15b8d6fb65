package cli

import (
	"github.com/alexanderramin/presence/internal/api"
	"github.com/alexanderramin/presence/internal/config"
	"github.com/alexanderramin/presence/internal/db"
	"github.com/alexanderramin/presence/internal/repository"
	"github.com/spf13/cobra"
)

// App holds the dependencies shared by every command.
type App struct {
	API    api.Client
	Config config.Config

	// Selections and UoW are nil when selections are not remembered.
	Selections repository.SelectionRepo
	UoW        db.UnitOfWork

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool

	// StdoutIsTerminal reports whether stdout is a terminal, so binary
	// exports need --out. Nil means never.
	StdoutIsTerminal func() bool

	// RunDashboard starts the TUI. Tests replace it to avoid a terminal.
	RunDashboard func(app *App) error
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) stdoutIsTerminal() bool {
	return a.StdoutIsTerminal != nil && a.StdoutIsTerminal()
}

func (a *App) remembers() bool {
	return a.Config.Remember && a.Selections != nil
}

// NewRootCmd creates the top-level "presence" command and registers all
// subcommands against the provided App. Without a subcommand it opens the
// dashboard on a terminal and prints help otherwise.
func NewRootCmd(app *App) *cobra.Command {
	if app.RunDashboard == nil {
		app.RunDashboard = runDashboard
	}

	root := &cobra.Command{
		Use:           "presence",
		Short:         "Employee presence reports in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return cmd.Help()
			}
			return app.RunDashboard(app)
		},
	}

	root.AddCommand(
		newDashboardCmd(app),
		newUsersCmd(app),
		newQuartersCmd(app),
		newReportCmd(app),
		newStatusCmd(app),
	)

	return root
}
