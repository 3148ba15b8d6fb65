package cli

import (
	"fmt"

	"github.com/alexanderramin/presence/internal/cli/formatter"
	"github.com/alexanderramin/presence/internal/domain"
	"github.com/alexanderramin/presence/internal/report"
	"github.com/spf13/cobra"
)

func newUsersCmd(app *App) *cobra.Command {
	return newEntitiesCmd(app, domain.SourceUsers, "List the users the user reports can show")
}

func newQuartersCmd(app *App) *cobra.Command {
	return newEntitiesCmd(app, domain.SourceQuarters, "List the quarters the overtime report can show")
}

func newEntitiesCmd(app *App, source domain.EntitySource, short string) *cobra.Command {
	return &cobra.Command{
		Use:   string(source),
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entities, err := report.Entities(cmd.Context(), app.API, source)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatEntities(source, entities))
			return nil
		},
	}
}
