package cli

import (
	"fmt"

	"github.com/alexanderramin/presence/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show API availability and the remembered selections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			view := formatter.StatusView{
				BaseURL:   app.Config.API.BaseURL,
				Available: app.API.Available(ctx),
			}

			if app.Selections != nil {
				selections, err := app.Selections.List(ctx)
				if err != nil {
					return fmt.Errorf("listing selections: %w", err)
				}
				for _, s := range selections {
					entity := s.EntityName
					if entity == "" {
						entity = fmt.Sprintf("#%d", s.EntityID)
					}
					view.Selections = append(view.Selections, formatter.SelectionView{
						Report:    string(s.Report),
						Entity:    entity,
						UpdatedAt: s.UpdatedAt,
					})
				}
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStatus(view))
			return nil
		},
	}
}
