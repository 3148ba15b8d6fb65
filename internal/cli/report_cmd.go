package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alexanderramin/presence/internal/chart"
	"github.com/alexanderramin/presence/internal/cli/formatter"
	"github.com/alexanderramin/presence/internal/config"
	"github.com/alexanderramin/presence/internal/domain"
	"github.com/alexanderramin/presence/internal/export"
	"github.com/alexanderramin/presence/internal/panel"
	"github.com/alexanderramin/presence/internal/report"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Image size used for svg and png exports.
const (
	imageWidth  = 1024
	imageHeight = 480
)

// textWidth is the chart width of text reports.
const textWidth = 72

var errMissingID = errors.New("missing id")

// formatFlag is a --format value restricted to the export formats.
type formatFlag string

var _ pflag.Value = (*formatFlag)(nil)

func (f *formatFlag) String() string { return string(*f) }
func (f *formatFlag) Type() string   { return "format" }

func (f *formatFlag) Set(s string) error {
	if !config.ValidFormat(s) {
		return fmt.Errorf("unknown format %q (want text, svg, png or xlsx)", s)
	}
	*f = formatFlag(s)
	return nil
}

func newReportCmd(app *App) *cobra.Command {
	var (
		formatArg formatFlag
		out       string
	)

	kinds := make([]string, 0, len(report.Definitions()))
	for _, def := range report.Definitions() {
		kinds = append(kinds, string(def.Kind))
	}

	cmd := &cobra.Command{
		Use:   "report <" + strings.Join(kinds, "|") + "> [id]",
		Short: "Fetch one report and print or export it",
		Long: `Fetch one report for one user or quarter.

The id is a user id for mean-time, start-end and weekday, and a quarter id
for overtime. Without an id an interactive terminal offers a picker.`,
		Args:      cobra.RangeArgs(1, 2),
		ValidArgs: kinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := report.Lookup(domain.ReportKind(args[0]))
			if err != nil {
				return err
			}
			format := string(formatArg)
			if format == "" {
				format = app.Config.ExportFormat
			}
			if out == "" && format != config.FormatText && format != config.FormatSVG && app.stdoutIsTerminal() {
				return fmt.Errorf("refusing to write %s to a terminal, use --out FILE", format)
			}

			ctx := cmd.Context()
			entities, err := report.Entities(ctx, app.API, def.Source)
			if err != nil {
				return err
			}
			id, err := resolveEntityID(app, def, entities, args[1:])
			if err != nil {
				return err
			}

			p := panel.New(def)
			p.EntitiesLoaded(entities)
			ticket := p.Select(id)

			stop := func() {}
			if app.interactive() {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Fetching "+strings.ToLower(def.Title)+"...")
			}
			table, fetchErr := def.Fetch(ctx, app.API, id)
			stop()
			p.Complete(ticket, table, fetchErr)

			if p.State() == panel.StateFailed {
				return fmt.Errorf("%s for %s: %w", def.Title, selectedLabel(p), p.LastErr())
			}
			return writeReport(cmd, p, table, format, out)
		},
	}

	cmd.Flags().VarP(&formatArg, "format", "f", "output format: text, svg, png or xlsx (default from config)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the report to `FILE` instead of stdout")
	return cmd
}

// resolveEntityID takes the id argument, or asks for one on a terminal.
func resolveEntityID(app *App, def *report.Definition, entities []domain.Entity, args []string) (int, error) {
	if len(args) > 0 {
		id, err := strconv.Atoi(args[0])
		if err != nil || id < 0 {
			return 0, fmt.Errorf("invalid id %q: must be a non-negative integer", args[0])
		}
		return id, nil
	}

	if !app.interactive() {
		return 0, fmt.Errorf("%w: pass one of the ids listed by 'presence %s'", errMissingID, def.Source)
	}
	var id int
	form := wizardSelectEntity(def.Title, entities, &id)
	if form == nil {
		return 0, fmt.Errorf("no %s to choose from", def.Source)
	}
	if err := form.Run(); err != nil {
		return 0, err
	}
	return id, nil
}

// writeReport renders a completed panel in the requested format to FILE or
// stdout.
func writeReport(cmd *cobra.Command, p *panel.Panel, table *chart.DataTable, format, path string) error {
	def := p.Definition()
	if format != config.FormatText && p.State() != panel.StateRendered {
		return fmt.Errorf("nothing to export: %s", p.Container().Message())
	}

	var w io.Writer = cmd.OutOrStdout()
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
		defer f.Close()
		w = f
	}

	var err error
	switch format {
	case config.FormatText:
		_, err = fmt.Fprint(w, formatter.FormatReport(formatter.ReportView{
			Title:      def.Title,
			Entity:     selectedLabel(p),
			AvatarURL:  p.AvatarURL(),
			ShowAvatar: p.Visibility().Avatar,
			Body:       p.Container().Render(textWidth),
		}))
	case config.FormatSVG, config.FormatPNG:
		var c chart.Chart
		if c, err = def.TitledChart(table, selectedLabel(p)); err == nil {
			err = chart.RenderImage(w, c, chart.ImageFormat(format), imageWidth, imageHeight)
		}
	case config.FormatXLSX:
		err = export.WriteXLSX(w, export.Sheet{
			Name:     def.Title,
			Title:    def.Title,
			Subtitle: selectedLabel(p),
			Table:    table,
		})
	}
	if err != nil {
		return fmt.Errorf("writing %s report: %w", format, err)
	}
	if path != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	}
	return nil
}

func selectedLabel(p *panel.Panel) string {
	e, ok := p.Selected()
	if !ok {
		return ""
	}
	return formatter.EntityLabel(e)
}
