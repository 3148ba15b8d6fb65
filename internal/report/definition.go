package report

import (
	"context"
	"fmt"

	"github.com/alexanderramin/presence/internal/api"
	"github.com/alexanderramin/presence/internal/chart"
	"github.com/alexanderramin/presence/internal/domain"
)

// NoDataMessage is the placeholder shown when a report cannot be fetched.
const NoDataMessage = "No data."

// Definition describes one report panel: where its entities come from,
// which endpoint serves its rows, how rows become chart columns and which
// chart draws them.
type Definition struct {
	Kind      domain.ReportKind
	Title     string
	Source    domain.EntitySource
	Endpoint  string
	ChartKind chart.Kind
	Columns   []chart.Column
	Options   chart.Options

	// EmptyMessage is shown instead of a chart when the API returns no
	// rows. Reports that leave it blank treat an empty response as data.
	EmptyMessage string

	// ShowAvatar reveals the selected user's avatar alongside the result.
	ShowAvatar bool

	rows func(api.Rows) ([][]any, error)
}

var definitions = []*Definition{
	{
		Kind:      domain.ReportWeekday,
		Title:     "Presence by weekday",
		Source:    domain.SourceUsers,
		Endpoint:  api.PathPresenceWeekday,
		ChartKind: chart.KindPie,
		Columns: []chart.Column{
			{Type: chart.ColumnString, Label: "Weekday"},
			{Type: chart.ColumnNumber, Label: "Presence (s)"},
		},
		ShowAvatar: true,
	},
	{
		Kind:      domain.ReportMeanTime,
		Title:     "Presence mean time",
		Source:    domain.SourceUsers,
		Endpoint:  api.PathMeanTimeWeekday,
		ChartKind: chart.KindColumn,
		Columns: []chart.Column{
			{Type: chart.ColumnString, Label: "Weekday"},
			{Type: chart.ColumnTimeOfDay, Label: "Mean time (h:m:s)"},
		},
		Options:    chart.Options{HAxisTitle: "Weekday", VAxisTitle: "Mean time (h:m:s)"},
		ShowAvatar: true,
		rows:       rowsOf(DecodeMeanTime),
	},
	{
		Kind:      domain.ReportStartEnd,
		Title:     "Presence start-end",
		Source:    domain.SourceUsers,
		Endpoint:  api.PathPresenceStartEnd,
		ChartKind: chart.KindTimeline,
		Columns: []chart.Column{
			{Type: chart.ColumnString, Label: "Weekday"},
			{Type: chart.ColumnTimeOfDay, ID: "Start"},
			{Type: chart.ColumnTimeOfDay, ID: "End"},
		},
		Options:    chart.Options{HAxisTitle: "Weekday"},
		ShowAvatar: true,
		rows:       rowsOf(DecodeStartEnd),
	},
	{
		Kind:      domain.ReportOvertime,
		Title:     "Overtime in quarter",
		Source:    domain.SourceQuarters,
		Endpoint:  api.PathOvertimeQuarter,
		ChartKind: chart.KindColumn,
		Columns: []chart.Column{
			{Type: chart.ColumnString, Label: "User"},
			{Type: chart.ColumnNumber, Label: "Overtime hours"},
		},
		Options:      chart.Options{HAxisTitle: "User", VAxisTitle: "Overtime hours"},
		EmptyMessage: "No overtime hours in this period.",
		rows:         rowsOf(DecodeOvertime),
	},
}

// record is a decoded row that knows its cells in column order.
type record interface {
	cells() []any
}

func rowsOf[R record](decode func(api.Rows) ([]R, error)) func(api.Rows) ([][]any, error) {
	return func(rows api.Rows) ([][]any, error) {
		recs, err := decode(rows)
		if err != nil {
			return nil, err
		}
		out := make([][]any, len(recs))
		for i, r := range recs {
			out[i] = r.cells()
		}
		return out, nil
	}
}

// Definitions returns every report in dashboard tab order.
func Definitions() []*Definition {
	out := make([]*Definition, len(definitions))
	copy(out, definitions)
	return out
}

// Lookup returns the definition for a report kind.
func Lookup(kind domain.ReportKind) (*Definition, error) {
	for _, d := range definitions {
		if d.Kind == kind {
			return d, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownReport, kind)
}

// Build turns a report response into a chart table. Columns are added in
// schema order and every row is checked against them.
func (d *Definition) Build(rows api.Rows) (*chart.DataTable, error) {
	if len(rows) == 0 && d.EmptyMessage != "" {
		return nil, ErrNoData
	}
	if d.rows == nil {
		return d.buildFromArray(rows)
	}

	cells, err := d.rows(rows)
	if err != nil {
		return nil, err
	}
	table := chart.NewDataTable()
	for _, c := range d.Columns {
		table.AddColumn(c)
	}
	if err := table.AddRows(cells); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchema, err)
	}
	return table, nil
}

// buildFromArray handles chart-ready responses whose first row is the
// header. The inferred column types must still match the schema.
func (d *Definition) buildFromArray(rows api.Rows) (*chart.DataTable, error) {
	cells, err := DecodeChartRows(rows)
	if err != nil {
		return nil, err
	}
	table, err := chart.ArrayToDataTable(cells)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchema, err)
	}
	if table.NumColumns() != len(d.Columns) {
		return nil, fmt.Errorf("%w: got %d columns, want %d", ErrSchema, table.NumColumns(), len(d.Columns))
	}
	if table.NumRows() == 0 {
		return table, nil
	}
	for i, c := range d.Columns {
		if got := table.Column(i).Type; got != c.Type {
			return nil, fmt.Errorf("%w: column %d is %s, want %s", ErrSchema, i, got, c.Type)
		}
	}
	return table, nil
}

// Chart builds the report's chart from a table produced by Build.
func (d *Definition) Chart(table *chart.DataTable) (chart.Chart, error) {
	return chart.New(d.ChartKind, table, d.Options)
}

// TitledChart builds the chart with the report title, followed by subject
// when it is set. Exported images carry it since they have no frame.
func (d *Definition) TitledChart(table *chart.DataTable, subject string) (chart.Chart, error) {
	opts := d.Options
	opts.Title = d.Title
	if subject != "" {
		opts.Title += ": " + subject
	}
	return chart.New(d.ChartKind, table, opts)
}

// Fetch requests the report for one entity and builds its chart table.
func (d *Definition) Fetch(ctx context.Context, client api.Client, entityID int) (*chart.DataTable, error) {
	rows, err := client.Report(ctx, d.Endpoint, entityID)
	if err != nil {
		return nil, err
	}
	return d.Build(rows)
}

// Entities loads the selector list for a report's source, keeping the
// order the API returned.
func Entities(ctx context.Context, client api.Client, source domain.EntitySource) ([]domain.Entity, error) {
	switch source {
	case domain.SourceUsers:
		users, err := client.Users(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]domain.Entity, len(users))
		for i, u := range users {
			out[i] = domain.Entity{ID: u.UserID, Name: u.Name, AvatarURL: u.Avatar}
		}
		return out, nil
	case domain.SourceQuarters:
		quarters, err := client.Quarters(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]domain.Entity, len(quarters))
		for i, q := range quarters {
			out[i] = domain.Entity{ID: q.QuarterID, Name: q.Name}
		}
		return out, nil
	}
	return nil, fmt.Errorf("unknown entity source %q", source)
}
