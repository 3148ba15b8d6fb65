package chart

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/presence/internal/cli/formatter"
	"github.com/charmbracelet/lipgloss"
)

// Kind selects a chart variant.
type Kind string

const (
	KindColumn   Kind = "column"
	KindPie      Kind = "pie"
	KindTimeline Kind = "timeline"
)

// Options carries the titles drawn around a chart.
type Options struct {
	Title      string
	HAxisTitle string
	VAxisTitle string
}

// Chart is a drawable chart built from a DataTable.
type Chart interface {
	Kind() Kind
	// Render draws the chart as terminal text no wider than width.
	Render(width int) string
}

const (
	defaultWidth = 72
	minBarWidth  = 10
	filledBlock  = "█"
)

// New builds the chart variant for kind from data. The table must have the
// column layout the variant expects:
//
//	column:   string, number|timeofday
//	pie:      string, number
//	timeline: string, timeofday, timeofday
func New(kind Kind, data *DataTable, opts Options) (Chart, error) {
	switch kind {
	case KindColumn:
		return newColumnChart(data, opts)
	case KindPie:
		return newPieChart(data, opts)
	case KindTimeline:
		return newTimelineChart(data, opts)
	}
	return nil, fmt.Errorf("%w: unknown chart kind %q", ErrUnsupportedData, kind)
}

func requireColumns(data *DataTable, kind Kind, want ...[]ColumnType) error {
	if data.NumColumns() != len(want) {
		return fmt.Errorf("%w: %s chart needs %d columns, table has %d",
			ErrUnsupportedData, kind, len(want), data.NumColumns())
	}
	for i, allowed := range want {
		got := data.Column(i).Type
		ok := false
		for _, a := range allowed {
			if got == a {
				ok = true
				break
			}
		}
		if !ok {
			return fmt.Errorf("%w: %s chart column %d is %s", ErrUnsupportedData, kind, i, got)
		}
	}
	return nil
}

func types(t ...ColumnType) []ColumnType { return t }

// palette cycles through the formatter colors for multi-series charts.
var palette = []lipgloss.Color{
	formatter.ColorGreen,
	formatter.ColorBlue,
	formatter.ColorYellow,
	formatter.ColorPurple,
	formatter.ColorHeader,
	formatter.ColorRed,
	formatter.ColorFg,
}

func paletteStyle(i int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(palette[i%len(palette)])
}

// padRight pads s to width visible cells, truncating with an ellipsis.
func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w > width {
		r := []rune(s)
		if width <= 1 {
			return string(r[:width])
		}
		for lipgloss.Width(string(r)) > width-1 {
			r = r[:len(r)-1]
		}
		return string(r) + "…"
	}
	return s + strings.Repeat(" ", width-w)
}

func padLeft(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", width-w) + s
}

func widest(items []string) int {
	w := 0
	for _, s := range items {
		if lw := lipgloss.Width(s); lw > w {
			w = lw
		}
	}
	return w
}

func renderTitle(b *strings.Builder, opts Options) {
	if opts.Title != "" {
		b.WriteString(formatter.StyleHeader.Render(opts.Title))
		b.WriteString("\n")
	}
}
