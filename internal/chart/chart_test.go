package chart

import (
	"regexp"
	"strings"
	"testing"

	"github.com/alexanderramin/presence/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func overtimeTable(t *testing.T, rows ...[]any) *DataTable {
	t.Helper()
	data := NewDataTable()
	data.AddColumn(Column{Type: ColumnString, Label: "User"})
	data.AddColumn(Column{Type: ColumnNumber, Label: "Overtime hours"})
	require.NoError(t, data.AddRows(rows))
	return data
}

func TestNew_ColumnChartRendersEveryRow(t *testing.T) {
	c, err := New(KindColumn, meanTimeTable(t), Options{HAxisTitle: "Weekday"})
	require.NoError(t, err)
	assert.Equal(t, KindColumn, c.Kind())

	out := stripANSI(c.Render(60))
	assert.Contains(t, out, "Weekday")
	assert.Contains(t, out, "Mean time (h:m:s)")
	assert.Contains(t, out, "Mon")
	assert.Contains(t, out, "02:30:15")
	assert.Contains(t, out, "08:00:00")
}

func TestColumnChart_LongestBarIsFull(t *testing.T) {
	c, err := New(KindColumn, overtimeTable(t, []any{"Ann", 10}, []any{"Bob", 5}), Options{})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(stripANSI(c.Render(40)), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.NotContains(t, lines[1], "░")
	assert.Contains(t, lines[2], "░")
	assert.Greater(t, strings.Count(lines[1], filledBlock), strings.Count(lines[2], filledBlock))
}

func TestNew_RejectsWrongLayout(t *testing.T) {
	_, err := New(KindTimeline, meanTimeTable(t), Options{})
	assert.ErrorIs(t, err, ErrUnsupportedData)

	_, err = New(KindPie, meanTimeTable(t), Options{})
	assert.ErrorIs(t, err, ErrUnsupportedData)

	_, err = New(Kind("radar"), meanTimeTable(t), Options{})
	assert.ErrorIs(t, err, ErrUnsupportedData)
}

func TestPieChart_SharesSumToOne(t *testing.T) {
	data, err := ArrayToDataTable([][]any{
		{"Weekday", "Presence (s)"},
		{"Mon", 300.0},
		{"Tue", 100.0},
		{"Sat", 0.0},
	})
	require.NoError(t, err)

	c, err := New(KindPie, data, Options{})
	require.NoError(t, err)

	shares := c.(*pieChart).Shares()
	assert.InDelta(t, 0.75, shares[0], 1e-9)
	assert.InDelta(t, 0.25, shares[1], 1e-9)
	assert.Equal(t, 0.0, shares[2])

	out := stripANSI(c.Render(60))
	assert.Contains(t, out, "75.0%")
	assert.Contains(t, out, "25.0%")
}

func TestPieChart_ZeroTotal(t *testing.T) {
	data, err := ArrayToDataTable([][]any{{"Weekday", "Presence (s)"}, {"Mon", 0.0}})
	require.NoError(t, err)

	c, err := New(KindPie, data, Options{})
	require.NoError(t, err)
	assert.Contains(t, stripANSI(c.Render(50)), "0.0%")
}

func TestTimelineChart_AxisCoversAllSpans(t *testing.T) {
	data := NewDataTable()
	data.AddColumn(Column{Type: ColumnString, Label: "Weekday"})
	data.AddColumn(Column{Type: ColumnTimeOfDay, ID: "Start"})
	data.AddColumn(Column{Type: ColumnTimeOfDay, ID: "End"})
	require.NoError(t, data.AddRows([][]any{
		{"Mon", domain.NewTimeOfDay(8, 45, 0), domain.NewTimeOfDay(16, 10, 0)},
		{"Tue", domain.NewTimeOfDay(9, 30, 0), domain.NewTimeOfDay(17, 0, 0)},
	}))

	c, err := New(KindTimeline, data, Options{})
	require.NoError(t, err)

	out := stripANSI(c.Render(70))
	assert.Contains(t, out, "08:00")
	assert.Contains(t, out, "17:00")
	assert.Contains(t, out, "08:45:00–16:10:00")
	assert.Contains(t, out, "09:30:00–17:00:00")
}

func TestTimelineChart_EmptyUsesFullDay(t *testing.T) {
	tl := &timelineChart{}
	lo, hi := tl.axis()
	assert.Equal(t, 0.0, lo.Hours())
	assert.Equal(t, 24.0, hi.Hours())
}

func TestContainer_DrawReplacesPreviousChart(t *testing.T) {
	var ct Container
	ct.Show()

	first, err := New(KindColumn, overtimeTable(t, []any{"Ann", 10}), Options{})
	require.NoError(t, err)
	second, err := New(KindColumn, overtimeTable(t, []any{"Bob", 7}), Options{})
	require.NoError(t, err)

	ct.Draw(first)
	ct.Draw(second)

	out := stripANSI(ct.Render(50))
	assert.Contains(t, out, "Bob")
	assert.NotContains(t, out, "Ann")
}

func TestContainer_MessageReplacesChart(t *testing.T) {
	var ct Container
	c, err := New(KindColumn, overtimeTable(t, []any{"Ann", 10}), Options{})
	require.NoError(t, err)
	ct.Draw(c)
	ct.Show()

	ct.ShowMessage("No data.")

	assert.Nil(t, ct.Chart())
	assert.True(t, ct.Visible())
	assert.Equal(t, "No data.\n", stripANSI(ct.Render(50)))
}

func TestContainer_HiddenRendersNothing(t *testing.T) {
	var ct Container
	ct.ShowMessage("No data.")
	ct.Hide()
	assert.Empty(t, ct.Render(50))
}
