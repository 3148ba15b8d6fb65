package chart

import (
	"testing"

	"github.com/alexanderramin/presence/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func meanTimeTable(t *testing.T) *DataTable {
	t.Helper()
	data := NewDataTable()
	data.AddColumn(Column{Type: ColumnString, Label: "Weekday"})
	data.AddColumn(Column{Type: ColumnTimeOfDay, Label: "Mean time (h:m:s)"})
	require.NoError(t, data.AddRows([][]any{
		{"Mon", domain.NewTimeOfDay(2, 30, 15)},
		{"Tue", domain.NewTimeOfDay(8, 0, 0)},
	}))
	return data
}

func TestDataTable_AddColumnsInOrder(t *testing.T) {
	data := meanTimeTable(t)

	require.Equal(t, 2, data.NumColumns())
	assert.Equal(t, "Weekday", data.Column(0).Label)
	assert.Equal(t, ColumnTimeOfDay, data.Column(1).Type)
	assert.Equal(t, 2, data.NumRows())
}

func TestDataTable_AddRow_RejectsWrongWidth(t *testing.T) {
	data := meanTimeTable(t)

	err := data.AddRow("Wed")
	assert.ErrorIs(t, err, ErrColumnMismatch)
	assert.Equal(t, 2, data.NumRows())
}

func TestDataTable_AddRow_RejectsWrongType(t *testing.T) {
	data := meanTimeTable(t)

	err := data.AddRow("Wed", "09:00:00")
	assert.ErrorIs(t, err, ErrCellType)
}

func TestDataTable_AddRows_IsAllOrNothing(t *testing.T) {
	data := meanTimeTable(t)

	err := data.AddRows([][]any{
		{"Wed", domain.NewTimeOfDay(9, 0, 0)},
		{"Thu", 42.0},
	})
	assert.ErrorIs(t, err, ErrCellType)
	assert.Equal(t, 2, data.NumRows())
}

func TestDataTable_NumberWidensIntegers(t *testing.T) {
	data := NewDataTable()
	data.AddColumn(Column{Type: ColumnString, Label: "User"})
	data.AddColumn(Column{Type: ColumnNumber, Label: "Overtime hours"})
	require.NoError(t, data.AddRow("Ann", 12))

	assert.Equal(t, 12.0, data.Value(0, 1))
	assert.Equal(t, "12", data.FormattedValue(0, 1))
}

func TestDataTable_FormattedValue(t *testing.T) {
	data := meanTimeTable(t)

	assert.Equal(t, "Mon", data.FormattedValue(0, 0))
	assert.Equal(t, "02:30:15", data.FormattedValue(0, 1))
	assert.Equal(t, float64(2*3600+30*60+15), data.Number(0, 1))
}

func TestArrayToDataTable_UsesHeaderAndInfersTypes(t *testing.T) {
	data, err := ArrayToDataTable([][]any{
		{"Weekday", "Presence (s)"},
		{"Mon", 24123.0},
		{"Tue", 16564.0},
	})
	require.NoError(t, err)

	assert.Equal(t, "Weekday", data.Column(0).Label)
	assert.Equal(t, ColumnString, data.Column(0).Type)
	assert.Equal(t, "Presence (s)", data.Column(1).Label)
	assert.Equal(t, ColumnNumber, data.Column(1).Type)
	assert.Equal(t, 2, data.NumRows())
	assert.Equal(t, "Tue", data.String(1, 0))
}

func TestArrayToDataTable_HeaderOnly(t *testing.T) {
	data, err := ArrayToDataTable([][]any{{"Weekday", "Presence (s)"}})
	require.NoError(t, err)
	assert.Equal(t, 0, data.NumRows())
	assert.Equal(t, ColumnString, data.Column(1).Type)
}

func TestArrayToDataTable_Errors(t *testing.T) {
	_, err := ArrayToDataTable(nil)
	assert.ErrorIs(t, err, ErrColumnMismatch)

	_, err = ArrayToDataTable([][]any{{"Weekday", 3.0}})
	assert.ErrorIs(t, err, ErrCellType)

	_, err = ArrayToDataTable([][]any{{"Weekday", "Presence (s)"}, {"Mon", 1.0}, {"Tue", "x"}})
	assert.ErrorIs(t, err, ErrCellType)
}
