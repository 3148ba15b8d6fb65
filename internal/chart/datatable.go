// Package chart draws presence reports. Data goes in through a DataTable
// whose columns are declared up front; every row is checked against those
// columns, so a report with shifted or missing fields fails loudly instead
// of drawing a wrong chart.
package chart

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/presence/internal/domain"
)

var (
	// ErrColumnMismatch indicates a row whose width differs from the declared columns.
	ErrColumnMismatch = errors.New("row does not match column count")

	// ErrCellType indicates a cell whose value does not fit its column type.
	ErrCellType = errors.New("cell value does not match column type")

	// ErrUnsupportedData indicates a table whose columns cannot feed the requested chart.
	ErrUnsupportedData = errors.New("data table not supported by chart")
)

// ColumnType is the value type held by a DataTable column.
type ColumnType string

const (
	ColumnString    ColumnType = "string"
	ColumnNumber    ColumnType = "number"
	ColumnTimeOfDay ColumnType = "timeofday"
)

// Column describes one DataTable column. Label is shown on axes and
// legends; ID names the column when there is no visible label.
type Column struct {
	Type  ColumnType
	Label string
	ID    string
}

// Name returns the label, falling back to the ID.
func (c Column) Name() string {
	if c.Label != "" {
		return c.Label
	}
	return c.ID
}

// DataTable is an ordered set of typed columns and rows of cells.
// Cells hold string, float64 or domain.TimeOfDay according to their column.
type DataTable struct {
	cols []Column
	rows [][]any
}

// NewDataTable returns an empty table.
func NewDataTable() *DataTable {
	return &DataTable{}
}

// AddColumn appends a column and returns its index.
func (t *DataTable) AddColumn(c Column) int {
	t.cols = append(t.cols, c)
	return len(t.cols) - 1
}

// AddRow appends one row after checking it against the columns.
// Integer cells in number columns are widened to float64.
func (t *DataTable) AddRow(cells ...any) error {
	if len(cells) != len(t.cols) {
		return fmt.Errorf("%w: got %d cells, want %d", ErrColumnMismatch, len(cells), len(t.cols))
	}
	row := make([]any, len(cells))
	for i, cell := range cells {
		v, err := coerce(t.cols[i].Type, cell)
		if err != nil {
			return fmt.Errorf("column %d (%s): %w", i, t.cols[i].Name(), err)
		}
		row[i] = v
	}
	t.rows = append(t.rows, row)
	return nil
}

// AddRows appends rows in order. Nothing is added if any row is invalid.
func (t *DataTable) AddRows(rows [][]any) error {
	staged := &DataTable{cols: t.cols}
	for i, r := range rows {
		if err := staged.AddRow(r...); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
	}
	t.rows = append(t.rows, staged.rows...)
	return nil
}

// NumColumns returns the number of columns.
func (t *DataTable) NumColumns() int { return len(t.cols) }

// NumRows returns the number of rows.
func (t *DataTable) NumRows() int { return len(t.rows) }

// Column returns the column at index i.
func (t *DataTable) Column(i int) Column { return t.cols[i] }

// Columns returns a copy of the column list.
func (t *DataTable) Columns() []Column {
	out := make([]Column, len(t.cols))
	copy(out, t.cols)
	return out
}

// Value returns the raw cell at row r, column c.
func (t *DataTable) Value(r, c int) any { return t.rows[r][c] }

// String returns a string cell, or "" when the column is not a string column.
func (t *DataTable) String(r, c int) string {
	s, _ := t.rows[r][c].(string)
	return s
}

// Number returns a cell as a float64. Time-of-day cells are returned in seconds.
func (t *DataTable) Number(r, c int) float64 {
	switch v := t.rows[r][c].(type) {
	case float64:
		return v
	case domain.TimeOfDay:
		return float64(v.Seconds())
	}
	return 0
}

// TimeOfDay returns a time-of-day cell, or zero for other column types.
func (t *DataTable) TimeOfDay(r, c int) domain.TimeOfDay {
	v, _ := t.rows[r][c].(domain.TimeOfDay)
	return v
}

// FormattedValue renders a cell for display: time-of-day as HH:MM:SS,
// whole numbers without decimals.
func (t *DataTable) FormattedValue(r, c int) string {
	return formatCell(t.rows[r][c])
}

// ArrayToDataTable builds a table from a header row followed by data rows.
// Column types are inferred from the first data row; a table with no data
// rows gets string columns.
func ArrayToDataTable(rows [][]any) (*DataTable, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: missing header row", ErrColumnMismatch)
	}
	t := NewDataTable()
	header := rows[0]
	for i, h := range header {
		label, ok := h.(string)
		if !ok {
			return nil, fmt.Errorf("header cell %d: %w: want string label", i, ErrCellType)
		}
		typ := ColumnString
		if len(rows) > 1 && i < len(rows[1]) {
			typ = inferType(rows[1][i])
		}
		t.AddColumn(Column{Type: typ, Label: label})
	}
	if err := t.AddRows(rows[1:]); err != nil {
		return nil, err
	}
	return t, nil
}

func inferType(v any) ColumnType {
	switch v.(type) {
	case float64, float32, int, int64:
		return ColumnNumber
	case domain.TimeOfDay:
		return ColumnTimeOfDay
	default:
		return ColumnString
	}
}

func coerce(typ ColumnType, v any) (any, error) {
	switch typ {
	case ColumnString:
		if s, ok := v.(string); ok {
			return s, nil
		}
	case ColumnNumber:
		switch n := v.(type) {
		case float64:
			return n, nil
		case float32:
			return float64(n), nil
		case int:
			return float64(n), nil
		case int64:
			return float64(n), nil
		}
	case ColumnTimeOfDay:
		if tod, ok := v.(domain.TimeOfDay); ok {
			return tod, nil
		}
	}
	return nil, fmt.Errorf("%w: %T in %s column", ErrCellType, v, typ)
}

func formatCell(v any) string {
	switch c := v.(type) {
	case string:
		return c
	case domain.TimeOfDay:
		return c.String()
	case float64:
		if c == float64(int64(c)) {
			return fmt.Sprintf("%d", int64(c))
		}
		return fmt.Sprintf("%.2f", c)
	}
	return fmt.Sprint(v)
}
