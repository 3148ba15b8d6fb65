// Package export writes report tables to spreadsheet files.
package export

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alexanderramin/presence/internal/chart"
	"github.com/xuri/excelize/v2"
)

// ErrEmptyTable indicates a table without columns.
var ErrEmptyTable = errors.New("table has no columns")

// Sheet is one report table with the labels printed above it.
type Sheet struct {
	Name     string
	Title    string
	Subtitle string
	Table    *chart.DataTable
}

const (
	titleRow  = 1
	headerRow = 4
	firstRow  = 5

	// Excel stores a time of day as a fraction of a day.
	secondsPerDay = 24 * 60 * 60
	timeFormat    = "hh:mm:ss"
)

// WriteXLSX writes s as a single-sheet workbook. Time-of-day columns are
// written as Excel times so spreadsheet formulas keep working on them.
func WriteXLSX(w io.Writer, s Sheet) error {
	if s.Table == nil || s.Table.NumColumns() == 0 {
		return ErrEmptyTable
	}

	f := excelize.NewFile()
	defer f.Close()

	name := sheetName(s.Name)
	if err := f.SetSheetName("Sheet1", name); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	styles, err := newStyles(f)
	if err != nil {
		return err
	}

	cols := s.Table.NumColumns()
	lastCol, err := excelize.ColumnNumberToName(cols)
	if err != nil {
		return fmt.Errorf("column name: %w", err)
	}

	if err := f.SetCellValue(name, cell(1, titleRow), s.Title); err != nil {
		return fmt.Errorf("writing title: %w", err)
	}
	if cols > 1 {
		if err := f.MergeCell(name, cell(1, titleRow), cell(cols, titleRow)); err != nil {
			return fmt.Errorf("merging title: %w", err)
		}
	}
	if err := f.SetCellStyle(name, cell(1, titleRow), cell(cols, titleRow), styles.title); err != nil {
		return fmt.Errorf("styling title: %w", err)
	}
	if s.Subtitle != "" {
		if err := f.SetCellValue(name, cell(1, titleRow+1), s.Subtitle); err != nil {
			return fmt.Errorf("writing subtitle: %w", err)
		}
	}

	for c, col := range s.Table.Columns() {
		if err := f.SetCellValue(name, cell(c+1, headerRow), col.Name()); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}
	if err := f.SetCellStyle(name, cell(1, headerRow), cell(cols, headerRow), styles.header); err != nil {
		return fmt.Errorf("styling header: %w", err)
	}

	for r := 0; r < s.Table.NumRows(); r++ {
		for c := 0; c < cols; c++ {
			if err := writeCell(f, name, s.Table, r, c, styles); err != nil {
				return err
			}
		}
	}

	if err := f.SetColWidth(name, "A", lastCol, 20); err != nil {
		return fmt.Errorf("sizing columns: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

type sheetStyles struct {
	title, header, clock int
}

func newStyles(f *excelize.File) (sheetStyles, error) {
	var st sheetStyles
	var err error

	st.title, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	if err != nil {
		return st, fmt.Errorf("title style: %w", err)
	}

	st.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#458588"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return st, fmt.Errorf("header style: %w", err)
	}

	format := timeFormat
	st.clock, err = f.NewStyle(&excelize.Style{CustomNumFmt: &format})
	if err != nil {
		return st, fmt.Errorf("time style: %w", err)
	}
	return st, nil
}

func writeCell(f *excelize.File, sheet string, t *chart.DataTable, r, c int, st sheetStyles) error {
	ref := cell(c+1, firstRow+r)
	var err error
	switch t.Column(c).Type {
	case chart.ColumnTimeOfDay:
		err = f.SetCellValue(sheet, ref, float64(t.TimeOfDay(r, c).Seconds())/secondsPerDay)
		if err == nil {
			err = f.SetCellStyle(sheet, ref, ref, st.clock)
		}
	case chart.ColumnNumber:
		err = f.SetCellValue(sheet, ref, t.Number(r, c))
	default:
		err = f.SetCellValue(sheet, ref, t.String(r, c))
	}
	if err != nil {
		return fmt.Errorf("writing row %d column %d: %w", r, c, err)
	}
	return nil
}

func cell(col, row int) string {
	ref, _ := excelize.CoordinatesToCellName(col, row)
	return ref
}

// sheetName makes name valid for Excel: at most 31 characters and none
// of : \ / ? * [ ].
func sheetName(name string) string {
	name = strings.Map(func(r rune) rune {
		if strings.ContainsRune(`:\/?*[]`, r) {
			return '_'
		}
		return r
	}, name)
	if name == "" {
		return "Report"
	}
	if r := []rune(name); len(r) > 31 {
		name = string(r[:31])
	}
	return name
}
