package importer

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Table is a raw tabular input: one header row plus data rows. Cell values
// are uninterpreted strings; short rows are tolerated and read as blanks.
type Table struct {
	Columns []string
	Rows    [][]string
}

// columnIndex finds a column by name, ignoring case and surrounding
// whitespace. Returns -1 when absent.
func (t Table) columnIndex(name string) int {
	for i, c := range t.Columns {
		if strings.EqualFold(strings.TrimSpace(c), strings.TrimSpace(name)) {
			return i
		}
	}
	return -1
}

// cell returns the value at the given column index for a row, or "" when
// the row is shorter than the header.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// Load reads a planning template from disk. The format is chosen by file
// extension: .csv or .xlsx (first sheet).
func Load(path string) (Table, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return loadCSV(path)
	case ".xlsx":
		return loadXLSX(path)
	default:
		return Table{}, fmt.Errorf("unsupported template format %q (expected .csv or .xlsx)", ext)
	}
}

func loadCSV(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("opening template: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // ragged rows are handled at validation time
	records, err := r.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("parsing csv template: %w", err)
	}
	if len(records) == 0 {
		return Table{}, &EmptyInputError{}
	}
	return Table{Columns: records[0], Rows: records[1:]}, nil
}

func loadXLSX(path string) (Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return Table{}, &EmptyInputError{}
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return Table{}, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return Table{}, &EmptyInputError{}
	}
	return Table{Columns: rows[0], Rows: rows[1:]}, nil
}
