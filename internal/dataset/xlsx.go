package dataset

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// parseXLSX decodes a spreadsheet stream into a table.
// Only the first sheet is read. Trailing empty cells are padded so every row
// matches the header width (excelize drops them from GetRows).
func parseXLSX(r io.Reader) (*table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyFile
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("parse spreadsheet: read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyFile
	}

	columns := make([]string, len(rows[0]))
	for i, c := range rows[0] {
		columns[i] = normalizeColumn(c)
	}

	data := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		for len(row) < len(columns) {
			row = append(row, "")
		}
		data = append(data, row[:len(columns)])
	}

	return &table{columns: columns, rows: data}, nil
}
