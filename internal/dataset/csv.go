package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
)

// parseCSV decodes a CSV stream into a table.
// The first record is the header; any read error (including ragged records,
// which encoding/csv rejects) fails the whole parse.
func parseCSV(r io.Reader) (*table, error) {
	reader := csv.NewReader(r)

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyFile
	}

	columns := make([]string, len(records[0]))
	for i, c := range records[0] {
		columns[i] = normalizeColumn(c)
	}

	return &table{
		columns: columns,
		rows:    records[1:],
	}, nil
}
