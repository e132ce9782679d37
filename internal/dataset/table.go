package dataset

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// table is the format-independent shape of a parsed upload:
// normalized column names plus string cells, one slice per data row.
// Every row is padded to len(columns).
type table struct {
	columns []string
	rows    [][]string
}

// index returns the position of col, or -1 if the table lacks it.
func (t *table) index(col string) int {
	for i, c := range t.columns {
		if c == col {
			return i
		}
	}
	return -1
}

// normalizeColumn lower-cases and trims a header cell so uploads with
// "Company" or " DATE " headers still match the required column set.
func normalizeColumn(c string) string {
	return strings.ToLower(strings.TrimSpace(c))
}

// dateLayouts are the textual date representations accepted in uploads.
// Exported CSVs use the first, so an export always round-trips.
var dateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// parseDate parses a date cell. Textual layouts are tried first; a numeric
// value is interpreted as an Excel serial date, which is how spreadsheet
// libraries commonly surface date cells.
func parseDate(s string) (time.Time, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return time.Time{}, fmt.Errorf("parse date: empty value")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	if serial, err := strconv.ParseFloat(v, 64); err == nil {
		t, err := excelize.ExcelDateToTime(serial, false)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("parse date %q: unrecognized format", s)
}
