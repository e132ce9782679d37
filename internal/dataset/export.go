package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"negative-mentions/internal/domain/entity"
)

// ExportFilename is the download filename for exported results.
const ExportFilename = "negative_mentions.csv"

// ExportHeader is the column order of exported CSV files, matching the
// in-memory record shape.
var ExportHeader = []string{"company", "source", "date", "text", "link", "score"}

// ExportCSV writes the mentions as UTF-8 CSV with the ExportHeader columns.
// Dates are written as calendar dates and scores with full float precision, so
// re-parsing an export reproduces the records field for field.
func ExportCSV(w io.Writer, mentions []entity.Mention) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(ExportHeader); err != nil {
		return fmt.Errorf("export csv: write header: %w", err)
	}
	for i, m := range mentions {
		record := []string{
			m.Company,
			m.Source,
			m.Date.Format(time.DateOnly),
			m.Text,
			m.Link,
			strconv.FormatFloat(m.Score, 'g', -1, 64),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("export csv: write record %d: %w", i, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export csv: flush: %w", err)
	}
	RecordExport(len(mentions))
	return nil
}
