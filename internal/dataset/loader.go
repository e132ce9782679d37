// Package dataset produces the active mention batch for a session: synthetic
// sample batches, uploaded CSV/XLSX batches with schema validation and score
// backfill, and CSV export of filtered results.
package dataset

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"negative-mentions/internal/domain/entity"
	"negative-mentions/internal/sample"
	"negative-mentions/internal/sentiment"
)

// Batch sizes for the generated sample data.
// SampleBatchSize is used when sample data is explicitly enabled;
// FallbackBatchSize is used when an upload is absent or discarded.
const (
	SampleBatchSize   = 500
	FallbackBatchSize = 200
)

// RequiredColumns are the columns an upload must carry to be accepted.
// The score column is optional; missing scores are computed from the text.
var RequiredColumns = []string{"company", "source", "date", "text", "link"}

// Origin identifies where the active batch came from.
type Origin string

const (
	// OriginSample marks a synthetically generated batch.
	OriginSample Origin = "sample"
	// OriginUpload marks a batch parsed from a user-supplied file.
	OriginUpload Origin = "upload"
)

// Batch is the active mention set for one session, plus load diagnostics.
// Once built it is immutable; all downstream views (filtered, paged,
// aggregated) are read-only projections.
type Batch struct {
	Mentions []entity.Mention
	Origin   Origin
	Warning  string // set when an upload was discarded for missing columns
}

// Loader resolves the active batch for a render pass.
type Loader struct {
	Generator *sample.Generator
	Scorer    *sentiment.Scorer
	Logger    *slog.Logger
}

// Active resolves the batch per the session's upload state.
// An uploaded batch always wins; otherwise the sample generator serves
// SampleBatchSize records when sample data is enabled and FallbackBatchSize
// when it is not.
func (l *Loader) Active(useSample bool, uploaded *Batch) Batch {
	if uploaded != nil {
		RecordLoad(string(uploaded.Origin))
		return *uploaded
	}
	size := FallbackBatchSize
	if useSample {
		size = SampleBatchSize
	}
	RecordLoad(string(OriginSample))
	return Batch{
		Mentions: l.Generator.Batch(size),
		Origin:   OriginSample,
	}
}

// FromUpload parses an uploaded file into a batch.
//
// A file that cannot be parsed at all is a fatal error for the render pass:
// the error is returned and no batch is produced. A file that parses but lacks
// required columns is recoverable: the upload is discarded, a fresh
// FallbackBatchSize sample batch is substituted, and the returned batch carries
// a warning naming the missing columns.
//
// Records without a score get one computed from their text; dates are
// normalized to calendar dates regardless of the source representation.
func (l *Loader) FromUpload(filename string, r io.Reader) (Batch, error) {
	tbl, format, err := parseFile(filename, r)
	if err != nil {
		RecordParseFailure(format)
		return Batch{}, err
	}

	if missing := missingColumns(tbl.columns); len(missing) > 0 {
		l.logger().Warn("upload discarded: required columns missing",
			slog.String("filename", filename),
			slog.Any("missing", missing))
		RecordSchemaFallback()
		return Batch{
			Mentions: l.Generator.Batch(FallbackBatchSize),
			Origin:   OriginSample,
			Warning:  fmt.Sprintf("uploaded data missing required columns (%s); showing sample data instead", strings.Join(missing, ", ")),
		}, nil
	}

	mentions, err := l.toMentions(tbl)
	if err != nil {
		RecordParseFailure(format)
		return Batch{}, err
	}

	l.logger().Info("upload accepted",
		slog.String("filename", filename),
		slog.Int("records", len(mentions)))
	return Batch{Mentions: mentions, Origin: OriginUpload}, nil
}

// parseFile dispatches on the file extension.
func parseFile(filename string, r io.Reader) (*table, string, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".csv":
		tbl, err := parseCSV(r)
		return tbl, "csv", err
	case ".xlsx", ".xlsm", ".xls":
		tbl, err := parseXLSX(r)
		return tbl, "xlsx", err
	default:
		return nil, "unknown", fmt.Errorf("%w: %q (expected .csv or .xlsx)", ErrUnsupportedFormat, ext)
	}
}

// missingColumns returns the required columns absent from cols, in
// RequiredColumns order.
func missingColumns(cols []string) []string {
	present := make(map[string]bool, len(cols))
	for _, c := range cols {
		present[c] = true
	}
	var missing []string
	for _, c := range RequiredColumns {
		if !present[c] {
			missing = append(missing, c)
		}
	}
	return missing
}

// toMentions converts a parsed table into mention records.
// Row-level failures (bad date, unparseable or out-of-range score, missing
// company or source) are fatal, matching the no-partial-output contract for
// uploads.
func (l *Loader) toMentions(tbl *table) ([]entity.Mention, error) {
	companyIdx := tbl.index("company")
	sourceIdx := tbl.index("source")
	dateIdx := tbl.index("date")
	textIdx := tbl.index("text")
	linkIdx := tbl.index("link")
	scoreIdx := tbl.index("score")

	mentions := make([]entity.Mention, 0, len(tbl.rows))
	for i, row := range tbl.rows {
		// Header is row 1, so data row i is line i+2 in the file.
		line := i + 2

		date, err := parseDate(row[dateIdx])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}

		m := entity.Mention{
			Company: strings.TrimSpace(row[companyIdx]),
			Source:  strings.TrimSpace(row[sourceIdx]),
			Date:    entity.NormalizeDate(date),
			Text:    row[textIdx],
			Link:    strings.TrimSpace(row[linkIdx]),
		}

		if scoreIdx >= 0 && strings.TrimSpace(row[scoreIdx]) != "" {
			score, err := strconv.ParseFloat(strings.TrimSpace(row[scoreIdx]), 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: parse score %q: %w", line, row[scoreIdx], err)
			}
			m.Score = score
		} else {
			m.Score = l.Scorer.Score(m.Text)
		}

		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}

		mentions = append(mentions, m)
	}
	return mentions, nil
}

func (l *Loader) logger() *slog.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return slog.Default()
}
