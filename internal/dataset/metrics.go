package dataset

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	loadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_loads_total",
			Help: "Total number of batch resolutions by origin",
		},
		[]string{"origin"},
	)

	parseFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_parse_failures_total",
			Help: "Total number of upload parse failures by format",
		},
		[]string{"format"},
	)

	schemaFallbacksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dataset_schema_fallbacks_total",
			Help: "Total number of uploads discarded for missing required columns",
		},
	)

	exportsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dataset_exports_total",
			Help: "Total number of CSV exports",
		},
	)

	exportedRowsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dataset_exported_rows_total",
			Help: "Total number of mention rows written to CSV exports",
		},
	)
)

// RecordLoad records a batch resolution by origin ("sample" or "upload").
func RecordLoad(origin string) {
	loadsTotal.WithLabelValues(origin).Inc()
}

// RecordParseFailure records an upload parse failure by format ("csv", "xlsx", "unknown").
func RecordParseFailure(format string) {
	parseFailuresTotal.WithLabelValues(format).Inc()
}

// RecordSchemaFallback records an upload discarded for missing columns.
func RecordSchemaFallback() {
	schemaFallbacksTotal.Inc()
}

// RecordExport records one CSV export of n rows.
func RecordExport(n int) {
	exportsTotal.Inc()
	exportedRowsTotal.Add(float64(n))
}
