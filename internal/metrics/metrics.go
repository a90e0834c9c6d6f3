package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	// ReportsTotal counts report requests by outcome: ok, incomplete, error, cached.
	ReportsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "biomass",
		Subsystem: "report",
		Name:      "requests_total",
		Help:      "Total number of report requests, labeled by format and result.",
	}, []string{"format", "result"})

	// BuildDurationSeconds is layout + rasterize + serialize time per report.
	BuildDurationSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "biomass",
		Subsystem: "report",
		Name:      "build_duration_seconds",
		Help:      "Time to build and serialize a report.",
		Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
	}, []string{"format"})

	// WorkbookBytes is the size of rendered workbooks.
	WorkbookBytes = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "biomass",
		Subsystem: "report",
		Name:      "workbook_bytes",
		Help:      "Size of rendered xlsx workbooks in bytes.",
		Buckets:   prometheus.ExponentialBuckets(16*1024, 2, 8),
	})

	// OperatingYears is the year count of the last completed run reported.
	OperatingYears = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "biomass",
		Subsystem: "report",
		Name:      "last_operating_years",
		Help:      "Operating years covered by the most recent complete run.",
	})
)

// Register registers report metrics with the default Prometheus registry.
// Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			ReportsTotal,
			BuildDurationSeconds,
			WorkbookBytes,
			OperatingYears,
		)
	})
}
