// Package metrics exposes Prometheus collectors for document parsing and a
// rolling latency window served by the stats endpoint.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ParsesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "edgarparse_parses_total",
			Help: "Total number of parsed documents",
		},
		[]string{"kind", "status"},
	)

	ParseErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "edgarparse_parse_errors_total",
			Help: "Parse failures by error kind",
		},
		[]string{"kind", "error"},
	)

	ParseDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "edgarparse_parse_duration_seconds",
			Help:    "Time taken to parse one document",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
		},
		[]string{"kind"},
	)

	BytesParsed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "edgarparse_bytes_parsed_total",
			Help: "Total bytes of XML input parsed",
		},
		[]string{"kind"},
	)

	ItemsExtracted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "edgarparse_items_extracted_total",
			Help: "Facts, transactions, holdings or table entries extracted",
		},
		[]string{"kind"},
	)

	JobsQueued = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "edgarparse_jobs_queued",
			Help: "Parse jobs waiting for a worker",
		},
	)
)

// Recorder feeds both the Prometheus collectors and a ParseStats window.
type Recorder struct {
	stats *ParseStats
}

func NewRecorder(stats *ParseStats) *Recorder {
	return &Recorder{stats: stats}
}

// Stats returns the rolling window, which may be nil.
func (r *Recorder) Stats() *ParseStats {
	return r.stats
}

// RecordParse records one parse attempt. errKind is empty on success.
func (r *Recorder) RecordParse(kind string, size int, items int, duration time.Duration, errKind string) {
	status := "ok"
	if errKind != "" {
		status = "error"
		ParseErrors.WithLabelValues(kind, errKind).Inc()
	} else {
		ItemsExtracted.WithLabelValues(kind).Add(float64(items))
	}
	ParsesTotal.WithLabelValues(kind, status).Inc()
	ParseDuration.WithLabelValues(kind).Observe(duration.Seconds())
	BytesParsed.WithLabelValues(kind).Add(float64(size))

	if r.stats != nil {
		r.stats.Record(kind, duration.Milliseconds(), errKind != "")
	}
}
