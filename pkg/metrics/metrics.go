// Package metrics holds prometheus collectors shared across the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets provides a common set of histogram buckets in seconds reused
// across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

//nolint: gochecknoglobals
var (
	// ImportsTotal counts finished BGG import jobs by outcome
	// (completed, failed, snoozed, skipped).
	ImportsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "homecatalog",
		Subsystem: "importer",
		Name:      "imports_total",
		Help:      "Finished BGG import jobs by outcome.",
	}, []string{"outcome"})

	// ImportDuration observes the wall time of a single import attempt,
	// including the BGG API round trip.
	ImportDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "homecatalog",
		Subsystem: "importer",
		Name:      "import_duration_seconds",
		Help:      "Duration of a single BGG import attempt.",
		Buckets:   DefaultBuckets,
	})

	// RateLimitWaits counts how often an import had to wait for the
	// cooperative BGG rate budget.
	RateLimitWaits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "homecatalog",
		Subsystem: "importer",
		Name:      "rate_limit_waits_total",
		Help:      "Times an import blocked waiting for the BGG rate budget.",
	})
)
