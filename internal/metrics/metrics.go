// Package metrics contains prometheus collectors of the ledger.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Result label values.
const (
	ResultCommitted = "committed"
	ResultRejected  = "rejected"
	ResultFailed    = "failed"
)

// nolint:gochecknoglobals
var (
	// Operations counts ledger operations by name and result.
	Operations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "agora",
			Name:      "operations_total",
			Help:      "Total number of ledger operations by result",
		},
		[]string{"operation", "result"},
	)

	// Height is the last committed ledger height seen by this process.
	Height = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "agora",
			Name:      "height",
			Help:      "Last committed ledger height",
		},
	)

	// EventsDispatched counts events delivered by the feed.
	EventsDispatched = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "agora",
			Name:      "events_dispatched_total",
			Help:      "Total number of events dispatched to subscribers",
		},
		[]string{"type"},
	)
)

func init() { // nolint:gochecknoinits
	prometheus.MustRegister(Operations)
	prometheus.MustRegister(Height)
	prometheus.MustRegister(EventsDispatched)
}

// Observe counts an operation outcome. Rejected is true when err is a domain error.
func Observe(operation string, err error, rejected bool) {
	switch {
	case err == nil:
		Operations.WithLabelValues(operation, ResultCommitted).Inc()
	case rejected:
		Operations.WithLabelValues(operation, ResultRejected).Inc()
	default:
		Operations.WithLabelValues(operation, ResultFailed).Inc()
	}
}
