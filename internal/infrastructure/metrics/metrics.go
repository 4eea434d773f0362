// Package metrics exposes the Prometheus collectors of the lookup service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values.
const (
	OutcomeSuccess   = "success"
	OutcomeNotFound  = "not_found"
	OutcomeInvalid   = "invalid"
	OutcomeError     = "error"
	OutcomeTransport = "transport_error"
)

// Metrics holds all prometheus metrics.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	UpstreamRequests *prometheus.CounterVec
	UpstreamDuration *prometheus.HistogramVec
	Lookups          *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		UpstreamRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "The total number of requests sent to the flight-data API",
		}, []string{"operation", "outcome"}),
		UpstreamDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Time taken by flight-data API requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		Lookups: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lookups_total",
			Help:      "The total number of flight lookups",
		}, []string{"mode", "outcome"}),
	}
}

// ObserveUpstream records one upstream call.
func (m *Metrics) ObserveUpstream(operation, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.UpstreamRequests.WithLabelValues(operation, outcome).Inc()
	m.UpstreamDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// ObserveLookup records one lookup.
func (m *Metrics) ObserveLookup(mode, outcome string) {
	if m == nil {
		return
	}
	m.Lookups.WithLabelValues(mode, outcome).Inc()
}
