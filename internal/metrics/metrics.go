// Package metrics defines the Prometheus instruments of the rates pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Request outcomes.
const (
	OutcomeOK      = "ok"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

// RateMetrics holds the pipeline counters. A nil *RateMetrics records nothing.
type RateMetrics struct {
	RequestsTotal    *prometheus.CounterVec
	FallbackTotal    prometheus.Counter
	UpstreamDuration prometheus.Histogram
}

// NewRateMetrics registers the pipeline metrics on reg.
func NewRateMetrics(reg prometheus.Registerer) *RateMetrics {
	factory := promauto.With(reg)
	return &RateMetrics{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rates_requests_total",
				Help: "Rate queries handled, by outcome",
			},
			[]string{"outcome"},
		),
		FallbackTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "rates_fallback_total",
				Help: "Rate queries answered with the synthetic response",
			},
		),
		UpstreamDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "rates_upstream_duration_seconds",
				Help:    "Time spent waiting on the rates provider, fallback included",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
}

// ObserveRequest counts one handled query.
func (m *RateMetrics) ObserveRequest(outcome string) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(outcome).Inc()
}

// ObserveFallback counts one synthetic answer.
func (m *RateMetrics) ObserveFallback() {
	if m == nil {
		return
	}
	m.FallbackTotal.Inc()
}

// ObserveUpstream records the duration of a provider call started at start.
func (m *RateMetrics) ObserveUpstream(start time.Time) {
	if m == nil {
		return
	}
	m.UpstreamDuration.Observe(time.Since(start).Seconds())
}
