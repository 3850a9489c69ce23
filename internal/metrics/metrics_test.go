package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRateMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewRateMetrics(reg)

	m.ObserveRequest(OutcomeOK)
	m.ObserveRequest(OutcomeOK)
	m.ObserveRequest(OutcomeInvalid)
	m.ObserveFallback()
	m.ObserveUpstream(time.Now())

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues(OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues(OutcomeInvalid)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FallbackTotal))
	assert.Equal(t, 1, testutil.CollectAndCount(m.UpstreamDuration))
}

func TestRateMetrics_Nil(t *testing.T) {
	var m *RateMetrics
	assert.NotPanics(t, func() {
		m.ObserveRequest(OutcomeError)
		m.ObserveFallback()
		m.ObserveUpstream(time.Now())
	})
}
