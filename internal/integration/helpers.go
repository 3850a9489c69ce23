//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"ratesservice/internal/config"
	"ratesservice/internal/metrics"
	"ratesservice/internal/provider"
	"ratesservice/internal/service"
	"ratesservice/internal/testkit"
)

// newTestService wires the production provider chain against the suite upstream.
func newTestService(t *testing.T) (*service.RateService, *metrics.RateMetrics) {
	t.Helper()

	suite := testkit.Global()
	logger := zap.NewNop().Sugar()
	remote := provider.NewGondwanaProvider(suite.Upstream().URL(), suite.Config().TimeoutSec, true)
	prov := provider.NewFallbackProvider(logger, remote, provider.NewSyntheticProvider())

	m := metrics.NewRateMetrics(prometheus.NewRegistry())
	tr := service.NewRequestTransformer(config.RatesConfig{
		AdultAgeThreshold: 12,
		UnitTypeIDs:       []int{-2147483637, -2147483456},
	})
	return service.NewRateService(prov, service.NewValidator(), tr, m, logger), m
}

// resetUpstream clears the stub's recorded state and skips when running against a real upstream.
func resetUpstream(t *testing.T) *testkit.UpstreamModule {
	t.Helper()

	up := testkit.Global().Upstream()
	if !up.Stubbed() {
		t.Skip("requires the stub upstream")
	}
	up.Reset()
	return up
}

// testContext returns a context with a 30-second deadline tied to the test's cleanup.
func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func validQuery() map[string]any {
	return map[string]any{
		"Unit Name": "Deluxe Suite",
		"Arrival":   "15/12/2024",
		"Departure": "20/12/2024",
		"Occupants": 3,
		"Ages":      []any{25, 30, 8},
	}
}
