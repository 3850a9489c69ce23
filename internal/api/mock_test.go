package api

import (
	"context"

	"ratesservice/internal/service"
)

// mockRateService implements service.RateServiceInterface for testing.
type mockRateService struct {
	getRateFunc   func(ctx context.Context, raw map[string]any) (*service.RateResult, error)
	listUnitsFunc func() []service.Unit
}

func (m *mockRateService) GetRate(ctx context.Context, raw map[string]any) (*service.RateResult, error) {
	return m.getRateFunc(ctx, raw)
}

func (m *mockRateService) ListUnits() []service.Unit {
	return m.listUnitsFunc()
}
