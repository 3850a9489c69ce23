// Package service implements the rate query pipeline: validation, request
// transformation, the provider call and response interpretation.
package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"ratesservice/internal/metrics"
	"ratesservice/internal/provider"
)

// RateServiceInterface defines the operations available for rate queries.
type RateServiceInterface interface {
	GetRate(ctx context.Context, raw map[string]any) (*RateResult, error)
	ListUnits() []Unit
}

// RateService defines business logic for rate queries
type RateService struct {
	provider    provider.RatesProvider
	validator   Validator
	transformer *RequestTransformer
	metrics     *metrics.RateMetrics
	log         *zap.SugaredLogger
}

// NewRateService creates a new RateService
func NewRateService(prov provider.RatesProvider, validator Validator, transformer *RequestTransformer, m *metrics.RateMetrics, logger *zap.SugaredLogger) *RateService {
	return &RateService{
		provider:    prov,
		validator:   validator,
		transformer: transformer,
		metrics:     m,
		log:         logger,
	}
}

// GetRate sanitizes and validates raw, queries the provider and builds the client-facing result.
// Validation failures are returned as *ValidationError before any provider interaction.
func (s *RateService) GetRate(ctx context.Context, raw map[string]any) (*RateResult, error) {
	sanitized, _ := Sanitize(raw).(map[string]any)

	if details := s.validator.Validate(sanitized); len(details) > 0 {
		s.metrics.ObserveRequest(metrics.OutcomeInvalid)
		s.log.Infow("Rate request rejected", "errors", details)
		return nil, &ValidationError{Details: details}
	}

	q := queryFromRaw(sanitized)
	upReq := s.transformer.Transform(q)

	start := time.Now()
	upResp, err := s.provider.GetRate(ctx, upReq)
	s.metrics.ObserveUpstream(start)
	if err != nil {
		s.metrics.ObserveRequest(metrics.OutcomeError)
		s.log.Errorw("Rates provider error",
			"unit_name", q.UnitName,
			"unit_type_id", upReq.UnitTypeID,
			"arrival", upReq.Arrival,
			"departure", upReq.Departure,
			"error", err)
		return nil, ErrInternal
	}

	if upResp != nil && upResp.Synthetic {
		s.metrics.ObserveFallback()
		s.log.Warnw("Serving synthetic rate", "unit_name", q.UnitName, "unit_type_id", upReq.UnitTypeID)
	}

	result := ToResult(q, upResp)
	s.metrics.ObserveRequest(metrics.OutcomeOK)
	s.log.Infow("Rate resolved",
		"unit_name", result.UnitName,
		"rate", result.Rate.String(),
		"available", result.Available,
		"synthetic", result.Synthetic)
	return result, nil
}

// ListUnits returns the catalog of bookable units.
func (s *RateService) ListUnits() []Unit {
	return Units()
}
