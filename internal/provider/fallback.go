package provider

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

var _ RatesProvider = (*FallbackProvider)(nil)

// FallbackProvider calls providers sequentially, one attempt each, until one succeeds.
type FallbackProvider struct {
	providers []RatesProvider
	log       *zap.SugaredLogger
}

// NewFallbackProvider creates a new FallbackProvider with the given list of providers.
func NewFallbackProvider(logger *zap.SugaredLogger, providers ...RatesProvider) *FallbackProvider {
	return &FallbackProvider{
		providers: providers,
		log:       logger,
	}
}

// GetRate calls providers sequentially until one succeeds.
func (p *FallbackProvider) GetRate(ctx context.Context, req UpstreamRequest) (*UpstreamResponse, error) {
	var errs []error
	for i, prov := range p.providers {
		resp, err := prov.GetRate(ctx, req)
		if err == nil {
			return resp, nil
		}
		p.log.Warnw("Rates provider failed, trying next",
			"provider_index", i,
			"unit_type_id", req.UnitTypeID,
			"error", err)
		errs = append(errs, err)
	}

	return nil, fmt.Errorf("all providers failed: %w", errors.Join(errs...))
}
