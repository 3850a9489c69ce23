package provider

import (
	"context"

	"github.com/shopspring/decimal"
)

var _ RatesProvider = (*SyntheticProvider)(nil)

// Synthetic response constants, all in cents.
const (
	syntheticBaseCents     = 10000
	syntheticUnitTypeCents = 50
	syntheticGuestCents    = 2500
	syntheticMessage       = "Mock response - Remote API unavailable"
)

// SyntheticProvider answers every query with a deterministic mock rate.
type SyntheticProvider struct{}

// NewSyntheticProvider creates a new SyntheticProvider.
func NewSyntheticProvider() *SyntheticProvider {
	return &SyntheticProvider{}
}

// GetRate never fails.
func (p *SyntheticProvider) GetRate(_ context.Context, req UpstreamRequest) (*UpstreamResponse, error) {
	return SyntheticResponse(req), nil
}

// SyntheticResponse computes 100 + (|unitTypeID| mod 1000)/100*50 + guests*25.
// The charge is carried in cents under "Total Charge" so it reads like a real answer.
func SyntheticResponse(req UpstreamRequest) *UpstreamResponse {
	cents := int64(syntheticBaseCents) +
		int64(absMod(req.UnitTypeID, 1000))*syntheticUnitTypeCents +
		int64(len(req.Guests))*syntheticGuestCents
	rate := decimal.New(cents, -2)

	return &UpstreamResponse{
		Synthetic: true,
		Body: map[string]any{
			FieldTotalCharge: cents,
			"Rate":           rate.InexactFloat64(),
			"Availability":   true,
			"Currency":       "USD",
			"Message":        syntheticMessage,
			"Synthetic":      true,
			"Payload":        req,
		},
	}
}

func absMod(v, m int) int {
	r := v % m
	if r < 0 {
		r = -r
	}
	return r
}
