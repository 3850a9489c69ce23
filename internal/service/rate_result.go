package service

import (
	"github.com/shopspring/decimal"

	"ratesservice/internal/provider"
)

var centsPerUnit = decimal.NewFromInt(100)

// RateResult represents the client-facing answer to a rate query.
//   - Rate is in major currency units and never negative.
//   - Synthetic is set when Raw came from the local fallback instead of the provider.
type RateResult struct {
	UnitName  string
	Rate      decimal.Decimal
	DateRange string
	Available bool
	Synthetic bool
	Raw       *provider.UpstreamResponse
}

// ToResult interprets an upstream (or synthetic) response for the original query.
func ToResult(q RateQuery, up *provider.UpstreamResponse) *RateResult {
	charge, _ := up.TotalCharge()
	rooms, _ := up.Rooms()
	legs, hasLegs := up.LegCharges()

	rate := charge.Div(centsPerUnit)
	if charge.IsZero() && hasLegs {
		sum := decimal.Zero
		for _, leg := range legs {
			sum = sum.Add(leg)
		}
		rate = sum.Div(centsPerUnit)
	}

	// every signal is evaluated; any one of them makes the unit available
	available := false
	if charge.IsPositive() {
		available = true
	}
	if rooms.IsPositive() {
		available = true
	}
	for _, leg := range legs {
		if leg.IsPositive() {
			available = true
		}
	}
	if rate.IsPositive() {
		available = true
	}

	if rate.IsNegative() {
		rate = decimal.Zero
	}

	return &RateResult{
		UnitName:  q.UnitName,
		Rate:      rate,
		DateRange: formatUpstreamDate(q.Arrival) + " to " + formatUpstreamDate(q.Departure),
		Available: available,
		Synthetic: up != nil && up.Synthetic,
		Raw:       up,
	}
}
