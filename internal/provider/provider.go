// Package provider implements the client side of the remote rates provider,
// including the deterministic synthetic response used when it is unreachable.
package provider

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// RatesProvider defines an interface for fetching unit rates from external sources.
type RatesProvider interface {
	GetRate(ctx context.Context, req UpstreamRequest) (*UpstreamResponse, error)
}

// AgeGroup is the coarse occupant category understood by the provider.
type AgeGroup string

// Age groups accepted by the provider.
const (
	AgeGroupAdult AgeGroup = "Adult"
	AgeGroupChild AgeGroup = "Child"
)

// Guest is a single occupant in an upstream request.
type Guest struct {
	AgeGroup AgeGroup `json:"Age Group"`
}

// UpstreamRequest is the payload POSTed to the rates provider.
type UpstreamRequest struct {
	UnitTypeID int     `json:"Unit Type ID"`
	Arrival    string  `json:"Arrival"`
	Departure  string  `json:"Departure"`
	Guests     []Guest `json:"Guests"`
}

// Upstream response field names.
const (
	FieldTotalCharge = "Total Charge"
	FieldRooms       = "Rooms"
	FieldLegs        = "Legs"
)

// UpstreamResponse wraps the loosely structured provider body.
// None of its fields are guaranteed; accessors report absence explicitly.
type UpstreamResponse struct {
	Body      map[string]any
	Synthetic bool
}

// MarshalJSON emits the raw body so the response can be passed through unchanged.
func (r *UpstreamResponse) MarshalJSON() ([]byte, error) {
	if r == nil || r.Body == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(r.Body)
}

// TotalCharge returns the top-level charge in cents.
func (r *UpstreamResponse) TotalCharge() (decimal.Decimal, bool) {
	if r == nil {
		return decimal.Zero, false
	}
	return numberField(r.Body, FieldTotalCharge)
}

// Rooms returns the number of rooms reported available.
func (r *UpstreamResponse) Rooms() (decimal.Decimal, bool) {
	if r == nil {
		return decimal.Zero, false
	}
	return numberField(r.Body, FieldRooms)
}

// LegCharges returns the charge of every leg in cents, defaulting each to zero.
// The second result is false when the body has no leg list at all.
func (r *UpstreamResponse) LegCharges() ([]decimal.Decimal, bool) {
	if r == nil {
		return nil, false
	}
	raw, ok := r.Body[FieldLegs].([]any)
	if !ok {
		return nil, false
	}
	charges := make([]decimal.Decimal, 0, len(raw))
	for _, item := range raw {
		leg, _ := item.(map[string]any)
		charge, _ := numberField(leg, FieldTotalCharge)
		charges = append(charges, charge)
	}
	return charges, true
}

func numberField(m map[string]any, key string) (decimal.Decimal, bool) {
	v, ok := m[key]
	if !ok {
		return decimal.Zero, false
	}
	return toDecimal(v)
}

func toDecimal(v any) (decimal.Decimal, bool) {
	switch x := v.(type) {
	case json.Number:
		d, err := decimal.NewFromString(x.String())
		return d, err == nil
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(x))
		return d, err == nil
	case float64:
		return decimal.NewFromFloat(x), true
	case int:
		return decimal.NewFromInt(int64(x)), true
	case int64:
		return decimal.NewFromInt(x), true
	case decimal.Decimal:
		return x, true
	default:
		return decimal.Zero, false
	}
}
