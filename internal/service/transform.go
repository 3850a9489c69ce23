package service

import (
	"hash/crc32"
	"time"

	"ratesservice/internal/config"
	"ratesservice/internal/provider"
)

// RateQuery is a validated rate request.
type RateQuery struct {
	UnitName  string
	Arrival   time.Time
	Departure time.Time
	Occupants int
	Ages      []int
}

// queryFromRaw builds a RateQuery from a request that already passed validation.
func queryFromRaw(raw map[string]any) RateQuery {
	q := RateQuery{}
	q.UnitName, _ = raw[FieldUnitName].(string)
	q.Arrival, _ = parseInputDate(raw[FieldArrival])
	q.Departure, _ = parseInputDate(raw[FieldDeparture])
	q.Occupants, _ = asInt(raw[FieldOccupants])

	items, _ := raw[FieldAges].([]any)
	q.Ages = make([]int, 0, len(items))
	for _, item := range items {
		age, _ := asInt(item)
		q.Ages = append(q.Ages, age)
	}
	return q
}

// RequestTransformer maps validated queries onto the provider's request shape.
type RequestTransformer struct {
	adultAgeThreshold int
	unitTypeIDs       []int
}

// NewRequestTransformer creates a RequestTransformer from the rates configuration.
func NewRequestTransformer(cfg config.RatesConfig) *RequestTransformer {
	ids := make([]int, len(cfg.UnitTypeIDs))
	copy(ids, cfg.UnitTypeIDs)
	return &RequestTransformer{
		adultAgeThreshold: cfg.AdultAgeThreshold,
		unitTypeIDs:       ids,
	}
}

// Transform builds the upstream request for q.
func (t *RequestTransformer) Transform(q RateQuery) provider.UpstreamRequest {
	guests := make([]provider.Guest, len(q.Ages))
	for i, age := range q.Ages {
		guests[i] = provider.Guest{AgeGroup: t.AgeGroup(age)}
	}
	return provider.UpstreamRequest{
		UnitTypeID: t.UnitTypeID(q.UnitName),
		Arrival:    formatUpstreamDate(q.Arrival),
		Departure:  formatUpstreamDate(q.Departure),
		Guests:     guests,
	}
}

// AgeGroup buckets an age; the threshold itself counts as adult.
func (t *RequestTransformer) AgeGroup(age int) provider.AgeGroup {
	if age >= t.adultAgeThreshold {
		return provider.AgeGroupAdult
	}
	return provider.AgeGroupChild
}

// UnitTypeID picks a pool entry by the CRC-32 of the unit name.
func (t *RequestTransformer) UnitTypeID(unitName string) int {
	sum := crc32.ChecksumIEEE([]byte(unitName))
	return t.unitTypeIDs[sum%uint32(len(t.unitTypeIDs))]
}
