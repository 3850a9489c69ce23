package service

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ratesservice/internal/provider"
)

func testQuery() RateQuery {
	return RateQuery{
		UnitName:  "Deluxe Suite",
		Arrival:   time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC),
		Departure: time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC),
		Occupants: 3,
		Ages:      []int{25, 30, 8},
	}
}

func upstream(body string) *provider.UpstreamResponse {
	var m map[string]any
	dec := json.NewDecoder(strings.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&m); err != nil {
		panic(err)
	}
	return &provider.UpstreamResponse{Body: m}
}

func TestToResult(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantRate  string
		available bool
	}{
		{"nothing available", `{"Total Charge": 0, "Rooms": 0, "Legs": []}`, "0", false},
		{"empty body", `{}`, "0", false},
		{"total charge", `{"Total Charge": 15000}`, "150", true},
		{"odd cents", `{"Total Charge": 12345}`, "123.45", true},
		{"rooms only", `{"Rooms": 2}`, "0", true},
		{"legs summed when total is zero", `{"Total Charge": 0, "Legs": [{"Total Charge": 5000}, {"Total Charge": 2550}, {}]}`, "75.5", true},
		{"legs summed when total is absent", `{"Legs": [{"Total Charge": 100}]}`, "1", true},
		{"legs ignored when total is nonzero", `{"Total Charge": 20000, "Legs": [{"Total Charge": 5000}]}`, "200", true},
		{"zero legs", `{"Legs": [{"Total Charge": 0}]}`, "0", false},
		{"application error", `{"Error": "Booking failed"}`, "0", false},
		{"negative charge clamps", `{"Total Charge": -500}`, "0", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			up := upstream(tc.body)
			res := ToResult(testQuery(), up)

			assert.Equal(t, tc.wantRate, res.Rate.String())
			assert.Equal(t, tc.available, res.Available)
			assert.Equal(t, "Deluxe Suite", res.UnitName)
			assert.Equal(t, "2024-12-15 to 2024-12-20", res.DateRange)
			assert.False(t, res.Synthetic)
			assert.Same(t, up, res.Raw)
		})
	}
}

func TestToResult_Synthetic(t *testing.T) {
	up := provider.SyntheticResponse(provider.UpstreamRequest{
		UnitTypeID: -2147483637,
		Guests:     make([]provider.Guest, 3),
	})

	res := ToResult(testQuery(), up)
	assert.True(t, res.Synthetic)
	assert.True(t, res.Available)
	assert.Equal(t, "493.5", res.Rate.String())
}
