package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"ratesservice/internal/config"
	"ratesservice/internal/provider"
)

func TestAgeGroup(t *testing.T) {
	tr := NewRequestTransformer(testRatesCfg)

	tests := []struct {
		age  int
		want provider.AgeGroup
	}{
		{1, provider.AgeGroupChild},
		{11, provider.AgeGroupChild},
		{12, provider.AgeGroupAdult},
		{13, provider.AgeGroupAdult},
		{150, provider.AgeGroupAdult},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tr.AgeGroup(tc.age), "age %d", tc.age)
	}

	custom := NewRequestTransformer(config.RatesConfig{AdultAgeThreshold: 18, UnitTypeIDs: []int{1}})
	assert.Equal(t, provider.AgeGroupChild, custom.AgeGroup(17))
	assert.Equal(t, provider.AgeGroupAdult, custom.AgeGroup(18))
}

func TestUnitTypeID(t *testing.T) {
	tr := NewRequestTransformer(testRatesCfg)

	t.Run("deterministic", func(t *testing.T) {
		for _, name := range []string{"Deluxe Suite", "Standard Room", "Villa", "x"} {
			first := tr.UnitTypeID(name)
			assert.Contains(t, testRatesCfg.UnitTypeIDs, first)
			for i := 0; i < 5; i++ {
				assert.Equal(t, first, tr.UnitTypeID(name))
			}
			assert.Equal(t, first, NewRequestTransformer(testRatesCfg).UnitTypeID(name))
		}
	})

	t.Run("crc32 modulo pool size", func(t *testing.T) {
		// crc32("abc") = 0x352441c2, crc32("a") = 0xe8b7be43
		assert.Equal(t, testRatesCfg.UnitTypeIDs[0], tr.UnitTypeID("abc"))
		assert.Equal(t, testRatesCfg.UnitTypeIDs[1], tr.UnitTypeID("a"))
		assert.Equal(t, testRatesCfg.UnitTypeIDs[0], tr.UnitTypeID(""))
	})

	t.Run("single entry pool", func(t *testing.T) {
		single := NewRequestTransformer(config.RatesConfig{AdultAgeThreshold: 12, UnitTypeIDs: []int{42}})
		assert.Equal(t, 42, single.UnitTypeID("Deluxe Suite"))
		assert.Equal(t, 42, single.UnitTypeID("Villa"))
	})

	t.Run("pool copied at construction", func(t *testing.T) {
		cfg := config.RatesConfig{AdultAgeThreshold: 12, UnitTypeIDs: []int{7}}
		tr := NewRequestTransformer(cfg)
		cfg.UnitTypeIDs[0] = 8
		assert.Equal(t, 7, tr.UnitTypeID("anything"))
	})
}

func TestTransform(t *testing.T) {
	tr := NewRequestTransformer(testRatesCfg)
	q := queryFromRaw(map[string]any{
		"Unit Name": "Deluxe Suite",
		"Arrival":   "15/12/2024",
		"Departure": "20/12/2024",
		"Occupants": json.Number("3"),
		"Ages":      []any{json.Number("25"), json.Number("30"), json.Number("8")},
	})

	assert.Equal(t, 3, q.Occupants)
	assert.Equal(t, []int{25, 30, 8}, q.Ages)

	req := tr.Transform(q)
	assert.Equal(t, "2024-12-15", req.Arrival)
	assert.Equal(t, "2024-12-20", req.Departure)
	assert.Equal(t, tr.UnitTypeID("Deluxe Suite"), req.UnitTypeID)
	assert.Equal(t, []provider.Guest{
		{AgeGroup: provider.AgeGroupAdult},
		{AgeGroup: provider.AgeGroupAdult},
		{AgeGroup: provider.AgeGroupChild},
	}, req.Guests)

	raw, err := json.Marshal(req)
	assert.NoError(t, err)
	assert.JSONEq(t,
		`{"Unit Type ID": `+jsonInt(req.UnitTypeID)+`, "Arrival": "2024-12-15", "Departure": "2024-12-20",
		  "Guests": [{"Age Group": "Adult"}, {"Age Group": "Adult"}, {"Age Group": "Child"}]}`,
		string(raw))
}

func jsonInt(n int) string {
	b, _ := json.Marshal(n)
	return string(b)
}
