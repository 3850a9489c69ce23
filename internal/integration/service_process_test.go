//go:build integration

package integration

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ratesservice/internal/provider"
	"ratesservice/internal/service"
	"ratesservice/internal/testkit"
)

func TestGetRate_FullPipeline(t *testing.T) {
	up := resetUpstream(t)
	ctx := testContext(t)
	svc, m := newTestService(t)

	res, err := svc.GetRate(ctx, validQuery())
	require.NoError(t, err)

	assert.Equal(t, "Deluxe Suite", res.UnitName)
	assert.Equal(t, "2024-12-15 to 2024-12-20", res.DateRange)
	assert.True(t, res.Available)
	assert.False(t, res.Synthetic)
	assert.Equal(t, "375", res.Rate.String())

	last := up.LastRequest()
	require.NotNil(t, last)
	assert.Equal(t, "2024-12-15", last.Arrival)
	assert.Equal(t, "2024-12-20", last.Departure)
	require.Len(t, last.Guests, 3)
	assert.Equal(t, provider.AgeGroupAdult, last.Guests[0].AgeGroup)
	assert.Equal(t, provider.AgeGroupAdult, last.Guests[1].AgeGroup)
	assert.Equal(t, provider.AgeGroupChild, last.Guests[2].AgeGroup)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("ok")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.UpstreamDuration))
}

func TestGetRate_OutageFallsBackToSynthetic(t *testing.T) {
	up := resetUpstream(t)
	ctx := testContext(t)
	svc, m := newTestService(t)

	up.SetDown(true)
	res, err := svc.GetRate(ctx, validQuery())
	require.NoError(t, err)

	assert.True(t, res.Synthetic)
	assert.True(t, res.Available)
	assert.True(t, res.Rate.IsPositive())
	assert.Equal(t, int64(1), up.Calls())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FallbackTotal))
}

func TestGetRate_SameUnitSameUpstreamID(t *testing.T) {
	up := resetUpstream(t)
	ctx := testContext(t)
	svc, _ := newTestService(t)

	_, err := svc.GetRate(ctx, validQuery())
	require.NoError(t, err)
	first := up.LastRequest().UnitTypeID

	_, err = svc.GetRate(ctx, validQuery())
	require.NoError(t, err)
	assert.Equal(t, first, up.LastRequest().UnitTypeID)
}

func TestGetRate_InvalidQueryNeverReachesUpstream(t *testing.T) {
	up := resetUpstream(t)
	ctx := testContext(t)
	svc, m := newTestService(t)

	q := validQuery()
	q["Ages"] = []any{25, 30}
	_, err := svc.GetRate(ctx, q)

	var vErr *service.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Details, "Number of ages must match occupants count")
	assert.Zero(t, up.Calls())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("invalid")))
}

func TestGetRate_ExternalUpstream(t *testing.T) {
	up := testkit.Global().Upstream()
	if up.Stubbed() {
		t.Skip("set TEST_UPSTREAM_URL to run against a real provider")
	}
	svc, _ := newTestService(t)

	res, err := svc.GetRate(testContext(t), validQuery())
	require.NoError(t, err)
	assert.Equal(t, "Deluxe Suite", res.UnitName)
	assert.NotNil(t, res.Raw)
}
