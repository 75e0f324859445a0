package pricing_test

import (
	"testing"

	"github.com/furnishhq/quotation-api/internal/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var standardRates = pricing.Rates{Making: 180, Fitting: 300, Track: 180, Hook: 200}

// Scenario from a real quotation: 146x90 window, fabric at 500/m, one track,
// twenty hooks.
func TestWindowCostStandardScenario(t *testing.T) {
	width, height := 146.0, 90.0
	panna := pricing.PannaCount(width)
	meters := pricing.Meters(width, height)

	require.Equal(t, 8, panna)
	require.Equal(t, 9.83, meters)

	b := pricing.WindowCost(pricing.Measurements{
		Meters:             meters,
		FabricCostPerMeter: 500,
		PannaCount:         panna,
		TrackCount:         1,
		HookCount:          20,
	}, standardRates)

	assert.InDelta(t, 4915, b.FabricCost, 1e-9)
	assert.InDelta(t, 180, b.TrackCost, 1e-9)
	assert.InDelta(t, 1440, b.MakingCost, 1e-9)
	assert.InDelta(t, 2400, b.FittingCost, 1e-9)
	assert.InDelta(t, 4000, b.HookCost, 1e-9)
	assert.InDelta(t, 12935, b.Total, 1e-9)
}

func TestWindowCostTotalIsExactSum(t *testing.T) {
	b := pricing.WindowCost(pricing.Measurements{
		Meters:             7.37,
		FabricCostPerMeter: 423.5,
		PannaCount:         5,
		TrackCount:         2,
		HookCount:          14,
	}, standardRates)

	sum := b.FabricCost + b.TrackCost + b.MakingCost + b.FittingCost + b.HookCost
	assert.Equal(t, sum, b.Total)
}

// A window with missing numeric fields still prices the terms it has.
func TestWindowCostMissingFieldsContributeZero(t *testing.T) {
	tests := []struct {
		name string
		m    pricing.Measurements
		want pricing.Breakdown
	}{
		{
			name: "no track count",
			m:    pricing.Measurements{Meters: 2, FabricCostPerMeter: 100, PannaCount: 1},
			want: pricing.Breakdown{FabricCost: 200, MakingCost: 180, FittingCost: 300, Total: 680},
		},
		{
			name: "no fabric cost",
			m:    pricing.Measurements{Meters: 2, PannaCount: 1, TrackCount: 1, HookCount: 4},
			want: pricing.Breakdown{TrackCost: 180, MakingCost: 180, FittingCost: 300, HookCost: 800, Total: 1460},
		},
		{
			name: "everything missing",
			m:    pricing.Measurements{},
			want: pricing.Breakdown{},
		},
		{
			name: "negative values clamp to zero",
			m:    pricing.Measurements{Meters: -3, FabricCostPerMeter: 100, PannaCount: -2, TrackCount: 1},
			want: pricing.Breakdown{TrackCost: 180, Total: 180},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := pricing.WindowCost(tc.m, standardRates)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestWindowCostZeroRates(t *testing.T) {
	b := pricing.WindowCost(pricing.Measurements{
		Meters:             9.83,
		FabricCostPerMeter: 500,
		PannaCount:         8,
		TrackCount:         1,
		HookCount:          20,
	}, pricing.Rates{})

	assert.InDelta(t, 4915, b.FabricCost, 1e-9)
	assert.InDelta(t, 4915, b.Total, 1e-9)
}
