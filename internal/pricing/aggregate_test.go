package pricing_test

import (
	"testing"

	"github.com/furnishhq/quotation-api/internal/pricing"
	"github.com/stretchr/testify/assert"
)

func sampleWindows() [][]pricing.Measurements {
	return [][]pricing.Measurements{
		{}, // empty room
		{
			{Meters: 9.83, FabricCostPerMeter: 500, PannaCount: 8, TrackCount: 1, HookCount: 20},
			{Meters: 5.21, FabricCostPerMeter: 350, PannaCount: 4, TrackCount: 2, HookCount: 12},
		},
		{
			{Meters: 3.75, FabricCostPerMeter: 275.5, PannaCount: 3, TrackCount: 1, HookCount: 8},
		},
	}
}

func TestAggregateEmpty(t *testing.T) {
	s := pricing.Aggregate(nil, standardRates)
	assert.Equal(t, pricing.Summary{}, s)
}

// An empty room contributes nothing; the project total is the sum of the
// non-empty rooms only.
func TestProjectTotalSkipsEmptyRooms(t *testing.T) {
	rooms := sampleWindows()

	var project pricing.Summary
	for _, roomWindows := range rooms {
		project.Merge(pricing.Aggregate(roomWindows, standardRates))
	}

	nonEmpty := pricing.Aggregate(append(rooms[1], rooms[2]...), standardRates)
	assert.InDelta(t, nonEmpty.Total, project.Total, 1e-6)
	assert.Equal(t, 3, project.WindowCount)
}

// Summing room-by-room and summing all windows flat must agree within
// floating-point tolerance regardless of grouping.
func TestAggregationAssociative(t *testing.T) {
	rooms := sampleWindows()

	var byRoom pricing.Summary
	var flat []pricing.Measurements
	for _, roomWindows := range rooms {
		byRoom.Merge(pricing.Aggregate(roomWindows, standardRates))
		flat = append(flat, roomWindows...)
	}
	direct := pricing.Aggregate(flat, standardRates)

	assert.InDelta(t, direct.Total, byRoom.Total, 1e-6)
	assert.InDelta(t, direct.FabricCost, byRoom.FabricCost, 1e-6)
	assert.InDelta(t, direct.TrackCost, byRoom.TrackCost, 1e-6)
	assert.InDelta(t, direct.MakingCost, byRoom.MakingCost, 1e-6)
	assert.InDelta(t, direct.FittingCost, byRoom.FittingCost, 1e-6)
	assert.InDelta(t, direct.HookCost, byRoom.HookCost, 1e-6)
}

// Recomputing from the same window set twice yields identical output;
// aggregation has no hidden state.
func TestAggregationIdempotent(t *testing.T) {
	flat := append(sampleWindows()[1], sampleWindows()[2]...)
	first := pricing.Aggregate(flat, standardRates)
	second := pricing.Aggregate(flat, standardRates)
	assert.Equal(t, first, second)
}

func TestSummaryCategorySubtotalsSumToTotal(t *testing.T) {
	flat := append(sampleWindows()[1], sampleWindows()[2]...)
	s := pricing.Aggregate(flat, standardRates)
	sum := s.FabricCost + s.TrackCost + s.MakingCost + s.FittingCost + s.HookCost
	assert.InDelta(t, sum, s.Total, 1e-9)
}

func TestApplyDiscount(t *testing.T) {
	tests := []struct {
		name     string
		total    float64
		discount float64
		kind     string
		expected float64
	}{
		{"no discount", 1000, 0, "percentage", 1000},
		{"ten percent", 1000, 10, "percentage", 900},
		{"fixed amount", 1000, 250, "fixed", 750},
		{"fixed exceeding total floors at zero", 1000, 1500, "fixed", 0},
		{"negative discount ignored", 1000, -5, "fixed", 1000},
		{"unknown kind ignored", 1000, 10, "flat", 1000},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := pricing.ApplyDiscount(tc.total, tc.discount, tc.kind)
			assert.InDelta(t, tc.expected, got, 1e-9)
		})
	}
}
