package pricing

// Summary holds aggregated cost totals for a room or a whole project.
// Category subtotals are summed the same way as the grand total so that the
// identity Total == Fabric+Track+Making+Fitting+Hook always holds.
type Summary struct {
	FabricCost  float64 `json:"fabricCost"`
	TrackCost   float64 `json:"trackCost"`
	MakingCost  float64 `json:"makingCost"`
	FittingCost float64 `json:"fittingCost"`
	HookCost    float64 `json:"hookCost"`
	Total       float64 `json:"total"`
	WindowCount int     `json:"windowCount"`
}

// Add accumulates a window breakdown into the summary.
func (s *Summary) Add(b Breakdown) {
	s.FabricCost += b.FabricCost
	s.TrackCost += b.TrackCost
	s.MakingCost += b.MakingCost
	s.FittingCost += b.FittingCost
	s.HookCost += b.HookCost
	s.Total += b.Total
	s.WindowCount++
}

// Merge accumulates another summary, typically a room into a project.
func (s *Summary) Merge(other Summary) {
	s.FabricCost += other.FabricCost
	s.TrackCost += other.TrackCost
	s.MakingCost += other.MakingCost
	s.FittingCost += other.FittingCost
	s.HookCost += other.HookCost
	s.Total += other.Total
	s.WindowCount += other.WindowCount
}

// Aggregate computes a summary over a set of windows priced with the same
// rate card. An empty slice yields the zero Summary.
func Aggregate(windows []Measurements, r Rates) Summary {
	var s Summary
	for _, w := range windows {
		s.Add(WindowCost(w, r))
	}
	return s
}

// ApplyDiscount returns the payable total after applying a discount to a
// recomputed grand total. Kind is "percentage" or "fixed"; anything else
// leaves the total unchanged. The result never goes below zero.
func ApplyDiscount(total, discount float64, kind string) float64 {
	if discount <= 0 {
		return total
	}
	var result float64
	switch kind {
	case "percentage":
		result = total * (1 - discount/100)
	case "fixed":
		result = total - discount
	default:
		return total
	}
	if result < 0 {
		return 0
	}
	return result
}
