package pricing

// Rates are the four unit prices a window is costed against. They are the
// project's frozen rate card, never the user's live configuration.
type Rates struct {
	Making  float64 `json:"making"`
	Fitting float64 `json:"fitting"`
	Track   float64 `json:"track"`
	Hook    float64 `json:"hook"`
}

// Measurements are the per-window inputs to the cost calculation.
type Measurements struct {
	Meters             float64 `json:"meters"`
	FabricCostPerMeter float64 `json:"fabricCostPerMeter"`
	PannaCount         int     `json:"pannaCount"`
	TrackCount         int     `json:"trackCount"`
	HookCount          int     `json:"hookCount"`
}

// Breakdown is a per-window cost breakdown. Total is always the exact sum of
// the five components; no component is rounded before summation.
type Breakdown struct {
	FabricCost  float64 `json:"fabricCost"`
	TrackCost   float64 `json:"trackCost"`
	MakingCost  float64 `json:"makingCost"`
	FittingCost float64 `json:"fittingCost"`
	HookCost    float64 `json:"hookCost"`
	Total       float64 `json:"total"`
}

// WindowCost computes the cost breakdown for a single window.
//
// Negative inputs are clamped to zero contribution, matching the treatment
// of absent fields. Rounding to display precision is a presentation concern;
// applying it here would compound error across many windows.
func WindowCost(m Measurements, r Rates) Breakdown {
	b := Breakdown{
		FabricCost:  nonNegative(m.Meters) * nonNegative(m.FabricCostPerMeter),
		TrackCost:   nonNegativeInt(m.TrackCount) * nonNegative(r.Track),
		MakingCost:  nonNegativeInt(m.PannaCount) * nonNegative(r.Making),
		FittingCost: nonNegativeInt(m.PannaCount) * nonNegative(r.Fitting),
		HookCost:    nonNegativeInt(m.HookCount) * nonNegative(r.Hook),
	}
	b.Total = b.FabricCost + b.TrackCost + b.MakingCost + b.FittingCost + b.HookCost
	return b
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func nonNegativeInt(v int) float64 {
	if v < 0 {
		return 0
	}
	return float64(v)
}
