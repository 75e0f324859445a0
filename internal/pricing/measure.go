// Package pricing implements the quotation pricing engine: derived
// measurements, per-window cost breakdowns and room/project aggregation.
//
// Every function in this package is pure. Missing or non-positive numeric
// inputs contribute zero instead of failing, so a quotation with incomplete
// window data still renders a best-effort total. Validation belongs at the
// entity-creation boundary, never here.
package pricing

import "math"

// Inches of window width covered by a single panna panel.
const inchesPerPanna = 20

// Divisor converting width+height inches into fabric meters.
const inchesPerMeter = 24

// PannaCount returns the number of panna panels needed for a window of the
// given width in inches: ceil(width/20). Non-positive or NaN widths yield 0.
func PannaCount(width float64) int {
	if math.IsNaN(width) || width <= 0 {
		return 0
	}
	return int(math.Ceil(width / inchesPerPanna))
}

// Meters returns the fabric meters for a window: round2((width+height)/24).
// If either dimension is non-positive or NaN the result is 0.
//
// The same rounding is applied here and nowhere else, so the value a caller
// previews in a form is byte-identical to the value persisted.
func Meters(width, height float64) float64 {
	if math.IsNaN(width) || math.IsNaN(height) || width <= 0 || height <= 0 {
		return 0
	}
	return Round2((width + height) / inchesPerMeter)
}

// Round2 rounds to 2 decimal places using half-up rounding.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
