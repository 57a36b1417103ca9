package rules

import "math"

// pricingGrid is the 1/800 (0.125%) rate grid spreads are snapped to.
const pricingGrid = 1.0 / 800.0

// round2 rounds to cent/2-decimal storage precision.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// round4 rounds to 4-decimal intermediate precision.
func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

// roundToGrid snaps a spread to the nearest 0.125% increment.
func roundToGrid(v float64) float64 {
	return math.Round(v/pricingGrid) * pricingGrid
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
