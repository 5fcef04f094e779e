package wire

import "math"

// Visibility is the exponential-squared fog factor for a point at the
// given distance: 1 at the eye, falling toward 0.
func Visibility(distance, density float64) float64 {
	d := density * distance
	return math.Exp(-d * d)
}

// FogCutoff is the distance past which Visibility drops below minimum.
func FogCutoff(density, minimum float64) float64 {
	if density <= 0 || minimum <= 0 || minimum >= 1 {
		return math.Inf(1)
	}
	return math.Sqrt(-math.Log(minimum)) / density
}
