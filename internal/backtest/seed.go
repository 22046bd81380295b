// Package backtest generates reproducible synthetic price paths and
// decision outcomes. Every quantity it produces is a pure function of a
// string identifier, so the dashboard shows identical numbers across
// calls, processes, and reimplementations.
package backtest

import "math"

// Seed maps an identifier to a stable non-negative int32 using a
// 31-multiplier polynomial rolling hash. Deliberately not a language
// hash function: the same bytes must seed the same numbers everywhere.
func Seed(identifier string) int32 {
	var h int32
	for _, r := range identifier {
		h = h*31 + int32(r)
	}
	return h & 0x7FFFFFFF
}

// Rand maps an integer seed to a value in [0,1) via fract(sin(seed)*10000).
// Pure and stateless: the same seed always yields the same value.
func Rand(seed int32) float64 {
	v := math.Sin(float64(seed)) * 10000
	return v - math.Floor(v)
}
