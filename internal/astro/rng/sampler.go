package rng

import "math"

// SampleLinear draws a value uniformly from [min, max). It consumes exactly
// one draw from the source.
func SampleLinear(src *Source, min, max float64) float64 {
	return min + src.Float64()*(max-min)
}

// SampleLog10 draws a value whose base-10 logarithm is uniform on
// [log10Min, log10Max). Wide-ranging fields such as mass declare their
// bounds in log10 units and must be sampled with this function; which
// fields those are is fixed by the registry schema, never inferred.
func SampleLog10(src *Source, log10Min, log10Max float64) float64 {
	return math.Pow(10, SampleLinear(src, log10Min, log10Max))
}
