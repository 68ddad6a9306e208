package chart

import "math"

// DefaultTickCount is a reasonable tick count for most axes; callers
// with cramped layouts pass their own.
const DefaultTickCount = 6

// Ticks returns count representative domain values for axis labels:
// evenly spaced for Linear, geometrically spaced (even in log10
// space) for Log.
//
// count must be at least 2 — the endpoints are always included and
// the step divides by count-1. A smaller count is a programmer error
// and panics.
func Ticks(domain Domain, count int, typ ScaleType) []float64 {
	if count < 2 {
		panic("chart: tick count must be >= 2")
	}

	if typ == Log {
		lo := math.Log10(clampPositive(domain[0], DefaultLogFloor))
		hi := math.Log10(clampPositive(domain[1], DefaultLogFloor))
		step := (hi - lo) / float64(count-1)
		ticks := make([]float64, count)
		for i := range ticks {
			ticks[i] = math.Pow(10, lo+float64(i)*step)
		}
		return ticks
	}

	step := domain.Span() / float64(count-1)
	ticks := make([]float64, count)
	for i := range ticks {
		ticks[i] = domain[0] + float64(i)*step
	}
	// Pin the last tick to the exact bound; accumulated float error
	// would otherwise leave it a hair off the domain edge.
	ticks[count-1] = domain[1]
	return ticks
}
