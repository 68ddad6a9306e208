// Package histogram computes bin boundaries and per-bin statistics
// for histogram charts: bin-count selection by statistical rule and
// bin construction with optional cumulative or normalized transforms.
package histogram

import (
	"math"
	"sort"
)

// Method selects a bin-count rule.
type Method string

const (
	Sturges          Method = "sturges"
	Scott            Method = "scott"
	FreedmanDiaconis Method = "freedman-diaconis"
	Sqrt             Method = "sqrt"
	// Auto uses Freedman-Diaconis for large samples (n > 100) and
	// Sturges otherwise.
	Auto Method = "auto"
)

// autoThreshold is the sample size above which Auto switches from
// Sturges to Freedman-Diaconis.
const autoThreshold = 100

// ParseMethod parses a method string, defaulting to Auto for
// anything unrecognized.
func ParseMethod(s string) Method {
	switch Method(s) {
	case Sturges, Scott, FreedmanDiaconis, Sqrt, Auto:
		return Method(s)
	default:
		return Auto
	}
}

// SelectBinCount picks a bin count for the data using the given
// rule. Empty data yields 1. An explicit caller-chosen count bypasses
// this entirely and goes straight to Bins.
func SelectBinCount(data []float64, method Method) int {
	n := len(data)
	if n == 0 {
		return 1
	}

	switch method {
	case Sturges:
		return sturges(n)
	case Scott:
		return scott(data)
	case FreedmanDiaconis:
		return freedmanDiaconis(data)
	case Sqrt:
		return int(math.Ceil(math.Sqrt(float64(n))))
	default: // Auto
		if n > autoThreshold {
			return freedmanDiaconis(data)
		}
		return sturges(n)
	}
}

// sturges is ceil(log2(n) + 1).
func sturges(n int) int {
	return int(math.Ceil(math.Log2(float64(n)) + 1))
}

// scott is ceil(range / (3.5σ / n^(1/3))), minimum 1. σ is the
// population standard deviation.
func scott(data []float64) int {
	n := float64(len(data))
	sigma := stddev(data)
	if sigma == 0 {
		return 1
	}
	width := 3.5 * sigma / math.Cbrt(n)
	return atLeastOne(math.Ceil(spread(data) / width))
}

// freedmanDiaconis is ceil(range / (2·IQR / n^(1/3))), minimum 1.
// Quartiles are position-indexed after sorting (floor(n*0.25) and
// floor(n*0.75)), not interpolated.
func freedmanDiaconis(data []float64) int {
	n := len(data)
	sorted := make([]float64, n)
	copy(sorted, data)
	sort.Float64s(sorted)

	q1 := sorted[int(float64(n)*0.25)]
	q3 := sorted[int(float64(n)*0.75)]
	iqr := q3 - q1
	if iqr == 0 {
		return 1
	}

	width := 2 * iqr / math.Cbrt(float64(n))
	return atLeastOne(math.Ceil(spread(data) / width))
}

func atLeastOne(v float64) int {
	if v < 1 || math.IsNaN(v) {
		return 1
	}
	return int(v)
}

func spread(data []float64) float64 {
	min, max := data[0], data[0]
	for _, v := range data[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return max - min
}

func stddev(data []float64) float64 {
	n := float64(len(data))
	var sum float64
	for _, v := range data {
		sum += v
	}
	mean := sum / n

	var sq float64
	for _, v := range data {
		d := v - mean
		sq += d * d
	}
	return math.Sqrt(sq / n)
}
