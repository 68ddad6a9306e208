package chart

import "math"

// ScaleType selects how a domain is mapped onto a range.
type ScaleType int

const (
	Linear ScaleType = iota
	Log
)

func (t ScaleType) String() string {
	switch t {
	case Linear:
		return "linear"
	case Log:
		return "log"
	default:
		return "unknown"
	}
}

// ParseScaleType parses a scale type string, defaulting to Linear.
func ParseScaleType(s string) ScaleType {
	if s == "log" {
		return Log
	}
	return Linear
}

// Scale maps a data value into range space. A scale is a pure
// function closing over a fixed (domain, range, type): stateless and
// safe to call repeatedly from any goroutine.
type Scale func(v float64) float64

// DefaultLogFloor replaces non-positive values before taking log10.
// Count-like axes that want a floor of 1 use BuildLogScale directly.
const DefaultLogFloor = 1e-4

// BuildScale builds a scale mapping domain onto rng.
//
// Linear mapping follows r0 + (r1-r0)/(d1-d0) * (v-d0). A degenerate
// domain (d0 == d1) has no defined slope; rather than emit NaN into
// the render path, the returned scale maps every value to the
// midpoint of the range.
//
// Log scales interpolate in log10 space with non-positive values
// clamped to DefaultLogFloor; the same floor applies when building
// and when evaluating.
func BuildScale(domain Domain, rng Range, typ ScaleType) Scale {
	if typ == Log {
		return BuildLogScale(domain, rng, DefaultLogFloor)
	}

	d0, d1 := domain[0], domain[1]
	r0, r1 := rng[0], rng[1]
	if d1 == d0 {
		mid := (r0 + r1) / 2
		return func(float64) float64 { return mid }
	}

	slope := (r1 - r0) / (d1 - d0)
	return func(v float64) float64 {
		return r0 + slope*(v-d0)
	}
}

// BuildLogScale builds a log10 scale with an explicit positive floor.
// Domain endpoints and evaluated values at or below zero are clamped
// to the floor before the logarithm.
func BuildLogScale(domain Domain, rng Range, floor float64) Scale {
	d0 := math.Log10(clampPositive(domain[0], floor))
	d1 := math.Log10(clampPositive(domain[1], floor))
	r0, r1 := rng[0], rng[1]
	if d1 == d0 {
		mid := (r0 + r1) / 2
		return func(float64) float64 { return mid }
	}

	slope := (r1 - r0) / (d1 - d0)
	return func(v float64) float64 {
		return r0 + slope*(math.Log10(clampPositive(v, floor))-d0)
	}
}

// BuildInverse builds the mapping from range space back into the
// domain for a linear scale, so pointer positions can be converted
// to data values. A degenerate range maps everything to the domain
// midpoint, mirroring BuildScale.
func BuildInverse(domain Domain, rng Range) Scale {
	d0, d1 := domain[0], domain[1]
	r0, r1 := rng[0], rng[1]
	if r1 == r0 {
		mid := (d0 + d1) / 2
		return func(float64) float64 { return mid }
	}

	slope := (d1 - d0) / (r1 - r0)
	return func(v float64) float64 {
		return d0 + slope*(v-r0)
	}
}

func clampPositive(v, floor float64) float64 {
	if v <= 0 {
		return floor
	}
	return v
}
