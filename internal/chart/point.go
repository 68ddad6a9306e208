// Package chart implements the numeric core shared by every chart
// renderer: domains, scales, ticks, value formatting, decimation and
// trendlines. Everything here is pure computation over plain values —
// no retained state, no I/O — so all functions are safe to call
// concurrently.
package chart

// Point is a single 2D sample. It has no identity beyond its
// position and is immutable once produced.
type Point struct {
	X float64
	Y float64
}

// Accessor extracts one numeric coordinate from a point.
type Accessor func(Point) float64

// XOf is the accessor for the independent axis.
func XOf(p Point) float64 { return p.X }

// YOf is the accessor for the dependent axis.
func YOf(p Point) float64 { return p.Y }

// Domain is an ordered [min, max] pair of data values. It may
// collapse to a single value when all inputs are equal; consumers
// must not divide by its span without checking.
type Domain [2]float64

// Min returns the lower bound.
func (d Domain) Min() float64 { return d[0] }

// Max returns the upper bound.
func (d Domain) Max() float64 { return d[1] }

// Span returns max - min. Zero for a collapsed domain.
func (d Domain) Span() float64 { return d[1] - d[0] }

// Range is a pair of output pixel/cell coordinates a domain is
// mapped onto. Unlike Domain it may be inverted (first > second) to
// flip an axis, which is the usual case for screen-space Y.
type Range [2]float64
