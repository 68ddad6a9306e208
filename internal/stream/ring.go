// Package stream holds live-series state for streaming charts.
package stream

import "github.com/litescript/plotkit/internal/chart"

// Ring is a fixed-capacity point buffer with index-based aging: once
// full, each push overwrites the oldest sample. It replaces the
// append-and-filter slices streaming views otherwise accumulate, so
// memory stays bounded no matter how long a stream runs.
//
// Ring is not safe for concurrent use; callers own the locking, the
// same way the state manager does for snapshots.
type Ring struct {
	buf  []chart.Point
	head int // next write position
	size int
}

// NewRing creates a ring holding at most capacity points.
func NewRing(capacity int) *Ring {
	if capacity < 1 {
		panic("stream: ring capacity must be >= 1")
	}
	return &Ring{buf: make([]chart.Point, capacity)}
}

// Push appends p, evicting the oldest sample when full.
func (r *Ring) Push(p chart.Point) {
	r.buf[r.head] = p
	r.head = (r.head + 1) % len(r.buf)
	if r.size < len(r.buf) {
		r.size++
	}
}

// Len returns the number of stored samples.
func (r *Ring) Len() int { return r.size }

// Cap returns the fixed capacity.
func (r *Ring) Cap() int { return len(r.buf) }

// At returns the i-th sample, oldest first. i must be in [0, Len).
func (r *Ring) At(i int) chart.Point {
	if i < 0 || i >= r.size {
		panic("stream: ring index out of range")
	}
	start := r.head - r.size
	if start < 0 {
		start += len(r.buf)
	}
	return r.buf[(start+i)%len(r.buf)]
}

// Age returns how many pushes ago the i-th (oldest-first) sample was
// written: 0 for the newest sample, Len-1 for the oldest. Renderers
// use it to fade old samples.
func (r *Ring) Age(i int) int {
	if i < 0 || i >= r.size {
		panic("stream: ring index out of range")
	}
	return r.size - 1 - i
}

// Points copies the stored samples out oldest-first, ready for the
// chart pipeline.
func (r *Ring) Points() []chart.Point {
	out := make([]chart.Point, r.size)
	for i := range out {
		out[i] = r.At(i)
	}
	return out
}

// Clear drops all samples while keeping the capacity.
func (r *Ring) Clear() {
	r.head = 0
	r.size = 0
}
