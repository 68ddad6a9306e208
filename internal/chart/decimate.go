package chart

// Decimate reduces an ordered point sequence to at most maxPoints by
// keeping every threshold-th sample, threshold = ceil(len/maxPoints).
// Inputs already within budget are returned unchanged (same slice).
//
// Uniform stride preserves overall shape at coarse scale but can
// alias transient spikes; it is not a shape-preserving algorithm.
// Callers that need visual fidelity on spiky data should use
// DecimateLTTB instead.
func Decimate(points []Point, maxPoints int) []Point {
	if maxPoints < 1 {
		panic("chart: maxPoints must be >= 1")
	}
	if len(points) <= maxPoints {
		return points
	}

	threshold := (len(points) + maxPoints - 1) / maxPoints
	kept := make([]Point, 0, maxPoints)
	for i, p := range points {
		if i%threshold == 0 {
			kept = append(kept, p)
		}
	}
	return kept
}

// DecimateLTTB downsamples to threshold points with the largest-
// triangle-three-buckets algorithm: the first and last samples are
// kept, interior samples are bucketed, and each bucket contributes
// the point forming the largest triangle with the previous kept
// point and the next bucket's average. This keeps peaks and troughs
// that stride decimation would drop.
//
// threshold must be at least 3; inputs already within budget are
// returned unchanged.
func DecimateLTTB(points []Point, threshold int) []Point {
	if threshold >= len(points) {
		return points
	}
	if threshold < 3 {
		panic("chart: lttb threshold must be >= 3")
	}

	sampled := make([]Point, 0, threshold)
	sampled = append(sampled, points[0])

	// Bucket size, leaving room for the fixed endpoints.
	size := float64(len(points)-2) / float64(threshold-2)

	a := points[0]
	for i := 0; i < threshold-2; i++ {
		// Average of the next bucket forms the third triangle vertex.
		avgLo := int(float64(i+1)*size) + 1
		avgHi := int(float64(i+2)*size) + 1
		if avgHi > len(points) {
			avgHi = len(points)
		}
		var c Point
		for _, p := range points[avgLo:avgHi] {
			c.X += p.X
			c.Y += p.Y
		}
		n := float64(avgHi - avgLo)
		c.X /= n
		c.Y /= n

		// Pick the current bucket's point with the largest triangle
		// area against a and c. Squared area avoids the Abs call;
		// only the relative ordering matters.
		lo := int(float64(i)*size) + 1
		hi := int(float64(i+1)*size) + 1
		var largest float64
		best := points[lo]
		for _, p := range points[lo:hi] {
			area := (a.X-c.X)*(p.Y-a.Y) - (a.X-p.X)*(c.Y-a.Y)
			if area *= area; area > largest {
				largest = area
				best = p
			}
		}

		sampled = append(sampled, best)
		a = best
	}

	return append(sampled, points[len(points)-1])
}
