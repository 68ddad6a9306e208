package chart

// domainPaddingFrac is the symmetric padding applied to dependent-axis
// domains so extreme samples do not sit on the plot border.
const domainPaddingFrac = 0.1

// ComputeDomain derives the [min, max] domain of one coordinate over
// a point set.
//
// An empty input yields the defined fallback [0, 1] rather than an
// error. With addPadding the domain is widened on both sides by 10%
// of its span; when the span is zero (all values equal) the padding
// falls back to 1 so the domain never collapses. Without padding the
// exact bounds are returned verbatim, which is what independent-
// variable axes such as time axes want.
func ComputeDomain(points []Point, accessor Accessor, addPadding bool) Domain {
	if len(points) == 0 {
		return Domain{0, 1}
	}

	min := accessor(points[0])
	max := min
	for _, p := range points[1:] {
		v := accessor(p)
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	if !addPadding {
		return Domain{min, max}
	}

	padding := (max - min) * domainPaddingFrac
	if padding == 0 {
		padding = 1
	}
	return Domain{min - padding, max + padding}
}

// ComputeValueDomain is ComputeDomain over a bare value slice, used
// by histogram callers that have no point structure.
func ComputeValueDomain(values []float64, addPadding bool) Domain {
	points := make([]Point, len(values))
	for i, v := range values {
		points[i] = Point{X: v}
	}
	return ComputeDomain(points, XOf, addPadding)
}
