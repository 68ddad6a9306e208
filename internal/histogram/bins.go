package histogram

// Bin is one contiguous sub-interval [X0, X1) of the histogram's
// value range. The final bin is closed at the top edge as well so
// the maximum sample is captured. Count is integral unless the
// Normalize transform divides it by the total.
type Bin struct {
	X0      float64
	X1      float64
	Count   float64
	Density float64
}

// Options selects an optional transform over the plain counts. The
// two transforms are mutually exclusive: Cumulative turns counts
// into running sums (and density into the running fraction), while
// Normalize divides each count by the total and leaves density
// untouched.
type Options struct {
	Cumulative bool
	Normalize  bool
}

// Bins partitions [min(data), max(data)] into n equal-width bins and
// counts the samples in each. A sample's bin index is
// floor((v-min)/width), clamped to n-1. Density is
// count / (width · total). Empty data yields an empty bin list; when
// every sample is identical the single unit-width bin [v-0.5, v+0.5]
// holds them all, keeping X0 < X1 and the density finite.
//
// n must be at least 1 and both Options transforms set at once is a
// programmer error; either panics.
func Bins(data []float64, n int, opts Options) []Bin {
	if n < 1 {
		panic("histogram: bin count must be >= 1")
	}
	if opts.Cumulative && opts.Normalize {
		panic("histogram: cumulative and normalize are mutually exclusive")
	}
	if len(data) == 0 {
		return nil
	}

	min, max := data[0], data[0]
	for _, v := range data[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if min == max {
		bin := Bin{X0: min - 0.5, X1: min + 0.5, Count: float64(len(data)), Density: 1}
		return applyTransform([]Bin{bin}, len(data), opts)
	}

	width := (max - min) / float64(n)
	counts := make([]int, n)
	for _, v := range data {
		idx := int((v - min) / width)
		if idx > n-1 {
			idx = n - 1
		}
		counts[idx]++
	}

	total := float64(len(data))
	bins := make([]Bin, n)
	for i, c := range counts {
		bins[i] = Bin{
			X0:      min + float64(i)*width,
			X1:      min + float64(i+1)*width,
			Count:   float64(c),
			Density: float64(c) / (width * total),
		}
	}
	// Contiguity invariant: pin the last edge to the exact maximum.
	bins[n-1].X1 = max

	return applyTransform(bins, len(data), opts)
}

// BinsForEdges counts samples into explicit ascending bin edges.
// Bin i covers [edges[i], edges[i+1]), the last bin closed at the
// top. Samples outside the edges are dropped. Density uses each
// bin's own width. At least two edges are required.
func BinsForEdges(data []float64, edges []float64, opts Options) []Bin {
	if len(edges) < 2 {
		panic("histogram: need at least 2 bin edges")
	}
	if opts.Cumulative && opts.Normalize {
		panic("histogram: cumulative and normalize are mutually exclusive")
	}
	if len(data) == 0 {
		return nil
	}

	n := len(edges) - 1
	counts := make([]int, n)
	kept := 0
	for _, v := range data {
		if v < edges[0] || v > edges[n] {
			continue
		}
		idx := n - 1
		for i := 0; i < n; i++ {
			if v < edges[i+1] {
				idx = i
				break
			}
		}
		counts[idx]++
		kept++
	}

	total := float64(kept)
	bins := make([]Bin, n)
	for i, c := range counts {
		width := edges[i+1] - edges[i]
		density := 0.0
		if total > 0 && width > 0 {
			density = float64(c) / (width * total)
		}
		bins[i] = Bin{X0: edges[i], X1: edges[i+1], Count: float64(c), Density: density}
	}

	return applyTransform(bins, kept, opts)
}

func applyTransform(bins []Bin, total int, opts Options) []Bin {
	switch {
	case opts.Cumulative:
		var running float64
		for i := range bins {
			running += bins[i].Count
			bins[i].Count = running
			if total > 0 {
				bins[i].Density = running / float64(total)
			}
		}
	case opts.Normalize:
		if total > 0 {
			for i := range bins {
				bins[i].Count /= float64(total)
			}
		}
	}
	return bins
}
