package chart

// Trendline describes the fitted line y = Slope*x + Intercept.
type Trendline struct {
	Slope     float64
	Intercept float64
}

// At evaluates the trendline at x.
func (t Trendline) At(x float64) float64 {
	return t.Slope*x + t.Intercept
}

// LinearRegression fits an ordinary least-squares line through the
// points:
//
//	slope     = (nΣxy − ΣxΣy) / (nΣx² − (Σx)²)
//	intercept = (Σy − slope·Σx) / n
//
// Fewer than two points is a programmer error and panics; callers
// must guard. Point sets with zero x-variance produce an infinite or
// NaN slope, which the caller is expected to treat as "no trend".
func LinearRegression(points []Point) Trendline {
	if len(points) < 2 {
		panic("chart: linear regression needs at least 2 points")
	}

	var sumX, sumY, sumXY, sumXX float64
	for _, p := range points {
		sumX += p.X
		sumY += p.Y
		sumXY += p.X * p.Y
		sumXX += p.X * p.X
	}

	n := float64(len(points))
	slope := (n*sumXY - sumX*sumY) / (n*sumXX - sumX*sumX)
	intercept := (sumY - slope*sumX) / n
	return Trendline{Slope: slope, Intercept: intercept}
}
