package series

import (
	"math"
	"math/rand"

	"github.com/litescript/plotkit/internal/chart"
)

// Sine generates n samples of amplitude*sin(freq*x) over [0, span],
// the stock demo series.
func Sine(n int, span, amplitude, freq float64) []chart.Point {
	points := make([]chart.Point, n)
	for i := range points {
		x := span * float64(i) / float64(n-1)
		points[i] = chart.Point{X: x, Y: amplitude * math.Sin(freq*x)}
	}
	return points
}

// NoisyLine generates n samples on y = slope*x + intercept with
// uniform noise in [-noise, noise]. The same seed always produces
// the same series, so previews and tests are reproducible.
func NoisyLine(n int, slope, intercept, noise float64, seed int64) []chart.Point {
	rng := rand.New(rand.NewSource(seed))
	points := make([]chart.Point, n)
	for i := range points {
		x := float64(i)
		jitter := (2*rng.Float64() - 1) * noise
		points[i] = chart.Point{X: x, Y: slope*x + intercept + jitter}
	}
	return points
}

// NormalValues draws n normally distributed values, for histogram
// previews. Deterministic for a fixed seed.
func NormalValues(n int, mean, sigma float64, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	values := make([]float64, n)
	for i := range values {
		values[i] = mean + sigma*rng.NormFloat64()
	}
	return values
}

// Spiral generates n (angle, radius) pairs winding outward, for the
// polar preview. Angles are in degrees.
func Spiral(n int, turns, maxRadius float64) [][2]float64 {
	points := make([][2]float64, n)
	for i := range points {
		frac := float64(i) / float64(n-1)
		points[i] = [2]float64{turns * 360 * frac, maxRadius * frac}
	}
	return points
}
