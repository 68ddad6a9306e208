package series

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/litescript/plotkit/internal/chart"
	"github.com/litescript/plotkit/internal/histogram"
)

// ArtifactExport is the JSON-serializable bundle of everything the
// engine computed for one series: domains, ticks, bins and the
// fitted trendline. It is what the -export flag writes so other
// tooling can consume the numbers without re-deriving them.
type ArtifactExport struct {
	GeneratedAt time.Time    `json:"generated_at"`
	Samples     int          `json:"samples"`
	XDomain     [2]float64   `json:"x_domain"`
	YDomain     [2]float64   `json:"y_domain"`
	XTicks      []float64    `json:"x_ticks"`
	YTicks      []float64    `json:"y_ticks"`
	Bins        []BinExport  `json:"bins,omitempty"`
	Trendline   *TrendExport `json:"trendline,omitempty"`
}

// BinExport is a JSON-friendly histogram bin.
type BinExport struct {
	X0      float64 `json:"x0"`
	X1      float64 `json:"x1"`
	Count   float64 `json:"count"`
	Density float64 `json:"density"`
}

// TrendExport is a JSON-friendly trendline.
type TrendExport struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
}

// ExportArtifacts computes the standard artifact bundle for a point
// series. Bins are derived from the y values with the given method;
// the trendline is omitted for series too small to fit.
func ExportArtifacts(points []chart.Point, method histogram.Method, now time.Time) *ArtifactExport {
	xDomain := chart.ComputeDomain(points, chart.XOf, false)
	yDomain := chart.ComputeDomain(points, chart.YOf, true)

	export := &ArtifactExport{
		GeneratedAt: now,
		Samples:     len(points),
		XDomain:     [2]float64(xDomain),
		YDomain:     [2]float64(yDomain),
		XTicks:      chart.Ticks(xDomain, chart.DefaultTickCount, chart.Linear),
		YTicks:      chart.Ticks(yDomain, chart.DefaultTickCount, chart.Linear),
	}

	if len(points) > 0 {
		values := Values(points, chart.YOf)
		bins := histogram.Bins(values, histogram.SelectBinCount(values, method), histogram.Options{})
		export.Bins = make([]BinExport, len(bins))
		for i, b := range bins {
			export.Bins[i] = BinExport{X0: b.X0, X1: b.X1, Count: b.Count, Density: b.Density}
		}
	}

	if len(points) >= 2 {
		trend := chart.LinearRegression(points)
		export.Trendline = &TrendExport{Slope: trend.Slope, Intercept: trend.Intercept}
	}

	return export
}

// WriteJSON writes the export as indented JSON.
func (e *ArtifactExport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(e); err != nil {
		return fmt.Errorf("encode artifacts: %w", err)
	}
	return nil
}
