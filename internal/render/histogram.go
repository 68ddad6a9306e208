package render

import (
	"fmt"
	"strings"

	"github.com/litescript/plotkit/internal/chart"
	"github.com/litescript/plotkit/internal/histogram"
)

// HistogramChart renders bins as horizontal bars, one row per bin,
// labeled with the bin interval and count. Bar length is scaled to
// the largest count through the same linear scale the 2D charts use.
func HistogramChart(bins []histogram.Bin, width int, seriesIdx int) string {
	if len(bins) == 0 {
		return faintStyle.Render("(no samples)")
	}

	maxCount := 0.0
	labelW := 0
	labels := make([]string, len(bins))
	for i, b := range bins {
		if b.Count > maxCount {
			maxCount = b.Count
		}
		labels[i] = fmt.Sprintf("%s–%s", chart.FormatValue(b.X0), chart.FormatValue(b.X1))
		if len(labels[i]) > labelW {
			labelW = len(labels[i])
		}
	}

	barW := width - labelW - 12
	if barW < 4 {
		barW = 4
	}
	scale := chart.BuildScale(chart.Domain{0, maxCount}, chart.Range{0, float64(barW)}, chart.Linear)
	style := SeriesStyle(seriesIdx)

	var b strings.Builder
	for i, bin := range bins {
		fill := int(scale(bin.Count))
		b.WriteString(labelStyle.Render(padLeft(labels[i], labelW)))
		b.WriteString(axisStyle.Render("│"))
		b.WriteString(style.Render(strings.Repeat("█", fill)))
		b.WriteString(fmt.Sprintf(" %s", chart.FormatValue(bin.Count)))
		b.WriteByte('\n')
	}
	return b.String()
}
