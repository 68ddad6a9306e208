package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/plotkit/internal/chart"
)

// LineOptions configures a line chart rendering.
type LineOptions struct {
	YType chart.ScaleType // Linear or Log y axis
	Trend bool            // overlay the OLS trendline
	Style lipgloss.Style  // series color; zero value renders unstyled
}

// LineChart renders a braille line chart of the points into a
// width x height cell block, with y labels in a left gutter and x
// labels under the axis. The whole chart pipeline runs here: domain
// computation, frame construction, decimation to the pixel budget,
// projection, and tick formatting.
func LineChart(points []chart.Point, width, height int, opts LineOptions) string {
	if width < 12 || height < 3 {
		return ""
	}

	xDomain := chart.ComputeDomain(points, chart.XOf, false)
	yDomain := chart.ComputeDomain(points, chart.YOf, true)

	yTicks := chart.Ticks(yDomain, 3, opts.YType)
	yLabels := chart.FormatTicks(yTicks)
	gutter := 0
	for _, l := range yLabels {
		if len(l) > gutter {
			gutter = len(l)
		}
	}

	plotW := width - gutter - 1
	plotH := height - 2 // axis + label rows
	if plotW < 4 || plotH < 1 {
		return ""
	}

	cv := newCanvas(plotW, plotH)
	pw, ph := cv.pixelSize()
	frame := chart.NewFrame(
		xDomain, yDomain,
		chart.Range{0, float64(pw - 1)},
		chart.Range{float64(ph - 1), 0}, // inverted: y grows downward
		chart.Linear, opts.YType,
	)

	plotted := chart.Decimate(points, pw)
	var prevX, prevY int
	for i, p := range plotted {
		fx, fy := frame.Project(p)
		x, y := int(math.Round(fx)), int(math.Round(fy))
		if i > 0 {
			cv.line(prevX, prevY, x, y)
		}
		prevX, prevY = x, y
	}

	var trend chart.Trendline
	hasTrend := opts.Trend && len(points) >= 2
	if hasTrend {
		trend = chart.LinearRegression(points)
		x0, y0 := frame.Project(chart.Point{X: xDomain.Min(), Y: trend.At(xDomain.Min())})
		x1, y1 := frame.Project(chart.Point{X: xDomain.Max(), Y: trend.At(xDomain.Max())})
		cv.line(int(math.Round(x0)), int(math.Round(y0)), int(math.Round(x1)), int(math.Round(y1)))
	}

	var b strings.Builder
	rows := cv.rows()
	for i, row := range rows {
		label := ""
		switch i {
		case 0:
			label = yLabels[len(yLabels)-1]
		case len(rows) / 2:
			label = yLabels[1]
		case len(rows) - 1:
			label = yLabels[0]
		}
		b.WriteString(labelStyle.Render(padLeft(label, gutter)))
		b.WriteString(axisStyle.Render("│"))
		b.WriteString(opts.Style.Render(row))
		b.WriteByte('\n')
	}

	b.WriteString(strings.Repeat(" ", gutter))
	b.WriteString(axisStyle.Render("└" + strings.Repeat("─", plotW)))
	b.WriteByte('\n')

	xTicks := chart.Ticks(xDomain, 3, chart.Linear)
	b.WriteString(labelStyle.Render(xLabelRow(chart.FormatTicks(xTicks), gutter+1, plotW)))
	if hasTrend {
		b.WriteByte('\n')
		b.WriteString(trendStyle.Render(fmt.Sprintf("trend: slope %s, intercept %s",
			chart.FormatValue(trend.Slope), chart.FormatValue(trend.Intercept))))
	}
	return b.String()
}

// xLabelRow spreads tick labels across the plot width: first label
// left-aligned, last right-aligned, middle centered.
func xLabelRow(labels []string, indent, plotW int) string {
	row := make([]byte, indent+plotW)
	for i := range row {
		row[i] = ' '
	}
	place := func(s string, at int) {
		if at < 0 {
			at = 0
		}
		for i := 0; i < len(s) && at+i < len(row); i++ {
			row[at+i] = s[i]
		}
	}
	place(labels[0], indent)
	if len(labels) > 2 {
		mid := labels[len(labels)/2]
		place(mid, indent+(plotW-len(mid))/2)
	}
	last := labels[len(labels)-1]
	place(last, indent+plotW-len(last))
	return string(row)
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
