package render

import (
	"strings"
	"testing"

	"github.com/litescript/plotkit/internal/chart"
	"github.com/litescript/plotkit/internal/colormap"
	"github.com/litescript/plotkit/internal/histogram"
	"github.com/litescript/plotkit/internal/series"
)

func TestCanvas_SetAndRows(t *testing.T) {
	cv := newCanvas(2, 1)

	// One dot in the top-left micro-pixel of each cell.
	cv.set(0, 0)
	cv.set(2, 0)

	rows := cv.rows()
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	want := "⠁⠁"
	if rows[0] != want {
		t.Errorf("row = %q, want %q", rows[0], want)
	}
}

func TestCanvas_OutOfBoundsIgnored(t *testing.T) {
	cv := newCanvas(2, 2)
	cv.set(-1, 0)
	cv.set(0, -5)
	cv.set(100, 100)
	for _, row := range cv.rows() {
		if strings.Trim(row, " ") != "" {
			t.Errorf("out-of-bounds set lit a pixel: %q", row)
		}
	}
}

func TestCanvas_Line(t *testing.T) {
	cv := newCanvas(4, 2)
	w, h := cv.pixelSize()
	cv.line(0, 0, w-1, h-1)

	// A diagonal must light at least one dot per column of cells.
	lit := 0
	for _, row := range cv.rows() {
		for _, r := range row {
			if r != ' ' {
				lit++
			}
		}
	}
	if lit < 4 {
		t.Errorf("diagonal lit %d cells, want >= 4", lit)
	}
}

func TestLineChart_Smoke(t *testing.T) {
	points := series.Sine(200, 10, 1, 1)
	out := LineChart(points, 60, 12, LineOptions{})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// plot rows + axis row + label row
	if len(lines) != 12 {
		t.Fatalf("line count = %d, want 12", len(lines))
	}
	if !strings.Contains(out, "│") || !strings.Contains(out, "└") {
		t.Error("axis characters missing")
	}
	// Some braille content must be present.
	hasDots := false
	for _, r := range out {
		if r >= 0x2800 && r <= 0x28ff {
			hasDots = true
			break
		}
	}
	if !hasDots {
		t.Error("no braille pixels rendered")
	}
}

func TestLineChart_TinySizeEmpty(t *testing.T) {
	points := series.Sine(10, 1, 1, 1)
	if out := LineChart(points, 5, 2, LineOptions{}); out != "" {
		t.Errorf("tiny canvas should render nothing, got %q", out)
	}
}

func TestLineChart_EmptySeries(t *testing.T) {
	// Empty input falls back to the [0,1] domains; must not panic.
	out := LineChart(nil, 40, 8, LineOptions{})
	if out == "" {
		t.Error("empty series should still render a frame")
	}
}

func TestLineChart_WithTrend(t *testing.T) {
	points := []chart.Point{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: 4}}
	out := LineChart(points, 40, 8, LineOptions{Trend: true})
	if !strings.Contains(out, "trend: slope 2.00, intercept 0.00") {
		t.Errorf("trend legend missing:\n%s", out)
	}
}

func TestHistogramChart(t *testing.T) {
	bins := histogram.Bins([]float64{1, 1, 1, 2, 2, 3}, 3, histogram.Options{})
	out := HistogramChart(bins, 60, 0)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("line count = %d, want 3", len(lines))
	}
	// The fullest bin draws the longest bar.
	if !(strings.Count(lines[0], "█") > strings.Count(lines[2], "█")) {
		t.Error("bar lengths do not follow counts")
	}
}

func TestHistogramChart_Empty(t *testing.T) {
	out := HistogramChart(nil, 60, 0)
	if !strings.Contains(out, "no samples") {
		t.Errorf("empty placeholder missing: %q", out)
	}
}

func TestHeatmap(t *testing.T) {
	grid := [][]float64{{0, 1}, {2, 3}}
	out := Heatmap(grid, colormap.Lookup("viridis"))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("line count = %d, want 2", len(lines))
	}
}

func TestHeatmap_UniformGrid(t *testing.T) {
	// All-equal values normalize to 0; must not divide by zero.
	out := Heatmap([][]float64{{5, 5}, {5, 5}}, colormap.Lookup("viridis"))
	if out == "" {
		t.Error("uniform grid rendered nothing")
	}
}

func TestColorbar(t *testing.T) {
	out := Colorbar(colormap.Lookup("plasma"), 32)
	if out == "" {
		t.Error("empty colorbar")
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("line count = %d, want 2", len(lines))
	}
}

func TestPolarScatter(t *testing.T) {
	out := PolarScatter(series.Spiral(50, 2, 1), 11)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 11 {
		t.Fatalf("line count = %d, want 11", len(lines))
	}
	if !strings.Contains(out, "•") {
		t.Error("no samples plotted")
	}
	if !strings.Contains(out, "+") {
		t.Error("center marker missing")
	}
}

func TestSeriesStyle_Cycles(t *testing.T) {
	if SeriesStyle(0).GetForeground() != SeriesStyle(len(SeriesPalette)).GetForeground() {
		t.Error("series styles should cycle through the palette")
	}
}
