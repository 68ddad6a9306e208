// Command plotkit previews chart computations in the terminal: line
// charts, histograms, heatmaps and polar scatters, plus headless
// modes that print the computed numbers directly.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/litescript/plotkit/internal/chart"
	"github.com/litescript/plotkit/internal/colormap"
	"github.com/litescript/plotkit/internal/histogram"
	"github.com/litescript/plotkit/internal/logging"
	"github.com/litescript/plotkit/internal/render"
	"github.com/litescript/plotkit/internal/series"
	"github.com/litescript/plotkit/internal/tui"
)

// CLI flags for headless modes
var (
	inputPath   string
	summaryMode bool
	ticksMode   bool
	binsMode    bool
	trendMode   bool
	gradientDir string
	chartMode   string
	exportPath  string

	binMethod  string
	binCount   int
	cumulative bool
	normalize  bool
	palette    string
	maxPoints  int
	useLTTB    bool
	logScale   bool

	watchInterval time.Duration
)

const (
	defaultWidth  = 80
	defaultHeight = 20
	demoSamples   = 400
)

func main() {
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.StringVar(&inputPath, "input", "", "CSV series to load (x,y columns); omit for demo data")
	flag.BoolVar(&summaryMode, "summary", false, "Print domain/tick/format summary instead of TUI")
	flag.BoolVar(&ticksMode, "ticks", false, "Print axis tick values")
	flag.BoolVar(&binsMode, "bins", false, "Print histogram bins")
	flag.BoolVar(&trendMode, "trend", false, "Print OLS trendline")
	flag.StringVar(&gradientDir, "gradient", "", "Print palette CSS gradient with this direction (e.g. 'to right')")
	flag.StringVar(&chartMode, "chart", "", "Render one chart headless (line, histogram, heatmap, polar)")
	flag.StringVar(&exportPath, "export", "", "Export computed artifacts as JSON (use - for stdout)")
	flag.StringVar(&binMethod, "bin-method", "auto", "Bin rule (auto, sturges, scott, freedman-diaconis, sqrt)")
	flag.IntVar(&binCount, "bin-count", 0, "Explicit bin count (overrides -bin-method)")
	flag.BoolVar(&cumulative, "cumulative", false, "Cumulative bin counts")
	flag.BoolVar(&normalize, "normalize", false, "Normalize bin counts to fractions")
	flag.StringVar(&palette, "palette", colormap.DefaultName, "Colormap palette name")
	flag.IntVar(&maxPoints, "max-points", 0, "Decimate the series to at most this many points")
	flag.BoolVar(&useLTTB, "lttb", false, "Use LTTB instead of stride decimation")
	flag.BoolVar(&logScale, "log-y", false, "Logarithmic y axis")
	flag.DurationVar(&watchInterval, "watch", 0, "Repeat headless output at interval (e.g. 2s)")
	flag.Parse()

	logger := logging.New(logging.ParseLevel(*logLevel))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	points, err := loadSeries(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if maxPoints > 0 {
		before := len(points)
		if useLTTB {
			points = chart.DecimateLTTB(points, maxPoints)
		} else {
			points = chart.Decimate(points, maxPoints)
		}
		logger.Debug("Decimated %d -> %d points", before, len(points))
	}

	headless := summaryMode || ticksMode || binsMode || trendMode ||
		gradientDir != "" || chartMode != "" || exportPath != ""
	if headless {
		runHeadless(ctx, points, logger)
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		runOnce(points)
		return
	}

	p := tea.NewProgram(tui.New(points), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// loadSeries reads the input CSV, or builds the demo series when no
// input is given.
func loadSeries(logger *logging.Logger) ([]chart.Point, error) {
	if inputPath == "" {
		logger.Debug("No input, generating %d demo samples", demoSamples)
		return series.NoisyLine(demoSamples, 0.35, 4, 6, 42), nil
	}
	points, err := series.LoadCSV(inputPath)
	if err != nil {
		return nil, err
	}
	logger.Debug("Loaded %d points from %s", len(points), inputPath)
	return points, nil
}

// runHeadless prints the requested computations, once or on a watch
// interval.
func runHeadless(ctx context.Context, points []chart.Point, logger *logging.Logger) {
	if err := outputOnce(points); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if watchInterval == 0 {
			os.Exit(1)
		}
	}
	if watchInterval == 0 {
		return
	}

	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Debug("Watch loop shutting down")
			return
		case <-ticker.C:
			fmt.Println()
			if err := outputOnce(points); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		}
	}
}

func outputOnce(points []chart.Point) error {
	values := series.Values(points, chart.YOf)

	if summaryMode {
		writeSummary(points)
	}

	if ticksMode {
		writeTicks(points)
	}

	if binsMode {
		bins := buildBins(values)
		for _, b := range bins {
			fmt.Printf("%10s  %10s  count=%-8s density=%.4f\n",
				chart.FormatValue(b.X0), chart.FormatValue(b.X1),
				chart.FormatValue(b.Count), b.Density)
		}
	}

	if trendMode {
		if len(points) < 2 {
			return fmt.Errorf("trendline needs at least 2 points, have %d", len(points))
		}
		t := chart.LinearRegression(points)
		fmt.Printf("slope=%.6f intercept=%.6f\n", t.Slope, t.Intercept)
	}

	if gradientDir != "" {
		dir := gradientDir
		if dir == "default" {
			dir = ""
		}
		fmt.Println(colormap.GradientCSS(colormap.Lookup(palette), dir))
	}

	if chartMode != "" {
		if err := writeChart(points, values); err != nil {
			return err
		}
	}

	if exportPath != "" {
		export := series.ExportArtifacts(points, histogram.ParseMethod(binMethod), time.Now())
		if exportPath == "-" {
			return export.WriteJSON(os.Stdout)
		}
		f, err := os.Create(exportPath)
		if err != nil {
			return fmt.Errorf("create export file: %w", err)
		}
		defer f.Close()
		return export.WriteJSON(f)
	}

	return nil
}

func writeSummary(points []chart.Point) {
	xd := chart.ComputeDomain(points, chart.XOf, false)
	yd := chart.ComputeDomain(points, chart.YOf, true)
	yType := chart.Linear
	if logScale {
		yType = chart.Log
	}

	fmt.Printf("samples:  %d\n", len(points))
	fmt.Printf("x domain: [%s, %s]\n", chart.FormatValue(xd.Min()), chart.FormatValue(xd.Max()))
	fmt.Printf("y domain: [%s, %s] (padded)\n", chart.FormatValue(yd.Min()), chart.FormatValue(yd.Max()))
	fmt.Printf("x ticks:  %v\n", chart.FormatTicks(chart.Ticks(xd, chart.DefaultTickCount, chart.Linear)))
	fmt.Printf("y ticks:  %v\n", chart.FormatTicks(chart.Ticks(yd, chart.DefaultTickCount, yType)))
}

func writeTicks(points []chart.Point) {
	xd := chart.ComputeDomain(points, chart.XOf, false)
	yd := chart.ComputeDomain(points, chart.YOf, true)
	yType := chart.Linear
	if logScale {
		yType = chart.Log
	}

	for _, t := range chart.Ticks(xd, chart.DefaultTickCount, chart.Linear) {
		fmt.Printf("x %v\n", t)
	}
	for _, t := range chart.Ticks(yd, chart.DefaultTickCount, yType) {
		fmt.Printf("y %v\n", t)
	}
}

func buildBins(values []float64) []histogram.Bin {
	n := binCount
	if n <= 0 {
		n = histogram.SelectBinCount(values, histogram.ParseMethod(binMethod))
	}
	return histogram.Bins(values, n, histogram.Options{Cumulative: cumulative, Normalize: normalize})
}

func writeChart(points []chart.Point, values []float64) error {
	width, height := defaultWidth, defaultHeight
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h-2
	}

	switch chartMode {
	case "line":
		yType := chart.Linear
		if logScale {
			yType = chart.Log
		}
		fmt.Println(render.LineChart(points, width, height, render.LineOptions{
			YType: yType,
			Trend: trendMode,
			Style: render.SeriesStyle(0),
		}))
	case "histogram":
		fmt.Println(render.HistogramChart(buildBins(values), width, 1))
	case "heatmap":
		pal := colormap.Lookup(palette)
		fmt.Println(render.Colorbar(pal, min(width, 64)))
	case "polar":
		fmt.Println(render.PolarScatter(series.Spiral(90, 3, 1), min(height, width/2)))
	default:
		return fmt.Errorf("unknown chart type %q", chartMode)
	}
	return nil
}

// runOnce renders a single line chart for piped output.
func runOnce(points []chart.Point) {
	fmt.Println(render.LineChart(points, defaultWidth, defaultHeight, render.LineOptions{}))
}
