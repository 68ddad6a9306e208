// Package tui provides the interactive chart preview using Bubble Tea.
package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/plotkit/internal/chart"
	"github.com/litescript/plotkit/internal/colormap"
	"github.com/litescript/plotkit/internal/histogram"
	"github.com/litescript/plotkit/internal/render"
	"github.com/litescript/plotkit/internal/series"
	"github.com/litescript/plotkit/internal/stream"
	"github.com/litescript/plotkit/internal/version"
)

// ViewMode represents the current preview view.
type ViewMode int

const (
	ViewLine ViewMode = iota
	ViewHistogram
	ViewHeatmap
	ViewPolar
	ViewStream
	viewModeCount
)

func (v ViewMode) String() string {
	switch v {
	case ViewLine:
		return "Line"
	case ViewHistogram:
		return "Histogram"
	case ViewHeatmap:
		return "Heatmap"
	case ViewPolar:
		return "Polar"
	case ViewStream:
		return "Stream"
	default:
		return "?"
	}
}

// StreamTickMsg advances the live streaming view.
type StreamTickMsg time.Time

const streamInterval = 250 * time.Millisecond

// keyMap defines the preview keybindings.
type keyMap struct {
	NextView   key.Binding
	Palette    key.Binding
	BinMethod  key.Binding
	Trend      key.Binding
	LogY       key.Binding
	Cumulative key.Binding
	Quit       key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextView, k.Palette, k.BinMethod, k.Trend, k.LogY, k.Cumulative, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var keys = keyMap{
	NextView:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "view")),
	Palette:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "palette")),
	BinMethod:  key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "bin rule")),
	Trend:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "trendline")),
	LogY:       key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "log y")),
	Cumulative: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cumulative")),
	Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#66CCEE"))
	tabStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	tabOnStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// Model is the root preview model.
type Model struct {
	width  int
	height int
	ready  bool

	viewMode   ViewMode
	points     []chart.Point
	values     []float64
	binMethods []histogram.Method
	binIdx     int
	palettes   []string
	paletteIdx int
	showTrend  bool
	logY       bool
	cumulative bool

	ring     *stream.Ring
	streamT  float64
	heatGrid [][]float64
	polarPts [][2]float64
}

// New creates the preview model for a loaded point series.
func New(points []chart.Point) Model {
	values := series.Values(points, chart.YOf)
	return Model{
		viewMode:   ViewLine,
		points:     points,
		values:     values,
		binMethods: []histogram.Method{histogram.Auto, histogram.Sturges, histogram.Scott, histogram.FreedmanDiaconis, histogram.Sqrt},
		palettes:   colormap.Names(),
		ring:       stream.NewRing(120),
		heatGrid:   demoHeatGrid(12, 24),
		polarPts:   series.Spiral(90, 3, 1),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return streamTickCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case StreamTickMsg:
		m.streamT += 0.2
		m.ring.Push(chart.Point{
			X: m.streamT,
			Y: math.Sin(m.streamT) + 0.3*math.Sin(3.7*m.streamT),
		})
		return m, streamTickCmd()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.NextView):
			m.viewMode = (m.viewMode + 1) % viewModeCount
		case key.Matches(msg, keys.Palette):
			m.paletteIdx = (m.paletteIdx + 1) % len(m.palettes)
		case key.Matches(msg, keys.BinMethod):
			m.binIdx = (m.binIdx + 1) % len(m.binMethods)
		case key.Matches(msg, keys.Trend):
			m.showTrend = !m.showTrend
		case key.Matches(msg, keys.LogY):
			m.logY = !m.logY
		case key.Matches(msg, keys.Cumulative):
			m.cumulative = !m.cumulative
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteByte('\n')

	plotW := m.width - 4
	plotH := m.height - 7
	if plotH < 4 {
		plotH = 4
	}

	switch m.viewMode {
	case ViewLine:
		yType := chart.Linear
		if m.logY {
			yType = chart.Log
		}
		b.WriteString(render.LineChart(m.points, plotW, plotH, render.LineOptions{
			YType: yType,
			Trend: m.showTrend,
			Style: render.SeriesStyle(0),
		}))

	case ViewHistogram:
		method := m.binMethods[m.binIdx]
		n := histogram.SelectBinCount(m.values, method)
		bins := histogram.Bins(m.values, n, histogram.Options{Cumulative: m.cumulative})
		b.WriteString(render.HistogramChart(bins, plotW, 1))

	case ViewHeatmap:
		pal := colormap.Lookup(m.palettes[m.paletteIdx])
		b.WriteString(render.Heatmap(m.heatGrid, pal))
		b.WriteByte('\n')
		b.WriteString(render.Colorbar(pal, min(plotW, 48)))

	case ViewPolar:
		size := plotH
		if size > plotW/2 {
			size = plotW / 2
		}
		b.WriteString(render.PolarScatter(m.polarPts, size))

	case ViewStream:
		b.WriteString(render.LineChart(m.ring.Points(), plotW, plotH, render.LineOptions{
			Style: render.SeriesStyle(2),
		}))
	}

	b.WriteByte('\n')
	b.WriteString(m.renderStatus())
	b.WriteByte('\n')
	b.WriteString(help.New().ShortHelpView(keys.ShortHelp()))
	return b.String()
}

func (m Model) renderHeader() string {
	title := titleStyle.Render(fmt.Sprintf("plotkit %s", version.Version))
	tabs := make([]string, viewModeCount)
	for v := ViewMode(0); v < viewModeCount; v++ {
		if v == m.viewMode {
			tabs[v] = tabOnStyle.Render("[" + v.String() + "]")
		} else {
			tabs[v] = tabStyle.Render(" " + v.String() + " ")
		}
	}
	return title + "  " + strings.Join(tabs, " ")
}

func (m Model) renderStatus() string {
	switch m.viewMode {
	case ViewHistogram:
		method := m.binMethods[m.binIdx]
		mode := "counts"
		if m.cumulative {
			mode = "cumulative"
		}
		return statusStyle.Render(fmt.Sprintf("%d samples · %s · %d bins · %s",
			len(m.values), method, histogram.SelectBinCount(m.values, method), mode))
	case ViewHeatmap:
		return statusStyle.Render("palette: " + m.palettes[m.paletteIdx])
	case ViewStream:
		return statusStyle.Render(fmt.Sprintf("ring %d/%d", m.ring.Len(), m.ring.Cap()))
	default:
		xd := chart.ComputeDomain(m.points, chart.XOf, false)
		yd := chart.ComputeDomain(m.points, chart.YOf, true)
		return statusStyle.Render(fmt.Sprintf("%d points · x %s…%s · y %s…%s",
			len(m.points),
			chart.FormatValue(xd.Min()), chart.FormatValue(xd.Max()),
			chart.FormatValue(yd.Min()), chart.FormatValue(yd.Max())))
	}
}

func streamTickCmd() tea.Cmd {
	return tea.Tick(streamInterval, func(t time.Time) tea.Msg {
		return StreamTickMsg(t)
	})
}

// demoHeatGrid builds a smooth two-bump surface for the heatmap
// preview.
func demoHeatGrid(rows, cols int) [][]float64 {
	grid := make([][]float64, rows)
	for r := range grid {
		grid[r] = make([]float64, cols)
		for c := range grid[r] {
			u := float64(c) / float64(cols-1)
			v := float64(r) / float64(rows-1)
			grid[r][c] = math.Sin(3*math.Pi*u)*math.Cos(2*math.Pi*v) + u
		}
	}
	return grid
}
