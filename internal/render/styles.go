// Package render builds terminal chart views from the computation
// core: braille line charts, histogram bars, colormapped heatmaps
// and polar scatters, all as plain strings.
package render

import "github.com/charmbracelet/lipgloss"

// SeriesPalette is Paul Tol's qualitative palette, chosen for
// colorblind accessibility. See https://personal.sron.nl/~pault/
var SeriesPalette = []string{
	"#4477AA", // blue
	"#EE6677", // rose
	"#228833", // green
	"#CCBB44", // olive
	"#66CCEE", // cyan
	"#AA3377", // purple
}

var (
	axisStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#CCBB44"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#66CCEE"))
	trendStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#EE6677"))
	faintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// SeriesStyle returns the foreground style for a series index,
// cycling through the palette.
func SeriesStyle(index int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(SeriesPalette[index%len(SeriesPalette)]))
}
