package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/plotkit/internal/colormap"
)

// Heatmap renders a value grid as colormapped cells, two characters
// per cell so they read roughly square. The value domain spans the
// whole grid; a uniform grid maps every cell to the palette start.
func Heatmap(grid [][]float64, pal colormap.Palette) string {
	if len(grid) == 0 {
		return faintStyle.Render("(no data)")
	}

	min, max := grid[0][0], grid[0][0]
	for _, row := range grid {
		for _, v := range row {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}

	var b strings.Builder
	for _, row := range grid {
		for _, v := range row {
			c := colormap.MapValue(v, min, max, pal)
			b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render("  "))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Colorbar renders a horizontal palette strip with the domain bounds
// underneath, the terminal analogue of the CSS gradient the engine
// serves to web colorbars.
func Colorbar(pal colormap.Palette, width int) string {
	if width < 2 {
		width = 2
	}

	var b strings.Builder
	for i := 0; i < width; i++ {
		t := float64(i) / float64(width-1)
		c := pal.At(t)
		b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render(" "))
	}
	b.WriteByte('\n')
	b.WriteString(labelStyle.Render("0" + strings.Repeat(" ", width-2) + "1"))
	return b.String()
}
