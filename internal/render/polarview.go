package render

import (
	"math"
	"strings"

	"github.com/litescript/plotkit/internal/polar"
)

// PolarScatter renders (angleDeg, radius) samples as glyphs around a
// center marker. The placement puts data angle 0 at the top (screen
// start angle 90) winding clockwise, the compass convention polar
// charts use. Cell aspect is corrected by doubling the x radius.
func PolarScatter(points [][2]float64, size int) string {
	if size < 5 {
		size = 5
	}
	if size%2 == 0 {
		size++
	}

	grid := make([][]rune, size)
	for i := range grid {
		grid[i] = make([]rune, size*2)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	center := float64(size / 2)
	maxRadius := 0.0
	for _, p := range points {
		if p[1] > maxRadius {
			maxRadius = p[1]
		}
	}

	pl := polar.Placement{
		CenterX:       center * 2,
		CenterY:       center,
		StartAngleDeg: 90,
		Direction:     polar.Clockwise,
	}

	for _, p := range points {
		r := p[1]
		if maxRadius > 0 {
			r = p[1] / maxRadius * center
		}
		x, y := polar.ToCartesian(p[0], r, pl)
		// x offset doubled to compensate for tall terminal cells.
		col := int(math.Round(pl.CenterX + (x-pl.CenterX)*2))
		row := int(math.Round(y))
		if row >= 0 && row < size && col >= 0 && col < size*2 {
			grid[row][col] = '•'
		}
	}

	grid[size/2][size] = '+'

	var b strings.Builder
	for i, row := range grid {
		line := string(row)
		if i == size/2 {
			b.WriteString(axisStyle.Render(line))
		} else {
			b.WriteString(line)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
