// Package polar converts polar and hexagonal-grid coordinates into
// Cartesian pixel positions for polar charts and hex heatmaps.
package polar

import "math"

// Direction is the winding direction of increasing angle.
type Direction int

const (
	Clockwise Direction = iota
	CounterClockwise
)

func (d Direction) String() string {
	if d == Clockwise {
		return "clockwise"
	}
	return "counterclockwise"
}

// Placement fixes the angular convention of one polar chart: the
// pixel center, the screen angle drawn at data angle zero, and the
// winding direction.
type Placement struct {
	CenterX       float64
	CenterY       float64
	StartAngleDeg float64
	Direction     Direction
}

// ToCartesian converts an (angle, radius) pair to pixel coordinates
// under the placement's convention. Y is subtracted rather than
// added because pixel space grows downward while the angle increases
// counter-clockwise mathematically.
func ToCartesian(angleDeg, radius float64, pl Placement) (x, y float64) {
	adjusted := pl.StartAngleDeg + angleDeg
	if pl.Direction == Clockwise {
		adjusted = pl.StartAngleDeg - angleDeg
	}

	rad := adjusted * math.Pi / 180
	x = pl.CenterX + radius*math.Cos(rad)
	y = pl.CenterY - radius*math.Sin(rad)
	return x, y
}

// HexCenter returns the pixel center of a flat-top hexagon cell at
// axial (col, row). Horizontal spacing is 1.5r, vertical spacing
// sqrt(3)·r, and odd columns are shifted down half a row.
func HexCenter(col, row int, radius, originX, originY float64) (x, y float64) {
	x = originX + 1.5*radius*float64(col)
	y = originY + math.Sqrt(3)*radius*float64(row)
	if col%2 != 0 {
		y += math.Sqrt(3) * radius / 2
	}
	return x, y
}
