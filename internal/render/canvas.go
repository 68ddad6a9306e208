package render

// canvas is a braille micro-pixel buffer: each terminal cell holds a
// 2x4 grid of dots encoded as an 8-bit mask, giving line charts four
// times the vertical resolution of plain block characters.
type canvas struct {
	w, h  int // in cells
	masks [][]uint8
}

func newCanvas(w, h int) *canvas {
	masks := make([][]uint8, h)
	for i := range masks {
		masks[i] = make([]uint8, w)
	}
	return &canvas{w: w, h: h, masks: masks}
}

// pixelSize returns the micro-pixel dimensions of the canvas.
func (c *canvas) pixelSize() (w, h int) {
	return c.w * 2, c.h * 4
}

// braille dot bits, indexed [column][row] within a cell.
var dotBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// set lights the micro-pixel at (mx, my). Out-of-bounds pixels are
// silently dropped so callers can draw clipped lines.
func (c *canvas) set(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, cy := mx/2, my/4
	if cx >= c.w || cy >= c.h {
		return
	}
	c.masks[cy][cx] |= dotBits[mx%2][my%4]
}

// line draws a micro-pixel line with Bresenham's algorithm.
func (c *canvas) line(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		c.set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// rows renders the buffer as one string per cell row.
func (c *canvas) rows() []string {
	out := make([]string, c.h)
	for y := 0; y < c.h; y++ {
		row := make([]rune, c.w)
		for x := 0; x < c.w; x++ {
			if mask := c.masks[y][x]; mask != 0 {
				row[x] = rune(0x2800 + int(mask))
			} else {
				row[x] = ' '
			}
		}
		out[y] = string(row)
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
