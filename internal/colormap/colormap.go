// Package colormap maps scalar values to colors through named,
// perceptually-structured palettes, and serializes palettes as CSS
// gradients for colorbars.
package colormap

import (
	"fmt"
	"sort"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Stop is a single palette control point: a position in [0, 1] and
// the color anchored there.
type Stop struct {
	Pos   float64
	Color colorful.Color
}

// Palette is a named, ordered list of control points, monotonic in
// Pos. Palettes are data defined once at process start; they are
// never mutated.
type Palette struct {
	Name  string
	Stops []Stop
}

// DefaultName is the palette used when a requested name is unknown.
// Display math degrades to a safe default instead of failing.
const DefaultName = "viridis"

// Lookup returns the named palette, or the default palette for
// unknown names.
func Lookup(name string) Palette {
	if p, ok := palettes[name]; ok {
		return p
	}
	return palettes[DefaultName]
}

// Names returns all palette names in sorted order, for UI cycling.
func Names() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MapValue normalizes value within [min, max] and returns the
// palette color at that position. The normalized position is clamped
// to [0, 1]; a collapsed domain (min == max) maps to position 0 so
// no division by zero occurs.
func MapValue(value, min, max float64, p Palette) colorful.Color {
	t := 0.0
	if max != min {
		t = (value - min) / (max - min)
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
	}
	return p.At(t)
}

// At returns the palette color at position t in [0, 1]: the two
// control points bracketing t are found and each RGB channel is
// interpolated linearly between them.
func (p Palette) At(t float64) colorful.Color {
	stops := p.Stops
	if t <= stops[0].Pos {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if t >= last.Pos {
		return last.Color
	}

	for i := 1; i < len(stops); i++ {
		if t > stops[i].Pos {
			continue
		}
		lo, hi := stops[i-1], stops[i]
		span := hi.Pos - lo.Pos
		frac := 0.0
		if span > 0 {
			frac = (t - lo.Pos) / span
		}
		return lerp(lo.Color, hi.Color, frac)
	}
	return last.Color
}

// lerp blends each RGB channel linearly. The palettes are designed
// around channel-space blending between close stops, so no
// perceptual color space conversion happens here.
func lerp(a, b colorful.Color, t float64) colorful.Color {
	return colorful.Color{
		R: a.R + t*(b.R-a.R),
		G: a.G + t*(b.G-a.G),
		B: a.B + t*(b.B-a.B),
	}
}

// GradientCSS serializes the palette's control points, in order, as
// a CSS linear-gradient for direct display (colorbars, legends). An
// empty direction defaults to "to right".
func GradientCSS(p Palette, direction string) string {
	if direction == "" {
		direction = "to right"
	}
	parts := make([]string, len(p.Stops))
	for i, s := range p.Stops {
		parts[i] = fmt.Sprintf("%s %.1f%%", s.Color.Hex(), s.Pos*100)
	}
	return fmt.Sprintf("linear-gradient(%s, %s)", direction, strings.Join(parts, ", "))
}

// Luminance returns the perceived brightness of c on the 0-255
// scale: 0.299r + 0.587g + 0.114b.
func Luminance(c colorful.Color) float64 {
	r, g, b := c.RGB255()
	return 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
}

// OverlayColor picks a legible text color for content drawn on top
// of c: black over light backgrounds, white over dark, split at the
// luminance midpoint.
func OverlayColor(c colorful.Color) colorful.Color {
	if Luminance(c) > 127.5 {
		return colorful.Color{R: 0, G: 0, B: 0}
	}
	return colorful.Color{R: 1, G: 1, B: 1}
}
