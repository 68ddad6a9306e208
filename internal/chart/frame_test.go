package chart

import (
	"math"
	"testing"
)

func TestNewFrame_Project(t *testing.T) {
	frame := NewFrame(
		Domain{0, 10}, Domain{0, 100},
		Range{0, 200}, Range{80, 0}, // y inverted for screen space
		Linear, Linear,
	)

	tests := []struct {
		name  string
		p     Point
		wantX float64
		wantY float64
	}{
		{"origin maps to bottom-left", Point{0, 0}, 0, 80},
		{"max maps to top-right", Point{10, 100}, 200, 0},
		{"center", Point{5, 50}, 100, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := frame.Project(tt.p)
			if math.Abs(x-tt.wantX) > 1e-9 || math.Abs(y-tt.wantY) > 1e-9 {
				t.Errorf("Project(%v) = (%v, %v), want (%v, %v)", tt.p, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestNewFrame_SharedMapping(t *testing.T) {
	// Two consumers of the same frame see identical coordinates;
	// that is the point of passing the frame explicitly.
	frame := NewFrame(Domain{0, 1}, Domain{0, 1}, Range{0, 100}, Range{100, 0}, Linear, Linear)

	p := Point{0.3, 0.7}
	x1, y1 := frame.Project(p)
	x2, y2 := frame.XScale(p.X), frame.YScale(p.Y)
	if x1 != x2 || y1 != y2 {
		t.Errorf("Project and direct scale calls disagree: (%v,%v) vs (%v,%v)", x1, y1, x2, y2)
	}
}

func TestNewFrame_LogY(t *testing.T) {
	frame := NewFrame(Domain{0, 1}, Domain{1, 100}, Range{0, 10}, Range{100, 0}, Linear, Log)
	_, y := frame.Project(Point{0, 10})
	if math.Abs(y-50) > 1e-9 {
		t.Errorf("log midpoint projected to %v, want 50", y)
	}
}
