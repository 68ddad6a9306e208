package chart

import (
	"math"
	"testing"
)

func TestTicks_Linear(t *testing.T) {
	tests := []struct {
		name   string
		domain Domain
		count  int
		want   []float64
	}{
		{"unit domain five ticks", Domain{0, 1}, 5, []float64{0, 0.25, 0.5, 0.75, 1}},
		{"two ticks are the endpoints", Domain{-3, 7}, 2, []float64{-3, 7}},
		{"negative span", Domain{-10, 10}, 5, []float64{-10, -5, 0, 5, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Ticks(tt.domain, tt.count, Linear)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if math.Abs(got[i]-tt.want[i]) > 1e-12 {
					t.Errorf("tick[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestTicks_EndpointsExact(t *testing.T) {
	// The first and last ticks are the exact domain bounds even when
	// the step accumulates float error.
	domain := Domain{0.1, 0.9299999}
	got := Ticks(domain, 7, Linear)
	if got[0] != domain[0] {
		t.Errorf("first tick %v != domain min %v", got[0], domain[0])
	}
	if got[len(got)-1] != domain[1] {
		t.Errorf("last tick %v != domain max %v", got[len(got)-1], domain[1])
	}
}

func TestTicks_Log(t *testing.T) {
	got := Ticks(Domain{1, 10000}, 5, Log)
	want := []float64{1, 10, 100, 1000, 10000}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range got {
		if math.Abs(got[i]-want[i])/want[i] > 1e-9 {
			t.Errorf("tick[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestTicks_LogGeometricSpacing(t *testing.T) {
	got := Ticks(Domain{2, 512}, 4, Log)
	for i := 2; i < len(got); i++ {
		r1 := got[i] / got[i-1]
		r0 := got[i-1] / got[i-2]
		if math.Abs(r1-r0) > 1e-9 {
			t.Errorf("ratios differ: %v vs %v", r0, r1)
		}
	}
}

func TestTicks_CountBelowTwoPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Ticks with count=1 should panic")
		}
	}()
	Ticks(Domain{0, 1}, 1, Linear)
}
