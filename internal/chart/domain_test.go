package chart

import (
	"math"
	"testing"
)

func TestComputeDomain(t *testing.T) {
	tests := []struct {
		name       string
		points     []Point
		accessor   Accessor
		addPadding bool
		want       Domain
	}{
		{
			name:       "empty input falls back to unit domain",
			points:     nil,
			accessor:   YOf,
			addPadding: false,
			want:       Domain{0, 1},
		},
		{
			name:       "empty input with padding still unit domain",
			points:     nil,
			accessor:   YOf,
			addPadding: true,
			want:       Domain{0, 1},
		},
		{
			name:       "exact bounds without padding",
			points:     []Point{{X: 1, Y: 10}, {X: 2, Y: -5}, {X: 3, Y: 7}},
			accessor:   YOf,
			addPadding: false,
			want:       Domain{-5, 10},
		},
		{
			name:       "x accessor",
			points:     []Point{{X: 3, Y: 0}, {X: -1, Y: 0}, {X: 8, Y: 0}},
			accessor:   XOf,
			addPadding: false,
			want:       Domain{-1, 8},
		},
		{
			name:       "padding widens by 10 percent of span",
			points:     []Point{{Y: 0}, {Y: 10}},
			accessor:   YOf,
			addPadding: true,
			want:       Domain{-1, 11},
		},
		{
			name:       "all-equal values pad by 1",
			points:     []Point{{Y: 5}, {Y: 5}, {Y: 5}},
			accessor:   YOf,
			addPadding: true,
			want:       Domain{4, 6},
		},
		{
			name:       "single point pads by 1",
			points:     []Point{{Y: -3}},
			accessor:   YOf,
			addPadding: true,
			want:       Domain{-4, -2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeDomain(tt.points, tt.accessor, tt.addPadding)
			if math.Abs(got[0]-tt.want[0]) > 1e-12 || math.Abs(got[1]-tt.want[1]) > 1e-12 {
				t.Errorf("ComputeDomain() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComputeDomain_PaddingAlwaysCovers(t *testing.T) {
	// Property: a padded domain always contains the data extremes.
	datasets := [][]Point{
		{{Y: 1}},
		{{Y: -100}, {Y: 100}},
		{{Y: 0.001}, {Y: 0.002}, {Y: 0.0015}},
		{{Y: 42}, {Y: 42}, {Y: 42}, {Y: 42}},
	}

	for _, points := range datasets {
		got := ComputeDomain(points, YOf, true)
		raw := ComputeDomain(points, YOf, false)
		if got[0] >= raw[0] {
			t.Errorf("padded min %v not below data min %v", got[0], raw[0])
		}
		if got[1] <= raw[1] {
			t.Errorf("padded max %v not above data max %v", got[1], raw[1])
		}
	}
}

func TestComputeValueDomain(t *testing.T) {
	got := ComputeValueDomain([]float64{4, 1, 9}, false)
	if got != (Domain{1, 9}) {
		t.Errorf("ComputeValueDomain() = %v, want [1 9]", got)
	}
}
