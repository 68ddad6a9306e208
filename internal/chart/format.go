package chart

import (
	"fmt"
	"math"
)

// FormatValue canonicalizes a number to a short display string for
// axis and legend labels:
//
//	|v| >= 1e6          -> "1.2M"
//	1e3 <= |v| < 1e6    -> "4.5K"
//	0 < |v| < 0.01      -> "3.0e-05"
//	otherwise           -> "7.25"
//
// Zero takes the final branch and renders as "0.00", never as
// exponential.
func FormatValue(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs >= 1e6:
		return fmt.Sprintf("%.1fM", v/1e6)
	case abs >= 1e3:
		return fmt.Sprintf("%.1fK", v/1e3)
	case abs > 0 && abs < 0.01:
		return fmt.Sprintf("%.1e", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}

// FormatTicks formats a tick sequence in one pass.
func FormatTicks(ticks []float64) []string {
	labels := make([]string, len(ticks))
	for i, t := range ticks {
		labels[i] = FormatValue(t)
	}
	return labels
}
