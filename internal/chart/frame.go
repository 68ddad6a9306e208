package chart

// Frame bundles the coordinate mapping shared by everything drawn in
// one plot: both domains, both pixel ranges and the derived scales.
// It is a plain value built once per render and passed explicitly to
// each computation, so sibling renderers read the same mapping
// without any implicit context lookup.
type Frame struct {
	XDomain Domain
	YDomain Domain
	XRange  Range
	YRange  Range
	XScale  Scale
	YScale  Scale
}

// NewFrame derives both scales from the given domains and ranges.
// YRange is typically inverted (top, then bottom) to match
// downward-increasing screen coordinates.
func NewFrame(xDomain, yDomain Domain, xRange, yRange Range, xType, yType ScaleType) Frame {
	return Frame{
		XDomain: xDomain,
		YDomain: yDomain,
		XRange:  xRange,
		YRange:  yRange,
		XScale:  BuildScale(xDomain, xRange, xType),
		YScale:  BuildScale(yDomain, yRange, yType),
	}
}

// Project maps a data point into range space through both scales.
func (f Frame) Project(p Point) (x, y float64) {
	return f.XScale(p.X), f.YScale(p.Y)
}
