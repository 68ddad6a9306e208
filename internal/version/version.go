// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - LTTB decimation option, artifact JSON export, live streaming view
// 0.2.0 - Heatmap and polar previews, colormap palettes, gradient CSS output
// 0.1.0 - Initial release: chart computation core, braille line chart, histogram modes
