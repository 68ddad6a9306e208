// Package series loads point series from files, exports computed
// chart artifacts, and generates deterministic synthetic series for
// the preview path.
package series

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/litescript/plotkit/internal/chart"
)

// LoadCSV reads a two-column CSV of samples and returns them in file
// order. Column detection is case-insensitive: x|t|time for the
// independent axis and y|v|value for the dependent one. A file
// without a recognizable header is treated as bare "x,y" rows.
func LoadCSV(path string) ([]chart.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open series: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	recs, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read series: %w", err)
	}
	if len(recs) == 0 {
		return nil, errors.New("series: empty csv")
	}

	idxX, idxY, hasHeader := detectColumns(recs[0])
	rows := recs
	if hasHeader {
		rows = recs[1:]
	}

	var points []chart.Point
	for _, row := range rows {
		if idxX >= len(row) || idxY >= len(row) {
			continue
		}
		x, errX := strconv.ParseFloat(strings.TrimSpace(row[idxX]), 64)
		y, errY := strconv.ParseFloat(strings.TrimSpace(row[idxY]), 64)
		if errX != nil || errY != nil {
			continue
		}
		points = append(points, chart.Point{X: x, Y: y})
	}
	if len(points) == 0 {
		return nil, errors.New("series: no numeric rows")
	}
	return points, nil
}

// detectColumns maps header names to column indexes. When neither
// axis name is found the first two columns are assumed to be x,y
// data rows with no header.
func detectColumns(header []string) (idxX, idxY int, hasHeader bool) {
	idxX, idxY = -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "x", "t", "time":
			if idxX == -1 {
				idxX = i
			}
		case "y", "v", "value":
			if idxY == -1 {
				idxY = i
			}
		}
	}
	if idxX == -1 || idxY == -1 {
		return 0, 1, false
	}
	return idxX, idxY, true
}

// Values extracts one coordinate from a point series, for histogram
// input.
func Values(points []chart.Point, accessor chart.Accessor) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = accessor(p)
	}
	return out
}
