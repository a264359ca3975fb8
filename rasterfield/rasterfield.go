// Package rasterfield turns a bitmap/heightmap-style 2D integer grid into
// obstacle polygons: one unit-square obstacle per cell whose value clears a
// configurable land threshold. This is the raster counterpart to
// obstaclegen.Maze's ASCII format, for callers whose obstacle data
// originates as a grid rather than hand-authored polygons.
package rasterfield

import (
	"errors"

	"github.com/katalvlaran/mrvg/polygon"
)

// Sentinel errors. Callers branch with errors.Is, never string comparison.
var (
	// ErrEmptyGrid indicates values has no rows or no columns.
	ErrEmptyGrid = errors.New("rasterfield: grid must have at least one row and one column")

	// ErrNonRectangular indicates values' rows are not all the same length.
	ErrNonRectangular = errors.New("rasterfield: all rows must have the same length")
)

// Options configures Import.
type Options struct {
	// LandThreshold is the minimum cell value considered "land" (emits an
	// obstacle). Cells below it are "water" and produce nothing.
	LandThreshold int
}

// DefaultOptions returns LandThreshold=1 (values >= 1 are land).
func DefaultOptions() Options {
	return Options{LandThreshold: 1}
}

// Import validates that values is a non-empty rectangular grid, then emits
// one unit-square polygon.Polygon per land cell (value >= opts.LandThreshold),
// centred on its (x, y) grid coordinate. Every qualifying cell becomes its
// own obstacle regardless of which neighbours also qualify: adjacent unit
// squares already touch, and the visibility graph treats touching obstacles
// correctly on their own, so no connected-component grouping is needed here.
func Import(values [][]int, opts Options) ([]*polygon.Polygon, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	width := len(values[0])
	for _, row := range values {
		if len(row) != width {
			return nil, ErrNonRectangular
		}
	}

	var out []*polygon.Polygon
	for y, row := range values {
		for x, v := range row {
			if v < opts.LandThreshold {
				continue
			}
			fx, fy := float64(x), float64(y)
			out = append(out, polygon.NewRectangle(fx-0.5, fy-0.5, fx+0.5, fy+0.5))
		}
	}
	return out, nil
}
