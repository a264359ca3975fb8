package obstaclegen

import (
	"fmt"

	"github.com/katalvlaran/mrvg/polygon"
)

// Grid returns a rows x cols field of axis-aligned rectangle obstacles, each
// cellSize wide and tall, laid out on a regular lattice with spacing between
// neighbouring cells' near edges. Row-major order, (0,0) at the origin; row
// r, column c occupies
//
//	[c*(cellSize+spacing), r*(cellSize+spacing)] to [... + cellSize, ... + cellSize].
//
// This is the rectangle-field fixture behind the benchmark scenario adapted
// from original_source/examples/benchmark.py.
func Grid(rows, cols int, cellSize, spacing float64) ([]*polygon.Polygon, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("Grid: rows=%d, cols=%d (each must be >= 1): %w", rows, cols, ErrTooFewVertices)
	}
	if cellSize <= 0 {
		return nil, fmt.Errorf("Grid: cellSize=%g: %w", cellSize, ErrInvalidSize)
	}
	if spacing < 0 {
		return nil, fmt.Errorf("Grid: spacing=%g must be >= 0: %w", spacing, ErrInvalidSize)
	}

	stride := cellSize + spacing
	out := make([]*polygon.Polygon, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			left := float64(c) * stride
			bottom := float64(r) * stride
			out = append(out, polygon.NewRectangle(left, bottom, left+cellSize, bottom+cellSize))
		}
	}
	return out, nil
}
