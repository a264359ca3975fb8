package obstaclegen

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/mrvg/geom"
	"github.com/katalvlaran/mrvg/graph"
	"github.com/katalvlaran/mrvg/polygon"
)

// Maze parses an ASCII maze in the '#'/'A'/'B' format of
// original_source/examples/maze.py into a ready *graph.Graph: each '#'
// becomes a unit square obstacle centred on its cell, 'A' marks the start
// point and 'B' the end point (both returned separately, neither is an
// obstacle). Rows are read bottom-to-top, matching the original's
// `data.splitlines()[::-1]` so row 0 of the returned coordinate space is the
// last line of the literal.
//
// Returns ErrMalformedMaze if rows is empty, rows are not all the same
// width, or the layout does not contain exactly one 'A' and one 'B'.
func Maze(rows string, opts ...graph.Option) (g *graph.Graph, start, end geom.Vec, err error) {
	lines := strings.Split(strings.Trim(rows, "\n"), "\n")
	if len(lines) == 0 {
		return nil, geom.Vec{}, geom.Vec{}, fmt.Errorf("Maze: empty layout: %w", ErrMalformedMaze)
	}

	width := len(lines[0])
	for _, l := range lines {
		if len(l) != width {
			return nil, geom.Vec{}, geom.Vec{}, fmt.Errorf("Maze: rows are not rectangular: %w", ErrMalformedMaze)
		}
	}

	var walls []*polygon.Polygon
	haveStart, haveEnd := false, false

	for i, line := range lines {
		y := len(lines) - 1 - i // bottom-to-top, matching the reference's reversed splitlines
		for x, v := range line {
			switch v {
			case '#':
				fx, fy := float64(x), float64(y)
				walls = append(walls, polygon.NewRectangle(fx-0.5, fy-0.5, fx+0.5, fy+0.5))
			case 'A':
				if haveStart {
					return nil, geom.Vec{}, geom.Vec{}, fmt.Errorf("Maze: more than one 'A': %w", ErrMalformedMaze)
				}
				start = geom.Vec{X: float64(x), Y: float64(y)}
				haveStart = true
			case 'B':
				if haveEnd {
					return nil, geom.Vec{}, geom.Vec{}, fmt.Errorf("Maze: more than one 'B': %w", ErrMalformedMaze)
				}
				end = geom.Vec{X: float64(x), Y: float64(y)}
				haveEnd = true
			}
		}
	}

	if !haveStart || !haveEnd {
		return nil, geom.Vec{}, geom.Vec{}, fmt.Errorf("Maze: missing 'A' or 'B': %w", ErrMalformedMaze)
	}

	g, err = graph.NewWithObstacles(walls, opts...)
	if err != nil {
		return nil, geom.Vec{}, geom.Vec{}, fmt.Errorf("Maze: %w", err)
	}

	return g, start, end, nil
}
