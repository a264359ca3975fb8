// Package astar implements the bidirectional-edge-weighted A* search that
// graph.Graph.FindPath delegates to. It depends only on geom and polygon,
// never on graph itself — graph depends on astar to implement FindPath, so
// the dependency can only run one way. Search instead takes a narrow Graph
// interface that graph.Graph satisfies implicitly.
package astar

import (
	"github.com/katalvlaran/mrvg/geom"
	"github.com/katalvlaran/mrvg/polygon"
)

// NodeInfo is the read-only view of one visibility-graph node that Search
// needs: its position, whether it is touched concavely (and therefore
// ineligible to originate new visibility links), and its weighted
// neighbours keyed by neighbour position.
type NodeInfo struct {
	Point      geom.Vec
	Concave    bool
	Neighbours map[geom.Vec]float64
}

// Graph is the surface Search needs from a visibility graph.
type Graph interface {
	// Raycast tests the segment (x0,y0)-(x1,y1) against every obstacle,
	// prioritising the given obstacle in the scan when non-nil.
	Raycast(x0, y0, x1, y1 float64, prioritise *polygon.Polygon) *polygon.RaycastResult

	// NodeAt returns the node at point p, if one exists.
	NodeAt(p geom.Vec) (NodeInfo, bool)

	// Nodes returns every node currently in the graph. Order is unspecified.
	Nodes() []NodeInfo
}

// Candidate is the (point, f, g) triple exposed to a custom tie-break
// function installed via WithTieBreak.
type Candidate struct {
	Point geom.Vec
	F, G  float64
}

// config holds Search's resolved options.
type config struct {
	less func(a, b Candidate) bool
}

// Option configures a Search call.
type Option func(*config)

// WithTieBreak overrides the default open-set ordering. less(a, b) must
// report whether a should be popped before b; Search's default matches the
// reference ordering (smallest f, ties broken by largest g, then by point).
func WithTieBreak(less func(a, b Candidate) bool) Option {
	return func(c *config) { c.less = less }
}

func defaultConfig() config {
	return config{less: defaultLess}
}

func defaultLess(a, b Candidate) bool {
	if a.F != b.F {
		return a.F < b.F
	}
	if a.G != b.G {
		return a.G > b.G
	}
	if a.Point.X != b.Point.X {
		return a.Point.X > b.Point.X
	}
	return a.Point.Y > b.Point.Y
}
