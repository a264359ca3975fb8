// Package polygon holds the counter-clockwise vertex ring of an obstacle,
// with per-vertex data (convexity, inbound/outbound edge vectors) baked in
// at construction, and exposes the three geometric queries the visibility
// graph needs against it: point containment, interior-angle narrowness,
// and segmented raycasting.
package polygon

import (
	"errors"

	"github.com/katalvlaran/mrvg/geom"
)

// Sentinel errors for polygon construction.
var (
	// ErrTooFewVertices indicates fewer than 3 vertices were supplied.
	ErrTooFewVertices = errors.New("polygon: at least 3 vertices are required")

	// ErrNotCCW indicates the supplied ring has non-positive signed area,
	// i.e. it is clockwise or degenerate.
	ErrNotCCW = errors.New("polygon: vertices must be wound counter-clockwise")
)

// AABB is an axis-aligned bounding box, used by callers (e.g. obstaclegen)
// that need to describe a region without constructing a Polygon for it.
type AABB struct {
	MinX, MinY, MaxX, MaxY float64
}

// Vertex is a single baked vertex of a Polygon: its position, whether it is
// convex (interior angle < 180 degrees), and the edge vectors pointing in
// from the previous vertex and out to the next one.
type Vertex struct {
	Pos    geom.Vec
	Convex bool

	// InFromPrev is the vector from the previous vertex to this one.
	InFromPrev geom.Vec
	// OutToNext is the vector from this vertex to the next one.
	OutToNext geom.Vec
}

// Polygon is an immutable, counter-clockwise ring of vertices. Identity is
// by pointer: two polygons built from identical coordinates are distinct
// obstacles.
type Polygon struct {
	vertices  []Vertex
	byPos     map[geom.Vec]*Vertex
	aabbMinX  float64
	aabbMinY  float64
	aabbMaxX  float64
	aabbMaxY  float64
	axisAlign bool // true when this polygon was built by NewRectangle
}
