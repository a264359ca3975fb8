package graph

import (
	"github.com/katalvlaran/mrvg/geom"
	"github.com/katalvlaran/mrvg/polygon"
)

// Raycast tests the segment (x0,y0)-(x1,y1) against every obstacle in the
// graph, short-circuiting as soon as one blocks it. When prioritise is
// non-nil it is tested first — the common case when the caller already
// knows which obstacle is most likely to block (e.g. the obstacle just
// being inserted during AddObstacle's edge-pruning phase).
func (g *Graph) Raycast(x0, y0, x1, y1 float64, prioritise *polygon.Polygon) *polygon.RaycastResult {
	g.guard.RLock()
	defer g.guard.RUnlock()

	return g.raycastLocked(x0, y0, x1, y1, prioritise)
}

func (g *Graph) raycastLocked(x0, y0, x1, y1 float64, prioritise *polygon.Polygon) *polygon.RaycastResult {
	result := polygon.NewRaycastResult()
	origin := geom.Vec{X: x0, Y: y0}
	dir := geom.Vec{X: x1 - x0, Y: y1 - y0}

	if prioritise != nil {
		if prioritise.Raycast(origin, dir, result).Blocked() {
			return result
		}
	}

	for _, o := range g.obstacleCandidatesForSegment(x0, y0, x1, y1) {
		if o == prioritise {
			continue
		}
		if o.Raycast(origin, dir, result).Blocked() {
			break
		}
	}

	return result
}

// raycastPrioritised is the internal counterpart used by AddObstacle's
// phases while the graph's mutation lock is already held.
func (g *Graph) raycastPrioritised(n, m geom.Vec, prioritise *polygon.Polygon) *polygon.RaycastResult {
	return g.raycastLocked(n.X, n.Y, m.X, m.Y, prioritise)
}
