package node

import "github.com/katalvlaran/mrvg/polygon"

// EncompassingObstacles tracks, for one Node, which obstacles touch it and
// how: convex holds the obstacles for which this node sits exactly at a
// convex vertex; concaveCount counts touches anywhere else (interior, edge
// interior, or a concave vertex) that are not also a convex touch. A node
// with concaveCount > 0 is concave and must have no connections — no
// optimal path ever visits it.
type EncompassingObstacles struct {
	convex       map[*polygon.Polygon]struct{}
	all          map[*polygon.Polygon]struct{}
	concaveCount int
}

// Add registers a single touch of obstacle o against this node and reports
// whether this specific registration transitioned the node from
// non-concave to concave. A convex touch never makes a node concave; the
// first concave touch does.
func (e *EncompassingObstacles) Add(o *polygon.Polygon, isConvex bool) bool {
	e.ensure()
	e.all[o] = struct{}{}

	if isConvex {
		e.convex[o] = struct{}{}
		return false
	}

	becameConcave := e.concaveCount == 0
	e.concaveCount++
	return becameConcave
}

// Update registers a batch of touches of the same convexity and reports
// whether the batch transitioned the node to concave. It is used when a
// newly created node must retroactively register every preexisting
// obstacle that already contains it (always as a concave touch, since a
// convex touch can only ever come from the obstacle being inserted right
// now).
func (e *EncompassingObstacles) Update(obstacles []*polygon.Polygon, isConvex bool) bool {
	if len(obstacles) == 0 {
		return false
	}
	e.ensure()

	if isConvex {
		for _, o := range obstacles {
			e.all[o] = struct{}{}
			e.convex[o] = struct{}{}
		}
		return false
	}

	becameConcave := e.concaveCount == 0
	for _, o := range obstacles {
		e.all[o] = struct{}{}
	}
	e.concaveCount += len(obstacles)
	return becameConcave
}

// AnyConcave reports whether at least one concave touch has been recorded.
func (e *EncompassingObstacles) AnyConcave() bool {
	return e.concaveCount > 0
}

// Convex reports whether obstacle o registered a convex touch on this node.
func (e *EncompassingObstacles) Convex(o *polygon.Polygon) bool {
	if e.convex == nil {
		return false
	}
	_, ok := e.convex[o]
	return ok
}

// Has reports whether obstacle o has touched this node at all, convex or
// concave.
func (e *EncompassingObstacles) Has(o *polygon.Polygon) bool {
	if e.all == nil {
		return false
	}
	_, ok := e.all[o]
	return ok
}

// ConvexObstacles returns the obstacles for which this node is a convex
// vertex. Callers must treat the returned slice as read-only.
func (e *EncompassingObstacles) ConvexObstacles() []*polygon.Polygon {
	out := make([]*polygon.Polygon, 0, len(e.convex))
	for o := range e.convex {
		out = append(out, o)
	}
	return out
}

func (e *EncompassingObstacles) ensure() {
	if e.all == nil {
		e.all = make(map[*polygon.Polygon]struct{})
	}
	if e.convex == nil {
		e.convex = make(map[*polygon.Polygon]struct{})
	}
}
