package graph

import (
	"github.com/katalvlaran/mrvg/geom"
	"github.com/katalvlaran/mrvg/node"
	"github.com/katalvlaran/mrvg/polygon"
	"github.com/katalvlaran/mrvg/quadtree"
)

// AddObstacle inserts a new polygon obstacle into the graph, maintaining
// every invariant in a single pass under the graph's mutation lock. The
// four phases run in order:
//
//  1. Convex-vertex nodes: create or update a Node at each convex vertex of
//     O, registering O as a convex touch and retroactively registering
//     every preexisting obstacle that already contains a freshly created
//     node as a concave touch.
//  2. Concavity sweep: any existing node not yet touching O that lies
//     within or on O is registered as a new concave touch.
//  3. Edge pruning: every connection of every non-concave node is
//     re-checked against O — severed if O makes the direction too narrow
//     at a convex touch, or if a raycast (prioritising O) is now blocked.
//  4. New-node linking: every node newly created at a convex vertex of O
//     is linked to every other mutually visible, non-too-narrow,
//     non-concave node in the graph.
//
// Returns ErrNilObstacle for a nil polygon and ErrDuplicateObstacle if the
// same *polygon.Polygon instance has already been inserted.
func (g *Graph) AddObstacle(o *polygon.Polygon) error {
	if o == nil {
		return ErrNilObstacle
	}

	g.guard.Lock()
	defer g.guard.Unlock()

	if _, dup := g.obstacles[o]; dup {
		return ErrDuplicateObstacle
	}

	createdConvex := g.phaseAConvexVertexNodes(o)
	g.phaseBConcavitySweep(o)
	g.phaseCEdgePruning(o)
	g.phaseDNewNodeLinking(o, createdConvex)

	g.obstacles[o] = struct{}{}
	if g.accel != nil {
		minX, minY, maxX, maxY := o.AABB()
		g.accel.Insert(quadtree.AABB{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}, o)
	}

	return nil
}

func (g *Graph) phaseAConvexVertexNodes(o *polygon.Polygon) []node.Handle {
	var createdConvex []node.Handle

	for _, v := range o.Vertices() {
		if !v.Convex {
			continue
		}

		h, n, created := g.getOrCreateNode(v.Pos)
		if created {
			candidates := g.obstacleCandidates(v.Pos)
			var containing []*polygon.Polygon
			for _, cand := range candidates {
				if cand.IncludesPoint(v.Pos) {
					containing = append(containing, cand)
				}
			}
			// Cannot be a convex touch: a convex-vertex registration is
			// only possible for the obstacle being inserted right now,
			// since the node did not exist before.
			n.Obstacles.Update(containing, false)
		}

		becameConcave := n.Obstacles.Add(o, true)
		if becameConcave {
			node.SeverAll(h, n, g.lookup)
		}

		if created && !n.Concave() {
			createdConvex = append(createdConvex, h)
		}
	}

	return createdConvex
}

func (g *Graph) phaseBConcavitySweep(o *polygon.Polygon) {
	for h, n := range g.arena {
		if n.Obstacles.Has(o) {
			continue
		}
		if !o.IncludesPoint(n.Point) {
			continue
		}

		// Must be concave: convex vertices were already handled in phase A.
		becameConcave := n.Obstacles.Add(o, false)
		if becameConcave {
			node.SeverAll(h, n, g.lookup)
		}
	}
}

func (g *Graph) phaseCEdgePruning(o *polygon.Polygon) {
	for h, n := range g.arena {
		if n.Concave() {
			continue
		}

		neighbours := make([]node.Handle, 0, len(n.Connections))
		for mh := range n.Connections {
			neighbours = append(neighbours, mh)
		}

		for _, mh := range neighbours {
			m := g.lookup(mh)
			dir := geom.Sub(m.Point, n.Point)

			if n.Obstacles.Convex(o) && o.VertexVectorDirectionTooNarrow(n.Point, dir) {
				node.Sever(h, n, mh, m)
				continue
			}

			res := g.raycastPrioritised(n.Point, m.Point, o)
			if res.Blocked() {
				node.Sever(h, n, mh, m)
			}
		}
	}
}

func (g *Graph) phaseDNewNodeLinking(o *polygon.Polygon, createdConvex []node.Handle) {
	for _, nh := range createdConvex {
		n := g.lookup(nh)

		for mh, m := range g.arena {
			if mh == nh {
				continue
			}
			if m.Concave() {
				continue
			}
			if _, connected := n.Connections[mh]; connected {
				continue
			}

			outgoing := geom.Sub(m.Point, n.Point)
			tooNarrow := false
			for _, ob := range n.Obstacles.ConvexObstacles() {
				if ob.VertexVectorDirectionTooNarrow(n.Point, outgoing) {
					tooNarrow = true
					break
				}
			}
			if tooNarrow {
				continue
			}

			incoming := geom.Sub(n.Point, m.Point)
			for _, ob := range m.Obstacles.ConvexObstacles() {
				if ob.VertexVectorDirectionTooNarrow(m.Point, incoming) {
					tooNarrow = true
					break
				}
			}
			if tooNarrow {
				continue
			}

			if g.raycastPrioritised(n.Point, m.Point, o).Blocked() {
				continue
			}

			node.Link(nh, n, mh, m)
		}
	}
}
