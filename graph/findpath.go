package graph

import (
	"github.com/katalvlaran/mrvg/astar"
	"github.com/katalvlaran/mrvg/geom"
	"github.com/katalvlaran/mrvg/node"
	"github.com/katalvlaran/mrvg/polygon"
)

// FindPath returns a shortest polyline from s to e through the graph's
// current obstacle set, delegating the search itself to astar.Search. The
// bool result reports whether a path was found; "no path" is an ordinary
// outcome (idiomatic Go in place of a nullable return), never an error.
func (g *Graph) FindPath(s, e geom.Vec) ([]geom.Vec, bool) {
	g.guard.RLock()
	defer g.guard.RUnlock()

	return astar.Search(graphView{g}, s, e)
}

// NodeAt returns the read-only view of the node at point p, if one exists.
// This is part of the graph's public, explicitly unstable inspection
// surface, useful for debug rendering, alongside Nodes.
func (g *Graph) NodeAt(p geom.Vec) (astar.NodeInfo, bool) {
	g.guard.RLock()
	defer g.guard.RUnlock()

	_, n, ok := g.nodeAt(p)
	if !ok {
		return astar.NodeInfo{}, false
	}
	return g.nodeInfo(n), true
}

// Nodes returns every node currently in the arena, its concavity, and its
// weighted neighbour positions. Order is unspecified.
func (g *Graph) Nodes() []astar.NodeInfo {
	g.guard.RLock()
	defer g.guard.RUnlock()

	out := make([]astar.NodeInfo, 0, len(g.arena))
	for _, n := range g.arena {
		out = append(out, g.nodeInfo(n))
	}
	return out
}

func (g *Graph) nodeInfo(n *node.Node) astar.NodeInfo {
	neighbours := make(map[geom.Vec]float64, len(n.Connections))
	for h, w := range n.Connections {
		neighbours[g.lookup(h).Point] = w
	}
	return astar.NodeInfo{
		Point:      n.Point,
		Concave:    n.Concave(),
		Neighbours: neighbours,
	}
}

// graphView adapts *Graph to astar.Graph using the lock-free internal
// helpers, since FindPath already holds g's lock for the duration of the
// search; astar.Search must not re-enter Graph's public, self-locking
// methods (sync.Mutex is not reentrant).
type graphView struct{ g *Graph }

func (v graphView) Raycast(x0, y0, x1, y1 float64, prioritise *polygon.Polygon) *polygon.RaycastResult {
	return v.g.raycastLocked(x0, y0, x1, y1, prioritise)
}

func (v graphView) NodeAt(p geom.Vec) (astar.NodeInfo, bool) {
	_, n, ok := v.g.nodeAt(p)
	if !ok {
		return astar.NodeInfo{}, false
	}
	return v.g.nodeInfo(n), true
}

func (v graphView) Nodes() []astar.NodeInfo {
	out := make([]astar.NodeInfo, 0, len(v.g.arena))
	for _, n := range v.g.arena {
		out = append(out, v.g.nodeInfo(n))
	}
	return out
}
