// Package node defines the reduced-visibility-graph vertex: its position,
// the set of obstacles that touch it (split into convex and concave
// touches), and its weighted bidirectional connections to other nodes.
// Nodes are identified by a stable Handle rather than referenced directly,
// so the connection map holds handles instead of owning pointers.
package node

import "github.com/katalvlaran/mrvg/geom"

// Handle is a stable index into a Graph's node arena. The zero Handle is
// never assigned to a real node; arenas start numbering at 1 so that a
// zero-valued Handle reliably means "absent".
type Handle uint32

// Node is a point in the plane that is, or once was, a convex vertex of
// some obstacle.
type Node struct {
	Point       geom.Vec
	Obstacles   EncompassingObstacles
	Connections map[Handle]float64
}

// New returns a Node at the given position with empty obstacle touches and
// connections.
func New(p geom.Vec) *Node {
	return &Node{
		Point:       p,
		Connections: make(map[Handle]float64),
	}
}

// Concave reports whether this node coincides with a non-convex-vertex
// point of at least one obstacle. A concave node is excluded from all
// paths: it never receives a connection.
func (n *Node) Concave() bool {
	return n.Obstacles.AnyConcave()
}
