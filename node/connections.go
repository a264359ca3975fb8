package node

import "github.com/katalvlaran/mrvg/geom"

// Link records a bidirectional connection between a and b with weight
// equal to their Euclidean distance, keeping the connections relation
// symmetric with identical weights on both sides. Callers pass each node's
// own Handle so the counterpart can be recorded without nodes holding
// pointers to one another.
func Link(aHandle Handle, a *Node, bHandle Handle, b *Node) {
	d := geom.Dist(a.Point, b.Point)
	a.Connections[bHandle] = d
	b.Connections[aHandle] = d
}

// Sever removes the bidirectional connection between a and b, if present.
func Sever(aHandle Handle, a *Node, bHandle Handle, b *Node) {
	delete(a.Connections, bHandle)
	delete(b.Connections, aHandle)
}

// SeverAll removes every connection incident to a, leaving it with none —
// the state a concave node must always be in. lookup resolves a
// neighbour's Handle to its *Node so the mirror side of each connection
// can be cleared too.
func SeverAll(selfHandle Handle, a *Node, lookup func(Handle) *Node) {
	for h := range a.Connections {
		if other := lookup(h); other != nil {
			delete(other.Connections, selfHandle)
		}
	}
	a.Connections = make(map[Handle]float64)
}
