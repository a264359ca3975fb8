package graph

import (
	"container/heap"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/mrvg/geom"
	"github.com/katalvlaran/mrvg/node"
)

// Edge is one connection of the reduced visibility graph, exposed as plain
// data for inspection/debugging callers.
type Edge struct {
	From, To geom.Vec
	Weight   float64
}

// vertexID formats a node's position as a stable string identifier, for
// callers that want a printable/comparable key rather than a geom.Vec.
func vertexID(p geom.Vec) string {
	return fmt.Sprintf("%g,%g", p.X, p.Y)
}

// nearestNode returns the node whose point is closest to p (by Euclidean
// distance), used by the bridges below as the entry point for a query point
// that may not itself coincide with a registered node.
func (g *Graph) nearestNode(p geom.Vec) (geom.Vec, bool) {
	var best geom.Vec
	bestDist := math.Inf(1)
	found := false

	for _, n := range g.arena {
		d := geom.Dist(p, n.Point)
		if !found || d < bestDist {
			best, bestDist, found = n.Point, d, true
		}
	}

	return best, found
}

// pqItem is one entry in the handleHeap below: h is the candidate node, from
// is the node it would be reached through (meaningful only for Prim's
// algorithm; Dijkstra leaves it unused), and priority is the ordering key
// (tentative distance for Dijkstra, connecting-edge weight for Prim).
type pqItem struct {
	h        node.Handle
	from     node.Handle
	priority float64
}

// handleHeap is a container/heap min-priority-queue over node.Handle,
// shared by VerifyWithDijkstra's shortest-path walk and primFrom's
// minimum-spanning-tree walk below.
type handleHeap []pqItem

func (q handleHeap) Len() int            { return len(q) }
func (q handleHeap) Less(i, j int) bool  { return q[i].priority < q[j].priority }
func (q handleHeap) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *handleHeap) Push(x any)         { *q = append(*q, x.(pqItem)) }
func (q *handleHeap) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// VerifyWithDijkstra runs Dijkstra's algorithm directly over the node arena
// and its Connections maps, from the node nearest s to the node nearest e,
// to cross-check astar.Search's reported path length against an
// independently walked shortest path. Returns (0, false) if the graph has
// no nodes, or e's nearest node is unreachable from s's.
func (g *Graph) VerifyWithDijkstra(s, e geom.Vec) (float64, bool) {
	g.guard.RLock()
	defer g.guard.RUnlock()

	nearS, ok := g.nearestNode(s)
	if !ok {
		return 0, false
	}
	nearE, ok := g.nearestNode(e)
	if !ok {
		return 0, false
	}
	startH, _, _ := g.nodeAt(nearS)
	endH, _, _ := g.nodeAt(nearE)

	dist := map[node.Handle]float64{startH: 0}
	visited := make(map[node.Handle]bool, len(g.arena))

	pq := &handleHeap{{h: startH, priority: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		top := heap.Pop(pq).(pqItem)
		if visited[top.h] {
			continue
		}
		visited[top.h] = true
		if top.h == endH {
			break
		}

		for oh, w := range g.arena[top.h].Connections {
			if visited[oh] {
				continue
			}
			nd := top.priority + w
			if existing, ok := dist[oh]; !ok || nd < existing {
				dist[oh] = nd
				heap.Push(pq, pqItem{h: oh, priority: nd})
			}
		}
	}

	d, ok := dist[endH]
	return d, ok
}

// Reachable reports whether e's nearest node is reachable from s's nearest
// node, via a breadth-first walk of the node arena — cheaper than a full
// FindPath call, and usable as a pre-flight check before invoking it.
func (g *Graph) Reachable(s, e geom.Vec) bool {
	g.guard.RLock()
	defer g.guard.RUnlock()

	nearS, ok := g.nearestNode(s)
	if !ok {
		return false
	}
	nearE, ok := g.nearestNode(e)
	if !ok {
		return false
	}
	startH, _, _ := g.nodeAt(nearS)
	endH, _, _ := g.nodeAt(nearE)
	if startH == endH {
		return true
	}

	visited := map[node.Handle]bool{startH: true}
	queue := []node.Handle{startH}
	for len(queue) > 0 {
		h := queue[0]
		queue = queue[1:]
		for oh := range g.arena[h].Connections {
			if oh == endH {
				return true
			}
			if visited[oh] {
				continue
			}
			visited[oh] = true
			queue = append(queue, oh)
		}
	}

	return false
}

// primFrom grows a minimum spanning tree outward from start using Prim's
// algorithm, marking every node it reaches in visited (so a caller sweeping
// the whole arena for VisibilitySkeleton can skip already-covered
// components) and returning the tree's edges.
func (g *Graph) primFrom(start node.Handle, visited map[node.Handle]bool) []Edge {
	visited[start] = true

	pq := &handleHeap{}
	heap.Init(pq)
	for oh, w := range g.arena[start].Connections {
		heap.Push(pq, pqItem{h: oh, from: start, priority: w})
	}

	var out []Edge
	for pq.Len() > 0 {
		top := heap.Pop(pq).(pqItem)
		if visited[top.h] {
			continue
		}
		visited[top.h] = true
		out = append(out, Edge{
			From:   g.arena[top.from].Point,
			To:     g.arena[top.h].Point,
			Weight: top.priority,
		})

		for oh, w := range g.arena[top.h].Connections {
			if !visited[oh] {
				heap.Push(pq, pqItem{h: oh, from: top.h, priority: w})
			}
		}
	}

	return out
}

// VisibilitySkeleton runs Prim's algorithm over each connected component of
// the graph to produce a minimum-spanning-forest overlay: a sparse,
// stable-across-insertions subset of edges suitable for a low-clutter debug
// rendering of an otherwise dense visibility graph.
func (g *Graph) VisibilitySkeleton() []Edge {
	g.guard.RLock()
	defer g.guard.RUnlock()

	visited := make(map[node.Handle]bool, len(g.arena))
	var skeleton []Edge
	for h, n := range g.arena {
		if visited[h] || len(n.Connections) == 0 {
			continue
		}
		skeleton = append(skeleton, g.primFrom(h, visited)...)
	}

	return skeleton
}

// VisibilitySkeletonFrom is VisibilitySkeleton rooted at the node nearest
// root: it grows a single spanning tree outward from that node rather than
// a forest over every component, useful when the debug overlay should read
// as "everything explorable from here" rather than a global sparse
// summary. Returns (nil, false) if the graph has no nodes or root's
// nearest node has no connections.
func (g *Graph) VisibilitySkeletonFrom(root geom.Vec) ([]Edge, bool) {
	g.guard.RLock()
	defer g.guard.RUnlock()

	near, ok := g.nearestNode(root)
	if !ok {
		return nil, false
	}
	h, n, _ := g.nodeAt(near)
	if len(n.Connections) == 0 {
		return nil, false
	}

	return g.primFrom(h, make(map[node.Handle]bool, len(g.arena))), true
}

// AdjacencyMatrix walks the node arena directly to build a dense
// row/column matrix: matrix[i][j] holds the weight of the connection
// between ids[i] and ids[j], or +Inf when no connection exists, 0 on the
// diagonal. ids is sorted by Handle, giving callers (golden-file tests,
// notebooks) a stable row/column order across runs on the same graph.
func (g *Graph) AdjacencyMatrix() ([]string, [][]float64) {
	g.guard.RLock()
	defer g.guard.RUnlock()

	handles := make([]node.Handle, 0, len(g.arena))
	for h := range g.arena {
		handles = append(handles, h)
	}
	sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })

	ids := make([]string, len(handles))
	index := make(map[node.Handle]int, len(handles))
	for i, h := range handles {
		ids[i] = vertexID(g.arena[h].Point)
		index[h] = i
	}

	matrix := make([][]float64, len(ids))
	for i := range matrix {
		matrix[i] = make([]float64, len(ids))
		for j := range matrix[i] {
			if i != j {
				matrix[i][j] = math.Inf(1)
			}
		}
	}

	for h, n := range g.arena {
		i := index[h]
		for oh, w := range n.Connections {
			matrix[i][index[oh]] = w
		}
	}

	return ids, matrix
}
