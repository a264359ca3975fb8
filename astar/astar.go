package astar

import (
	"container/heap"

	"github.com/katalvlaran/mrvg/geom"
)

// pathItem is one entry in the open-set heap.
type pathItem struct {
	point geom.Vec
	g, h  float64
	prev  *pathItem
	seq   int // creation order, final deterministic tie-break
}

func (it *pathItem) f() float64 { return it.g + it.h }

// openQueue is a binary heap of *pathItem ordered by cfg.less, with item
// creation sequence as the ultimate tie-break so Less is a strict order.
type openQueue struct {
	items []*pathItem
	less  func(a, b Candidate) bool
}

func (q *openQueue) Len() int { return len(q.items) }

func (q *openQueue) Less(i, j int) bool {
	a, b := q.items[i], q.items[j]
	ca := Candidate{Point: a.point, F: a.f(), G: a.g}
	cb := Candidate{Point: b.point, F: b.f(), G: b.g}
	if q.less(ca, cb) {
		return true
	}
	if q.less(cb, ca) {
		return false
	}
	return a.seq > b.seq
}

func (q *openQueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *openQueue) Push(x any) { q.items = append(q.items, x.(*pathItem)) }

func (q *openQueue) Pop() any {
	old := q.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	q.items = old[:n-1]
	return item
}

// Search finds a shortest polyline from s to e through g, per the reference
// algorithm: direct visibility short-circuit, A* seeded either from s's own
// connections (if s is a known non-concave node) or from every reachable
// non-concave node directly visible from s, terminating on reaching e
// exactly or, when e is not itself a graph node, on direct visibility from
// the current frontier node to e.
//
// Returns (nil, false) if no path exists; this is never reported as an
// error, since "no path" is an ordinary outcome, not a contract violation.
func Search(g Graph, s, e geom.Vec, opts ...Option) ([]geom.Vec, bool) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if !g.Raycast(s.X, s.Y, e.X, e.Y, nil).Blocked() {
		return []geom.Vec{s, e}, true
	}

	startInfo, startKnown := g.NodeAt(s)
	_, endKnown := g.NodeAt(e)

	q := &openQueue{less: cfg.less}
	heap.Init(q)

	bestG := make(map[geom.Vec]float64)
	closed := make(map[geom.Vec]bool)
	seq := 0

	startRecord := &pathItem{point: s, g: 0, h: geom.Dist(s, e)}

	open := func(point geom.Vec, g, h float64, prev *pathItem) {
		if closed[point] {
			return
		}
		if existing, ok := bestG[point]; ok && g >= existing {
			return
		}
		bestG[point] = g
		seq++
		heap.Push(q, &pathItem{point: point, g: g, h: h, prev: prev, seq: seq})
	}

	if startKnown && !startInfo.Concave {
		closed[s] = true
		for np, dist := range startInfo.Neighbours {
			open(np, dist, geom.Dist(np, e), startRecord)
		}
	} else {
		for _, ni := range g.Nodes() {
			if len(ni.Neighbours) == 0 {
				continue
			}
			if g.Raycast(s.X, s.Y, ni.Point.X, ni.Point.Y, nil).Blocked() {
				continue
			}
			open(ni.Point, geom.Dist(s, ni.Point), geom.Dist(ni.Point, e), startRecord)
		}
	}

	current := startRecord
	complete := false

	for q.Len() > 0 {
		item := heap.Pop(q).(*pathItem)
		if closed[item.point] {
			continue
		}
		if existing, ok := bestG[item.point]; ok && item.g > existing {
			continue
		}
		closed[item.point] = true
		current = item

		if current.point == e {
			complete = true
			break
		}

		if !endKnown && !g.Raycast(current.point.X, current.point.Y, e.X, e.Y, nil).Blocked() {
			complete = true
			break
		}

		ni, ok := g.NodeAt(current.point)
		if !ok {
			continue
		}
		for np, dist := range ni.Neighbours {
			if closed[np] {
				continue
			}
			open(np, current.g+dist, geom.Dist(np, e), current)
		}
	}

	if !complete {
		return nil, false
	}

	path := []geom.Vec{e}
	cur := current
	if cur.point == e {
		cur = cur.prev
	}
	for cur != nil {
		path = append(path, cur.point)
		cur = cur.prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}
