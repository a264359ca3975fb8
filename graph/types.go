// Package graph owns the obstacle set and node table of a mutable reduced
// visibility graph, and implements the two operations that make it useful:
// AddObstacle (the incremental four-phase maintenance algorithm) and
// FindPath (delegating the actual search to the astar package).
package graph

import (
	"errors"
	"sync"

	"github.com/katalvlaran/mrvg/geom"
	"github.com/katalvlaran/mrvg/node"
	"github.com/katalvlaran/mrvg/polygon"
	"github.com/katalvlaran/mrvg/quadtree"
)

// Sentinel errors for Graph operations.
var (
	// ErrNilObstacle indicates a nil *polygon.Polygon was passed to AddObstacle.
	ErrNilObstacle = errors.New("graph: obstacle is nil")

	// ErrDuplicateObstacle indicates the same *polygon.Polygon instance was
	// already inserted into this graph. Inserting the same obstacle twice
	// is a contract violation, not a recoverable runtime condition; Go has
	// no separate debug/release build mode, so this is always surfaced as
	// an error return rather than an abort.
	ErrDuplicateObstacle = errors.New("graph: obstacle already present")
)

// guard abstracts the mutual-exclusion strategy so Graph can switch between
// a single exclusive lock (the default contract) and a read/write split
// (the WithConcurrentReads opt-in) without branching at every call site.
type guard interface {
	Lock()
	Unlock()
	RLock()
	RUnlock()
}

// exclusiveGuard serializes reads and writes alike behind one sync.Mutex, a
// single graph-wide mutation lock.
type exclusiveGuard struct{ sync.Mutex }

func (g *exclusiveGuard) RLock()   { g.Lock() }
func (g *exclusiveGuard) RUnlock() { g.Unlock() }

// splitGuard allows concurrent FindPath/Raycast/Obstacles calls to proceed
// in parallel with each other, while AddObstacle still excludes everyone.
type splitGuard struct{ sync.RWMutex }

// Option configures a Graph at construction time.
type Option func(*Graph)

// WithQuadtree enables the optional AABB accelerator for obstacle-point and
// obstacle-segment candidate gathering. Its presence never changes query
// results, only how many obstacles are scanned to compute them.
func WithQuadtree() Option {
	return func(g *Graph) { g.accel = quadtree.New[*polygon.Polygon]() }
}

// WithPreallocatedNodes sizes the node arena's initial capacity, avoiding
// map growth churn when the approximate final node count is known ahead of
// time (e.g. the sum of obstacle vertex counts).
func WithPreallocatedNodes(n int) Option {
	return func(g *Graph) { g.preallocate = n }
}

// WithConcurrentReads switches the internal lock from a single exclusive
// sync.Mutex to a sync.RWMutex, letting FindPath/Raycast/Obstacles calls
// run concurrently with one another as long as no AddObstacle is in
// flight. The stricter single-exclusive-lock behavior remains the default.
func WithConcurrentReads() Option {
	return func(g *Graph) { g.concurrentReads = true }
}

// Graph owns the obstacle set (keyed by pointer identity) and the node
// arena of a reduced visibility graph.
type Graph struct {
	guard           guard
	concurrentReads bool
	preallocate     int

	obstacles map[*polygon.Polygon]struct{}
	byPoint   map[geom.Vec]node.Handle
	arena     map[node.Handle]*node.Node
	nextH     node.Handle

	accel *quadtree.Tree[*polygon.Polygon]
}

// New returns an empty Graph configured by opts.
func New(opts ...Option) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}

	if g.concurrentReads {
		g.guard = &splitGuard{}
	} else {
		g.guard = &exclusiveGuard{}
	}

	n := g.preallocate
	g.obstacles = make(map[*polygon.Polygon]struct{}, n)
	g.byPoint = make(map[geom.Vec]node.Handle, n)
	g.arena = make(map[node.Handle]*node.Node, n)

	return g
}

// NewWithObstacles returns a Graph configured by opts and preloaded with
// each obstacle in initial, in order. It returns the first error
// encountered from AddObstacle, if any; obstacles inserted before the
// failing one remain in the graph (obstacle insertion order only affects
// intermediate states, so a caller may simply retry the remaining
// obstacles on failure).
func NewWithObstacles(initial []*polygon.Polygon, opts ...Option) (*Graph, error) {
	g := New(opts...)
	for _, o := range initial {
		if err := g.AddObstacle(o); err != nil {
			return g, err
		}
	}
	return g, nil
}

// Obstacles returns every obstacle currently in the graph. Order is
// unspecified.
func (g *Graph) Obstacles() []*polygon.Polygon {
	g.guard.RLock()
	defer g.guard.RUnlock()

	out := make([]*polygon.Polygon, 0, len(g.obstacles))
	for o := range g.obstacles {
		out = append(out, o)
	}
	return out
}

func (g *Graph) nodeAt(p geom.Vec) (node.Handle, *node.Node, bool) {
	h, ok := g.byPoint[p]
	if !ok {
		return 0, nil, false
	}
	return h, g.arena[h], true
}

func (g *Graph) lookup(h node.Handle) *node.Node {
	return g.arena[h]
}

func (g *Graph) getOrCreateNode(p geom.Vec) (node.Handle, *node.Node, bool) {
	if h, n, ok := g.nodeAt(p); ok {
		return h, n, false
	}

	g.nextH++
	h := g.nextH
	n := node.New(p)
	g.arena[h] = n
	g.byPoint[p] = h

	return h, n, true
}

// obstacleCandidates returns the obstacles that might touch point p: every
// obstacle in the graph when no accelerator is configured, or the
// quadtree's (deduplicated) candidate set otherwise.
func (g *Graph) obstacleCandidates(p geom.Vec) []*polygon.Polygon {
	if g.accel == nil {
		out := make([]*polygon.Polygon, 0, len(g.obstacles))
		for o := range g.obstacles {
			out = append(out, o)
		}
		return out
	}

	seen := make(map[*polygon.Polygon]struct{})
	out := make([]*polygon.Polygon, 0)
	for _, o := range g.accel.QueryPoint(p.X, p.Y) {
		if _, dup := seen[o]; dup {
			continue
		}
		seen[o] = struct{}{}
		out = append(out, o)
	}
	return out
}

// obstacleCandidatesForSegment mirrors obstacleCandidates for a segment
// query, used by Raycast.
func (g *Graph) obstacleCandidatesForSegment(x0, y0, x1, y1 float64) []*polygon.Polygon {
	if g.accel == nil {
		out := make([]*polygon.Polygon, 0, len(g.obstacles))
		for o := range g.obstacles {
			out = append(out, o)
		}
		return out
	}

	seen := make(map[*polygon.Polygon]struct{})
	out := make([]*polygon.Polygon, 0)
	for _, o := range g.accel.QuerySegment(x0, y0, x1, y1) {
		if _, dup := seen[o]; dup {
			continue
		}
		seen[o] = struct{}{}
		out = append(out, o)
	}
	return out
}
