package graph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mrvg/geom"
	"github.com/katalvlaran/mrvg/graph"
	"github.com/katalvlaran/mrvg/polygon"
)

func TestNew_IsEmpty(t *testing.T) {
	g := graph.New()
	assert.Empty(t, g.Obstacles())
}

func TestAddObstacle_RejectsNil(t *testing.T) {
	g := graph.New()
	err := g.AddObstacle(nil)
	assert.ErrorIs(t, err, graph.ErrNilObstacle)
}

func TestAddObstacle_RejectsDuplicateInstance(t *testing.T) {
	g := graph.New()
	box := polygon.NewRectangle(0, 0, 1, 1)

	require.NoError(t, g.AddObstacle(box))
	err := g.AddObstacle(box)
	assert.ErrorIs(t, err, graph.ErrDuplicateObstacle)
}

func TestAddObstacle_LinksConvexVerticesOfASingleObstacle(t *testing.T) {
	g := graph.New()
	box := polygon.NewRectangle(0, 0, 2, 2)
	require.NoError(t, g.AddObstacle(box))

	nodes := g.Nodes()
	require.Len(t, nodes, 4)
	for _, n := range nodes {
		assert.False(t, n.Concave)
		// Each corner of a rectangle links to its two adjacent corners; the
		// diagonal runs through the box's interior angle and is never linked.
		assert.Len(t, n.Neighbours, 2)
	}
}

// Scenario: a single rectangular obstacle between a start and end point
// forces a detour via two of its corners.
func TestFindPath_RoutesAroundSingleObstacle(t *testing.T) {
	g := graph.New()
	box := polygon.NewRectangle(1, 1, 2, 2)
	require.NoError(t, g.AddObstacle(box))

	s := geom.Vec{X: 1.5, Y: 0}
	e := geom.Vec{X: 1.5, Y: 3}

	path, ok := g.FindPath(s, e)
	require.True(t, ok)
	require.True(t, len(path) >= 3)
	assert.Equal(t, s, path[0])
	assert.Equal(t, e, path[len(path)-1])
}

// Scenario: start and end are mutually visible with no obstacle between
// them; FindPath should return the direct two-point path.
func TestFindPath_DirectVisibilityIsTwoPoints(t *testing.T) {
	g := graph.New()
	box := polygon.NewRectangle(10, 10, 11, 11)
	require.NoError(t, g.AddObstacle(box))

	s := geom.Vec{X: 0, Y: 0}
	e := geom.Vec{X: 1, Y: 0}

	path, ok := g.FindPath(s, e)
	require.True(t, ok)
	assert.Equal(t, []geom.Vec{s, e}, path)
}

// Scenario: the target point coincides with a concave vertex of the dart and
// a wall blocks direct visibility from the start to it. Nodes exist only at
// convex vertices, so the target is not a node; the search still reaches it
// from a graph node that has an unobstructed line of sight into the notch.
func TestFindPath_ReachesConcaveVertexByLineOfSight(t *testing.T) {
	g := graph.New()
	dart, err := polygon.New([]geom.Vec{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 2, Y: 2}, {X: 0, Y: 4},
	})
	require.NoError(t, err)
	require.NoError(t, g.AddObstacle(dart))
	require.NoError(t, g.AddObstacle(polygon.NewRectangle(0, 5, 4, 6)))

	s := geom.Vec{X: 2, Y: 20}
	e := geom.Vec{X: 2, Y: 2} // the dart's concave vertex

	path, ok := g.FindPath(s, e)
	require.True(t, ok)
	assert.Equal(t, e, path[len(path)-1])
}

// Scenario: inserting a second obstacle after the first prunes any
// now-blocked edges between the first obstacle's corners and reconnects
// around both.
func TestAddObstacle_SecondObstaclePrunesBlockedEdges(t *testing.T) {
	g := graph.New()
	left := polygon.NewRectangle(0, 0, 1, 1)
	right := polygon.NewRectangle(3, 0, 4, 1)
	require.NoError(t, g.AddObstacle(left))
	require.NoError(t, g.AddObstacle(right))

	blocker, err := polygon.New([]geom.Vec{
		{X: 1.5, Y: -1}, {X: 2.5, Y: -1}, {X: 2.5, Y: 2}, {X: 1.5, Y: 2},
	})
	require.NoError(t, err)
	require.NoError(t, g.AddObstacle(blocker))

	s := geom.Vec{X: -1, Y: 0.5}
	e := geom.Vec{X: 5, Y: 0.5}

	path, ok := g.FindPath(s, e)
	require.True(t, ok)
	assert.Equal(t, s, path[0])
	assert.Equal(t, e, path[len(path)-1])
}

// Every node's connections are symmetric — if a links to b, b links to a
// with the same weight.
func TestProperty_ConnectionsAreSymmetric(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddObstacle(polygon.NewRectangle(0, 0, 2, 2)))
	require.NoError(t, g.AddObstacle(polygon.NewRectangle(4, 0, 6, 2)))
	require.NoError(t, g.AddObstacle(polygon.NewRectangle(2, 4, 4, 6)))

	byPoint := make(map[geom.Vec]struct {
		neighbours map[geom.Vec]float64
	})
	for _, n := range g.Nodes() {
		byPoint[n.Point] = struct {
			neighbours map[geom.Vec]float64
		}{n.Neighbours}
	}

	for p, entry := range byPoint {
		for q, w := range entry.neighbours {
			other, ok := byPoint[q]
			require.True(t, ok)
			ow, ok := other.neighbours[p]
			require.True(t, ok)
			assert.InDelta(t, w, ow, 1e-9)
		}
	}
}

// A concave node never appears with any connections.
func TestProperty_ConcaveNodesHaveNoConnections(t *testing.T) {
	g := graph.New()
	ring, err := polygon.New([]geom.Vec{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 2, Y: 2}, {X: 0, Y: 4},
	})
	require.NoError(t, err)
	require.NoError(t, g.AddObstacle(ring))

	for _, n := range g.Nodes() {
		if n.Concave {
			assert.Empty(t, n.Neighbours)
		}
	}
}

// Raycast results do not depend on whether the quadtree accelerator is
// enabled.
func TestProperty_RaycastCommutesWithAccelerator(t *testing.T) {
	obstacles := []*polygon.Polygon{
		polygon.NewRectangle(1, 1, 2, 2),
		polygon.NewRectangle(3, 3, 4, 4),
		polygon.NewRectangle(0, 5, 1, 6),
	}

	plain := graph.New()
	accel := graph.New(graph.WithQuadtree())
	for _, o := range obstacles {
		require.NoError(t, plain.AddObstacle(clonePolygon(o)))
		require.NoError(t, accel.AddObstacle(clonePolygon(o)))
	}

	segments := [][4]float64{
		{-1, -1, 5, 5},
		{0, 1.5, 5, 1.5},
		{3.5, -1, 3.5, 5},
	}

	for _, seg := range segments {
		r1 := plain.Raycast(seg[0], seg[1], seg[2], seg[3], nil)
		r2 := accel.Raycast(seg[0], seg[1], seg[2], seg[3], nil)
		assert.Equal(t, r1.Blocked(), r2.Blocked())
		assert.Equal(t, r1.Grazed(), r2.Grazed())
		assert.Equal(t, r1.Free(), r2.Free())
	}
}

func clonePolygon(o *polygon.Polygon) *polygon.Polygon {
	verts := o.Vertices()
	pts := make([]geom.Vec, len(verts))
	for i, v := range verts {
		pts[i] = v.Pos
	}
	clone, err := polygon.New(pts)
	if err != nil {
		panic(err)
	}
	return clone
}

func TestNewWithObstacles_StopsAtFirstError(t *testing.T) {
	box := polygon.NewRectangle(0, 0, 1, 1)
	g, err := graph.NewWithObstacles([]*polygon.Polygon{box, box})
	require.Error(t, err)
	assert.True(t, errors.Is(err, graph.ErrDuplicateObstacle))
	assert.Len(t, g.Obstacles(), 1)
}
