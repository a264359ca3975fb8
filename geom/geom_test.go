package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubCrossDist(t *testing.T) {
	a := Vec{X: 3, Y: 4}
	b := Vec{X: 1, Y: 1}

	assert.Equal(t, Vec{X: 2, Y: 3}, Sub(a, b))
	assert.Equal(t, 3.0*1.0-4.0*1.0, Cross(a, b))
	assert.InDelta(t, 5.0, Dist(Vec{0, 0}, Vec{3, 4}), 1e-9)
}

func TestIntersectSegment_FullCross(t *testing.T) {
	// Ray (0,0)->(2,0) crosses target (1,-1)->(1,1) at r=0.5, t=0.5.
	_, kind := IntersectSegment(Vec{0, 0}, Vec{2, 0}, Vec{1, -1}, Vec{0, 2})
	require.Equal(t, KindBlocked, kind)
}

func TestIntersectSegment_EndpointGraze(t *testing.T) {
	// Ray (0,0)->(2,0) touches target endpoint (1,0)->(1,1) at t=0.
	seg, kind := IntersectSegment(Vec{0, 0}, Vec{2, 0}, Vec{1, 0}, Vec{0, 1})
	require.Equal(t, KindGrazed, kind)
	assert.InDelta(t, 0.5, seg.Start, 1e-9)
	assert.InDelta(t, 0.5, seg.Stop, 1e-9)
}

func TestIntersectSegment_None(t *testing.T) {
	_, kind := IntersectSegment(Vec{0, 0}, Vec{1, 0}, Vec{5, 5}, Vec{1, 0})
	assert.Equal(t, KindNone, kind)
}

func TestIntersectSegment_ColinearOverlap(t *testing.T) {
	// Ray along the X axis from 0 to 4; target colinear from 2 to 6.
	seg, kind := IntersectSegment(Vec{0, 0}, Vec{4, 0}, Vec{2, 0}, Vec{4, 0})
	require.Equal(t, KindGrazed, kind)
	assert.InDelta(t, 0.5, seg.Start, 1e-9)
	assert.InDelta(t, 1.0, seg.Stop, 1e-9)
}

func TestIntersectSegment_ColinearDisjoint(t *testing.T) {
	_, kind := IntersectSegment(Vec{0, 0}, Vec{1, 0}, Vec{5, 0}, Vec{1, 0})
	assert.Equal(t, KindNone, kind)
}

func TestIntersectSegment_ParallelNotColinear(t *testing.T) {
	_, kind := IntersectSegment(Vec{0, 0}, Vec{1, 0}, Vec{0, 1}, Vec{1, 0})
	assert.Equal(t, KindNone, kind)
}

func TestDist_Symmetric(t *testing.T) {
	a, b := Vec{X: -2, Y: 7}, Vec{X: 9, Y: -3}
	assert.Equal(t, Dist(a, b), Dist(b, a))
	assert.False(t, math.IsNaN(Dist(a, b)))
}
