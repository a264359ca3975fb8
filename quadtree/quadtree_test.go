package quadtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAABB_UnionContainsIntersects(t *testing.T) {
	a := AABB{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1}
	b := AABB{MinX: 5, MinY: 5, MaxX: 6, MaxY: 6}
	u := a.Union(b)
	assert.Equal(t, AABB{MinX: 0, MinY: 0, MaxX: 6, MaxY: 6}, u)
	assert.True(t, u.Contains(a))
	assert.True(t, u.Contains(b))
	assert.False(t, a.Intersects(b))
}

func TestTree_QueryPointFindsInsertedItem(t *testing.T) {
	tr := New[string]()
	tr.Insert(AABB{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1}, "square-a")
	tr.Insert(AABB{MinX: 10, MinY: 10, MaxX: 11, MaxY: 11}, "square-b")

	assert.Contains(t, tr.QueryPoint(0.5, 0.5), "square-a")
	assert.NotContains(t, tr.QueryPoint(0.5, 0.5), "square-b")
}

func TestTree_GrowsBoundsAndRebuilds(t *testing.T) {
	tr := New[int]()
	tr.Insert(AABB{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1}, 1)
	// Far outside current bounds: forces a rebuild with grown bounds.
	tr.Insert(AABB{MinX: 100, MinY: 100, MaxX: 101, MaxY: 101}, 2)

	assert.Contains(t, tr.QueryPoint(0.5, 0.5), 1)
	assert.Contains(t, tr.QueryPoint(100.5, 100.5), 2)
}

func TestTree_SplitsAfterCapacity(t *testing.T) {
	tr := New[int]()
	for i := 0; i < maxItemsPerLeaf+3; i++ {
		x := float64(i)
		tr.Insert(AABB{MinX: x, MinY: 0, MaxX: x + 0.5, MaxY: 0.5}, i)
	}
	// Every inserted item must remain queryable after the split.
	for i := 0; i < maxItemsPerLeaf+3; i++ {
		x := float64(i)
		assert.Contains(t, tr.QueryPoint(x+0.1, 0.1), i)
	}
}

func TestTree_QuerySegmentOverlap(t *testing.T) {
	tr := New[string]()
	tr.Insert(AABB{MinX: 5, MinY: -1, MaxX: 6, MaxY: 1}, "blocker")
	got := tr.QuerySegment(0, 0, 10, 0)
	assert.Contains(t, got, "blocker")
}
