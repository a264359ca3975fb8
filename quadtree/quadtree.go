package quadtree

// Tree is a generic AABB-keyed spatial index over items of type T.
type Tree[T any] struct {
	root    *node[T]
	bounds  AABB
	hasRoot bool
	all     []entry[T] // retained so growth rebuilds can reinsert everything
}

// New returns an empty Tree. The first Insert establishes the tree's
// initial bounds from that item's AABB.
func New[T any]() *Tree[T] {
	return &Tree[T]{}
}

// Insert adds item, keyed by its bounding box. If box falls outside the
// tree's current bounds, the tree's bounds grow to the union and the
// entire tree is rebuilt from scratch (see package doc).
func (t *Tree[T]) Insert(box AABB, item T) {
	e := entry[T]{box: box, item: item}

	if !t.hasRoot {
		t.bounds = box
		t.hasRoot = true
		t.root = &node[T]{bounds: t.bounds}
		t.all = append(t.all, e)
		t.root.insert(e, 0)
		return
	}

	if !t.bounds.Contains(box) {
		t.bounds = t.bounds.Union(box)
		t.all = append(t.all, e)
		t.rebuild()
		return
	}

	t.all = append(t.all, e)
	t.root.insert(e, 0)
}

// rebuild recomputes the tree from t.all against the current t.bounds.
func (t *Tree[T]) rebuild() {
	t.root = &node[T]{bounds: t.bounds}
	for _, e := range t.all {
		t.root.insert(e, 0)
	}
}

// QueryPoint returns every item whose AABB contains (x, y).
func (t *Tree[T]) QueryPoint(x, y float64) []T {
	if !t.hasRoot {
		return nil
	}
	var out []T
	t.root.queryBox(AABB{MinX: x, MaxX: x, MinY: y, MaxY: y}, &out)
	return out
}

// QuerySegment returns every item whose AABB overlaps the bounding box of
// the segment (x0,y0)-(x1,y1). This is a conservative (superset) filter:
// an item may be returned even if the segment itself does not actually
// touch that item's shape, since the tree only indexes by AABB. An item
// whose box spans multiple quadrants may also be reported more than once;
// callers that need exactly-once semantics (e.g. the visibility graph
// gathering obstacle candidates) should dedupe by item identity.
func (t *Tree[T]) QuerySegment(x0, y0, x1, y1 float64) []T {
	if !t.hasRoot {
		return nil
	}
	box := AABB{
		MinX: min(x0, x1), MaxX: max(x0, x1),
		MinY: min(y0, y1), MaxY: max(y0, y1),
	}
	var out []T
	t.root.queryBox(box, &out)
	return out
}

func (n *node[T]) insert(e entry[T], depth int) {
	if n.children[0] == nil {
		n.items = append(n.items, e)
		if len(n.items) > maxItemsPerLeaf && depth < maxDepth {
			n.split(depth)
		}
		return
	}

	n.insertIntoChild(e, depth)
}

func (n *node[T]) split(depth int) {
	midX := (n.bounds.MinX + n.bounds.MaxX) / 2
	midY := (n.bounds.MinY + n.bounds.MaxY) / 2

	n.children[0] = &node[T]{bounds: AABB{n.bounds.MinX, n.bounds.MinY, midX, midY}}
	n.children[1] = &node[T]{bounds: AABB{midX, n.bounds.MinY, n.bounds.MaxX, midY}}
	n.children[2] = &node[T]{bounds: AABB{n.bounds.MinX, midY, midX, n.bounds.MaxY}}
	n.children[3] = &node[T]{bounds: AABB{midX, midY, n.bounds.MaxX, n.bounds.MaxY}}

	pending := n.items
	n.items = nil
	for _, e := range pending {
		n.insertIntoChild(e, depth)
	}
}

// insertIntoChild places e into every quadrant its box overlaps. An item
// spanning multiple quadrants is duplicated across them rather than kept
// at the parent; queries deduplicate by nothing special because callers
// only ever consult a quadtree as a candidate pre-filter, not as a source
// of truth about membership count.
func (n *node[T]) insertIntoChild(e entry[T], depth int) {
	placed := false
	for _, c := range n.children {
		if c.bounds.Intersects(e.box) {
			c.insert(e, depth+1)
			placed = true
		}
	}
	if !placed {
		// Numerical edge case: box lies exactly on the split boundary and
		// floating point drift excluded it from all four quadrants. Keep
		// it at this level rather than lose it.
		n.items = append(n.items, e)
	}
}

func (n *node[T]) queryBox(box AABB, out *[]T) {
	if !n.bounds.Intersects(box) {
		return
	}

	for _, e := range n.items {
		if e.box.Intersects(box) {
			*out = append(*out, e.item)
		}
	}

	if n.children[0] == nil {
		return
	}

	for _, c := range n.children {
		c.queryBox(box, out)
	}
}
