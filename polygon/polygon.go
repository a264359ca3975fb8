package polygon

import (
	"github.com/katalvlaran/mrvg/geom"
)

// bakeVertices computes, for each vertex, its convexity and its inbound and
// outbound edge vectors. convex := (pv x vn) > 0 under CCW winding, where pv
// is the vector from the previous vertex and vn the vector to the next one.
func bakeVertices(ccw []geom.Vec) []Vertex {
	n := len(ccw)
	out := make([]Vertex, n)
	for i, v := range ccw {
		prev := ccw[(i-1+n)%n]
		next := ccw[(i+1)%n]

		pv := geom.Sub(v, prev)
		vn := geom.Sub(next, v)

		out[i] = Vertex{
			Pos:        v,
			Convex:     geom.Cross(pv, vn) > 0,
			InFromPrev: pv,
			OutToNext:  vn,
		}
	}
	return out
}

func signedArea(ccw []geom.Vec) float64 {
	n := len(ccw)
	area := 0.0
	for i := 0; i < n; i++ {
		a := ccw[i]
		b := ccw[(i+1)%n]
		area += a.X*b.Y - b.X*a.Y
	}
	return area / 2
}

// New constructs a Polygon from a counter-clockwise vertex ring. It returns
// ErrTooFewVertices for fewer than 3 vertices and ErrNotCCW for clockwise or
// degenerate (zero-area) windings.
func New(ccw []geom.Vec) (*Polygon, error) {
	if len(ccw) < 3 {
		return nil, ErrTooFewVertices
	}
	if signedArea(ccw) <= 0 {
		return nil, ErrNotCCW
	}

	vertices := bakeVertices(ccw)
	byPos := make(map[geom.Vec]*Vertex, len(vertices))

	minX, minY := vertices[0].Pos.X, vertices[0].Pos.Y
	maxX, maxY := minX, minY
	for i := range vertices {
		v := vertices[i].Pos
		if v.X < minX {
			minX = v.X
		}
		if v.X > maxX {
			maxX = v.X
		}
		if v.Y < minY {
			minY = v.Y
		}
		if v.Y > maxY {
			maxY = v.Y
		}
	}
	for i := range vertices {
		byPos[vertices[i].Pos] = &vertices[i]
	}

	return &Polygon{
		vertices: vertices,
		byPos:    byPos,
		aabbMinX: minX, aabbMinY: minY,
		aabbMaxX: maxX, aabbMaxY: maxY,
	}, nil
}

// NewRectangle is a convenience constructor equivalent to calling New with
// the 4-vertex CCW ring (left,bottom) -> (right,bottom) -> (right,top) ->
// (left,top). A rectangle is not a distinct Go type; AxisAligned lets
// callers recover the fast-path test when it applies.
func NewRectangle(left, bottom, right, top float64) *Polygon {
	p, err := New([]geom.Vec{
		{X: left, Y: bottom},
		{X: right, Y: bottom},
		{X: right, Y: top},
		{X: left, Y: top},
	})
	if err != nil {
		// left < right and bottom < top give CCW winding with positive
		// area by construction; a degenerate or inverted rectangle is a
		// caller error the same way it would be in the general New path.
		panic(err)
	}
	p.axisAlign = true
	return p
}

// AxisAligned reports whether this Polygon is an axis-aligned rectangle
// and, if so, its bounds. This is true for polygons built with
// NewRectangle; general polygons built with New, even if they happen to
// describe a rectangle, return ok=false (no shape sniffing is performed).
func (p *Polygon) AxisAligned() (left, bottom, right, top float64, ok bool) {
	if !p.axisAlign {
		return 0, 0, 0, 0, false
	}
	return p.aabbMinX, p.aabbMinY, p.aabbMaxX, p.aabbMaxY, true
}

// AABB returns the polygon's axis-aligned bounding box.
func (p *Polygon) AABB() (minX, minY, maxX, maxY float64) {
	return p.aabbMinX, p.aabbMinY, p.aabbMaxX, p.aabbMaxY
}

// Vertices returns the baked vertex ring in CCW order. Callers must treat
// the returned slice as read-only.
func (p *Polygon) Vertices() []Vertex {
	return p.vertices
}

// IncludesPoint reports whether pt lies within or on the boundary of the
// polygon. Axis-aligned rectangles use the direct bounds comparison;
// general polygons use a standard even-odd (crossing-number) ray-casting
// test against the edges.
func (p *Polygon) IncludesPoint(pt geom.Vec) bool {
	if left, bottom, right, top, ok := p.AxisAligned(); ok {
		return pt.X >= left && pt.X <= right && pt.Y >= bottom && pt.Y <= top
	}

	inside := false
	n := len(p.vertices)
	for i := 0; i < n; i++ {
		a := p.vertices[i].Pos
		b := p.vertices[(i+1)%n].Pos
		if (a.Y > pt.Y) != (b.Y > pt.Y) {
			xAtY := a.X + (pt.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if pt.X < xAtY {
				inside = !inside
			}
		}
	}
	return inside
}

// VertexVectorDirectionTooNarrow reports whether the line through vertex v
// (which must be a convex vertex of this polygon) along direction dir passes
// strictly through the polygon's interior angle at v. Let a be the inbound
// edge vector (toward v) and c the outbound edge vector (from v): the test
// is (a x dir) * (dir x c) < 0, i.e. both cross products are nonzero with
// opposite signs. The product is unchanged when dir is negated, so a
// direction pointing straight into the interior angle and the direction
// opposite to it both report true. A zero product means dir is parallel to
// one of the two edges, which this function reports as not too narrow: a
// grazing direction along an edge is permitted, not blocked.
func (p *Polygon) VertexVectorDirectionTooNarrow(v geom.Vec, dir geom.Vec) bool {
	vert, ok := p.byPos[v]
	if !ok {
		return false
	}

	a := vert.InFromPrev
	c := vert.OutToNext

	aCrossDir := geom.Cross(a, dir)
	dirCrossC := geom.Cross(dir, c)

	return aCrossDir*dirCrossC < 0
}

// Raycast computes the per-edge segment intersections between the ray
// (origin, dir) and every edge of this polygon, feeding each grazing touch
// into result via AddSegment and returning result immediately once a full
// crossing (of this polygon or a prior contributor sharing result) is
// proven. If update is nil a fresh RaycastResult is allocated.
func (p *Polygon) Raycast(origin, dir geom.Vec, update *RaycastResult) *RaycastResult {
	r := update
	if r == nil {
		r = NewRaycastResult()
	}

	for i := range p.vertices {
		v := p.vertices[i]
		seg, kind := geom.IntersectSegment(origin, dir, v.Pos, v.OutToNext)
		switch kind {
		case geom.KindBlocked:
			r.block()
			return r
		case geom.KindGrazed:
			if r.AddSegment(seg) {
				return r
			}
		case geom.KindNone:
			// no contribution
		}
	}

	return r
}
