package geom

import "math"

// Sub returns a - b.
func Sub(a, b Vec) Vec {
	return Vec{X: a.X - b.X, Y: a.Y - b.Y}
}

// Cross returns the 2D cross product a.X*b.Y - a.Y*b.X. Its sign gives the
// winding of a, b: positive when b is counter-clockwise from a.
func Cross(a, b Vec) float64 {
	return a.X*b.Y - a.Y*b.X
}

// Dist returns the Euclidean distance between a and b.
func Dist(a, b Vec) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// IntersectSegment determines how the ray R(r) = rOrigin + r*rDir, r in
// [0,1], interacts with the target segment T(t) = tOrigin + t*tDir, t in
// [0,1]. The magnitude of rDir and tDir is the length of the respective
// segment, not a unit direction.
//
// Three outcomes:
//
//   - KindBlocked: the ray crosses fully through the target's interior
//     (0 < t_t < 1 and 0 < r_t < 1 in the non-parallel case). The returned
//     RaySegment is the zero value and must be ignored.
//   - KindGrazed: the ray only touches a target endpoint (t_t in {0,1}) or
//     the two segments are colinear and their ray-parameter intervals
//     overlap. The returned RaySegment gives the touched interval and its
//     Side.
//   - KindNone: no interaction.
//
// An intersection at an endpoint of the target, or a colinear overlap, is
// never itself a block — only RaycastResult's accumulation of multiple
// grazes on opposing Sides proves a full crossing.
func IntersectSegment(rOrigin, rDir, tOrigin, tDir Vec) (RaySegment, Kind) {
	rdCrossTd := Cross(rDir, tDir)
	deltaO := Sub(tOrigin, rOrigin)

	if rdCrossTd == 0 {
		// Parallel. Colinear iff deltaO is parallel to rDir too.
		if Cross(deltaO, rDir) != 0 {
			return RaySegment{}, KindNone
		}
		return colinearOverlap(rOrigin, rDir, tOrigin, tDir)
	}

	rt := Cross(deltaO, tDir) / rdCrossTd
	if !(rt > 0 && rt < 1) {
		// The point of intersection does not occur on the ray.
		return RaySegment{}, KindNone
	}

	tt := Cross(deltaO, rDir) / rdCrossTd
	if tt > 0 && tt < 1 {
		return RaySegment{}, KindBlocked
	}

	switch tt {
	case 0:
		side := SideRight
		if rdCrossTd <= 0 {
			side = SideLeft
		}
		return RaySegment{Start: rt, Stop: rt, Side: side}, KindGrazed
	case 1:
		side := SideLeft
		if rdCrossTd <= 0 {
			side = SideRight
		}
		return RaySegment{Start: rt, Stop: rt, Side: side}, KindGrazed
	}

	return RaySegment{}, KindNone
}

// colinearOverlap computes the interval of the ray parameter r for which
// two colinear segments coincide, per the projection identity: pick
// whichever axis of rDir has the larger magnitude (to avoid dividing by a
// near-zero component), then solve for the shared-axis parametrization.
func colinearOverlap(rOrigin, rDir, tOrigin, tDir Vec) (RaySegment, Kind) {
	axis := 1 // 0 = X, 1 = Y
	if math.Abs(rDir.X) > math.Abs(rDir.Y) {
		axis = 0
	}

	var rdAxis, tdAxis, roAxis, toAxis float64
	if axis == 0 {
		rdAxis, tdAxis, roAxis, toAxis = rDir.X, tDir.X, rOrigin.X, tOrigin.X
	} else {
		rdAxis, tdAxis, roAxis, toAxis = rDir.Y, tDir.Y, rOrigin.Y, tOrigin.Y
	}

	if rdAxis == 0 {
		return RaySegment{}, KindNone
	}

	k := tdAxis / rdAxis
	ri := (toAxis - roAxis) / rdAxis
	rf := ri + k

	side := SideRight
	if k < 0 {
		ri, rf, side = rf, ri, SideLeft
	}

	if ri > 1 || rf < 0 {
		return RaySegment{}, KindNone
	}

	return RaySegment{Start: math.Max(0, ri), Stop: math.Min(1, rf), Side: side}, KindGrazed
}
