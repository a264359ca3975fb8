package polygon

import "github.com/katalvlaran/mrvg/geom"

// RaycastResult accumulates the disjoint grazing segments produced as a ray
// is tested against one or more polygons' edges, and collapses them into a
// single blocked/grazed/free verdict. Segments are kept sorted by Start.
// Once two grazes on opposite Sides are seen (directly, or because a full
// crossing was reported), the result latches to blocked permanently.
type RaycastResult struct {
	segments []geom.RaySegment
	blocked  bool
}

// NewRaycastResult returns an empty, unblocked RaycastResult.
func NewRaycastResult() *RaycastResult {
	return &RaycastResult{}
}

// block latches the result to the permanently-blocked state.
func (r *RaycastResult) block() {
	r.blocked = true
	r.segments = nil
}

// AddSegment records a grazing touch. It returns true once this touch (or
// an earlier one) proves the ray is blocked, in which case the caller
// should stop feeding further segments into this result.
//
// The insertion point is found by Start. Every existing segment that
// overlaps or touches the new one (the preceding segment if its Stop reaches
// the new Start, and each following segment that begins at or before the
// merged Stop) is merged into it: a differing Side latches the result to
// blocked, otherwise the merged segment spans from the smallest Start to the
// largest Stop and the folded entries are removed, so the stored segments
// stay disjoint.
func (r *RaycastResult) AddSegment(seg geom.RaySegment) bool {
	if r.blocked {
		return true
	}

	start, stop, side := seg.Start, seg.Stop, seg.Side

	i := 0
	for i < len(r.segments) && r.segments[i].Start < start {
		i++
	}
	if i > 0 && r.segments[i-1].Stop >= start {
		i--
		start = r.segments[i].Start
	}

	for i < len(r.segments) && r.segments[i].Start <= stop {
		p := r.segments[i]
		if p.Side != side {
			r.block()
			return true
		}
		if p.Stop > stop {
			stop = p.Stop
		}
		r.segments = append(r.segments[:i], r.segments[i+1:]...)
	}

	r.segments = append(r.segments, geom.RaySegment{})
	copy(r.segments[i+1:], r.segments[i:])
	r.segments[i] = geom.RaySegment{Start: start, Stop: stop, Side: side}

	return false
}

// Blocked reports whether a full crossing (direct or via opposing grazes)
// has been proven.
func (r *RaycastResult) Blocked() bool {
	return r.blocked
}

// Grazed reports whether at least one unresolved grazing segment has been
// recorded without the result being blocked.
func (r *RaycastResult) Grazed() bool {
	return !r.blocked && len(r.segments) > 0
}

// Free reports whether nothing has touched the ray at all.
func (r *RaycastResult) Free() bool {
	return !r.blocked && len(r.segments) == 0
}
