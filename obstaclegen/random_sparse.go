package obstaclegen

import (
	"fmt"

	"github.com/katalvlaran/mrvg/polygon"
)

// RandomSparse samples n non-degenerate axis-aligned rectangles whose
// bottom-left corner is drawn uniformly within bounds and whose width and
// height are drawn uniformly from [minSize, maxSize], clamped so the
// rectangle never crosses bounds' upper edges. Trial order is i ascending
// (stable for a fixed seed), the same deterministic-order discipline any
// seeded-RNG builder needs for reproducible output.
func RandomSparse(n int, bounds polygon.AABB, minSize, maxSize float64, opts ...Option) ([]*polygon.Polygon, error) {
	if n < 1 {
		return nil, fmt.Errorf("RandomSparse: n=%d < 1: %w", n, ErrTooFewVertices)
	}
	if minSize <= 0 || maxSize <= 0 || minSize > maxSize {
		return nil, fmt.Errorf("RandomSparse: minSize=%g, maxSize=%g: %w", minSize, maxSize, ErrInvalidSize)
	}

	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("RandomSparse: %w", ErrNeedRandSource)
	}
	rng := cfg.rng

	width := bounds.MaxX - bounds.MinX
	height := bounds.MaxY - bounds.MinY
	if width <= maxSize || height <= maxSize {
		return nil, fmt.Errorf("RandomSparse: bounds too small for maxSize=%g: %w", maxSize, ErrInvalidSize)
	}

	out := make([]*polygon.Polygon, 0, n)
	for i := 0; i < n; i++ {
		w := minSize + rng.Float64()*(maxSize-minSize)
		h := minSize + rng.Float64()*(maxSize-minSize)
		left := bounds.MinX + rng.Float64()*(width-w)
		bottom := bounds.MinY + rng.Float64()*(height-h)
		out = append(out, polygon.NewRectangle(left, bottom, left+w, bottom+h))
	}
	return out, nil
}
