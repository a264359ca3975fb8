// Package obstaclegen builds deterministic obstacle fields for exercising
// and benchmarking graph.Graph: the same functional-options-over-a-config
// discipline and seeded-RNG-or-deterministic-fallback contract as a
// topology generator, repurposed from graph topology to polygon fields.
package obstaclegen

import (
	"errors"
	"math/rand"
)

// Sentinel errors. Callers branch with errors.Is, never string comparison.
var (
	// ErrTooFewVertices indicates a size parameter (rows, cols, n) is below
	// the constructor's required minimum.
	ErrTooFewVertices = errors.New("obstaclegen: parameter too small")

	// ErrInvalidProbability indicates a probability parameter lies outside
	// the closed interval [0, 1].
	ErrInvalidProbability = errors.New("obstaclegen: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor was invoked
	// without an RNG supplied via WithSeed/WithRand.
	ErrNeedRandSource = errors.New("obstaclegen: rng is required")

	// ErrInvalidSize indicates a non-positive cell or obstacle size, a
	// negative spacing, or bounds too small for the requested size.
	ErrInvalidSize = errors.New("obstaclegen: cell size must be positive")

	// ErrMalformedMaze indicates the maze's ASCII rows are not rectangular,
	// or it does not contain exactly one 'A' and one 'B'.
	ErrMalformedMaze = errors.New("obstaclegen: malformed maze layout")
)

// Option configures a generator call.
type Option func(*config)

type config struct {
	rng *rand.Rand
}

func newConfig(opts ...Option) config {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithRand supplies an explicit RNG source. A nil rng is a no-op.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) {
		if rng != nil {
			c.rng = rng
		}
	}
}

// WithSeed seeds a fresh RNG for reproducible obstacle placement.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}
