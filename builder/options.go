package builder

import (
	"math/rand"

	"github.com/katalvlaran/constellation/core"
)

// BuilderOption customizes a builderConfig before any constructor runs.
// Option constructors panic on meaningless input; constructors never do.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the index → ID generator. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic constructors. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed attaches a fresh RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRadius sets the circle radius used by circular layouts. Panics unless r > 0.
func WithRadius(r float64) BuilderOption {
	if !(r > 0) {
		panic("builder: WithRadius must be positive")
	}
	return func(c *builderConfig) {
		c.radius = r
	}
}

// WithSpacing sets the unit distance of lines and grids, and the gap between
// composed parts. Panics unless s > 0.
func WithSpacing(s float64) BuilderOption {
	if !(s > 0) {
		panic("builder: WithSpacing must be positive")
	}
	return func(c *builderConfig) {
		c.spacing = s
	}
}

// WithCategory sets the category of every generated node.
func WithCategory(cat core.Category) BuilderOption {
	return func(c *builderConfig) {
		c.category = cat
	}
}

// WithPartitionPrefix sets the bipartite side prefixes. Empty values fall
// back to the defaults.
func WithPartitionPrefix(left, right string) BuilderOption {
	return func(c *builderConfig) {
		c.leftPrefix, c.rightPrefix = left, right
	}
}
