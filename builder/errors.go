package builder

import "errors"

var (
	// ErrTooFewVertices indicates a size parameter (n, rows, cols) below the
	// minimum for the requested topology.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0, 1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor ran without an RNG.
	// Supply one with WithSeed or WithRand.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrConstructFailed indicates the layout could not be assembled, e.g. a
	// nil constructor or two constructors emitting the same ID.
	ErrConstructFailed = errors.New("builder: construction failed")

	// ErrBadLayout indicates a layout description Parse cannot read.
	ErrBadLayout = errors.New("builder: bad layout description")
)
