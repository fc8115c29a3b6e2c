package builder

import (
	"fmt"
	"math"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse scatters n nodes uniformly over a square of side
// spacing·√n·radius/2 and includes each unordered pair independently with
// probability p. Without an RNG (allowed only for p ∈ {0, 1}) the nodes sit
// on a circle instead.
//
// Draw order is fixed: all positions in index order, then one trial per pair
// (i asc, j asc, j > i). Equal seeds give equal layouts.
//
// Complexity: O(n²).
func RandomSparse(n int, p float64) Constructor {
	return func(l *layout, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax || math.IsNaN(p) {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		rng := cfg.rng
		if rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		side := cfg.spacing * math.Sqrt(float64(n)) * cfg.radius / 2
		ids := make([]string, n)
		for i := range ids {
			ids[i] = l.nextID(cfg)
			var x, y float64
			if rng != nil {
				x, y = rng.Float64()*side, rng.Float64()*side
			} else {
				x, y = onCircle(i, n, cfg.radius)
			}
			if err := l.add(cfg, ids[i], x, y); err != nil {
				return fmt.Errorf("%s: %w", methodRandomSparse, err)
			}
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if p == probMax || (rng != nil && p > probMin && rng.Float64() < p) {
					l.link(ids[i], ids[j])
				}
			}
		}

		return nil
	}
}
