package builder

import "fmt"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star places a centre node (the first ID) at the middle of a circle and
// n-1 leaves on it, each joined only to the centre.
//
// Complexity: O(n).
func Star(n int) Constructor {
	return func(l *layout, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		center := l.nextID(cfg)
		if err := l.add(cfg, center, cfg.radius, cfg.radius); err != nil {
			return fmt.Errorf("%s: %w", methodStar, err)
		}
		for i := 0; i < n-1; i++ {
			id := l.nextID(cfg)
			x, y := onCircle(i, n-1, cfg.radius)
			if err := l.add(cfg, id, x, y); err != nil {
				return fmt.Errorf("%s: %w", methodStar, err)
			}
			l.link(center, id)
		}

		return nil
	}
}
