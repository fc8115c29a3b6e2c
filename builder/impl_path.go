package builder

import "fmt"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path places n nodes on a horizontal line, one spacing apart, and joins
// each to the next.
//
// Complexity: O(n).
func Path(n int) Constructor {
	return func(l *layout, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		prev := ""
		for i := 0; i < n; i++ {
			id := l.nextID(cfg)
			if err := l.add(cfg, id, float64(i)*cfg.spacing, 0); err != nil {
				return fmt.Errorf("%s: %w", methodPath, err)
			}
			if prev != "" {
				l.link(prev, id)
			}
			prev = id
		}

		return nil
	}
}
