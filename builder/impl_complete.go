package builder

import "fmt"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete places n nodes on a circle and joins every pair.
//
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(l *layout, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		ids := make([]string, n)
		for i := range ids {
			ids[i] = l.nextID(cfg)
			x, y := onCircle(i, n, cfg.radius)
			if err := l.add(cfg, ids[i], x, y); err != nil {
				return fmt.Errorf("%s: %w", methodComplete, err)
			}
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				l.link(ids[i], ids[j])
			}
		}

		return nil
	}
}
