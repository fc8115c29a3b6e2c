package builder

import "fmt"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle places n nodes evenly on a circle and joins i to (i+1) mod n.
// Every edge has length 2r·sin(π/n).
//
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(l *layout, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		ids := make([]string, n)
		for i := range ids {
			ids[i] = l.nextID(cfg)
			x, y := onCircle(i, n, cfg.radius)
			if err := l.add(cfg, ids[i], x, y); err != nil {
				return fmt.Errorf("%s: %w", methodCycle, err)
			}
		}
		for i, id := range ids {
			l.link(id, ids[(i+1)%n])
		}

		return nil
	}
}
