package builder

import "fmt"

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel is a Star whose n-1 rim nodes are also joined in a ring.
//
// Complexity: O(n).
func Wheel(n int) Constructor {
	return func(l *layout, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}

		center := l.nextID(cfg)
		if err := l.add(cfg, center, cfg.radius, cfg.radius); err != nil {
			return fmt.Errorf("%s: %w", methodWheel, err)
		}
		rim := make([]string, n-1)
		for i := range rim {
			rim[i] = l.nextID(cfg)
			x, y := onCircle(i, len(rim), cfg.radius)
			if err := l.add(cfg, rim[i], x, y); err != nil {
				return fmt.Errorf("%s: %w", methodWheel, err)
			}
			l.link(center, rim[i])
		}
		for i, id := range rim {
			l.link(id, rim[(i+1)%len(rim)])
		}

		return nil
	}
}
