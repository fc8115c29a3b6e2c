package builder

import "fmt"

const (
	methodBipartite = "CompleteBipartite"
	minPartSize     = 1
)

// CompleteBipartite places n1 nodes "L0".."L{n1-1}" in a left column and n2
// nodes "R0".."R{n2-1}" in a right column one radius away, joining every
// left node to every right node. IDs use the partition prefixes, not idFn.
//
// Complexity: O(n1·n2).
func CompleteBipartite(n1, n2 int) Constructor {
	return func(l *layout, cfg builderConfig) error {
		if n1 < minPartSize || n2 < minPartSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodBipartite, n1, n2, minPartSize, ErrTooFewVertices)
		}

		left := make([]string, n1)
		for i := range left {
			left[i] = fmt.Sprintf("%s%d", cfg.leftPrefix, i)
			if err := l.add(cfg, left[i], 0, float64(i)*cfg.spacing); err != nil {
				return fmt.Errorf("%s: %w", methodBipartite, err)
			}
		}
		for j := 0; j < n2; j++ {
			id := fmt.Sprintf("%s%d", cfg.rightPrefix, j)
			if err := l.add(cfg, id, cfg.radius, float64(j)*cfg.spacing); err != nil {
				return fmt.Errorf("%s: %w", methodBipartite, err)
			}
			for _, u := range left {
				l.link(u, id)
			}
		}

		return nil
	}
}
