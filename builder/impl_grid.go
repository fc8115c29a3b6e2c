package builder

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// Grid places a rows×cols lattice one spacing apart with fixed IDs "r,c"
// (row-major) and joins each cell to its right and bottom neighbours.
// All edges have equal length, so the forest is decided by tie-breaking.
//
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(l *layout, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := fmt.Sprintf(gridIDFmt, r, c)
				if err := l.add(cfg, id, float64(c)*cfg.spacing, float64(r)*cfg.spacing); err != nil {
					return fmt.Errorf("%s: %w", methodGrid, err)
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := fmt.Sprintf(gridIDFmt, r, c)
				if c+1 < cols {
					l.link(u, fmt.Sprintf(gridIDFmt, r, c+1))
				}
				if r+1 < rows {
					l.link(u, fmt.Sprintf(gridIDFmt, r+1, c))
				}
			}
		}

		return nil
	}
}
