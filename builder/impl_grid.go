// SPDX-License-Identifier: MIT
// Package: roadmap/builder
//
// impl_grid.go - rows×cols road grid with the 8-neighborhood.
//
// Contract:
//   - rows ≥ 1, cols ≥ 1, else ErrTooFewVertices.
//   - Node codes are "r,c" in row-major order.
//   - Every node links to each in-bounds neighbor among N, NE, E, SE, S, SW, W, NW
//     in that slot order; at most 8 links, so slots never overflow.
//   - Diagonal weights are the weightFn draw scaled by √2.
//
// Complexity: O(rows·cols).

package builder

import (
	"fmt"
	"math"
)

const methodGrid = "Grid"

// compass order for slot assignment: N, NE, E, SE, S, SW, W, NW.
var gridDirs = [8][2]int{
	{-1, 0}, {-1, 1}, {0, 1}, {1, 1},
	{1, 0}, {1, -1}, {0, -1}, {-1, -1},
}

// GridCode returns the code Grid assigns to cell (r, c).
func GridCode(r, c int) string {
	return fmt.Sprintf("%d,%d", r, c)
}

// Grid returns a Constructor for a rows×cols road grid.
func Grid(rows, cols int) Constructor {
	return func(nb *nodeBuffer, cfg builderConfig) error {
		if rows < 1 || cols < 1 {
			return fmt.Errorf("%s: rows=%d, cols=%d: %w", methodGrid, rows, cols, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				nb.addNode(GridCode(r, c), cfg)
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				from := GridCode(r, c)
				for _, d := range gridDirs {
					nr, nc := r+d[0], c+d[1]
					if nr < 0 || nr >= rows || nc < 0 || nc >= cols {
						continue
					}
					w := cfg.weightFn(cfg.rng)
					if d[0] != 0 && d[1] != 0 {
						w *= math.Sqrt2
					}
					if err := nb.addLink(from, GridCode(nr, nc), w); err != nil {
						return fmt.Errorf("%s: %w", methodGrid, err)
					}
				}
			}
		}

		return nil
	}
}
