package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlath-cut/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid with
// 4-neighbourhood. The source is joined to every cell of column 0 and
// every cell of the last column is joined to the target.
//
// Vertex IDs: cell (r,c) is idFn(1 + r*cols + c).
// Edge order: source links (r asc), then for each cell in row-major order
// its Right and Bottom neighbours, then target links (r asc).
//
// Complexity: O(rows*cols) time, O(1) extra space.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg *builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		cell := func(r, c int) string { return cfg.idFn(1 + r*cols + c) }

		for r := 0; r < rows; r++ {
			if err := cfg.addEdge(g, methodGrid, cfg.source, cell(r, 0)); err != nil {
				return err
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := cfg.addEdge(g, methodGrid, cell(r, c), cell(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := cfg.addEdge(g, methodGrid, cell(r, c), cell(r+1, c)); err != nil {
						return err
					}
				}
			}
		}
		for r := 0; r < rows; r++ {
			if err := cfg.addEdge(g, methodGrid, cell(r, cols-1), cfg.target); err != nil {
				return err
			}
		}

		return nil
	}
}
