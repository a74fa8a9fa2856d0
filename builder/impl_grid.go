// SPDX-License-Identifier: MIT
// Package: fvs/builder
//
// impl_grid.go: CompleteBipartite(n1, n2) and Grid(rows, cols).
package builder

import "github.com/katalvlaran/fvs/core"

// CompleteBipartite returns a Constructor that builds K_{n1,n2}: the left
// side occupies indices 0..n1-1 and the right side n1..n1+n2-1. Edges are
// emitted left-major.
// Complexity: O(n1·n2).
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < minPartitionNodes {
			return tooFew(methodCompleteBipartite, "n1", n1, minPartitionNodes)
		}
		if n2 < minPartitionNodes {
			return tooFew(methodCompleteBipartite, "n2", n2, minPartitionNodes)
		}
		if err := addVertices(g, cfg, methodCompleteBipartite, n1+n2); err != nil {
			return err
		}
		for i := 0; i < n1; i++ {
			for j := n1; j < n1+n2; j++ {
				if err := addEdge(g, cfg, methodCompleteBipartite, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Grid returns a Constructor that builds a rows×cols 4-neighborhood grid.
// Cell (r, c) has index r*cols+c; edges go right then down, row-major.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim {
			return tooFew(methodGrid, "rows", rows, minGridDim)
		}
		if cols < minGridDim {
			return tooFew(methodGrid, "cols", cols, minGridDim)
		}
		if err := addVertices(g, cfg, methodGrid, rows*cols); err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				i := r*cols + c
				if c+1 < cols {
					if err := addEdge(g, cfg, methodGrid, i, i+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, cfg, methodGrid, i, i+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
