// SPDX-License-Identifier: MIT
// File: writer.go
// Role: plain-text writers for solutions and edge lists.
package graphio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/fvs/core"
)

// WriteSolution writes one name per line.
func WriteSolution(w io.Writer, names []string) error {
	bw := bufio.NewWriter(w)
	for _, n := range names {
		if _, err := fmt.Fprintln(bw, n); err != nil {
			return fmt.Errorf("graphio: WriteSolution: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("graphio: WriteSolution: %w", err)
	}

	return nil
}

// WriteEdgeList writes g in the format Read accepts, one line per edge
// (parallel edges repeated). Vertices are written as decimal IDs; isolated
// vertices cannot be expressed and are omitted.
func WriteEdgeList(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "# %d vertices, %d edges\n", g.VertexCount(), g.EdgeCount()); err != nil {
		return fmt.Errorf("graphio: WriteEdgeList: %w", err)
	}
	for _, e := range g.Edges() {
		for i := 0; i < e.Multiplicity; i++ {
			if _, err := fmt.Fprintf(bw, "%d %d\n", e.From, e.To); err != nil {
				return fmt.Errorf("graphio: WriteEdgeList: %w", err)
			}
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("graphio: WriteEdgeList: %w", err)
	}

	return nil
}
