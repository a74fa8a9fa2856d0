// SPDX-License-Identifier: MIT
// Package: fvs/builder
//
// helpers.go: method tags, minima and shared emission helpers.
package builder

import (
	"fmt"

	"github.com/katalvlaran/fvs/core"
)

// Method tags prefix errors with the constructor name.
const (
	methodCycle             = "Cycle"
	methodPath              = "Path"
	methodStar              = "Star"
	methodWheel             = "Wheel"
	methodComplete          = "Complete"
	methodCompleteBipartite = "CompleteBipartite"
	methodGrid              = "Grid"
	methodRandomSparse      = "RandomSparse"
	methodDisjoint          = "Disjoint"
	methodEdges             = "Edges"
)

// Minimum sizes per topology.
const (
	minCycleNodes     = 3
	minPathNodes      = 1
	minStarNodes      = 2
	minWheelNodes     = 4
	minCompleteNodes  = 1
	minPartitionNodes = 1
	minGridDim        = 1
	minRandomNodes    = 1
)

// addVertices inserts cfg.idFn(0..n-1) in ascending index order.
func addVertices(g *core.Graph, cfg builderConfig, method string, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%d): %w", method, id, err)
		}
	}

	return nil
}

// addEdge connects the vertices at indices i and j with cfg.multiplicity
// parallel edges.
func addEdge(g *core.Graph, cfg builderConfig, method string, i, j int) error {
	u, v := cfg.idFn(i), cfg.idFn(j)
	if err := g.AddEdges(u, v, cfg.multiplicity); err != nil {
		return fmt.Errorf("%s: AddEdges(%d,%d): %w", method, u, v, err)
	}

	return nil
}

// tooFew formats the shared ErrTooFewVertices message.
func tooFew(method, param string, got, least int) error {
	return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, got, least, ErrTooFewVertices)
}
