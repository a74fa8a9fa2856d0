// SPDX-License-Identifier: MIT
// File: components.go
// Role: connected components as repeated BFS forests.
package bfs

import (
	"sort"

	"github.com/katalvlaran/fvs/core"
)

// Components returns the vertex sets of the connected components of g.
// Each component is sorted ascending and components are ordered by their
// smallest vertex, so the result is deterministic. Isolated vertices form
// singleton components.
//
// Complexity: O((V + E) log V).
func Components(g *core.Graph) [][]int {
	if g == nil {
		return nil
	}
	seen := make(map[int]bool, g.VertexCount())
	var out [][]int
	for _, v := range g.Vertices() {
		if seen[v] {
			continue
		}
		// v is present, so BFS cannot fail
		res, _ := BFS(g, v)
		comp := append([]int(nil), res.Order...)
		for _, u := range comp {
			seen[u] = true
		}
		sort.Ints(comp)
		out = append(out, comp)
	}

	return out
}
