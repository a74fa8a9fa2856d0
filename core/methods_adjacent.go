// SPDX-License-Identifier: MIT
// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborList, IncidentEdges, ForEachNeighbor).
// Determinism:
//   - Neighbors() returns unique IDs sorted asc.
//   - NeighborList() returns one entry per edge end, sorted asc.
//   - IncidentEdges() is sorted by To asc.
//   - ForEachNeighbor() is unordered; use it only where order cannot leak out.

package core

import "sort"

// Neighbors returns the distinct vertices adjacent to v, sorted ascending.
// v itself is included when it carries a self-loop.
// A missing vertex yields nil.
// Complexity: O(d log d).
func (g *Graph) Neighbors(v int) []int {
	nbrs, ok := g.adj[v]
	if !ok {
		return nil
	}
	out := make([]int, 0, len(nbrs))
	for u := range nbrs {
		out = append(out, u)
	}
	sort.Ints(out)

	return out
}

// NeighborList returns the far endpoint of every edge end at v, so that
// len(NeighborList(v)) == Degree(v): a u–v bundle of multiplicity m lists u
// m times, and every self-loop lists v twice.
// Complexity: O(d log d).
func (g *Graph) NeighborList(v int) []int {
	nbrs, ok := g.adj[v]
	if !ok {
		return nil
	}
	out := make([]int, 0, g.deg[v])
	for u, m := range nbrs {
		if u == v {
			m *= 2
		}
		for i := 0; i < m; i++ {
			out = append(out, u)
		}
	}
	sort.Ints(out)

	return out
}

// IncidentEdges returns the edge bundles at v as (v, u, multiplicity),
// sorted by u ascending.
// Complexity: O(d log d).
func (g *Graph) IncidentEdges(v int) []Edge {
	nbrs, ok := g.adj[v]
	if !ok {
		return nil
	}
	out := make([]Edge, 0, len(nbrs))
	for u, m := range nbrs {
		out = append(out, Edge{From: v, To: u, Multiplicity: m})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].To < out[j].To })

	return out
}

// ForEachNeighbor calls fn(u, m) for every distinct neighbor u of v with the
// u–v multiplicity m. Iteration order is unspecified. fn must not mutate g.
// Complexity: O(d).
func (g *Graph) ForEachNeighbor(v int, fn func(u, m int)) {
	for u, m := range g.adj[v] {
		fn(u, m)
	}
}
