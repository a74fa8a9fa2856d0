// SPDX-License-Identifier: MIT
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted ascending.

package core

import "sort"

// AddVertex inserts a vertex if missing (idempotent).
//
// Errors:
//   - ErrInvalidVertex: if v < 0.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(v int) error {
	if v < 0 {
		return ErrInvalidVertex
	}
	if _, ok := g.adj[v]; ok {
		return nil
	}
	g.adj[v] = make(map[int]int)
	g.deg[v] = 0

	return nil
}

// HasVertex reports whether v exists.
// Complexity: O(1).
func (g *Graph) HasVertex(v int) bool {
	_, ok := g.adj[v]

	return ok
}

// RemoveVertex deletes v and all incident edges, loops included.
//
// Errors:
//   - ErrVertexNotFound: if v does not exist.
//
// Complexity: O(deg(v)).
func (g *Graph) RemoveVertex(v int) error {
	nbrs, ok := g.adj[v]
	if !ok {
		return ErrVertexNotFound
	}
	for u, m := range nbrs {
		g.edges -= m
		if u == v {
			continue
		}
		delete(g.adj[u], v)
		g.deg[u] -= m
	}
	delete(g.adj, v)
	delete(g.deg, v)

	return nil
}

// Vertices returns all vertex IDs in ascending order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []int {
	ids := make([]int, 0, len(g.adj))
	for v := range g.adj {
		ids = append(ids, v)
	}
	sort.Ints(ids)

	return ids
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int { return len(g.adj) }

// Degree returns the number of edge ends at v; a self-loop contributes 2.
// A missing vertex has degree 0.
// Complexity: O(1).
func (g *Graph) Degree(v int) int { return g.deg[v] }

// MaxDegree returns Δ(G), or 0 for an empty graph.
// Complexity: O(V).
func (g *Graph) MaxDegree() int {
	delta := 0
	for _, d := range g.deg {
		if d > delta {
			delta = d
		}
	}

	return delta
}

// MinDegree returns δ(G), or 0 for an empty graph.
// Complexity: O(V).
func (g *Graph) MinDegree() int {
	first := true
	delta := 0
	for _, d := range g.deg {
		if first || d < delta {
			delta = d
			first = false
		}
	}

	return delta
}
