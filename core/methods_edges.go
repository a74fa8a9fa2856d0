// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/AddEdges/RemoveEdge/SetMultiplicity,
//       Multiplicity/HasEdge/HasLoop, Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges sorted by (From, To) with From <= To.

package core

import "sort"

// AddEdge adds one undirected edge u–v, creating missing endpoints.
// u == v adds a self-loop.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int) error {
	return g.AddEdges(u, v, 1)
}

// AddEdges adds m parallel edges u–v, creating missing endpoints.
//
// Errors:
//   - ErrInvalidVertex: if u or v is negative.
//   - ErrInvalidMultiplicity: if m < 1.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdges(u, v, m int) error {
	if m < 1 {
		return ErrInvalidMultiplicity
	}
	if err := g.AddVertex(u); err != nil {
		return err
	}
	if err := g.AddVertex(v); err != nil {
		return err
	}
	g.link(u, v, m)

	return nil
}

// RemoveEdge removes a single parallel edge u–v.
//
// Errors:
//   - ErrEdgeNotFound: if no u–v edge exists.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(u, v int) error {
	if g.adj[u][v] == 0 {
		return ErrEdgeNotFound
	}
	g.link(u, v, -1)

	return nil
}

// SetMultiplicity sets the number of parallel u–v edges to exactly m.
// m == 0 removes the bundle. Both endpoints must exist.
//
// Errors:
//   - ErrInvalidMultiplicity: if m < 0.
//   - ErrVertexNotFound: if u or v is missing.
//
// Complexity: O(1).
func (g *Graph) SetMultiplicity(u, v, m int) error {
	if m < 0 {
		return ErrInvalidMultiplicity
	}
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return ErrVertexNotFound
	}
	if delta := m - g.adj[u][v]; delta != 0 {
		g.link(u, v, delta)
	}

	return nil
}

// link adjusts the u–v multiplicity by delta and keeps mirror entries,
// degree cache and edge counter consistent. Endpoints must exist and the
// resulting multiplicity must be non-negative.
func (g *Graph) link(u, v, delta int) {
	m := g.adj[u][v] + delta
	if m == 0 {
		delete(g.adj[u], v)
		if u != v {
			delete(g.adj[v], u)
		}
	} else {
		g.adj[u][v] = m
		if u != v {
			g.adj[v][u] = m
		}
	}
	g.edges += delta
	if u == v {
		g.deg[u] += 2 * delta

		return
	}
	g.deg[u] += delta
	g.deg[v] += delta
}

// Multiplicity returns the number of parallel u–v edges (0 if none).
// Complexity: O(1).
func (g *Graph) Multiplicity(u, v int) int { return g.adj[u][v] }

// HasEdge reports whether at least one u–v edge exists.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool { return g.adj[u][v] > 0 }

// HasLoop reports whether v carries a self-loop.
// Complexity: O(1).
func (g *Graph) HasLoop(v int) bool { return g.adj[v][v] > 0 }

// EdgeCount returns the total number of edges, counting parallel edges
// individually.
// Complexity: O(1).
func (g *Graph) EdgeCount() int { return g.edges }

// Edges returns all edge bundles with From <= To, sorted by (From, To).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edges)
	for u, nbrs := range g.adj {
		for v, m := range nbrs {
			if u <= v {
				out = append(out, Edge{From: u, To: v, Multiplicity: m})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}

		return out[i].To < out[j].To
	})

	return out
}
