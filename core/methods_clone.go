// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: Cloning, induced subgraphs and structural equality.
// AI-HINT (file):
//   - Clone() is the only deep copy; algorithms that backtrack use the action
//     log instead of cloning per branch.

package core

// Clone returns a deep copy of the Graph.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	out := NewGraph(WithCapacity(len(g.adj)))
	for v, nbrs := range g.adj {
		cp := make(map[int]int, len(nbrs))
		for u, m := range nbrs {
			cp[u] = m
		}
		out.adj[v] = cp
		out.deg[v] = g.deg[v]
	}
	out.edges = g.edges

	return out
}

// InducedSubgraph returns a new Graph containing the vertices v with keep(v)
// and every edge whose endpoints are both kept. g is not mutated.
// Complexity: O(V + E).
func (g *Graph) InducedSubgraph(keep func(v int) bool) *Graph {
	out := NewGraph()
	for v := range g.adj {
		if keep(v) {
			out.adj[v] = make(map[int]int)
			out.deg[v] = 0
		}
	}
	for v, nbrs := range g.adj {
		if !out.HasVertex(v) {
			continue
		}
		for u, m := range nbrs {
			// visit each bundle once: from its smaller endpoint
			if u < v || !out.HasVertex(u) {
				continue
			}
			out.link(v, u, m)
		}
	}

	return out
}

// Equal reports whether g and other have the same vertex set and the same
// edge multiset.
// Complexity: O(V + E).
func (g *Graph) Equal(other *Graph) bool {
	if other == nil {
		return false
	}
	if len(g.adj) != len(other.adj) || g.edges != other.edges {
		return false
	}
	for v, nbrs := range g.adj {
		onbrs, ok := other.adj[v]
		if !ok || len(onbrs) != len(nbrs) {
			return false
		}
		for u, m := range nbrs {
			if onbrs[u] != m {
				return false
			}
		}
	}

	return true
}
