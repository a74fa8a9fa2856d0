// SPDX-License-Identifier: MIT
// File: cycle.go
// Role: cycle detection on undirected multigraphs (three-colour DFS with an
// explicit stack) and the "does v close a cycle" query used by the
// iterative-compression driver.
package dfs

import (
	"github.com/katalvlaran/fvs/core"
	"github.com/katalvlaran/fvs/unionfind"
)

// FindCycle returns the vertices of one cycle of G[allowed] in traversal
// order, or nil if G[allowed] is a forest. A self-loop yields a single vertex
// and a doubled edge yields its two endpoints.
//
// Complexity: O(V + E) time, O(V) memory.
func FindCycle(g *core.Graph, allowed Allowed) []int {
	if g == nil {
		return nil
	}
	verts := g.Vertices()
	state := make(map[int]int, len(verts))
	parent := make(map[int]int, len(verts))

	for _, root := range verts {
		if state[root] != White || !allowed.admits(root) {
			continue
		}
		if cyc := visit(g, root, allowed, state, parent); cyc != nil {
			return cyc
		}
	}

	return nil
}

// visit runs one DFS tree from root and stops at the first back edge.
func visit(g *core.Graph, root int, allowed Allowed, state, parent map[int]int) []int {
	stack := []frame{{v: root, parent: -1, nbrs: g.Neighbors(root)}}
	state[root] = Gray
	parent[root] = -1

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.nbrs) {
			state[top.v] = Black
			stack = stack[:len(stack)-1]
			continue
		}
		u := top.nbrs[top.next]
		top.next++
		if !allowed.admits(u) {
			continue
		}

		switch {
		case u == top.v:
			return []int{u}
		case u == top.parent:
			// the tree edge itself; a second parallel edge closes a 2-cycle
			if g.Multiplicity(top.v, u) >= 2 {
				return []int{u, top.v}
			}
		case state[u] == Gray:
			return unwind(top.v, u, parent)
		case state[u] == White:
			state[u] = Gray
			parent[u] = top.v
			stack = append(stack, frame{v: u, parent: top.v, nbrs: g.Neighbors(u)})
		}
	}

	return nil
}

// unwind walks parent links from tail up to the ancestor head and returns the
// path head → … → tail.
func unwind(tail, head int, parent map[int]int) []int {
	path := []int{tail}
	for v := tail; v != head; {
		v = parent[v]
		path = append(path, v)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// HasCycle reports whether g contains any cycle, loops and parallel edges
// included. A nil graph has none.
func HasCycle(g *core.Graph) bool {
	return FindCycle(g, nil) != nil
}

// IsForest reports whether g is acyclic.
//
// Errors:
//   - ErrGraphNil: if g is nil.
func IsForest(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}

	return !HasCycle(g), nil
}

// InducesCycle reports whether the subgraph induced by allowed is cyclic.
func InducesCycle(g *core.Graph, allowed Allowed) bool {
	return FindCycle(g, allowed) != nil
}

// LiesOnCycle reports whether some cycle of G[allowed ∪ {v}] passes through
// v. That holds exactly when v carries a loop, has a parallel edge to an
// allowed neighbor, or has two edges into the same connected component of
// G[allowed] − v.
//
// Complexity: O(V + E α(V)).
func LiesOnCycle(g *core.Graph, v int, allowed Allowed) bool {
	if g == nil || !g.HasVertex(v) {
		return false
	}
	if g.HasLoop(v) {
		return true
	}

	inside := func(u int) bool { return u != v && allowed.admits(u) }
	uf := unionfind.New(g.VertexCount())
	for _, e := range g.Edges() {
		if inside(e.From) && inside(e.To) {
			uf.Union(e.From, e.To)
		}
	}

	seen := make(map[int]struct{}, g.Degree(v))
	for _, e := range g.IncidentEdges(v) {
		if !inside(e.To) {
			continue
		}
		if e.Multiplicity >= 2 {
			return true
		}
		root := uf.Find(e.To)
		if _, dup := seen[root]; dup {
			return true
		}
		seen[root] = struct{}{}
	}

	return false
}
