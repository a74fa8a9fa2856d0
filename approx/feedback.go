// SPDX-License-Identifier: MIT
// File: feedback.go
// Role: the FEEDBACK main loop and the redundancy pass.
package approx

import (
	"sort"

	"github.com/katalvlaran/fvs/core"
	"github.com/katalvlaran/fvs/unionfind"
)

// Feedback returns a minimal feedback vertex set of g with weight at most
// twice the minimum. A nil or acyclic g yields an empty result.
func Feedback(g *core.Graph, opts ...Option) Result {
	if g == nil {
		return Result{}
	}
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	h := g.Clone()
	residual := make(map[int]*WeightedVertex, h.VertexCount())
	for _, v := range h.Vertices() {
		residual[v] = &WeightedVertex{ID: v, Weight: cfg.weightOf(v)}
	}

	var stack []int
	for {
		cleanUp(h)
		if h.VertexCount() == 0 {
			break
		}
		stack = append(stack, discharge(h, residual)...)
	}

	kept := prune(g, stack)
	res := Result{Vertices: kept}
	for _, v := range kept {
		res.Weight += cfg.weightOf(v)
	}

	return res
}

// cleanUp deletes vertices of degree ≤ 1 until none is left.
func cleanUp(h *core.Graph) {
	queue := make([]int, 0)
	for _, v := range h.Vertices() {
		if h.Degree(v) <= 1 {
			queue = append(queue, v)
		}
	}
	for len(queue) > 0 {
		v := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		if !h.HasVertex(v) || h.Degree(v) > 1 {
			continue
		}
		nbrs := h.Neighbors(v)
		_ = h.RemoveVertex(v) // v exists
		for _, u := range nbrs {
			if u != v && h.Degree(u) <= 1 {
				queue = append(queue, u)
			}
		}
	}
}

// discharge runs one weight-reduction round on the clean graph h and removes
// the vertices whose residual weight reached zero. It returns them in
// ascending order.
func discharge(h *core.Graph, residual map[int]*WeightedVertex) []int {
	var (
		scope []int
		cost  func(v int) float64
	)
	if cyc := semidisjointCycle(h); cyc != nil {
		scope = cyc
		gamma := minOver(scope, func(v int) float64 { return residual[v].Weight })
		cost = func(int) float64 { return gamma }
	} else {
		scope = h.Vertices()
		gamma := minOver(scope, func(v int) float64 {
			return residual[v].Weight / float64(h.Degree(v)-1)
		})
		cost = func(v int) float64 { return gamma * float64(h.Degree(v)-1) }
	}

	// the argmin pins γ; force it to exactly zero so every round makes progress
	pivot := scope[0]
	for _, v := range scope[1:] {
		if residual[v].Weight-cost(v) < residual[pivot].Weight-cost(pivot) {
			pivot = v
		}
	}

	drained := make([]int, 0, 1)
	for _, v := range scope {
		wv := residual[v]
		wv.Weight -= cost(v)
		if v == pivot || wv.Weight <= epsilon {
			wv.Weight = 0
			drained = append(drained, v)
		}
	}
	sort.Ints(drained)
	for _, v := range drained {
		_ = h.RemoveVertex(v) // v is in scope, hence present
	}

	return drained
}

// minOver returns the minimum of f over vs; vs must be non-empty.
func minOver(vs []int, f func(int) float64) float64 {
	best := f(vs[0])
	for _, v := range vs[1:] {
		if x := f(v); x < best {
			best = x
		}
	}

	return best
}

// prune pops the stack and keeps only the vertices that would close a cycle
// in the forest G − F. The result is sorted ascending.
func prune(g *core.Graph, stack []int) []int {
	inF := make(map[int]bool, len(stack))
	for _, v := range stack {
		inF[v] = true
	}

	forest := unionfind.New(g.VertexCount())
	for _, e := range g.Edges() {
		if !inF[e.From] && !inF[e.To] {
			forest.Union(e.From, e.To)
		}
	}

	for i := len(stack) - 1; i >= 0; i-- {
		v := stack[i]
		if essential(g, v, inF, forest) {
			continue
		}
		inF[v] = false
		g.ForEachNeighbor(v, func(u, _ int) {
			if !inF[u] {
				forest.Union(v, u)
			}
		})
	}

	kept := make([]int, 0, len(stack))
	for _, v := range stack {
		if inF[v] {
			kept = append(kept, v)
		}
	}
	sort.Ints(kept)

	return kept
}

// essential reports whether reinserting v into G − F closes a cycle.
func essential(g *core.Graph, v int, inF map[int]bool, forest *unionfind.UnionFind) bool {
	if g.HasLoop(v) {
		return true
	}
	seen := make(map[int]struct{})
	for _, e := range g.IncidentEdges(v) {
		if inF[e.To] {
			continue
		}
		if e.Multiplicity >= 2 {
			return true
		}
		root := forest.Find(e.To)
		if _, dup := seen[root]; dup {
			return true
		}
		seen[root] = struct{}{}
	}

	return false
}
