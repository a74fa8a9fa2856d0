// SPDX-License-Identifier: MIT
// Package split trims a multigraph to the edges that lie on cycles and
// separates what is left into independent instances.
//
// No bridge lies on a cycle, so deleting bridges never changes the set of
// cycles. Every remaining vertex with degree 0 is then on no cycle either and
// is dropped. The surviving connected components share no cycle, so a
// minimum FVS of the input is the union of minimum FVSs of the components.
package split

import (
	"sort"

	"github.com/katalvlaran/fvs/bfs"
	"github.com/katalvlaran/fvs/core"
)

// frame is one level of the explicit DFS stack used by Bridges.
type frame struct {
	v      int
	parent int // -1 for a root
	nbrs   []int
	next   int
}

// Bridges returns the bridges of g, From < To, sorted. A bundle of parallel
// edges and a self-loop are never bridges.
//
// Tarjan's low-link method with an explicit stack.
// Complexity: O(V + E).
func Bridges(g *core.Graph) []core.Edge {
	if g == nil {
		return nil
	}
	disc := make(map[int]int, g.VertexCount())
	low := make(map[int]int, g.VertexCount())
	timer := 0
	var out []core.Edge

	for _, root := range g.Vertices() {
		if _, seen := disc[root]; seen {
			continue
		}
		timer++
		disc[root], low[root] = timer, timer
		stack := []frame{{v: root, parent: -1, nbrs: g.Neighbors(root)}}

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next < len(top.nbrs) {
				w := top.nbrs[top.next]
				top.next++
				// A single edge back to the parent is the tree edge itself;
				// a parallel one is a genuine back edge.
				if w == top.v || (w == top.parent && g.Multiplicity(top.v, w) == 1) {
					continue
				}
				if d, seen := disc[w]; seen {
					low[top.v] = min(low[top.v], d)

					continue
				}
				timer++
				disc[w], low[w] = timer, timer
				stack = append(stack, frame{v: w, parent: top.v, nbrs: g.Neighbors(w)})

				continue
			}

			done := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if done.parent < 0 {
				continue
			}
			low[done.parent] = min(low[done.parent], low[done.v])
			if low[done.v] > disc[done.parent] {
				out = append(out, bridge(done.parent, done.v))
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

func bridge(u, v int) core.Edge {
	if u > v {
		u, v = v, u
	}

	return core.Edge{From: u, To: v, Multiplicity: 1}
}

// Trim returns a copy of g without bridges and without the vertices left
// isolated by their removal. g is not modified.
func Trim(g *core.Graph) *core.Graph {
	h := g.Clone()
	for _, e := range Bridges(h) {
		_ = h.RemoveEdge(e.From, e.To) // reported by Bridges, so present
	}
	for _, v := range h.Vertices() {
		if h.Degree(v) == 0 {
			_ = h.RemoveVertex(v)
		}
	}

	return h
}

// Split trims g and returns one graph per connected component of the
// result, ordered by smallest vertex. Vertex IDs are preserved. A forest
// yields no components.
func Split(g *core.Graph) []*core.Graph {
	if g == nil {
		return nil
	}
	h := Trim(g)
	comps := bfs.Components(h)
	out := make([]*core.Graph, 0, len(comps))
	for _, comp := range comps {
		in := make(map[int]bool, len(comp))
		for _, v := range comp {
			in[v] = true
		}
		out = append(out, h.InducedSubgraph(func(v int) bool { return in[v] }))
	}

	return out
}
