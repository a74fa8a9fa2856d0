// SPDX-License-Identifier: MIT
// File: cycle.go
// Role: semidisjoint cycle detection on a clean multigraph.
package approx

import "github.com/katalvlaran/fvs/core"

// semidisjointCycle returns the vertices of a cycle of h in which every
// vertex but at most one has degree 2, or nil if h has none. h must be clean
// (minimum degree 2).
//
// Such a cycle is a self-loop, a closed ring of degree-2 vertices, or a chain
// of degree-2 vertices whose two ends attach to the same vertex x.
func semidisjointCycle(h *core.Graph) []int {
	verts := h.Vertices()
	for _, v := range verts {
		if h.HasLoop(v) {
			return []int{v}
		}
	}

	walked := make(map[int]bool)
	for _, s := range verts {
		if h.Degree(s) != 2 || walked[s] {
			continue
		}
		ends := h.NeighborList(s)
		left, endL, closed := walkChain(h, s, ends[0])
		if closed {
			return append([]int{s}, left...)
		}
		right, endR, _ := walkChain(h, s, ends[1])
		if endL == endR {
			cyc := make([]int, 0, len(left)+len(right)+2)
			cyc = append(cyc, s)
			cyc = append(cyc, left...)
			cyc = append(cyc, right...)
			return append(cyc, endL)
		}
		walked[s] = true
		for _, v := range left {
			walked[v] = true
		}
		for _, v := range right {
			walked[v] = true
		}
	}

	return nil
}

// walkChain follows degree-2 vertices from seed through first. It returns
// the degree-2 vertices passed (seed excluded), the first vertex of another
// degree, and whether the walk came back to seed instead.
func walkChain(h *core.Graph, seed, first int) (chain []int, end int, closed bool) {
	prev, cur := seed, first
	for {
		if cur == seed {
			return chain, seed, true
		}
		if h.Degree(cur) != 2 {
			return chain, cur, false
		}
		chain = append(chain, cur)
		pair := h.NeighborList(cur)
		next := pair[0]
		if next == prev {
			next = pair[1]
		}
		prev, cur = cur, next
	}
}
