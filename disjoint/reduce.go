// SPDX-License-Identifier: MIT
// File: reduce.go
// Role: per-node reduction rules, all applied through the action log.
package disjoint

import (
	"github.com/katalvlaran/fvs/action"
	"github.com/katalvlaran/fvs/unionfind"
)

// reduce applies the node rules to closure and returns the vertices it
// committed. G[P] does not change inside a node (P vertices are only ever
// deleted as leaves and no rule adds an edge between two P vertices), so
// its components are computed once.
func (sr *search) reduce() ([]int, error) {
	var committed []int
	forest := sr.components()

	for changed := true; changed; {
		changed = false
		for _, v := range sr.g.Vertices() {
			if !sr.g.HasVertex(v) {
				continue
			}
			switch {
			case sr.g.Degree(v) <= 1:
				if err := sr.log.Push(action.NewDeleteVertex(sr.g, v)); err != nil {
					return nil, err
				}
			case sr.inP[v]:
				continue
			case sr.g.HasLoop(v) || sr.closesCycle(v, forest):
				if err := sr.log.Push(action.NewDeleteVertex(sr.g, v)); err != nil {
					return nil, err
				}
				committed = append(committed, v)
			case sr.g.Degree(v) == 2:
				pair := sr.g.NeighborList(v)
				if sr.inP[pair[0]] && sr.inP[pair[1]] {
					continue
				}
				if err := sr.log.Push(action.NewDeleteVertex(sr.g, v)); err != nil {
					return nil, err
				}
				if err := sr.log.Push(action.NewAddEdge(sr.g, pair[0], pair[1])); err != nil {
					return nil, err
				}
			default:
				continue
			}
			changed = true
		}
	}

	return committed, nil
}

// components joins the endpoints of every G[P] edge.
func (sr *search) components() *unionfind.UnionFind {
	uf := unionfind.New(len(sr.inP))
	for _, e := range sr.g.Edges() {
		if e.From != e.To && sr.inP[e.From] && sr.inP[e.To] {
			uf.Union(e.From, e.To)
		}
	}

	return uf
}

// closesCycle reports whether v has a parallel edge into P or two edges into
// the same component of G[P].
func (sr *search) closesCycle(v int, forest *unionfind.UnionFind) bool {
	seen := make(map[int]bool)
	for _, e := range sr.g.IncidentEdges(v) {
		if !sr.inP[e.To] {
			continue
		}
		if e.Multiplicity >= 2 {
			return true
		}
		root := forest.Find(e.To)
		if seen[root] {
			return true
		}
		seen[root] = true
	}

	return false
}
