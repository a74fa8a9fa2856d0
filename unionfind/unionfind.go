// SPDX-License-Identifier: MIT
// Package unionfind provides a disjoint-set forest over int vertex IDs with
// path compression and union by rank.
//
// Elements are created lazily: Find on an unknown element makes it a
// singleton. This keeps callers free of an explicit initialization pass when
// they only ever touch a subset of a graph's vertices.
//
// Complexity: O(α(n)) amortized per operation.
package unionfind

// UnionFind is a disjoint-set forest. The zero value is not usable; call New.
type UnionFind struct {
	parent map[int]int
	rank   map[int]int
}

// New returns an empty UnionFind sized for n elements.
func New(n int) *UnionFind {
	return &UnionFind{
		parent: make(map[int]int, n),
		rank:   make(map[int]int, n),
	}
}

// Add registers x as a singleton if it is unknown.
func (uf *UnionFind) Add(x int) {
	if _, ok := uf.parent[x]; !ok {
		uf.parent[x] = x
	}
}

// Contains reports whether x has been registered.
func (uf *UnionFind) Contains(x int) bool {
	_, ok := uf.parent[x]

	return ok
}

// Find returns the representative of x's set.
func (uf *UnionFind) Find(x int) int {
	uf.Add(x)
	// Iterative find with path halving to avoid deep recursion.
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}

	return x
}

// Union merges the sets of x and y and reports whether they were disjoint.
func (uf *UnionFind) Union(x, y int) bool {
	rx, ry := uf.Find(x), uf.Find(y)
	if rx == ry {
		return false
	}
	// Attach smaller-rank tree under larger-rank root.
	switch {
	case uf.rank[rx] < uf.rank[ry]:
		uf.parent[rx] = ry
	case uf.rank[rx] > uf.rank[ry]:
		uf.parent[ry] = rx
	default:
		uf.parent[ry] = rx
		uf.rank[rx]++
	}

	return true
}

// Connected reports whether x and y share a set.
func (uf *UnionFind) Connected(x, y int) bool {
	return uf.Find(x) == uf.Find(y)
}
