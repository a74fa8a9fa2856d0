// SPDX-License-Identifier: MIT
// Package fvstest holds reference helpers shared by the package tests:
// an exhaustive minimum-FVS search for small graphs and a solution checker.
package fvstest

import (
	"math/bits"

	"github.com/katalvlaran/fvs/core"
	"github.com/katalvlaran/fvs/dfs"
)

// MaxBruteForce is the largest vertex count BruteForce accepts.
const MaxBruteForce = 20

// IsFVS reports whether removing sol from g leaves a forest.
func IsFVS(g *core.Graph, sol []int) bool {
	drop := make(map[int]bool, len(sol))
	for _, v := range sol {
		drop[v] = true
	}

	return !dfs.InducesCycle(g, func(v int) bool { return !drop[v] })
}

// BruteForce returns a minimum feedback vertex set of g by trying subsets
// in order of increasing size. It returns nil, false when g has more than
// MaxBruteForce vertices.
func BruteForce(g *core.Graph) ([]int, bool) {
	if g.VertexCount() > MaxBruteForce {
		return nil, false
	}

	return search(g, g.Vertices())
}

// BruteForceAvoiding returns a minimum FVS of g containing no vertex of
// avoid. It returns nil, false when g is too large or no such set exists.
func BruteForceAvoiding(g *core.Graph, avoid []int) ([]int, bool) {
	if g.VertexCount() > MaxBruteForce {
		return nil, false
	}
	skip := make(map[int]bool, len(avoid))
	for _, v := range avoid {
		skip[v] = true
	}
	var candidates []int
	for _, v := range g.Vertices() {
		if !skip[v] {
			candidates = append(candidates, v)
		}
	}

	return search(g, candidates)
}

func search(g *core.Graph, candidates []int) ([]int, bool) {
	n := len(candidates)
	for size := 0; size <= n; size++ {
		for mask := uint32(0); mask < 1<<uint(n); mask++ {
			if bits.OnesCount32(mask) != size {
				continue
			}
			sol := make([]int, 0, size)
			for i, v := range candidates {
				if mask&(1<<uint(i)) != 0 {
					sol = append(sol, v)
				}
			}
			if IsFVS(g, sol) {
				return sol, true
			}
		}
	}

	return nil, false
}

// MinimumSize returns the size of a minimum FVS of g, or -1 when g is too
// large for BruteForce.
func MinimumSize(g *core.Graph) int {
	sol, ok := BruteForce(g)
	if !ok {
		return -1
	}

	return len(sol)
}
