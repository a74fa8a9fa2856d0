// SPDX-License-Identifier: MIT
// Package: fvs/builder
//
// impl_basic.go: Cycle, Path, Star, Wheel and Complete.
//
// Determinism:
//   • Vertices are added in ascending index order.
//   • Edges are emitted in the order documented per constructor.
//
// Minimum FVS sizes, handy as test oracles:
//   • Cycle(n): 1.  Path(n), Star(n): 0.
//   • Wheel(n): 2 (hub plus one rim vertex).
//   • Complete(n): n-2 for n ≥ 2.
package builder

import "github.com/katalvlaran/fvs/core"

// Cycle returns a Constructor that builds the n-vertex cycle C_n (n ≥ 3),
// edges i–(i+1) mod n for i ascending.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return tooFew(methodCycle, "n", n, minCycleNodes)
		}
		if err := addVertices(g, cfg, methodCycle, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(g, cfg, methodCycle, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}

// Path returns a Constructor that builds the path P_n (n ≥ 1), edges i–(i+1).
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return tooFew(methodPath, "n", n, minPathNodes)
		}
		if err := addVertices(g, cfg, methodPath, n); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := addEdge(g, cfg, methodPath, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star returns a Constructor that builds a star with hub at index 0 and
// leaves at indices 1..n-1 (n ≥ 2).
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return tooFew(methodStar, "n", n, minStarNodes)
		}
		if err := addVertices(g, cfg, methodStar, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, methodStar, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel returns a Constructor that builds W_n = C_{n-1} on indices 0..n-2
// plus a hub at index n-1 joined to every rim vertex (n ≥ 4).
// Complexity: O(n).
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return tooFew(methodWheel, "n", n, minWheelNodes)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return err
		}
		hub := n - 1
		for i := 0; i < hub; i++ {
			if err := addEdge(g, cfg, methodWheel, hub, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete returns a Constructor that builds K_n (n ≥ 1), pairs (i, j) with
// i < j in lexicographic order.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return tooFew(methodComplete, "n", n, minCompleteNodes)
		}
		if err := addVertices(g, cfg, methodComplete, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, cfg, methodComplete, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
