// SPDX-License-Identifier: MIT
// Package disjoint solves the disjoint feedback vertex set problem: given a
// multigraph G and a prohibited set P such that G − P is a forest, find an
// FVS of size at most |P|−1 containing no vertex of P.
//
// The solver is a bounded search tree. At each node it reduces the graph to
// closure:
//
//   - a vertex of degree ≤ 1 is deleted;
//   - a vertex outside P carrying a loop, or with two edges into the same
//     component of G[P], is committed to the solution;
//   - a degree-2 vertex outside P with a neighbor outside P is contracted
//     into an edge between its neighbors.
//
// It then picks a vertex v outside P with at most one neighbor outside P and
// branches: first v joins P (budget unchanged), then v is deleted (budget
// minus one). Every mutation is pushed on an action.Stack and reverted on
// the way back, so the graph is never cloned and is restored exactly when
// Solve returns.
//
// Running time is O*(4^k) in the budget k = |P|−1.
package disjoint
