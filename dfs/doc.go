// SPDX-License-Identifier: MIT
// Package dfs answers cycle questions on a core.Graph with depth-first search.
//
// What:
//
//   - FindCycle: returns the vertices of one cycle of G[allowed], or nil.
//   - HasCycle / IsForest: whole-graph acyclicity.
//   - InducesCycle: whether the subgraph induced by a vertex predicate is cyclic.
//   - LiesOnCycle: whether a given vertex closes a cycle through itself
//     inside G[allowed ∪ {v}].
//
// Multigraph semantics:
//
//   - A self-loop is a cycle of length 1.
//   - Two parallel edges form a cycle of length 2.
//
// Key Types & Constants:
//
//   - White, Gray, Black: visitation markers of the three-colour DFS.
//   - ErrGraphNil: returned by the checked entry points on a nil graph.
//
// Complexity:
//
//   - FindCycle, InducesCycle: O(V + E) time, O(V) memory.
//   - LiesOnCycle: O(V + E α(V)) via a union-find labelling of components.
//
// Determinism:
//
//   - Roots and neighbors are visited in ascending ID order, so FindCycle
//     returns the same cycle for the same graph.
package dfs
