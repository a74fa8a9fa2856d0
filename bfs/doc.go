// SPDX-License-Identifier: MIT
// Package bfs provides breadth-first search over a core.Graph and derives
// connected components from it.
//
// BFS(g, start) returns the visit order and each reached vertex's distance
// from start. Components(g) partitions the vertex set, one BFS per
// component.
//
// Neighbors are expanded in ascending ID order, so the visit sequence and
// the component order are fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|): O(V + E) per BFS, plus sorting
// in Components.
package bfs
