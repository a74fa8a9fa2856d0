// SPDX-License-Identifier: MIT
// Package builder provides deterministic graph fixtures for tests, benchmarks
// and the `fvs generate` command.
//
// The package offers the following key components:
//
//   - BuildGraph(gopts, bopts, cons...): creates a core.Graph and applies
//     constructors in order.
//   - Topology constructors: Cycle, Path, Star, Wheel, Complete,
//     CompleteBipartite, Grid, RandomSparse, plus Edges for explicit pairs.
//   - Disjoint(cons...): places every constructor on fresh vertex IDs after
//     the largest ID already in the graph, so fixtures compose without clashes.
//   - Options: WithOffset (shift vertex IDs), WithMultiplicity (emit every
//     edge m times), WithSeed / WithRand (stochastic builders).
//
// Vertex IDs:
//
//	Constructors number their vertices 0..n-1 internally and map index i to
//	offset+i. Documented fixed roles (the Star hub, the Wheel hub) are stated
//	per constructor.
//
// Guarantees:
//
//   - Determinism: the same inputs, options, seed and constructor order
//     produce identical graphs.
//   - Option constructors panic on meaningless values; constructors never
//     panic and return sentinel errors wrapped with method context.
//   - Documented complexity per constructor.
package builder
