// SPDX-License-Identifier: MIT
// Package approx implements the FEEDBACK 2-approximation for weighted
// feedback vertex set of Bafna, Berman and Fujito.
//
// What:
//
//   - Feedback(g, opts...) returns a minimal feedback vertex set of g whose
//     weight is at most twice the optimum. g is never mutated; the algorithm
//     runs on a private clone.
//   - Every vertex weighs 1 unless WithWeight overrides it. The kernel's
//     forced-vertex probe inflates one vertex to 2k+1 and asks whether the
//     approximation still has to pay for it.
//
// Algorithm (one round per iteration until the graph is empty):
//
//  1. Clean up: delete vertices of degree ≤ 1.
//  2. If the graph has a semidisjoint cycle C (every vertex of C has
//     degree 2, with at most one exception), let γ = min weight on C and
//     subtract γ from every vertex of C.
//  3. Otherwise let γ = min w(v)/(d(v)−1) and subtract γ·(d(v)−1) from
//     every vertex.
//  4. Vertices whose weight dropped to zero are pushed on a stack and
//     removed.
//
// The stack is then popped: a vertex is kept only if putting it back into
// the forest G − F would close a cycle (a loop, a parallel edge, or two
// edges into one tree); otherwise it is reinserted.
//
// Complexity: O(V·(V + E)) rounds-times-scan in the worst case; every round
// removes at least one vertex.
package approx
