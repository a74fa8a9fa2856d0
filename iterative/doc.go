// SPDX-License-Identifier: MIT
// Package iterative computes a minimum feedback vertex set by iterative
// compression.
//
// The Driver deletes every vertex through an action.Stack and reinserts them
// one at a time. It keeps a solution S of the graph built so far: a
// reinserted vertex joins S when it closes a cycle in G − S, and whenever S
// outgrows the current parameter k, Compress looks for an FVS of size
// |S|−1. Compress tries every split of S into a deleted part Z and a
// prohibited part P = S \ Z, walking the subsets in Gray-code order, and
// hands (G − Z, P) to the disjoint solver. If no split works, S is minimum
// and k grows to |S|.
//
// Complexity: O*(2^k · 4^k) = O*(8^k) with polynomial overhead per
// reinsertion.
package iterative
