// SPDX-License-Identifier: MIT
// Package action implements reversible graph mutations and the LIFO log that
// replays them backwards.
//
// What:
//
//   - GraphAction: Perform() applies a mutation, Revert() undoes it exactly.
//   - DeleteVertex, DeleteVertices: remove vertices with every incident edge;
//     the edges are captured at Perform time, so an action built early still
//     sees the graph it is eventually applied to.
//   - AddEdge, CapMultiplicity: the edge-level steps of contraction and
//     multiplicity capping.
//   - Stack: Push performs and records, Pop reverts the newest entry and
//     returns it. Subroutine marks fence off the entries a recursive caller
//     owns; Unwind reverts everything above the innermost mark.
//
// Invariants:
//
//   - Reverts happen in reverse perform order. Every entry stores the
//     generation it was pushed at and the stack asserts it on revert.
//   - A subroutine can only be stopped once all of its entries are reverted.
//   - Performing a deletion of an absent vertex is a structural violation.
//
// Errors:
//
//   - ErrStructuralViolation for any of the above, wrapped with the
//     operation that detected it.
//
// The stack holds no package-level state; every solver owns its own Stack.
package action
