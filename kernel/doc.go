// SPDX-License-Identifier: MIT
// Package kernel shrinks an FVS instance with reduction rules applied to
// closure, tracking the committed vertices and the remaining budget k.
//
// Rules:
//
//	RuleLowDegree    degree ≤ 1: delete v, k unchanged.
//	RuleDegreeTwo    degree 2 with neighbors a, b: delete v, add a–b
//	                 (a = b yields a self-loop).
//	RuleLoop         self-loop on v: commit v, delete v, k −= 1.
//	RuleMultiplicity multiplicity above 2 collapses to 2. A double edge
//	                 does not force either endpoint; it stays a 2-cycle
//	                 for the other rules or the caller's branching.
//	RuleForced       with WithForcedVertices and a budget: probe v with the
//	                 approximation at weight 2k+1; a result of weight
//	                 ≥ 2k+1 proves v lies in every FVS of size ≤ k, so v
//	                 is committed and k −= 1.
//
// Budget checks (WithBudget only): k < 0, or k = 0 with edges left, or, on a
// non-empty graph of minimum degree ≥ 3, |V| ≥ (Δ+1)·k or |E| ≥ 2Δ·k mark the
// state infeasible. With forced vertices enabled an approximation heavier
// than 2k also proves infeasibility. Infeasibility is a flag on State, not an
// error, and stops further rule application. A mutation rejected by the
// graph or the action log is an error: Kernelize stops and returns it.
//
// Committed vertices leave the graph and k is the remaining budget, so a
// forced-vertex probe never counts an earlier commitment twice.
package kernel
