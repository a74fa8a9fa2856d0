// Package fvs computes minimum feedback vertex sets of undirected multigraphs:
// the fewest vertices whose removal leaves a forest. Self-loops and parallel
// edges are first-class, since a loop or a doubled edge is already a cycle.
//
// What is inside?
//
//	• Graph primitives: int-keyed multigraph with edge multiplicities
//	• Reversible mutations: an action log with nested subroutines
//	• Kernelization: degree, loop, multi-edge and budget rules
//	• Exact search: iterative compression over a disjoint-FVS branching
//	• Monte-Carlo search: randomized edge sampling on the kernel
//	• Decomposition: bridges and connected components solved in parallel
//	• I/O: edge-list reader and text/YAML/JSON reports
//
// Packages:
//
//	core/        Graph, Edge and the sentinel errors
//	action/      reversible graph mutations and the undo Stack
//	dfs/, bfs/   cycle queries and connected components
//	unionfind/   disjoint sets used by the disjoint search
//	approx/      fast approximate FVS for orderings and tests
//	kernel/      reduction rules, budgeted and unbudgeted
//	disjoint/    FVS disjoint from a prohibited set
//	iterative/   iterative compression driver and Compress
//	randomized/  Monte-Carlo algorithm
//	split/       bridges, trimming and component split
//	solver/      end-to-end Solve and Decide
//	graphio/     edge-list input and reports
//	config/      viper-backed configuration
//	metrics/     Prometheus counters for solver internals
//	cmd/fvs      command line front end
//
// Quick ASCII example:
//
//	    1───2
//	     \ /
//	      0
//	     / \
//	    3───4
//
// Both triangles pass through 0, so {0} is the minimum FVS.
//
//	go install github.com/katalvlaran/fvs/cmd/fvs@latest
//	fvs generate wheel -n 8 | fvs solve
package fvs
