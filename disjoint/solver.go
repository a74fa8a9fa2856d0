// SPDX-License-Identifier: MIT
// File: solver.go
// Role: Solver entry point, search tree and result padding.
package disjoint

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/katalvlaran/fvs/action"
	"github.com/katalvlaran/fvs/core"
	"github.com/katalvlaran/fvs/dfs"
	"github.com/katalvlaran/fvs/metrics"
)

// Solver runs the disjoint search. A Solver built WithStack shares that
// stack and must not be used from more than one goroutine.
type Solver struct {
	logger *slog.Logger
	rec    *metrics.Recorder
	log    *action.Stack
}

// New returns a Solver configured by opts.
func New(opts ...Option) *Solver {
	s := &Solver{logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Solve returns an FVS of g with exactly |P|−1 vertices, none of them in
// prohibited. When fewer deletions suffice the answer is padded with the
// smallest remaining vertices outside P, as long as there are enough.
// The result is sorted. g is mutated during the search and restored before
// Solve returns.
//
// Errors:
//   - ErrInfeasible: P is empty, G[P] is cyclic, or no such FVS exists.
//   - ErrPrecondition: G − P has a cycle.
//   - ErrCancelled: ctx ended; wraps ctx.Err().
//   - core.ErrVertexNotFound: a prohibited vertex is not in g.
func (s *Solver) Solve(ctx context.Context, g *core.Graph, prohibited []int) ([]int, error) {
	if g == nil {
		return nil, fmt.Errorf("disjoint: Solve: %w", dfs.ErrGraphNil)
	}
	inP := make(map[int]bool, len(prohibited))
	for _, p := range prohibited {
		if !g.HasVertex(p) {
			return nil, fmt.Errorf("disjoint: Solve: prohibited vertex %d: %w", p, core.ErrVertexNotFound)
		}
		inP[p] = true
	}
	k := len(inP) - 1
	if k < 0 {
		return nil, fmt.Errorf("disjoint: Solve: empty prohibited set: %w", ErrInfeasible)
	}
	if dfs.InducesCycle(g, func(v int) bool { return inP[v] }) {
		return nil, fmt.Errorf("disjoint: Solve: prohibited set induces a cycle: %w", ErrInfeasible)
	}
	if dfs.InducesCycle(g, func(v int) bool { return !inP[v] }) {
		return nil, fmt.Errorf("disjoint: Solve: %w", ErrPrecondition)
	}

	log := s.log
	if log == nil {
		log = action.NewStack()
	}
	sr := &search{ctx: ctx, g: g, log: log, inP: inP, rec: s.rec}
	sol, err := sr.run(k)
	if err != nil {
		return nil, fmt.Errorf("disjoint: Solve: %w", err)
	}
	needed := len(sol)
	sol = pad(g, sol, inP, k)
	s.logger.Debug("disjoint solve",
		"prohibited", len(inP), "needed", needed, "returned", len(sol), "branches", sr.branches)

	return sol, nil
}

// pad extends sol with the smallest vertices outside P and sol until it has
// k elements or none remain.
func pad(g *core.Graph, sol []int, inP map[int]bool, k int) []int {
	taken := make(map[int]bool, len(sol))
	for _, v := range sol {
		taken[v] = true
	}
	for _, v := range g.Vertices() {
		if len(sol) >= k {
			break
		}
		if !inP[v] && !taken[v] {
			sol = append(sol, v)
		}
	}
	sort.Ints(sol)

	return sol
}

// search is the state shared by every node of one Solve call. inP grows by
// one vertex in an exclude branch and shrinks back when the branch returns.
type search struct {
	ctx      context.Context
	g        *core.Graph
	log      *action.Stack
	inP      map[int]bool
	rec      *metrics.Recorder
	branches int
}

// run solves one node with the given budget. Every mutation made below the
// node is reverted before run returns, whatever the outcome.
func (sr *search) run(budget int) (sol []int, err error) {
	if cerr := sr.ctx.Err(); cerr != nil {
		return nil, fmt.Errorf("%w: %w", ErrCancelled, cerr)
	}
	sr.log.StartSubroutine()
	defer func() {
		_, uerr := sr.log.Unwind()
		if uerr == nil {
			uerr = sr.log.StopSubroutine()
		}
		if uerr != nil {
			sol, err = nil, errors.Join(err, uerr)
		}
	}()

	committed, err := sr.reduce()
	if err != nil {
		return nil, err
	}
	budget -= len(committed)
	if budget < 0 {
		return nil, ErrInfeasible
	}

	v, remaining := sr.pick()
	switch {
	case remaining == 0:
		return committed, nil
	case v < 0:
		return nil, ErrPrecondition
	case budget == 0:
		// Minimum degree is 2 after reduction, so a cycle through a vertex
		// outside P remains.
		return nil, ErrInfeasible
	}
	sr.branches++
	sr.rec.DisjointBranch()

	sr.inP[v] = true
	rest, err := sr.run(budget)
	delete(sr.inP, v)
	if err == nil {
		return append(committed, rest...), nil
	}
	if !errors.Is(err, ErrInfeasible) {
		return nil, err
	}

	if err = sr.log.Push(action.NewDeleteVertex(sr.g, v)); err != nil {
		return nil, err
	}
	rest, err = sr.run(budget - 1)
	if err != nil {
		return nil, err
	}

	return append(append(committed, v), rest...), nil
}

// pick returns the branching vertex and the number of vertices outside P.
// The candidate has at most one neighbor outside P; among those the highest
// degree wins, ties to the smallest ID. v is -1 when there is no candidate.
func (sr *search) pick() (v, remaining int) {
	v, best := -1, -1
	for _, u := range sr.g.Vertices() {
		if sr.inP[u] {
			continue
		}
		remaining++
		outside := 0
		for _, w := range sr.g.Neighbors(u) {
			if !sr.inP[w] {
				outside++
			}
		}
		if outside <= 1 && sr.g.Degree(u) > best {
			v, best = u, sr.g.Degree(u)
		}
	}

	return v, remaining
}
