// SPDX-License-Identifier: MIT
// File: driver.go
// Role: vertex-by-vertex reinsertion with compression on overflow.
package iterative

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/fvs/action"
	"github.com/katalvlaran/fvs/approx"
	"github.com/katalvlaran/fvs/core"
	"github.com/katalvlaran/fvs/dfs"
	"github.com/katalvlaran/fvs/disjoint"
)

// Driver runs iterative compression. A Driver holds no per-run state and is
// safe for concurrent use on distinct graphs.
type Driver struct {
	opts []Option
	cfg  config
}

// NewDriver returns a Driver configured by opts.
func NewDriver(opts ...Option) *Driver {
	return &Driver{opts: opts, cfg: newConfig(opts)}
}

// Run computes a minimum FVS of g. g is emptied and rebuilt during the run
// and is equal to its input state when Run returns, also on error.
//
// Errors:
//   - disjoint.ErrCancelled: ctx ended; wraps ctx.Err().
//   - ErrResourceExceeded: the solution outgrew MaxCompressionSize.
//   - ErrBudgetExceeded: k passed the WithMaxK limit.
//   - ErrInconsistent: the final solution leaves a cycle.
func (d *Driver) Run(ctx context.Context, g *core.Graph) (res Result, err error) {
	if g == nil {
		return Result{}, fmt.Errorf("iterative: Run: %w", dfs.ErrGraphNil)
	}
	cfg := d.cfg
	order := reinsertionOrder(g, cfg.order)

	log := action.NewStack()
	defer func() {
		if _, uerr := log.Unwind(); uerr != nil {
			res, err = Result{}, errors.Join(err, fmt.Errorf("iterative: Run: restore: %w", uerr))
		}
	}()
	for i := len(order) - 1; i >= 0; i-- {
		if err := log.Push(action.NewDeleteVertex(g, order[i])); err != nil {
			return Result{}, fmt.Errorf("iterative: Run: %w", err)
		}
	}

	solver := disjoint.New(disjoint.WithLogger(cfg.logger), disjoint.WithRecorder(cfg.rec), disjoint.WithStack(log))
	inS := make(map[int]bool)
	var s []int
	k := 0

	for !log.IsEmpty() {
		if cerr := ctx.Err(); cerr != nil {
			return Result{}, fmt.Errorf("iterative: Run: %w: %w", disjoint.ErrCancelled, cerr)
		}
		act, err := log.Pop()
		if err != nil {
			return Result{}, fmt.Errorf("iterative: Run: %w", err)
		}
		del, ok := act.(*action.DeleteVertex)
		if !ok {
			return Result{}, fmt.Errorf("iterative: Run: unexpected %T on the log: %w", act, ErrInconsistent)
		}
		v := del.Vertex()
		res.Reinsertions++

		if !dfs.LiesOnCycle(g, v, func(u int) bool { return !inS[u] }) {
			continue
		}
		s = append(s, v)
		inS[v] = true
		if len(s) <= k {
			continue
		}

		smaller, ok, err := Compress(ctx, g, log, s, solver, d.opts...)
		if err != nil {
			return Result{}, fmt.Errorf("iterative: Run: %w", err)
		}
		if ok {
			res.Compressions++
			s = smaller
			inS = make(map[int]bool, len(s))
			for _, u := range s {
				inS[u] = true
			}
		}
		k = max(k, len(s))
		cfg.logger.Debug("reinserted vertex closes a cycle",
			"vertex", v, "compressed", ok, "solution", len(s), "k", k)
		if cfg.maxK >= 0 && k > cfg.maxK {
			return Result{}, fmt.Errorf("iterative: Run: k %d above %d: %w", k, cfg.maxK, ErrBudgetExceeded)
		}
	}

	if dfs.InducesCycle(g, func(u int) bool { return !inS[u] }) {
		return Result{}, fmt.Errorf("iterative: Run: solution %v: %w", s, ErrInconsistent)
	}
	sort.Ints(s)
	res.Solution = s
	res.K = k

	return res, nil
}

// reinsertionOrder lists the vertices of g in the order they come back.
func reinsertionOrder(g *core.Graph, o Order) []int {
	verts := g.Vertices()
	switch o {
	case OrderDegreeAsc:
		sort.SliceStable(verts, func(i, j int) bool { return g.Degree(verts[i]) < g.Degree(verts[j]) })
	case OrderDegreeDesc:
		sort.SliceStable(verts, func(i, j int) bool { return g.Degree(verts[i]) > g.Degree(verts[j]) })
	case OrderApprox:
		late := make(map[int]bool)
		for _, v := range approx.Feedback(g).Vertices {
			late[v] = true
		}
		sort.SliceStable(verts, func(i, j int) bool { return !late[verts[i]] && late[verts[j]] })
	}

	return verts
}
