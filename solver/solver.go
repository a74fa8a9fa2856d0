// SPDX-License-Identifier: MIT
// Package solver ties the pieces together. Solve splits the input into
// independent components, kernelizes each one, runs the configured exact
// search on what is left and verifies the union. Decide answers whether an
// FVS of size at most k exists, using the budgeted kernel first.
//
// Components are solved concurrently, each on its own graph; within a
// component the search is single-threaded.
package solver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/fvs/config"
	"github.com/katalvlaran/fvs/core"
	"github.com/katalvlaran/fvs/dfs"
	"github.com/katalvlaran/fvs/iterative"
	"github.com/katalvlaran/fvs/kernel"
	"github.com/katalvlaran/fvs/metrics"
	"github.com/katalvlaran/fvs/randomized"
	"github.com/katalvlaran/fvs/split"
)

var (
	// ErrVerificationFailed: the computed solution leaves a cycle.
	ErrVerificationFailed = errors.New("solver: verification failed")

	// ErrUnknownAlgorithm: WithAlgorithm named no known algorithm.
	ErrUnknownAlgorithm = errors.New("solver: unknown algorithm")
)

// Solver holds configuration only and is safe for concurrent use.
type Solver struct {
	algorithm string
	workers   int
	logger    *slog.Logger
	rec       *metrics.Recorder
	order     iterative.Order
	forced    bool
	probes    int
	warnSize  int
	seed      int64
	repeats   int
}

// New returns a Solver configured by opts.
func New(opts ...Option) *Solver {
	s := &Solver{
		algorithm: config.AlgorithmIterative,
		logger:    slog.Default(),
		forced:    config.DefaultForcedVertices,
		probes:    config.DefaultMaxForcedProbes,
		warnSize:  config.DefaultWarnSize,
		seed:      config.DefaultSeed,
		repeats:   config.DefaultRepeats,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Result is the outcome of Solve.
type Result struct {
	// Solution is a minimum FVS of the input, sorted.
	Solution []int
	// Components counts the independent parts that needed solving.
	Components int
	// Kernelized counts solution vertices committed by the kernel.
	Kernelized int
	// Elapsed is the wall time of the call.
	Elapsed time.Duration
}

// Solve computes a minimum FVS of g. g is not modified.
func (s *Solver) Solve(ctx context.Context, g *core.Graph) (Result, error) {
	start := time.Now()
	if g == nil {
		return Result{}, fmt.Errorf("solver: Solve: %w", dfs.ErrGraphNil)
	}
	if err := s.checkAlgorithm(); err != nil {
		return Result{}, fmt.Errorf("solver: Solve: %w", err)
	}
	parts := split.Split(g)
	sols := make([][]int, len(parts))
	kernelized := make([]int, len(parts))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(s.limit())
	for i, part := range parts {
		eg.Go(func() error {
			t0 := time.Now()
			n, m := part.VertexCount(), part.EdgeCount()
			sol, committed, err := s.solveComponent(egCtx, part)
			if err != nil {
				return fmt.Errorf("component %d: %w", i, err)
			}
			sols[i], kernelized[i] = sol, committed
			elapsed := time.Since(t0)
			s.rec.ComponentSolved(elapsed)
			s.logger.Info("component solved",
				"component", i, "vertices", n, "edges", m,
				"kernelized", committed, "solution", len(sol), "elapsed", elapsed)

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Result{}, fmt.Errorf("solver: Solve: %w", err)
	}

	res := Result{Components: len(parts)}
	for i := range sols {
		res.Solution = append(res.Solution, sols[i]...)
		res.Kernelized += kernelized[i]
	}
	sort.Ints(res.Solution)
	if err := Verify(g, res.Solution); err != nil {
		return Result{}, fmt.Errorf("solver: Solve: %w", err)
	}
	res.Elapsed = time.Since(start)

	return res, nil
}

// solveComponent kernelizes part in place and searches the remainder.
func (s *Solver) solveComponent(ctx context.Context, part *core.Graph) ([]int, int, error) {
	st := kernel.NewState(part, 0)
	kres, err := kernel.Kernelize(st)
	if err != nil {
		return nil, 0, err
	}
	s.record(kres)
	committed := len(st.Solution)
	if st.Graph.EdgeCount() == 0 {
		return st.Solution, committed, nil
	}
	rest, err := s.search(ctx, st.Graph, -1)
	if err != nil {
		return nil, 0, err
	}

	return append(st.Solution, rest...), committed, nil
}

// search runs the configured algorithm on g. maxK ≥ 0 lets the iterative
// driver stop once the optimum is known to exceed it.
func (s *Solver) search(ctx context.Context, g *core.Graph, maxK int) ([]int, error) {
	switch s.algorithm {
	case config.AlgorithmIterative, "":
		opts := s.iterativeOptions()
		if maxK >= 0 {
			opts = append(opts, iterative.WithMaxK(maxK))
		}
		res, err := iterative.NewDriver(opts...).Run(ctx, g)

		return res.Solution, err
	case config.AlgorithmRandomized:
		res, err := randomized.New(s.randomizedOptions()...).Solve(ctx, g)

		return res.Solution, err
	default:
		return nil, fmt.Errorf("%q: %w", s.algorithm, ErrUnknownAlgorithm)
	}
}

func (s *Solver) checkAlgorithm() error {
	switch s.algorithm {
	case config.AlgorithmIterative, config.AlgorithmRandomized, "":
		return nil
	}

	return fmt.Errorf("%q: %w", s.algorithm, ErrUnknownAlgorithm)
}

func (s *Solver) record(res kernel.Result) {
	for r, n := range res.Applied {
		s.rec.RuleApplied(r.String(), n)
	}
}

func (s *Solver) limit() int {
	if s.workers > 0 {
		return s.workers
	}

	return runtime.GOMAXPROCS(0)
}

// Decision is the outcome of Decide.
type Decision struct {
	// Feasible reports whether g has an FVS of size at most k.
	Feasible bool
	// Solution is such an FVS when Feasible, sorted.
	Solution []int
}

// Decide reports whether g has an FVS with at most k vertices. The budgeted
// kernel runs first and may settle the question alone; otherwise the
// configured search runs on the kernel. g is not modified.
func (s *Solver) Decide(ctx context.Context, g *core.Graph, k int) (Decision, error) {
	if g == nil {
		return Decision{}, fmt.Errorf("solver: Decide: %w", dfs.ErrGraphNil)
	}
	if err := s.checkAlgorithm(); err != nil {
		return Decision{}, fmt.Errorf("solver: Decide: %w", err)
	}
	st := kernel.NewState(g.Clone(), k)
	opts := []kernel.Option{kernel.WithBudget()}
	if s.forced {
		opts = append(opts, kernel.WithForcedVertices(), kernel.WithMaxForcedProbes(s.probes))
	}
	kres, err := kernel.Kernelize(st, opts...)
	if err != nil {
		return Decision{}, fmt.Errorf("solver: Decide: %w", err)
	}
	s.record(kres)
	s.logger.Debug("budgeted kernel",
		"feasible", st.Feasible, "committed", len(st.Solution), "remaining_k", st.K,
		"vertices", st.Graph.VertexCount(), "edges", st.Graph.EdgeCount())
	if !st.Feasible {
		return Decision{}, nil
	}

	sol := st.Solution
	if st.Graph.EdgeCount() > 0 {
		rest, err := s.search(ctx, st.Graph, st.K)
		switch {
		case errors.Is(err, iterative.ErrBudgetExceeded):
			return Decision{}, nil
		case err != nil:
			return Decision{}, fmt.Errorf("solver: Decide: %w", err)
		case len(rest) > st.K:
			return Decision{}, nil
		}
		sol = append(sol, rest...)
	}
	sort.Ints(sol)
	if err := Verify(g, sol); err != nil {
		return Decision{}, fmt.Errorf("solver: Decide: %w", err)
	}

	return Decision{Feasible: true, Solution: sol}, nil
}

// Verify returns ErrVerificationFailed unless removing sol from g leaves a
// forest.
func Verify(g *core.Graph, sol []int) error {
	drop := make(map[int]bool, len(sol))
	for _, v := range sol {
		drop[v] = true
	}
	if cycle := dfs.FindCycle(g, func(v int) bool { return !drop[v] }); cycle != nil {
		return fmt.Errorf("cycle %v survives: %w", cycle, ErrVerificationFailed)
	}

	return nil
}
