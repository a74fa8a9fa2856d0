// SPDX-License-Identifier: MIT
// Package randomized implements the one-sided Monte-Carlo FVS algorithm.
//
// One trial with parameter k kernelizes the graph with budget k, then picks
// an edge uniformly at random (parallel edges counted separately), deletes
// one of its endpoints chosen by a fair coin, and repeats until the graph is
// empty (success) or the budget is exhausted (failure). On a reduced graph
// at least half of the edges touch any fixed minimum FVS, so a trial on a
// yes-instance succeeds with probability at least 4^-k. Repeats·4^k trials
// per k make a miss unlikely; a reported solution is always valid.
//
// Trials run on one working copy. Every mutation goes through an
// action.Stack and is unwound when the trial ends.
package randomized

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"sort"

	"github.com/katalvlaran/fvs/action"
	"github.com/katalvlaran/fvs/core"
	"github.com/katalvlaran/fvs/kernel"
	"github.com/katalvlaran/fvs/metrics"
)

// DefaultRepeats bounds the miss probability per k by e^-28, about 1e-12.
const DefaultRepeats = 28

// ErrNoSolution: every k up to the vertex count failed. Only possible with
// a repeat count so low that even certain trials are skipped.
var ErrNoSolution = errors.New("randomized: no solution found")

// Option configures a Solver.
type Option func(*Solver)

// WithSeed fixes the random streams. 0 selects the default seed.
func WithSeed(seed int64) Option {
	return func(s *Solver) { s.seed = seed }
}

// WithRepeats sets the trial multiplier. Values < 1 keep DefaultRepeats.
func WithRepeats(n int) Option {
	return func(s *Solver) {
		if n >= 1 {
			s.repeats = n
		}
	}
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Solver) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRecorder reports the initial kernelization to rec.
func WithRecorder(rec *metrics.Recorder) Option {
	return func(s *Solver) { s.rec = rec }
}

// Solver runs the Monte-Carlo search. It holds only configuration and is
// safe for concurrent use.
type Solver struct {
	seed    int64
	repeats int
	logger  *slog.Logger
	rec     *metrics.Recorder
}

// New returns a Solver configured by opts.
func New(opts ...Option) *Solver {
	s := &Solver{repeats: DefaultRepeats, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Result is the outcome of Solve.
type Result struct {
	// Solution is an FVS of the input, sorted.
	Solution []int
	// K is the parameter of the successful trial.
	K int
	// Trials counts trials over all values of k.
	Trials int
}

// Solve returns an FVS of g, minimum with high probability. g is not
// modified.
func (s *Solver) Solve(ctx context.Context, g *core.Graph) (Result, error) {
	if g == nil {
		return Result{}, fmt.Errorf("randomized: Solve: nil graph")
	}
	base := kernel.NewState(g.Clone(), 0)
	kres, err := kernel.Kernelize(base)
	if err != nil {
		return Result{}, fmt.Errorf("randomized: Solve: %w", err)
	}
	for r, n := range kres.Applied {
		s.rec.RuleApplied(r.String(), n)
	}

	var res Result
	if base.Graph.EdgeCount() == 0 {
		res.Solution = sorted(base.Solution)

		return res, nil
	}

	master := rngFromSeed(s.seed)
	log := action.NewStack()
	for k := 0; k <= base.Graph.VertexCount(); k++ {
		rng := deriveRNG(master, uint64(k))
		n := trials(s.repeats, k)
		s.logger.Debug("randomized round", "k", k, "trials", n)
		for j := int64(0); j < n; j++ {
			if err := ctx.Err(); err != nil {
				return Result{}, fmt.Errorf("randomized: Solve: %w", err)
			}
			res.Trials++
			sol, ok, err := trial(base.Graph, k, log, rng)
			if err != nil {
				return Result{}, fmt.Errorf("randomized: Solve: %w", err)
			}
			if ok {
				res.Solution = sorted(append(append([]int(nil), base.Solution...), sol...))
				res.K = k

				return res, nil
			}
		}
	}

	return Result{}, fmt.Errorf("randomized: Solve: %w", ErrNoSolution)
}

// trials returns repeats·4^k, saturated at MaxInt64.
func trials(repeats, k int) int64 {
	if k >= 31 {
		return math.MaxInt64
	}
	n := int64(repeats) << (2 * uint(k))
	if n < 0 || n>>(2*uint(k)) != int64(repeats) {
		return math.MaxInt64
	}

	return n
}

// trial runs one Monte-Carlo descent on g with budget k and restores g.
func trial(g *core.Graph, k int, log *action.Stack, rng *rand.Rand) (sol []int, ok bool, err error) {
	defer func() {
		if _, uerr := log.Unwind(); uerr != nil {
			sol, ok, err = nil, false, uerr
		}
	}()

	st := kernel.NewState(g, k)
	for {
		if _, err := kernel.Kernelize(st, kernel.WithBudget(), kernel.WithStack(log)); err != nil {
			return nil, false, err
		}
		if !st.Feasible {
			return nil, false, nil
		}
		if g.EdgeCount() == 0 {
			return st.Solution, true, nil
		}
		v := randomEndpoint(g, rng)
		if err := log.Push(action.NewDeleteVertex(g, v)); err != nil {
			return nil, false, err
		}
		st.Solution = append(st.Solution, v)
		st.K--
	}
}

// randomEndpoint picks an edge uniformly from the edge multiset of g and
// returns one of its endpoints with equal probability. g has an edge.
func randomEndpoint(g *core.Graph, rng *rand.Rand) int {
	r := rng.Intn(g.EdgeCount())
	for _, e := range g.Edges() {
		if r < e.Multiplicity {
			if rng.Intn(2) == 0 {
				return e.From
			}

			return e.To
		}
		r -= e.Multiplicity
	}

	panic("randomized: edge count out of sync with the edge list")
}

func sorted(vs []int) []int {
	out := append([]int(nil), vs...)
	sort.Ints(out)

	return out
}
