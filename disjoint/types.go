// SPDX-License-Identifier: MIT
package disjoint

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/fvs/action"
	"github.com/katalvlaran/fvs/metrics"
)

var (
	// ErrInfeasible: no FVS of size ≤ |P|−1 avoids P, or G[P] is cyclic.
	ErrInfeasible = errors.New("disjoint: infeasible")

	// ErrCancelled: the context ended during the search. The context error
	// is wrapped alongside it.
	ErrCancelled = errors.New("disjoint: cancelled")

	// ErrPrecondition: G − P is not a forest.
	ErrPrecondition = errors.New("disjoint: graph minus prohibited set is not a forest")
)

// Option configures a Solver.
type Option func(*Solver)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Solver) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRecorder reports branching nodes to rec.
func WithRecorder(rec *metrics.Recorder) Option {
	return func(s *Solver) { s.rec = rec }
}

// WithStack makes the solver record its mutations on log, nested inside a
// subroutine, instead of on a private stack per call. Use it when the caller
// already holds deletions on log for the same graph.
func WithStack(log *action.Stack) Option {
	return func(s *Solver) { s.log = log }
}
