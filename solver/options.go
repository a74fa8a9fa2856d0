// SPDX-License-Identifier: MIT
package solver

import (
	"log/slog"

	"github.com/katalvlaran/fvs/config"
	"github.com/katalvlaran/fvs/iterative"
	"github.com/katalvlaran/fvs/metrics"
	"github.com/katalvlaran/fvs/randomized"
)

// Option configures a Solver.
type Option func(*Solver)

// WithAlgorithm selects config.AlgorithmIterative (the default) or
// config.AlgorithmRandomized for the per-component search.
func WithAlgorithm(name string) Option {
	return func(s *Solver) { s.algorithm = name }
}

// WithWorkers bounds the number of components solved at once. n ≤ 0 uses
// one worker per CPU.
func WithWorkers(n int) Option {
	return func(s *Solver) { s.workers = n }
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Solver) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRecorder reports solver internals to rec.
func WithRecorder(rec *metrics.Recorder) Option {
	return func(s *Solver) { s.rec = rec }
}

// WithOrder sets the driver's reinsertion order.
func WithOrder(o iterative.Order) Option {
	return func(s *Solver) { s.order = o }
}

// WithForcedVertices enables the forced-vertex rule in Decide, probing at
// most probes vertices per round (≤ 0 probes all).
func WithForcedVertices(enabled bool, probes int) Option {
	return func(s *Solver) { s.forced, s.probes = enabled, probes }
}

// WithWarnSize sets the compression warning threshold.
func WithWarnSize(n int) Option {
	return func(s *Solver) { s.warnSize = n }
}

// WithRandomized configures the Monte-Carlo algorithm.
func WithRandomized(seed int64, repeats int) Option {
	return func(s *Solver) { s.seed, s.repeats = seed, repeats }
}

// FromConfig translates cfg into options. Logger and recorder are not part
// of the configuration and must be passed separately.
func FromConfig(cfg *config.Config) []Option {
	return []Option{
		WithAlgorithm(cfg.Algorithm),
		WithWorkers(cfg.Workers),
		WithOrder(cfg.ReinsertionOrder()),
		WithForcedVertices(cfg.Kernel.ForcedVertices, cfg.Kernel.MaxForcedProbes),
		WithWarnSize(cfg.Compression.WarnSize),
		WithRandomized(cfg.Randomized.Seed, cfg.Randomized.Repeats),
	}
}

func (s *Solver) iterativeOptions() []iterative.Option {
	return []iterative.Option{
		iterative.WithLogger(s.logger),
		iterative.WithRecorder(s.rec),
		iterative.WithOrder(s.order),
		iterative.WithWarnSize(s.warnSize),
	}
}

func (s *Solver) randomizedOptions() []randomized.Option {
	return []randomized.Option{
		randomized.WithLogger(s.logger),
		randomized.WithRecorder(s.rec),
		randomized.WithSeed(s.seed),
		randomized.WithRepeats(s.repeats),
	}
}
