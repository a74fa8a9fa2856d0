// SPDX-License-Identifier: MIT
// Package commands implements the fvs subcommands.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/fvs/config"
	"github.com/katalvlaran/fvs/graphio"
	"github.com/katalvlaran/fvs/metrics"
	"github.com/katalvlaran/fvs/solver"
	"github.com/katalvlaran/fvs/split"
)

const (
	solveCmdUse   = "solve [file]"
	solveCmdShort = "Compute a minimum feedback vertex set of an edge list"
	solveCmdLong  = `Read an undirected multigraph as an edge list (one "u v" pair per line,
'#' starts a comment) from file, or stdin when file is omitted or "-",
and print a minimum feedback vertex set.

With --k the command decides instead whether a feedback vertex set of at
most k vertices exists, and fails with a non-zero status when it does not.`

	flagConfig      = "config"
	flagAlgorithm   = "algorithm"
	flagWorkers     = "workers"
	flagTimeout     = "timeout"
	flagOrder       = "order"
	flagK           = "k"
	flagFormat      = "format"
	flagMetricsFile = "metrics-file"
	flagVerbose     = "verbose"
)

// ErrInfeasible is returned by solve --k when no small enough set exists.
var ErrInfeasible = errors.New("no feedback vertex set within the budget")

type solveFlags struct {
	configPath  string
	algorithm   string
	workers     int
	timeout     time.Duration
	order       string
	k           int
	format      string
	metricsFile string
	verbose     bool
}

// NewSolveCommand creates the solve subcommand.
func NewSolveCommand() *cobra.Command {
	var f solveFlags

	cmd := &cobra.Command{
		Use:   solveCmdUse,
		Short: solveCmdShort,
		Long:  solveCmdLong,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, &f, args)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.configPath, flagConfig, "c", "", "config file (default .fvs.yaml in . or $HOME)")
	fl.StringVarP(&f.algorithm, flagAlgorithm, "a", config.DefaultAlgorithm,
		"search algorithm: "+config.AlgorithmIterative+" or "+config.AlgorithmRandomized)
	fl.IntVarP(&f.workers, flagWorkers, "w", config.DefaultWorkers, "components solved in parallel (0 = one per CPU)")
	fl.DurationVar(&f.timeout, flagTimeout, config.DefaultTimeout, "abort after this long (0 = no limit)")
	fl.StringVar(&f.order, flagOrder, config.DefaultOrder, "reinsertion order: natural, degree-asc, degree-desc or approx")
	fl.IntVar(&f.k, flagK, -1, "decide whether an FVS of at most k vertices exists")
	fl.StringVarP(&f.format, flagFormat, "f", config.DefaultOutputFormat,
		"report format: "+strings.Join(graphio.Formats(), ", "))
	fl.StringVar(&f.metricsFile, flagMetricsFile, "", "write Prometheus metrics to this file")
	fl.BoolVarP(&f.verbose, flagVerbose, "v", false, "debug logging")

	return cmd
}

// overrides returns the config keys set explicitly on the command line.
func overrides(fl *pflag.FlagSet, f *solveFlags) map[string]any {
	out := make(map[string]any)
	if fl.Changed(flagAlgorithm) {
		out["algorithm"] = f.algorithm
	}
	if fl.Changed(flagWorkers) {
		out["workers"] = f.workers
	}
	if fl.Changed(flagTimeout) {
		out["timeout"] = f.timeout
	}
	if fl.Changed(flagOrder) {
		out["order"] = f.order
	}
	if fl.Changed(flagFormat) {
		out["output.format"] = f.format
	}
	if f.verbose {
		out["log.level"] = "debug"
	}

	return out
}

func runSolve(cmd *cobra.Command, f *solveFlags, args []string) error {
	cfg, err := config.Load(f.configPath, overrides(cmd.Flags(), f))
	if err != nil {
		return err
	}
	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	in, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	logger.Debug("graph loaded",
		"vertices", in.Graph.VertexCount(), "edges", in.Graph.EdgeCount(), "committed", len(in.Committed))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	reg := prometheus.NewRegistry()
	s := solver.New(append(solver.FromConfig(cfg),
		solver.WithLogger(logger), solver.WithRecorder(metrics.NewRecorder(reg)))...)

	rep := graphio.Report{
		Algorithm: cfg.Algorithm,
		Vertices:  len(in.Names),
		Edges:     in.Edges,
		Committed: len(in.Committed),
	}
	start := time.Now()
	var sol []int
	if cmd.Flags().Changed(flagK) {
		sol, err = decide(ctx, s, in, f.k)
		rep.Components = len(split.Split(in.Graph))
	} else {
		var res solver.Result
		res, err = s.Solve(ctx, in.Graph)
		sol, rep.Components = res.Solution, res.Components
	}
	if err != nil {
		return err
	}
	rep.Elapsed = time.Since(start)

	sol = append(sol, in.Committed...)
	sort.Ints(sol)
	rep.Size, rep.Solution = len(sol), in.NamesOf(sol)

	if err := graphio.EncodeReport(cmd.OutOrStdout(), rep, cfg.Output.Format); err != nil {
		return err
	}
	if f.metricsFile != "" {
		if err := prometheus.WriteToTextfile(f.metricsFile, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	return nil
}

// decide answers the budgeted question for the whole input. Committed
// vertices consume budget before the solver sees the graph.
func decide(ctx context.Context, s *solver.Solver, in *graphio.Input, k int) ([]int, error) {
	rest := k - len(in.Committed)
	if rest < 0 {
		return nil, fmt.Errorf("k=%d: %w", k, ErrInfeasible)
	}
	d, err := s.Decide(ctx, in.Graph, rest)
	if err != nil {
		return nil, err
	}
	if !d.Feasible {
		return nil, fmt.Errorf("k=%d: %w", k, ErrInfeasible)
	}

	return d.Solution, nil
}

func readInput(cmd *cobra.Command, args []string) (*graphio.Input, error) {
	var r io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		file, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer file.Close()
		r = file
	}

	return graphio.Read(r)
}
