// SPDX-License-Identifier: MIT
package commands

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fvs/builder"
	"github.com/katalvlaran/fvs/graphio"
)

const (
	generateCmdUse   = "generate <kind>"
	generateCmdShort = "Write a test graph as an edge list"

	defaultGenerateN = 10
	defaultGenerateP = 0.3
)

// ErrUnknownKind is returned for a graph kind generate does not know.
var ErrUnknownKind = errors.New("unknown graph kind")

// ErrBadMultiplicity is returned when --multiplicity is below 1.
var ErrBadMultiplicity = errors.New("multiplicity must be at least 1")

// kinds maps a kind name to its constructor. grid builds an n×n grid.
var kinds = map[string]func(n int, p float64) builder.Constructor{
	"cycle":    func(n int, _ float64) builder.Constructor { return builder.Cycle(n) },
	"path":     func(n int, _ float64) builder.Constructor { return builder.Path(n) },
	"star":     func(n int, _ float64) builder.Constructor { return builder.Star(n) },
	"wheel":    func(n int, _ float64) builder.Constructor { return builder.Wheel(n) },
	"complete": func(n int, _ float64) builder.Constructor { return builder.Complete(n) },
	"grid":     func(n int, _ float64) builder.Constructor { return builder.Grid(n, n) },
	"random":   builder.RandomSparse,
}

func kindNames() []string {
	names := make([]string, 0, len(kinds))
	for k := range kinds {
		names = append(names, k)
	}
	sort.Strings(names)

	return names
}

// NewGenerateCommand creates the generate subcommand.
func NewGenerateCommand() *cobra.Command {
	var (
		n            int
		p            float64
		seed         int64
		multiplicity int
	)

	cmd := &cobra.Command{
		Use:   generateCmdUse,
		Short: generateCmdShort,
		Long:  "Write a graph of the given kind (" + strings.Join(kindNames(), ", ") + ") to stdout.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mk, ok := kinds[strings.ToLower(args[0])]
			if !ok {
				return fmt.Errorf("%q: %w", args[0], ErrUnknownKind)
			}
			if multiplicity < 1 {
				return fmt.Errorf("%d: %w", multiplicity, ErrBadMultiplicity)
			}
			bopts := []builder.BuilderOption{builder.WithSeed(seed), builder.WithMultiplicity(multiplicity)}
			g, err := builder.BuildGraph(nil, bopts, mk(n, p))
			if err != nil {
				return err
			}

			return graphio.WriteEdgeList(cmd.OutOrStdout(), g)
		},
	}

	fl := cmd.Flags()
	fl.IntVarP(&n, "size", "n", defaultGenerateN, "number of vertices (grid side for grid)")
	fl.Float64VarP(&p, "prob", "p", defaultGenerateP, "edge probability for random")
	fl.Int64Var(&seed, "seed", 1, "random seed")
	fl.IntVarP(&multiplicity, "multiplicity", "m", 1, "copies of every edge")

	return cmd
}
