// SPDX-License-Identifier: MIT
// Package main provides the entry point for the fvs CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fvs/cmd/fvs/commands"
)

// Set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "fvs",
		Short: "Minimum feedback vertex sets of undirected multigraphs",
		Long: `fvs computes a minimum feedback vertex set of an undirected multigraph
read as an edge list, or decides whether one of size at most k exists.

Commands:
  solve      Solve an edge list from a file or stdin
  generate   Write a test graph as an edge list`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.NewSolveCommand())
	rootCmd.AddCommand(commands.NewGenerateCommand())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "fvs %s\n", version)
		},
	}
}
