package main

import (
	"errors"
	"io"

	"github.com/aretw0/rivercross/internal/presentation/graph"
	"github.com/aretw0/rivercross/pkg/domain"
	"github.com/aretw0/rivercross/pkg/search"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <start-file> <goal-file> [mode]",
	Short: "Export the solution path as a Mermaid diagram",
	Long:  `Solves the puzzle and outputs a Mermaid diagram (graph TD) with one node per state on the path. The mode defaults to the configured strategy.`,
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		selector := cfg.Strategy
		if len(args) == 3 {
			selector = args[2]
		}
		mode, err := search.ParseStrategy(selector)
		if err != nil {
			return err
		}
		cmd.SilenceUsage = true

		start, err := domain.LoadState(args[0])
		if err != nil {
			return err
		}
		goal, err := domain.LoadState(args[1])
		if err != nil {
			return err
		}

		solver, cleanup, err := newSolver(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer cleanup()

		report, err := solver.Solve(cmd.Context(), mode, start, goal)
		if err != nil {
			return err
		}
		if !report.Found {
			return errors.New("no solution found")
		}

		io.WriteString(cmd.OutOrStdout(), graph.GenerateMermaid(report.States, report.Actions))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().Int("max-depth", 0, "Depth ceiling for iddfs (0 = unbounded)")
}
