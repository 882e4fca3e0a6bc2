package main

import (
	"fmt"
	"io"
	"os"

	"github.com/aretw0/rivercross/internal/presentation/tui"
	"github.com/aretw0/rivercross/pkg/domain"
	"github.com/aretw0/rivercross/pkg/search"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve <start-file> <goal-file> <mode> [output-file]",
	Short: "Search for a crossing sequence and print the transcript",
	Long: `Reads the start and goal states, runs the search selected by mode (bfs, dfs, iddfs or astar)
and prints one crossing per line followed by the step and expansion counts.

If output-file is given the transcript is also written there.`,
	Args: cobra.RangeArgs(3, 4),
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	addSolveFlags(solveCmd)
}

func addSolveFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("pretty", false, "Render the report as styled markdown")
	cmd.Flags().Int("max-depth", 0, "Depth ceiling for iddfs (0 = unbounded)")
}

func runSolve(cmd *cobra.Command, args []string) error {
	if len(args) < 3 || len(args) > 4 {
		return fmt.Errorf("expected 3 or 4 arguments, got %d", len(args))
	}

	// The mode is checked before any file is touched.
	mode, err := search.ParseStrategy(args[2])
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true

	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}

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

	transcript := report.Transcript()
	if pretty, _ := cmd.Flags().GetBool("pretty"); pretty {
		rendered, err := tui.RenderReport(report.Solution)
		if err != nil {
			return err
		}
		io.WriteString(cmd.OutOrStdout(), rendered)
	} else {
		io.WriteString(cmd.OutOrStdout(), transcript)
	}

	if len(args) == 4 {
		if err := os.WriteFile(args[3], []byte(transcript), 0o644); err != nil {
			return fmt.Errorf("failed to write transcript: %w", err)
		}
	}
	return nil
}
