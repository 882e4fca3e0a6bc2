package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rivercross [start-file goal-file mode [output-file]]",
	Short: "Rivercross solves the missionaries and cannibals puzzle by state-space search",
	Long: `Rivercross searches for a sequence of boat crossings that turns a start state into a goal state.

Called with arguments it behaves like "rivercross solve". Modes: bfs, dfs, iddfs, astar.`,
	Args:          cobra.MaximumNArgs(4),
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return runSolve(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML configuration file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error (overrides the config file)")
	addSolveFlags(rootCmd)
}
