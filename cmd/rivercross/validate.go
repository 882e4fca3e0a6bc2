package main

import (
	"fmt"

	"github.com/aretw0/rivercross/pkg/domain"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <state-file>...",
	Short: "Check state files for format and safety",
	Long:  `Decodes each state file and reports whether it is well formed and whether both banks are safe.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		out := cmd.OutOrStdout()

		failed := 0
		for _, path := range args {
			state, err := domain.LoadState(path)
			switch {
			case err != nil:
				failed++
				fmt.Fprintf(out, "❌ %v\n", err)
			case !state.IsValid():
				failed++
				fmt.Fprintf(out, "❌ %s: cannibals outnumber missionaries\n", path)
			default:
				fmt.Fprintf(out, "✅ %s\n", path)
			}
		}

		if failed > 0 {
			return fmt.Errorf("validation failed: %d of %d states invalid", failed, len(args))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
