package cmd

import (
	"github.com/joho/godotenv"
	"github.com/lehigh-university-libraries/dupeval/internal/evalcmd"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dupeval",
		Short: "Duplicate detection for automation idea worklists",
		Long: `Dupeval scores how likely two automation ideas are to be the same idea.

It compares an RPA inventory against a collaboration submissions worklist, or a
worklist against itself, and writes the likely duplicates to a spreadsheet.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	// Add subcommands
	cmd.AddCommand(evalcmd.NewEvaluateCmd())
	cmd.AddCommand(evalcmd.NewInspectCmd())
	cmd.AddCommand(evalcmd.NewScoreCmd())

	return cmd
}
