package evalcmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/lehigh-university-libraries/dupeval/internal/config"
	"github.com/lehigh-university-libraries/dupeval/internal/similarity"
	"github.com/spf13/cobra"
)

// ScoreOptions carries the score command's inputs
type ScoreOptions struct {
	NameA      string
	NameB      string
	DescA      string
	DescB      string
	ConfigPath string
}

// NewScoreCmd creates the score command
func NewScoreCmd() *cobra.Command {
	var opts ScoreOptions

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a single name and description pair",
		Long: `Print every component score and the likelihood of duplication for one pair
of records, using the same scoring the evaluate command applies.`,
		Example: `  dupeval score --name-a "Invoice Bot" --name-b "Invoice Bots" \
    --desc-a "Automates invoice entry" --desc-b "Automates invoice processing"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeScore(opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&opts.NameA, "name-a", "", "First record name")
	cmd.Flags().StringVar(&opts.NameB, "name-b", "", "Second record name")
	cmd.Flags().StringVar(&opts.DescA, "desc-a", "", "First record description")
	cmd.Flags().StringVar(&opts.DescB, "desc-b", "", "Second record description")
	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "Path to a YAML or TOML configuration file")

	return cmd
}

func executeScore(opts ScoreOptions, out io.Writer) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	calc := cfg.Settings().Calculator()
	scores := calc.Score(opts.NameA, opts.NameB, opts.DescA, opts.DescB)

	fmt.Fprintln(out, "========================================")
	fmt.Fprintln(out, "Duplicate Likelihood")
	fmt.Fprintln(out, "========================================")
	printFamily(out, "Name", scores.Names)
	printFamily(out, "Description", scores.Descriptions)
	fmt.Fprintln(out, strings.Repeat("-", 40))
	fmt.Fprintf(out, "Likelihood:        %.2f%%\n", scores.Likelihood)

	return nil
}

func printFamily(out io.Writer, label string, f similarity.Family) {
	fmt.Fprintf(out, "%s:\n", label)
	fmt.Fprintf(out, "  SequenceMatcher:  %.2f\n", f.Sequence)
	fmt.Fprintf(out, "  ratio:            %d\n", f.Ratio)
	fmt.Fprintf(out, "  partial_ratio:    %d\n", f.PartialRatio)
	fmt.Fprintf(out, "  token_sort_ratio: %d\n", f.TokenSortRatio)
}
