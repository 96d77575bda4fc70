package evalcmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/lehigh-university-libraries/dupeval/internal/config"
	"github.com/lehigh-university-libraries/dupeval/internal/dataset"
	"github.com/lehigh-university-libraries/dupeval/internal/duplicates"
	"github.com/lehigh-university-libraries/dupeval/internal/report"
	"github.com/spf13/cobra"
)

// EvaluateOptions carries the evaluate command's inputs. Mode and Threshold
// only override the configuration when their Set flag is true.
type EvaluateOptions struct {
	ConfigPath        string
	Mode              string
	ModeSet           bool
	Threshold         int
	ThresholdSet      bool
	RPAFile           string
	CollaborationFile string
	Output            string
	Sheet             string
	NoColor           bool
	Verbose           bool
}

// NewEvaluateCmd creates the evaluate command
func NewEvaluateCmd() *cobra.Command {
	var opts EvaluateOptions

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Find likely duplicate automation ideas",
		Long: `Evaluate the collaboration submissions worklist for likely duplicates.

RPA mode compares every RPA inventory entry against the worklist and reports the
first worklist entry whose likelihood of duplication meets the threshold. COLLAB
mode compares the worklist against itself.

Settings are resolved from flags, then DUPEVAL_* environment variables, then the
--config file, then built-in defaults.`,
		Example: `  # Compare the worklist against itself
  dupeval evaluate -c worklist.xlsx

  # Compare the RPA inventory to the worklist at 70%
  dupeval evaluate -d RPA -r inventory.xlsx -c worklist.xlsx -t 70

  # Write a parquet report with custom column names
  dupeval evaluate -c worklist.xlsx --config dupeval.yaml -o dupes.parquet`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.ModeSet = cmd.Flags().Changed("duplication-type")
			opts.ThresholdSet = cmd.Flags().Changed("threshold")

			setupLogging(opts.Verbose)

			return executeEvaluate(cmd.Context(), cmd.Root().Name(), opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.Mode, "duplication-type", "d", string(duplicates.ModeCollab), "Type of duplication processing to perform - RPA or COLLAB")
	cmd.Flags().IntVarP(&opts.Threshold, "threshold", "t", 50, "Threshold percent for determining duplicates [1-100]")
	cmd.Flags().StringVarP(&opts.RPAFile, "rpa-file", "r", "", "Path to RPA inventory spreadsheet file")
	cmd.Flags().StringVarP(&opts.CollaborationFile, "collaboration-file", "c", "", "Path to collaboration submissions worklist spreadsheet file (required)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output file; format follows the extension (default ~/Documents/<prog>-analysis-YYYYMMDD.xlsx)")
	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "Path to a YAML or TOML configuration file")
	cmd.Flags().StringVar(&opts.Sheet, "sheet", "", "Worksheet to read from xlsx inputs (default first sheet)")
	cmd.Flags().BoolVar(&opts.NoColor, "no-color", false, "Disable colored output")
	cmd.Flags().BoolVar(&opts.Verbose, "verbose", false, "Verbose logging")

	_ = cmd.MarkFlagRequired("collaboration-file")

	return cmd
}

// resolveConfig layers flags over environment over file over defaults and
// validates the result
func resolveConfig(opts EvaluateOptions) (config.Config, duplicates.Mode, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return cfg, "", err
	}

	cfg, err = cfg.ApplyEnv()
	if err != nil {
		return cfg, "", err
	}

	if opts.ModeSet {
		cfg.Mode = opts.Mode
	}
	if opts.ThresholdSet {
		cfg.Threshold = opts.Threshold
	}

	if err := cfg.Validate(); err != nil {
		return cfg, "", err
	}

	mode, err := cfg.ParsedMode()
	if err != nil {
		return cfg, "", err
	}

	if err := duplicates.CheckInputs(mode, opts.RPAFile != ""); err != nil {
		return cfg, "", err
	}

	return cfg, mode, nil
}

func executeEvaluate(ctx context.Context, prog string, opts EvaluateOptions, out io.Writer) error {
	start := time.Now()
	printer := report.NewPrinter(out, opts.NoColor)
	defer func() {
		printer.Elapsed(prog, time.Since(start))
	}()

	runID := uuid.NewString()
	logger := slog.With("run_id", runID)

	cfg, mode, err := resolveConfig(opts)
	if err != nil {
		return err
	}

	for _, path := range []string{opts.CollaborationFile, opts.RPAFile} {
		if path == "" {
			continue
		}
		if _, statErr := os.Stat(path); statErr != nil {
			return fmt.Errorf("input file not found: %s", path)
		}
	}

	printer.Banner(mode)
	logger.Info("Starting evaluation", "mode", mode, "threshold", cfg.Threshold, "collaboration_file", opts.CollaborationFile, "rpa_file", opts.RPAFile)

	collab, err := dataset.NewLoader(opts.CollaborationFile).WithSheet(opts.Sheet).LoadColumns(cfg.Collaboration.Columns())
	if err != nil {
		return fmt.Errorf("failed to load collaboration worklist: %w", err)
	}
	if mode == duplicates.ModeCollab {
		collab = collab.DropFirstColumn()
	}
	candidates := dataset.CandidateRecords(collab, cfg.Collaboration)
	logger.Info("Collaboration worklist loaded", "records", len(candidates))

	var sources []duplicates.SourceRecord
	if mode == duplicates.ModeRPA {
		inventory, err := dataset.NewLoader(opts.RPAFile).WithSheet(opts.Sheet).LoadColumns(cfg.RPA.Columns())
		if err != nil {
			return fmt.Errorf("failed to load RPA inventory: %w", err)
		}
		inventory = dataset.CleanupRPA(inventory, cfg.RPA, cfg.Cleanup)
		sources = dataset.SourceRecords(inventory, cfg.RPA)
		logger.Info("RPA inventory loaded", "records", len(sources))
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	rep, err := duplicates.Evaluate(mode, sources, candidates, cfg.Settings())
	if err != nil {
		return err
	}
	logger.Info("Evaluation complete", "duplicates", rep.Len(), "compared", rep.Compared, "skipped", rep.Skipped, "suppressed", rep.Suppressed)

	printer.Found(rep.Len())

	output := opts.Output
	if output == "" {
		output = config.DefaultOutputPath(prog, time.Now())
	}
	printer.Saving(output)

	if err := report.Write(output, rep); err != nil {
		return err
	}

	printer.Summary(report.Summary{
		RunID:      runID,
		Mode:       mode,
		Threshold:  cfg.Threshold,
		Sources:    len(sources),
		Candidates: len(candidates),
		Output:     output,
		Report:     rep,
	})

	return nil
}
