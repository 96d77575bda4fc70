package evalcmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/lehigh-university-libraries/dupeval/internal/config"
	"github.com/lehigh-university-libraries/dupeval/internal/dataset"
	"github.com/spf13/cobra"
)

// InspectOptions carries the inspect command's inputs
type InspectOptions struct {
	Path        string
	Kind        string
	ConfigPath  string
	Sheet       string
	Limit       int
	Interactive bool
}

// NewInspectCmd creates the inspect command
func NewInspectCmd() *cobra.Command {
	var opts InspectOptions

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Inspect an input spreadsheet as the evaluator sees it",
		Long: `Load an RPA inventory or collaboration worklist, select the configured
columns, apply the same cleanup the evaluator does, and print the rows.

This is useful for checking column names and cleanup before running an
evaluation.`,
		Example: `  # Show the first 10 worklist rows
  dupeval inspect --file worklist.xlsx

  # Step through a cleaned RPA inventory one row at a time
  dupeval inspect --file inventory.xlsx --kind rpa --interactive

  # Show every row
  dupeval inspect --file worklist.csv --limit 0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Path == "" {
				return fmt.Errorf("--file is required")
			}

			// Create a context that gets canceled on an interrupt signal (Ctrl+C)
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return executeInspect(ctx, opts, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&opts.Path, "file", "", "Path to an xlsx or csv input file (required)")
	cmd.Flags().StringVar(&opts.Kind, "kind", "collab", "Input kind: collab or rpa")
	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "Path to a YAML or TOML configuration file")
	cmd.Flags().StringVar(&opts.Sheet, "sheet", "", "Worksheet to read from xlsx inputs (default first sheet)")
	cmd.Flags().IntVar(&opts.Limit, "limit", 10, "Number of rows to show (0 for all)")
	cmd.Flags().BoolVar(&opts.Interactive, "interactive", false, "Pause after each row (press Enter to continue)")

	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func loadForInspect(opts InspectOptions) (*dataset.Table, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	loader := dataset.NewLoader(opts.Path).WithSheet(opts.Sheet)

	switch strings.ToLower(opts.Kind) {
	case "rpa":
		t, err := loader.LoadColumns(cfg.RPA.Columns())
		if err != nil {
			return nil, err
		}
		return dataset.CleanupRPA(t, cfg.RPA, cfg.Cleanup), nil
	case "collab", "collaboration":
		return loader.LoadColumns(cfg.Collaboration.Columns())
	default:
		return nil, fmt.Errorf("unknown input kind %q (expected collab or rpa)", opts.Kind)
	}
}

func executeInspect(ctx context.Context, opts InspectOptions, in io.Reader, out io.Writer) error {
	table, err := loadForInspect(opts)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", opts.Path, err)
	}

	fmt.Fprintf(out, "Loaded %d rows from %s\n", table.Len(), opts.Path)
	fmt.Fprintf(out, "Columns: %s\n", strings.Join(table.Columns, " | "))
	fmt.Fprintln(out, strings.Repeat("=", 80))

	n := table.Len()
	if opts.Limit > 0 && opts.Limit < n {
		n = opts.Limit
	}

	reader := bufio.NewReader(in)
	width := 0
	for _, col := range table.Columns {
		width = max(width, len(col))
	}

	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			fmt.Fprintln(out, "\nInspection interrupted.")
			return nil
		default:
		}

		fmt.Fprintf(out, "ROW %d/%d\n", i+1, table.Len())
		fmt.Fprintln(out, strings.Repeat("-", 80))
		for _, col := range table.Columns {
			fmt.Fprintf(out, "%-*s  %s\n", width+1, col+":", table.Get(i, col))
		}
		fmt.Fprintln(out)

		if opts.Interactive && i < n-1 {
			fmt.Fprint(out, "Press Enter to continue to next row (or Ctrl+C to quit)...")

			inputCh := make(chan struct{})
			go func() {
				_, _ = reader.ReadString('\n')
				close(inputCh)
			}()

			select {
			case <-ctx.Done():
				fmt.Fprintln(out, "\nInspection interrupted.")
				return nil
			case <-inputCh:
				fmt.Fprintln(out)
			}
		}
	}

	if n < table.Len() {
		fmt.Fprintf(out, "[... %d more rows not shown ...]\n", table.Len()-n)
	}

	return nil
}
