package report

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/lehigh-university-libraries/dupeval/internal/duplicates"
)

// Format is an output file format
type Format string

const (
	FormatXLSX    Format = "xlsx"
	FormatCSV     Format = "csv"
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatParquet Format = "parquet"
	FormatSQLite  Format = "sqlite"
)

// DetectFormat maps a file extension to a Format
func DetectFormat(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx":
		return FormatXLSX, nil
	case ".csv":
		return FormatCSV, nil
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".parquet":
		return FormatParquet, nil
	case ".sqlite", ".db":
		return FormatSQLite, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s (supported: .xlsx, .csv, .json, .yaml, .parquet, .sqlite, .db)", ext)
	}
}

// Write saves the report to path, choosing the format from its extension.
// Missing parent directories are created.
func Write(path string, rep *duplicates.Report) error {
	format, err := DetectFormat(path)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	slog.Debug("Writing report", "path", path, "format", format, "pairs", rep.Len())

	switch format {
	case FormatXLSX:
		err = writeXLSX(path, rep)
	case FormatCSV:
		err = writeCSV(path, rep)
	case FormatJSON:
		err = writeJSON(path, rep)
	case FormatYAML:
		err = writeYAML(path, rep)
	case FormatParquet:
		err = writeParquet(path, rep)
	case FormatSQLite:
		err = writeSQLite(path, rep)
	}
	if err != nil {
		return fmt.Errorf("failed to write %s report: %w", format, err)
	}

	return nil
}
