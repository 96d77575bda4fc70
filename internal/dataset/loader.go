package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Loader reads a worksheet or CSV file into a Table
type Loader struct {
	path  string
	sheet string
}

// NewLoader creates a loader for the given file
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// WithSheet selects a worksheet by name instead of the first one
func (l *Loader) WithSheet(sheet string) *Loader {
	l.sheet = sheet
	return l
}

// Load reads the whole file. Row 0 is the header.
func (l *Loader) Load() (*Table, error) {
	ext := strings.ToLower(filepath.Ext(l.path))

	switch ext {
	case ".xlsx", ".xlsm":
		return l.loadXLSX()
	case ".csv":
		return l.loadCSV()
	default:
		return nil, fmt.Errorf("unsupported file format: %s (supported: .xlsx, .csv)", ext)
	}
}

// LoadColumns reads the file and keeps only the named columns
func (l *Loader) LoadColumns(columns []string) (*Table, error) {
	t, err := l.Load()
	if err != nil {
		return nil, err
	}
	selected, err := t.Select(columns)
	if err != nil {
		return nil, fmt.Errorf("failed to select columns from %s: %w", l.path, err)
	}
	return selected, nil
}

func (l *Loader) loadXLSX() (*Table, error) {
	slog.Debug("Opening workbook", "path", l.path)

	f, err := excelize.OpenFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := l.sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook %s has no sheets", l.path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	t := fromRows(rows)
	slog.Debug("Finished reading workbook", "sheet", sheet, "columns", len(t.Columns), "rows", t.Len())
	return t, nil
}

func (l *Loader) loadCSV() (*Table, error) {
	slog.Debug("Opening CSV file", "path", l.path)

	file, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv file: %w", err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	var rows [][]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse csv: %w", err)
		}
		rows = append(rows, record)
	}

	if len(rows) > 0 && len(rows[0]) > 0 {
		rows[0][0] = strings.TrimPrefix(rows[0][0], "\ufeff")
	}

	t := fromRows(rows)
	slog.Debug("Finished reading CSV file", "columns", len(t.Columns), "rows", t.Len())
	return t, nil
}

func fromRows(rows [][]string) *Table {
	if len(rows) == 0 {
		return NewTable(nil, nil)
	}
	return NewTable(rows[0], rows[1:])
}
