package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/lehigh-university-libraries/dupeval/internal/duplicates"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Sheet1"

func writeXLSX(path string, rep *duplicates.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	header := make([]any, 0, len(rep.Columns()))
	for _, col := range rep.Columns() {
		header = append(header, col)
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, row := range rep.Rows() {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	return f.SaveAs(path)
}

func writeCSV(path string, rep *duplicates.Report) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(rep.Columns()); err != nil {
		return err
	}
	for _, row := range rep.Rows() {
		record := make([]string, len(row))
		for i, v := range row {
			record[i] = formatCell(v)
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	return file.Close()
}

func formatCell(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}

type jsonTable struct {
	Mode      duplicates.Mode `json:"mode"`
	Threshold int             `json:"threshold"`
	Columns   []string        `json:"columns"`
	Rows      [][]any         `json:"rows"`
}

func writeJSON(path string, rep *duplicates.Report) error {
	data, err := json.MarshalIndent(jsonTable{
		Mode:      rep.Mode,
		Threshold: rep.Threshold,
		Columns:   rep.Columns(),
		Rows:      rep.Rows(),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
