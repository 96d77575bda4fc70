package report

import (
	"bytes"
	"database/sql"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/lehigh-university-libraries/dupeval/internal/duplicates"
	"github.com/lehigh-university-libraries/dupeval/internal/similarity"
	"github.com/parquet-go/parquet-go"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

func sampleReport(mode duplicates.Mode) *duplicates.Report {
	return &duplicates.Report{
		Mode:      mode,
		Threshold: 50,
		Compared:  3,
		Pairs: []duplicates.Pair{{
			From: duplicates.Party{ID: "1", Name: "Invoice Bot", Status: "Deployed", Division: "CMS", Description: "Automates invoice entry"},
			To:   duplicates.Party{ID: "OPP-2", Name: "Invoice Bots", Phase: "Idea", Division: "FDA", Description: "Automates invoices"},
			Scores: duplicates.Scores{
				Names:        similarity.Family{Sequence: 95.65, Ratio: 96, PartialRatio: 100, TokenSortRatio: 96},
				Descriptions: similarity.Family{Sequence: 80.49, Ratio: 80, PartialRatio: 83, TokenSortRatio: 80},
				Likelihood:   88.89,
			},
		}},
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
		wantErr  bool
	}{
		{path: "out.xlsx", expected: FormatXLSX},
		{path: "OUT.XLSX", expected: FormatXLSX},
		{path: "out.csv", expected: FormatCSV},
		{path: "out.json", expected: FormatJSON},
		{path: "out.yml", expected: FormatYAML},
		{path: "out.parquet", expected: FormatParquet},
		{path: "out.db", expected: FormatSQLite},
		{path: "out.sqlite", expected: FormatSQLite},
		{path: "out.txt", wantErr: true},
		{path: "out", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := DetectFormat(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DetectFormat(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if got != tt.expected {
				t.Errorf("DetectFormat(%q) = %s, want %s", tt.path, got, tt.expected)
			}
		})
	}
}

func TestWrite_XLSX(t *testing.T) {
	for _, mode := range duplicates.Modes {
		t.Run(string(mode), func(t *testing.T) {
			rep := sampleReport(mode)
			path := filepath.Join(t.TempDir(), "nested", "out.xlsx")

			if err := Write(path, rep); err != nil {
				t.Fatalf("Write failed: %v", err)
			}

			f, err := excelize.OpenFile(path)
			if err != nil {
				t.Fatalf("Failed to open workbook: %v", err)
			}
			defer f.Close()

			rows, err := f.GetRows(f.GetSheetList()[0])
			if err != nil {
				t.Fatalf("Failed to read rows: %v", err)
			}
			if len(rows) != 2 {
				t.Fatalf("Expected header plus 1 row, got %d rows", len(rows))
			}
			if !reflect.DeepEqual(rows[0], rep.Columns()) {
				t.Errorf("Header mismatch:\n got %v\nwant %v", rows[0], rep.Columns())
			}
			if last := rows[1][len(rows[1])-1]; last != "88.89" {
				t.Errorf("Expected likelihood 88.89 in last column, got %q", last)
			}
		})
	}
}

func TestWrite_CSV(t *testing.T) {
	rep := sampleReport(duplicates.ModeRPA)
	path := filepath.Join(t.TempDir(), "out.csv")

	if err := Write(path, rep); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open csv: %v", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse csv: %v", err)
	}
	if !reflect.DeepEqual(records[0], duplicates.CrossColumns) {
		t.Errorf("Header mismatch: %v", records[0])
	}

	want := []string{"Invoice Bot", "Deployed", "Invoice Bots", "Idea", "OPP-2", "95.65", "96", "100", "96"}
	if !reflect.DeepEqual(records[1][:len(want)], want) {
		t.Errorf("Row mismatch:\n got %v\nwant %v", records[1][:len(want)], want)
	}
}

func TestWrite_JSON(t *testing.T) {
	rep := sampleReport(duplicates.ModeCollab)
	path := filepath.Join(t.TempDir(), "out.json")

	if err := Write(path, rep); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read json: %v", err)
	}

	var got struct {
		Mode    string   `json:"mode"`
		Columns []string `json:"columns"`
		Rows    [][]any  `json:"rows"`
	}
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Failed to parse json: %v", err)
	}

	if got.Mode != "COLLAB" {
		t.Errorf("Expected mode COLLAB, got %s", got.Mode)
	}
	if !reflect.DeepEqual(got.Columns, duplicates.SelfColumns) {
		t.Errorf("Column mismatch: %v", got.Columns)
	}
	if len(got.Rows) != 1 || got.Rows[0][0] != "1" {
		t.Errorf("Unexpected rows: %v", got.Rows)
	}
}

func TestWrite_YAML(t *testing.T) {
	rep := sampleReport(duplicates.ModeRPA)
	path := filepath.Join(t.TempDir(), "out.yaml")

	if err := Write(path, rep); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read yaml: %v", err)
	}

	var got RunDocument
	if err := yaml.Unmarshal(data, &got); err != nil {
		t.Fatalf("Failed to parse yaml: %v", err)
	}

	if got.Config.Mode != duplicates.ModeRPA || got.Config.Threshold != 50 || got.Config.Compared != 3 {
		t.Errorf("Unexpected config section: %+v", got.Config)
	}
	if got.Statistics.Count != 1 || got.Statistics.Max != 88.89 {
		t.Errorf("Unexpected statistics: %+v", got.Statistics)
	}
	if len(got.Pairs) != 1 || got.Pairs[0].From.Name != "Invoice Bot" {
		t.Errorf("Unexpected pairs: %+v", got.Pairs)
	}
}

func TestWrite_Parquet(t *testing.T) {
	t.Run("RPA", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.parquet")
		if err := Write(path, sampleReport(duplicates.ModeRPA)); err != nil {
			t.Fatalf("Write failed: %v", err)
		}

		rows, err := parquet.ReadFile[CrossRow](path)
		if err != nil {
			t.Fatalf("Failed to read parquet: %v", err)
		}
		if len(rows) != 1 {
			t.Fatalf("Expected 1 row, got %d", len(rows))
		}
		if rows[0].ETAID != "OPP-2" || rows[0].NamePartialRatio != 100 || rows[0].Likelihood != 88.89 {
			t.Errorf("Unexpected row: %+v", rows[0])
		}
	})

	t.Run("COLLAB", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.parquet")
		if err := Write(path, sampleReport(duplicates.ModeCollab)); err != nil {
			t.Fatalf("Write failed: %v", err)
		}

		rows, err := parquet.ReadFile[SelfRow](path)
		if err != nil {
			t.Fatalf("Failed to read parquet: %v", err)
		}
		if len(rows) != 1 || rows[0].FromOpDiv != "CMS" || rows[0].ToOpDiv != "FDA" {
			t.Errorf("Unexpected rows: %+v", rows)
		}
	})
}

func TestWrite_SQLite(t *testing.T) {
	rep := sampleReport(duplicates.ModeRPA)
	path := filepath.Join(t.TempDir(), "out.db")

	// Existing files are replaced
	if err := os.WriteFile(path, []byte("stale"), 0644); err != nil {
		t.Fatalf("Failed to seed file: %v", err)
	}

	if err := Write(path, rep); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	var name string
	var likelihood float64
	var ratio int
	row := db.QueryRow(`SELECT "RPA AutomationName", "Name fuzz.ratio", "Likelyhood of duplication" FROM duplicates`)
	if err := row.Scan(&name, &ratio, &likelihood); err != nil {
		t.Fatalf("Failed to query duplicates: %v", err)
	}
	if name != "Invoice Bot" || ratio != 96 || likelihood != 88.89 {
		t.Errorf("Unexpected row: %s %d %.2f", name, ratio, likelihood)
	}

	var mode string
	var pairs, compared int
	if err := db.QueryRow(`SELECT mode, pairs, compared FROM scan`).Scan(&mode, &pairs, &compared); err != nil {
		t.Fatalf("Failed to query scan: %v", err)
	}
	if mode != "RPA" || pairs != 1 || compared != 3 {
		t.Errorf("Unexpected scan row: %s %d %d", mode, pairs, compared)
	}
}

func TestWrite_EmptyReport(t *testing.T) {
	rep := &duplicates.Report{Mode: duplicates.ModeCollab, Pairs: []duplicates.Pair{}}

	for _, ext := range []string{".xlsx", ".csv", ".json", ".yaml", ".parquet", ".db"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "empty"+ext)
			if err := Write(path, rep); err != nil {
				t.Errorf("Write failed for empty report: %v", err)
			}
		})
	}
}

func TestWrite_Unsupported(t *testing.T) {
	if err := Write(filepath.Join(t.TempDir(), "out.txt"), sampleReport(duplicates.ModeRPA)); err == nil {
		t.Error("Expected error for unsupported format")
	}
}

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true)

	rep := sampleReport(duplicates.ModeRPA)
	p.Banner(duplicates.ModeRPA)
	p.Found(rep.Len())
	p.Saving("/tmp/out.xlsx")
	p.Summary(Summary{RunID: "run-1", Mode: duplicates.ModeRPA, Threshold: 50, Sources: 4, Candidates: 3, Output: "/tmp/out.xlsx", Report: rep})
	p.Elapsed("dupeval", 1500*time.Millisecond)

	out := buf.String()
	for _, want := range []string{
		"evaluating RPA inventory to ETA submissions worklist",
		"1 duplicates found",
		"saving duplicates to /tmp/out.xlsx",
		"run-1",
		"suppressed (already matched)",
		"avg 88.89",
		"end dupeval (elapsed time: 1.5s)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, out)
		}
	}
}
