package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lehigh-university-libraries/dupeval/internal/duplicates"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config should validate: %v", err)
	}
	if cfg.Threshold != 50 {
		t.Errorf("Expected default threshold 50, got %d", cfg.Threshold)
	}
	if cfg.Mode != "COLLAB" {
		t.Errorf("Expected default mode COLLAB, got %s", cfg.Mode)
	}
	if cols := cfg.Collaboration.Columns(); len(cols) != 6 || cols[0] != "Assigned to" {
		t.Errorf("Unexpected collaboration columns: %v", cols)
	}
	if cols := cfg.RPA.Columns(); len(cols) != 5 || cols[3] != "Automation Name" {
		t.Errorf("Unexpected RPA columns: %v", cols)
	}
}

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dupeval.yaml")
	content := `mode: rpa
threshold: 75
rpa:
  name: Bot Name
scoring:
  description_sentinels: ["TBD", "N/A"]
  self_to_description_from_inner: true
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Threshold != 75 {
		t.Errorf("Expected threshold 75, got %d", cfg.Threshold)
	}
	if mode, _ := cfg.ParsedMode(); mode != duplicates.ModeRPA {
		t.Errorf("Expected RPA mode, got %s", cfg.Mode)
	}
	if cfg.RPA.Name != "Bot Name" {
		t.Errorf("Expected overridden RPA name column, got %q", cfg.RPA.Name)
	}
	// Unset keys keep their defaults
	if cfg.RPA.Description != "Short Project Description" {
		t.Errorf("Expected default RPA description column, got %q", cfg.RPA.Description)
	}

	settings := cfg.Settings()
	if len(settings.Sentinels) != 2 || !settings.ToDescriptionFromInner {
		t.Errorf("Unexpected scanner settings: %+v", settings)
	}
}

func TestLoad_TOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dupeval.toml")
	content := `threshold = 90

[collaboration]
id = "Opp ID"

[cleanup]
default_status = "Live"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Threshold != 90 {
		t.Errorf("Expected threshold 90, got %d", cfg.Threshold)
	}
	if cfg.Collaboration.ID != "Opp ID" {
		t.Errorf("Expected overridden ID column, got %q", cfg.Collaboration.ID)
	}
	if cfg.Collaboration.Name != "Collaboration Opportunity Name" {
		t.Errorf("Expected default name column, got %q", cfg.Collaboration.Name)
	}
	if cfg.Cleanup.DefaultStatus != "Live" {
		t.Errorf("Expected default status Live, got %q", cfg.Cleanup.DefaultStatus)
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}

	unsupported := filepath.Join(dir, "dupeval.ini")
	if err := os.WriteFile(unsupported, []byte("threshold=1"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	if _, err := Load(unsupported); err == nil {
		t.Error("Expected error for unsupported format")
	}

	cfg, err := Load("")
	if err != nil || cfg.Threshold != 50 {
		t.Errorf("Expected defaults for empty path, got %+v, %v", cfg, err)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvMode, "rpa")
	t.Setenv(EnvThreshold, "85")

	cfg, err := Default().ApplyEnv()
	if err != nil {
		t.Fatalf("ApplyEnv failed: %v", err)
	}
	if cfg.Mode != "rpa" || cfg.Threshold != 85 {
		t.Errorf("Expected env overrides, got mode=%s threshold=%d", cfg.Mode, cfg.Threshold)
	}

	t.Setenv(EnvThreshold, "lots")
	if _, err := Default().ApplyEnv(); err == nil {
		t.Error("Expected error for non-numeric threshold")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{name: "threshold too low", mutate: func(c *Config) { c.Threshold = 0 }, wantErr: duplicates.ErrThresholdRange},
		{name: "threshold too high", mutate: func(c *Config) { c.Threshold = 101 }, wantErr: duplicates.ErrThresholdRange},
		{name: "unknown mode", mutate: func(c *Config) { c.Mode = "ALL" }, wantErr: duplicates.ErrUnknownMode},
		{name: "lower-case mode", mutate: func(c *Config) { c.Mode = "rpa" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestDefaultOutputPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvOutputDir, dir)

	now := time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)
	got := DefaultOutputPath("/usr/local/bin/dupeval.exe", now)
	want := filepath.Join(dir, "dupeval-analysis-20260309.xlsx")

	if got != want {
		t.Errorf("DefaultOutputPath() = %q, want %q", got, want)
	}
}

func TestSettings_EmptySentinels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dupeval.yaml")
	if err := os.WriteFile(path, []byte("scoring:\n  description_sentinels: []\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	settings := cfg.Settings()
	if settings.Sentinels == nil || len(settings.Sentinels) != 0 {
		t.Fatalf("Expected empty non-nil sentinels, got %#v", settings.Sentinels)
	}

	scanner, err := duplicates.NewScanner(settings)
	if err != nil {
		t.Fatalf("NewScanner failed: %v", err)
	}
	report := scanner.EvaluateCross(
		[]duplicates.SourceRecord{{Name: "Invoice Bot", Description: "TBD"}},
		[]duplicates.CandidateRecord{{ID: "1", Name: "Invoice Bot", Description: "TBD"}},
	)
	if report.Len() != 1 || report.Pairs[0].Likelihood != 100 {
		t.Errorf("Expected TBD to be scored as a description, got %+v", report.Pairs)
	}
}
