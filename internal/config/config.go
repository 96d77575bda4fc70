package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/lehigh-university-libraries/dupeval/internal/duplicates"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Environment variables read by ApplyEnv and DefaultOutputPath
const (
	EnvThreshold = "DUPEVAL_THRESHOLD"
	EnvMode      = "DUPEVAL_MODE"
	EnvOutputDir = "DUPEVAL_OUTPUT_DIR"
)

// Config holds everything a run needs besides its input paths
type Config struct {
	Mode      string `yaml:"mode" toml:"mode"`
	Threshold int    `yaml:"threshold" toml:"threshold"`

	Collaboration CollaborationColumns `yaml:"collaboration" toml:"collaboration"`
	RPA           RPAColumns           `yaml:"rpa" toml:"rpa"`
	Cleanup       CleanupConfig        `yaml:"cleanup" toml:"cleanup"`
	Scoring       ScoringConfig        `yaml:"scoring" toml:"scoring"`
}

// CollaborationColumns names the columns read from the submissions worklist
type CollaborationColumns struct {
	AssignedTo string `yaml:"assigned_to" toml:"assigned_to"`
	Phase      string `yaml:"phase" toml:"phase"`
	ID         string `yaml:"id" toml:"id"`
	Name       string `yaml:"name" toml:"name"`
	Summary    string `yaml:"summary" toml:"summary"`
	Division   string `yaml:"division" toml:"division"`
}

// Columns returns the worklist columns to load
func (c CollaborationColumns) Columns() []string {
	return []string{c.AssignedTo, c.Phase, c.ID, c.Name, c.Summary, c.Division}
}

// RPAColumns names the columns read from the RPA inventory report
type RPAColumns struct {
	Status      string `yaml:"status" toml:"status"`
	Unit        string `yaml:"unit" toml:"unit"`
	SubUnit     string `yaml:"sub_unit" toml:"sub_unit"`
	Name        string `yaml:"name" toml:"name"`
	Description string `yaml:"description" toml:"description"`
}

// Columns returns the inventory columns to load
func (c RPAColumns) Columns() []string {
	return []string{c.Status, c.Unit, c.SubUnit, c.Name, c.Description}
}

// CleanupConfig controls RPA inventory normalisation
type CleanupConfig struct {
	// DefaultStatus fills leading rows that have no status
	DefaultStatus string `yaml:"default_status" toml:"default_status"`
	// BlankPlaceholder is a description value that means "no description"
	BlankPlaceholder string `yaml:"blank_placeholder" toml:"blank_placeholder"`
}

// ScoringConfig controls the duplicate scanner
type ScoringConfig struct {
	Sentinels              []string `yaml:"description_sentinels" toml:"description_sentinels"`
	ToDescriptionFromInner bool     `yaml:"self_to_description_from_inner" toml:"self_to_description_from_inner"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Mode:      string(duplicates.ModeCollab),
		Threshold: 50,
		Collaboration: CollaborationColumns{
			AssignedTo: "Assigned to",
			Phase:      "Collaboration Phase",
			ID:         "Opportunity ID",
			Name:       "Collaboration Opportunity Name",
			Summary:    "Collaboration Idea Summary",
			Division:   "Operational Division",
		},
		RPA: RPAColumns{
			Status:      "Status",
			Unit:        "LOB Unit",
			SubUnit:     "LOB SubUnit",
			Name:        "Automation Name",
			Description: "Short Project Description",
		},
		Cleanup: CleanupConfig{
			DefaultStatus:    "Deployed",
			BlankPlaceholder: "(blank)",
		},
		Scoring: ScoringConfig{
			Sentinels: append([]string(nil), duplicates.DefaultSentinels...),
		},
	}
}

// Load reads a YAML or TOML file over the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	default:
		return cfg, fmt.Errorf("unsupported config format: %s (supported: .yaml, .yml, .toml)", ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// ApplyEnv overlays DUPEVAL_MODE and DUPEVAL_THRESHOLD when they are set
func (c Config) ApplyEnv() (Config, error) {
	if v := strings.TrimSpace(os.Getenv(EnvMode)); v != "" {
		c.Mode = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvThreshold)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("invalid %s %q: %w", EnvThreshold, v, err)
		}
		c.Threshold = n
	}
	return c, nil
}

// Validate checks the mode and threshold without clamping either
func (c Config) Validate() error {
	if _, err := duplicates.ParseMode(c.Mode); err != nil {
		return err
	}
	return duplicates.ValidateThreshold(c.Threshold)
}

// ParsedMode returns the configured mode
func (c Config) ParsedMode() (duplicates.Mode, error) {
	return duplicates.ParseMode(c.Mode)
}

// Settings returns the scanner settings for this configuration
func (c Config) Settings() duplicates.Settings {
	var sentinels []string
	if c.Scoring.Sentinels != nil {
		sentinels = append([]string{}, c.Scoring.Sentinels...)
	}
	return duplicates.Settings{
		Threshold:              c.Threshold,
		Sentinels:              sentinels,
		ToDescriptionFromInner: c.Scoring.ToDescriptionFromInner,
	}
}

// DefaultOutputPath builds <dir>/<prog>-analysis-YYYYMMDD.xlsx where dir is
// DUPEVAL_OUTPUT_DIR or the user's Documents folder
func DefaultOutputPath(prog string, now time.Time) string {
	dir := os.Getenv(EnvOutputDir)
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		dir = filepath.Join(home, "Documents")
	}

	base := strings.TrimSuffix(filepath.Base(prog), filepath.Ext(prog))
	return filepath.Join(dir, fmt.Sprintf("%s-analysis-%s.xlsx", base, now.Format("20060102")))
}
