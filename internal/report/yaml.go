package report

import (
	"fmt"
	"os"
	"time"

	"github.com/lehigh-university-libraries/dupeval/internal/duplicates"
	"gopkg.in/yaml.v3"
)

// RunConfig is the configuration section of a YAML report
type RunConfig struct {
	Mode       duplicates.Mode `yaml:"mode"`
	Threshold  int             `yaml:"threshold"`
	Compared   int             `yaml:"compared"`
	Skipped    int             `yaml:"skipped"`
	Suppressed int             `yaml:"suppressed"`
	Timestamp  string          `yaml:"timestamp"`
}

// RunDocument is the complete YAML report
type RunDocument struct {
	Config     RunConfig             `yaml:"config"`
	Statistics duplicates.Statistics `yaml:"statistics"`
	Pairs      []duplicates.Pair     `yaml:"pairs"`
}

func writeYAML(path string, rep *duplicates.Report) error {
	doc := RunDocument{
		Config: RunConfig{
			Mode:       rep.Mode,
			Threshold:  rep.Threshold,
			Compared:   rep.Compared,
			Skipped:    rep.Skipped,
			Suppressed: rep.Suppressed,
			Timestamp:  time.Now().Format("2006-01-02_15-04-05"),
		},
		Statistics: rep.Statistics(),
		Pairs:      rep.Pairs,
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}
