package duplicates

import (
	"log/slog"
)

const (
	// MinThreshold is the lowest accepted likelihood threshold
	MinThreshold = 1
	// MaxThreshold is the highest accepted likelihood threshold
	MaxThreshold = 100
)

// DefaultSentinels are description values that mean "no description yet"
var DefaultSentinels = []string{"TBD"}

// Settings configures a Scanner. It is copied at construction and never
// changed afterwards.
type Settings struct {
	// Threshold is the minimum likelihood, inclusive, for a pair to be reported
	Threshold int

	// Sentinels are description placeholders excluded from description scoring.
	// Nil means DefaultSentinels; an empty slice disables placeholders.
	Sentinels []string

	// ToDescriptionFromInner makes COLLAB mode report the inner row's summary
	// in "To IdeaSummary". By default the outer row's summary is reported there.
	ToDescriptionFromInner bool
}

// ValidateThreshold rejects thresholds outside [MinThreshold, MaxThreshold]
func ValidateThreshold(threshold int) error {
	if threshold < MinThreshold || threshold > MaxThreshold {
		return &ValidationError{Field: "threshold", Value: threshold, Min: MinThreshold, Max: MaxThreshold}
	}
	return nil
}

// Scanner drives pairwise comparison over one or two record collections
type Scanner struct {
	settings   Settings
	calculator *Calculator
}

// NewScanner creates a scanner after validating its settings
func NewScanner(settings Settings) (*Scanner, error) {
	if err := ValidateThreshold(settings.Threshold); err != nil {
		return nil, err
	}
	calc := settings.Calculator()
	settings.Sentinels = calc.sentinels

	return &Scanner{
		settings:   settings,
		calculator: calc,
	}, nil
}

// Calculator returns a calculator for the configured sentinels
func (s Settings) Calculator() *Calculator {
	if s.Sentinels == nil {
		return NewCalculator(DefaultSentinels)
	}
	return NewCalculator(s.Sentinels)
}

// Threshold returns the scanner's reporting threshold
func (s *Scanner) Threshold() int {
	return s.settings.Threshold
}

// EvaluateCross compares every RPA inventory record against the candidate
// records in row order. Each source matches at most one candidate, the first
// one at or above the threshold, and both names are then suppressed for the
// rest of the scan.
func (s *Scanner) EvaluateCross(sources []SourceRecord, candidates []CandidateRecord) *Report {
	report := &Report{Mode: ModeRPA, Threshold: s.settings.Threshold, Pairs: []Pair{}}
	seen := NewLedger()
	threshold := float64(s.settings.Threshold)

	for _, src := range sources {
		if seen.Contains(src.Name) {
			report.Suppressed++
			continue
		}
		if src.Empty() {
			report.Skipped++
			continue
		}

		for _, cand := range candidates {
			if seen.Contains(cand.Name) {
				continue
			}

			scores := s.calculator.Score(src.Name, cand.Name, src.Description, cand.Description)
			report.Compared++

			if scores.Likelihood >= threshold {
				report.Pairs = append(report.Pairs, Pair{
					From:   sourceParty(src),
					To:     candidateParty(cand),
					Scores: scores,
				})
				seen.Insert(src.Name, cand.Name)

				slog.Debug("Duplicate found",
					"rpa_name", src.Name,
					"eta_name", cand.Name,
					"eta_id", cand.ID,
					"likelihood", scores.Likelihood)
				break
			}
		}
	}

	return report
}

// EvaluateSelf compares every candidate record against every other candidate
// record in row order. Each outer row reports at most one match, the first
// inner row at or above the threshold. Rows are not suppressed, so a record
// may appear in several reported pairs.
func (s *Scanner) EvaluateSelf(candidates []CandidateRecord) *Report {
	report := &Report{Mode: ModeCollab, Threshold: s.settings.Threshold, Pairs: []Pair{}}
	threshold := float64(s.settings.Threshold)

	for _, outer := range candidates {
		if outer.Empty() {
			report.Skipped++
			continue
		}

		for _, inner := range candidates {
			if outer.ID == inner.ID && outer.Name == inner.Name {
				continue
			}
			if inner.Empty() {
				continue
			}

			scores := s.calculator.Score(outer.Name, inner.Name, outer.Description, inner.Description)
			report.Compared++

			if scores.Likelihood >= threshold {
				to := candidateParty(inner)
				if !s.settings.ToDescriptionFromInner {
					to.Description = outer.Description
				}

				report.Pairs = append(report.Pairs, Pair{
					From:   candidateParty(outer),
					To:     to,
					Scores: scores,
				})

				slog.Debug("Duplicate found",
					"from_id", outer.ID,
					"to_id", inner.ID,
					"likelihood", scores.Likelihood)
				break
			}
		}
	}

	return report
}
