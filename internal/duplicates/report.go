package duplicates

import (
	"sort"
)

// Column names shared by both output layouts
const (
	ColNameSequence       = "Name SequenceMatcher ratio"
	ColNameRatio          = "Name fuzz.ratio"
	ColNamePartialRatio   = "Name fuzz.partial_ratio"
	ColNameTokenSortRatio = "Name fuzz.token_sort_ratio"
	ColDescSequence       = "Descrip SequenceMatcher ratio"
	ColDescRatio          = "Descrip fuzz.ratio"
	ColDescPartialRatio   = "Descrip fuzz.partial_ratio"
	ColDescTokenSortRatio = "Descrip fuzz.token_sort_ratio"
	// ColLikelihood keeps its historical spelling; report consumers key on it
	ColLikelihood = "Likelyhood of duplication"
)

// CrossColumns is the RPA mode output layout
var CrossColumns = []string{
	"RPA AutomationName",
	"RPA Status",
	"ETA Name",
	"ETA phase",
	"ETA ID",
	ColNameSequence,
	ColNameRatio,
	ColNamePartialRatio,
	ColNameTokenSortRatio,
	"RPA Descrip",
	"ETA IdeaSummary",
	ColDescSequence,
	ColDescRatio,
	ColDescPartialRatio,
	ColDescTokenSortRatio,
	ColLikelihood,
}

// SelfColumns is the COLLAB mode output layout
var SelfColumns = []string{
	"From ID",
	"From Name",
	"From OpDiv",
	"To ID",
	"To Name",
	"To OpDiv",
	ColNameSequence,
	ColNameRatio,
	ColNamePartialRatio,
	ColNameTokenSortRatio,
	"From IdeaSummary",
	"To IdeaSummary",
	ColDescSequence,
	ColDescRatio,
	ColDescPartialRatio,
	ColDescTokenSortRatio,
	ColLikelihood,
}

// Report is the ordered result of one scan
type Report struct {
	Mode      Mode   `json:"mode" yaml:"mode"`
	Threshold int    `json:"threshold" yaml:"threshold"`
	Pairs     []Pair `json:"pairs" yaml:"pairs"`

	// Compared counts scored pairs
	Compared int `json:"compared" yaml:"compared"`
	// Skipped counts records with neither a name nor a description
	Skipped int `json:"skipped" yaml:"skipped"`
	// Suppressed counts RPA records whose name was already matched
	Suppressed int `json:"suppressed" yaml:"suppressed"`
}

// Len returns the number of reported pairs
func (r *Report) Len() int {
	return len(r.Pairs)
}

// Columns returns the output column names for the report's mode
func (r *Report) Columns() []string {
	if r.Mode == ModeRPA {
		return append([]string(nil), CrossColumns...)
	}
	return append([]string(nil), SelfColumns...)
}

// Rows returns one row per pair, values in Columns order. Identifying fields
// are strings, edit-ratios and likelihood are float64, fuzzy ratios are int.
func (r *Report) Rows() [][]any {
	rows := make([][]any, 0, len(r.Pairs))
	for _, p := range r.Pairs {
		if r.Mode == ModeRPA {
			rows = append(rows, crossRow(p))
		} else {
			rows = append(rows, selfRow(p))
		}
	}
	return rows
}

func crossRow(p Pair) []any {
	return []any{
		p.From.Name,
		p.From.Status,
		p.To.Name,
		p.To.Phase,
		p.To.ID,
		p.Names.Sequence,
		p.Names.Ratio,
		p.Names.PartialRatio,
		p.Names.TokenSortRatio,
		p.From.Description,
		p.To.Description,
		p.Descriptions.Sequence,
		p.Descriptions.Ratio,
		p.Descriptions.PartialRatio,
		p.Descriptions.TokenSortRatio,
		p.Likelihood,
	}
}

func selfRow(p Pair) []any {
	return []any{
		p.From.ID,
		p.From.Name,
		p.From.Division,
		p.To.ID,
		p.To.Name,
		p.To.Division,
		p.Names.Sequence,
		p.Names.Ratio,
		p.Names.PartialRatio,
		p.Names.TokenSortRatio,
		p.From.Description,
		p.To.Description,
		p.Descriptions.Sequence,
		p.Descriptions.Ratio,
		p.Descriptions.PartialRatio,
		p.Descriptions.TokenSortRatio,
		p.Likelihood,
	}
}

// Statistics summarises the likelihoods of the reported pairs
type Statistics struct {
	Count   int     `json:"count" yaml:"count"`
	Average float64 `json:"average" yaml:"average"`
	Median  float64 `json:"median" yaml:"median"`
	Min     float64 `json:"min" yaml:"min"`
	Max     float64 `json:"max" yaml:"max"`
}

// Statistics calculates summary statistics over the reported likelihoods
func (r *Report) Statistics() Statistics {
	stats := Statistics{Count: len(r.Pairs)}
	if len(r.Pairs) == 0 {
		return stats
	}

	scores := make([]float64, len(r.Pairs))
	var total float64
	for i, p := range r.Pairs {
		scores[i] = p.Likelihood
		total += p.Likelihood
	}
	stats.Average = total / float64(len(scores))

	sort.Float64s(scores)
	mid := len(scores) / 2
	if len(scores)%2 == 0 {
		stats.Median = (scores[mid-1] + scores[mid]) / 2
	} else {
		stats.Median = scores[mid]
	}

	stats.Min = scores[0]
	stats.Max = scores[len(scores)-1]

	return stats
}
