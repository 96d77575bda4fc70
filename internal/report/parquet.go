package report

import (
	"github.com/lehigh-university-libraries/dupeval/internal/duplicates"
	"github.com/parquet-go/parquet-go"
)

// CrossRow is the parquet schema for RPA mode reports
type CrossRow struct {
	RPAAutomationName  string  `parquet:"rpa_automation_name"`
	RPAStatus          string  `parquet:"rpa_status"`
	ETAName            string  `parquet:"eta_name"`
	ETAPhase           string  `parquet:"eta_phase"`
	ETAID              string  `parquet:"eta_id"`
	NameSequence       float64 `parquet:"name_sequence_ratio"`
	NameRatio          int64   `parquet:"name_ratio"`
	NamePartialRatio   int64   `parquet:"name_partial_ratio"`
	NameTokenSortRatio int64   `parquet:"name_token_sort_ratio"`
	RPADescription     string  `parquet:"rpa_description"`
	ETAIdeaSummary     string  `parquet:"eta_idea_summary"`
	DescSequence       float64 `parquet:"desc_sequence_ratio"`
	DescRatio          int64   `parquet:"desc_ratio"`
	DescPartialRatio   int64   `parquet:"desc_partial_ratio"`
	DescTokenSortRatio int64   `parquet:"desc_token_sort_ratio"`
	Likelihood         float64 `parquet:"likelihood"`
}

// SelfRow is the parquet schema for COLLAB mode reports
type SelfRow struct {
	FromID             string  `parquet:"from_id"`
	FromName           string  `parquet:"from_name"`
	FromOpDiv          string  `parquet:"from_opdiv"`
	ToID               string  `parquet:"to_id"`
	ToName             string  `parquet:"to_name"`
	ToOpDiv            string  `parquet:"to_opdiv"`
	NameSequence       float64 `parquet:"name_sequence_ratio"`
	NameRatio          int64   `parquet:"name_ratio"`
	NamePartialRatio   int64   `parquet:"name_partial_ratio"`
	NameTokenSortRatio int64   `parquet:"name_token_sort_ratio"`
	FromIdeaSummary    string  `parquet:"from_idea_summary"`
	ToIdeaSummary      string  `parquet:"to_idea_summary"`
	DescSequence       float64 `parquet:"desc_sequence_ratio"`
	DescRatio          int64   `parquet:"desc_ratio"`
	DescPartialRatio   int64   `parquet:"desc_partial_ratio"`
	DescTokenSortRatio int64   `parquet:"desc_token_sort_ratio"`
	Likelihood         float64 `parquet:"likelihood"`
}

func writeParquet(path string, rep *duplicates.Report) error {
	if rep.Mode == duplicates.ModeRPA {
		rows := make([]CrossRow, 0, rep.Len())
		for _, p := range rep.Pairs {
			rows = append(rows, CrossRow{
				RPAAutomationName:  p.From.Name,
				RPAStatus:          p.From.Status,
				ETAName:            p.To.Name,
				ETAPhase:           p.To.Phase,
				ETAID:              p.To.ID,
				NameSequence:       p.Names.Sequence,
				NameRatio:          int64(p.Names.Ratio),
				NamePartialRatio:   int64(p.Names.PartialRatio),
				NameTokenSortRatio: int64(p.Names.TokenSortRatio),
				RPADescription:     p.From.Description,
				ETAIdeaSummary:     p.To.Description,
				DescSequence:       p.Descriptions.Sequence,
				DescRatio:          int64(p.Descriptions.Ratio),
				DescPartialRatio:   int64(p.Descriptions.PartialRatio),
				DescTokenSortRatio: int64(p.Descriptions.TokenSortRatio),
				Likelihood:         p.Likelihood,
			})
		}
		return parquet.WriteFile(path, rows)
	}

	rows := make([]SelfRow, 0, rep.Len())
	for _, p := range rep.Pairs {
		rows = append(rows, SelfRow{
			FromID:             p.From.ID,
			FromName:           p.From.Name,
			FromOpDiv:          p.From.Division,
			ToID:               p.To.ID,
			ToName:             p.To.Name,
			ToOpDiv:            p.To.Division,
			NameSequence:       p.Names.Sequence,
			NameRatio:          int64(p.Names.Ratio),
			NamePartialRatio:   int64(p.Names.PartialRatio),
			NameTokenSortRatio: int64(p.Names.TokenSortRatio),
			FromIdeaSummary:    p.From.Description,
			ToIdeaSummary:      p.To.Description,
			DescSequence:       p.Descriptions.Sequence,
			DescRatio:          int64(p.Descriptions.Ratio),
			DescPartialRatio:   int64(p.Descriptions.PartialRatio),
			DescTokenSortRatio: int64(p.Descriptions.TokenSortRatio),
			Likelihood:         p.Likelihood,
		})
	}
	return parquet.WriteFile(path, rows)
}
