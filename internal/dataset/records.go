package dataset

import (
	"github.com/lehigh-university-libraries/dupeval/internal/config"
	"github.com/lehigh-university-libraries/dupeval/internal/duplicates"
)

// CleanupRPA normalises an RPA inventory table. All-blank rows are dropped,
// then status, unit and sub-unit are carried down into rows that leave them
// empty, and placeholder descriptions are cleared. The input is not mutated.
func CleanupRPA(t *Table, cols config.RPAColumns, cleanup config.CleanupConfig) *Table {
	out := t.DropEmptyRows()

	status := cleanup.DefaultStatus
	var unit, subUnit string
	var haveUnit, haveSubUnit bool

	for i := range out.Rows {
		if v := out.Get(i, cols.Status); v == "" {
			out.Set(i, cols.Status, status)
		} else {
			status = v
		}

		unit, haveUnit = carry(out, i, cols.Unit, unit, haveUnit)
		subUnit, haveSubUnit = carry(out, i, cols.SubUnit, subUnit, haveSubUnit)

		if cleanup.BlankPlaceholder != "" && out.Get(i, cols.Description) == cleanup.BlankPlaceholder {
			out.Set(i, cols.Description, "")
		}
	}

	return out
}

func carry(t *Table, i int, col, last string, have bool) (string, bool) {
	v := t.Get(i, col)
	if v != "" {
		return v, true
	}
	if have {
		t.Set(i, col, last)
	}
	return last, have
}

// SourceRecords maps a cleaned RPA inventory table to scanner input
func SourceRecords(t *Table, cols config.RPAColumns) []duplicates.SourceRecord {
	records := make([]duplicates.SourceRecord, 0, t.Len())
	for i := range t.Rows {
		records = append(records, duplicates.SourceRecord{
			Name:        t.Get(i, cols.Name),
			Status:      t.Get(i, cols.Status),
			Description: t.Get(i, cols.Description),
			Unit:        t.Get(i, cols.Unit),
			SubUnit:     t.Get(i, cols.SubUnit),
		})
	}
	return records
}

// CandidateRecords maps a collaboration worklist table to scanner input
func CandidateRecords(t *Table, cols config.CollaborationColumns) []duplicates.CandidateRecord {
	records := make([]duplicates.CandidateRecord, 0, t.Len())
	for i := range t.Rows {
		records = append(records, duplicates.CandidateRecord{
			ID:          t.Get(i, cols.ID),
			Name:        t.Get(i, cols.Name),
			Phase:       t.Get(i, cols.Phase),
			Description: t.Get(i, cols.Summary),
			Division:    t.Get(i, cols.Division),
		})
	}
	return records
}
