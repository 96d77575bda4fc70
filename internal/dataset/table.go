package dataset

import (
	"fmt"
	"strings"
)

// Table is a header row plus string cells. Every row has exactly
// len(Columns) values.
type Table struct {
	Columns []string
	Rows    [][]string

	index map[string]int
}

// NewTable builds a table, padding short rows and truncating long ones to
// the header width
func NewTable(columns []string, rows [][]string) *Table {
	t := &Table{
		Columns: append([]string(nil), columns...),
		Rows:    make([][]string, 0, len(rows)),
	}
	for _, row := range rows {
		t.Rows = append(t.Rows, fit(row, len(columns)))
	}
	t.reindex()
	return t
}

func fit(row []string, width int) []string {
	out := make([]string, width)
	copy(out, row)
	return out
}

func (t *Table) reindex() {
	t.index = make(map[string]int, len(t.Columns))
	for i, col := range t.Columns {
		// first occurrence wins for duplicated headers
		if _, ok := t.index[col]; !ok {
			t.index[col] = i
		}
	}
}

// Len returns the number of data rows
func (t *Table) Len() int {
	return len(t.Rows)
}

// Has reports whether the table carries a column
func (t *Table) Has(col string) bool {
	_, ok := t.index[col]
	return ok
}

// Value returns the cell at row i for the named column
func (t *Table) Value(i int, col string) (string, bool) {
	idx, ok := t.index[col]
	if !ok || i < 0 || i >= len(t.Rows) {
		return "", false
	}
	return t.Rows[i][idx], true
}

// Get is Value without the presence flag
func (t *Table) Get(i int, col string) string {
	v, _ := t.Value(i, col)
	return v
}

// Set overwrites a cell; unknown columns are ignored
func (t *Table) Set(i int, col, value string) {
	if idx, ok := t.index[col]; ok && i >= 0 && i < len(t.Rows) {
		t.Rows[i][idx] = value
	}
}

// Select keeps only the wanted columns, in the order they appear in the
// file. Every wanted column must exist.
func (t *Table) Select(wanted []string) (*Table, error) {
	want := make(map[string]bool, len(wanted))
	for _, col := range wanted {
		want[col] = true
	}

	var missing []string
	for _, col := range wanted {
		if !t.Has(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("columns expected but not found: %s", strings.Join(missing, ", "))
	}

	var keep []int
	var columns []string
	for i, col := range t.Columns {
		if want[col] && t.index[col] == i {
			keep = append(keep, i)
			columns = append(columns, col)
		}
	}

	rows := make([][]string, len(t.Rows))
	for r, row := range t.Rows {
		out := make([]string, len(keep))
		for c, idx := range keep {
			out[c] = row[idx]
		}
		rows[r] = out
	}

	return NewTable(columns, rows), nil
}

// DropFirstColumn removes the leading column
func (t *Table) DropFirstColumn() *Table {
	if len(t.Columns) == 0 {
		return NewTable(nil, nil)
	}
	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		rows[i] = row[1:]
	}
	return NewTable(t.Columns[1:], rows)
}

// DropEmptyRows removes rows whose cells are all blank
func (t *Table) DropEmptyRows() *Table {
	rows := make([][]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		if !blankRow(row) {
			rows = append(rows, row)
		}
	}
	return NewTable(t.Columns, rows)
}

func blankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
