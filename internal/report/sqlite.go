package report

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	"github.com/lehigh-university-libraries/dupeval/internal/duplicates"
	_ "modernc.org/sqlite"
)

const (
	pairsTable = "duplicates"
	runsTable  = "scan"
)

var sqliteTypes = map[string]string{
	duplicates.ColNameSequence:       "REAL",
	duplicates.ColNameRatio:          "INTEGER",
	duplicates.ColNamePartialRatio:   "INTEGER",
	duplicates.ColNameTokenSortRatio: "INTEGER",
	duplicates.ColDescSequence:       "REAL",
	duplicates.ColDescRatio:          "INTEGER",
	duplicates.ColDescPartialRatio:   "INTEGER",
	duplicates.ColDescTokenSortRatio: "INTEGER",
	duplicates.ColLikelihood:         "REAL",
}

// writeSQLite replaces any existing file with a database holding one
// duplicates table in report column order and a one-row scan table
func writeSQLite(path string, rep *duplicates.Report) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove existing database: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer db.Close()

	cols := rep.Columns()
	var defs, quoted []string
	for _, c := range cols {
		t := sqliteTypes[c]
		if t == "" {
			t = "TEXT"
		}
		defs = append(defs, fmt.Sprintf("%q %s", c, t))
		quoted = append(quoted, fmt.Sprintf("%q", c))
	}

	if _, err := db.Exec(fmt.Sprintf(`CREATE TABLE %q (%s)`, pairsTable, strings.Join(defs, ","))); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	ph := strings.TrimRight(strings.Repeat("?,", len(cols)), ",")
	stmt, err := tx.Prepare(fmt.Sprintf(`INSERT INTO %q (%s) VALUES (%s)`, pairsTable, strings.Join(quoted, ","), ph))
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, row := range rep.Rows() {
		if _, err := stmt.Exec(row...); err != nil {
			return fmt.Errorf("failed to insert row %d: %w", i+1, err)
		}
	}

	if _, err := tx.Exec(fmt.Sprintf(`CREATE TABLE %q (mode TEXT, threshold INTEGER, pairs INTEGER, compared INTEGER, skipped INTEGER, suppressed INTEGER)`, runsTable)); err != nil {
		return fmt.Errorf("failed to create scan table: %w", err)
	}
	if _, err := tx.Exec(fmt.Sprintf(`INSERT INTO %q VALUES (?, ?, ?, ?, ?, ?)`, runsTable),
		string(rep.Mode), rep.Threshold, rep.Len(), rep.Compared, rep.Skipped, rep.Suppressed); err != nil {
		return fmt.Errorf("failed to record scan: %w", err)
	}

	return tx.Commit()
}
