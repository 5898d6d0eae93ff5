// Package sqlite implements driven.SheetWriter as a SQLite database
// with one table per sheet.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/hydraworks-labs/inpsheet-cli/internal/core/domain"
	"github.com/hydraworks-labs/inpsheet-cli/internal/core/ports/driven"
	"github.com/hydraworks-labs/inpsheet-cli/internal/logger"
)

// Ensure Writer implements the interface.
var _ driven.SheetWriter = (*Writer)(nil)

// Writer persists workbook sheets into a SQLite database file. Each
// sheet becomes a table; columns that hold only numbers become REAL,
// everything else TEXT. Every export is recorded in export_runs.
type Writer struct{}

// NewWriter creates a SQLite sheet writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteWorkbook writes all sheets into the database at dest, replacing
// tables from previous exports with the same names.
func (w *Writer) WriteWorkbook(ctx context.Context, dest string, sheets []driven.Sheet) error {
	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dest+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, sheet := range sheets {
		if err := w.writeSheet(ctx, tx, sheet); err != nil {
			return fmt.Errorf("sheet %s: %w", sheet.Name, err)
		}
		logger.Debug("wrote table %s (%d rows)", sheet.Name, sheet.Table.NumRows())
	}

	if err := w.recordRun(ctx, tx, sheets); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing export: %w", err)
	}
	return nil
}

func (w *Writer) writeSheet(ctx context.Context, tx *sql.Tx, sheet driven.Sheet) error {
	table := quoteIdent(sheet.Name)
	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
		return err
	}

	keys := sheet.Table.Keys()
	defs := make([]string, len(keys))
	for i, key := range keys {
		defs[i] = quoteIdent(key) + " " + columnType(sheet.Table, key)
	}
	create := fmt.Sprintf("CREATE TABLE %s (%s)", table, strings.Join(defs, ", "))
	if _, err := tx.ExecContext(ctx, create); err != nil {
		return err
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(keys)), ", ")
	insert := fmt.Sprintf("INSERT INTO %s VALUES (%s)", table, placeholders)
	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		return err
	}
	defer stmt.Close()

	args := make([]any, len(keys))
	for i := range sheet.Table.Rows {
		for j, key := range keys {
			args[j] = cellArg(sheet.Table.Cell(i, key))
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return err
		}
	}
	return nil
}

// recordRun appends one row to export_runs describing this export.
func (w *Writer) recordRun(ctx context.Context, tx *sql.Tx, sheets []driven.Sheet) error {
	const schema = `CREATE TABLE IF NOT EXISTS export_runs (
		id TEXT PRIMARY KEY,
		created_at TEXT NOT NULL,
		sheet_count INTEGER NOT NULL
	)`
	if _, err := tx.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating export_runs: %w", err)
	}

	_, err := tx.ExecContext(ctx,
		"INSERT INTO export_runs (id, created_at, sheet_count) VALUES (?, ?, ?)",
		uuid.New().String(), time.Now().UTC().Format(time.RFC3339), len(sheets))
	if err != nil {
		return fmt.Errorf("recording export run: %w", err)
	}
	return nil
}

// columnType picks REAL when every present value in the column is
// numeric, TEXT otherwise.
func columnType(t *domain.Table, key string) string {
	numeric := false
	for i := range t.Rows {
		v := t.Cell(i, key)
		if v.IsMissing() {
			continue
		}
		if !v.Numeric {
			return "TEXT"
		}
		numeric = true
	}
	if numeric {
		return "REAL"
	}
	return "TEXT"
}

// cellArg converts a cell to its SQL argument: NULL for missing,
// float64 for numbers, string otherwise.
func cellArg(v domain.Value) any {
	if v.IsMissing() {
		return nil
	}
	if v.Numeric {
		return v.Number
	}
	return v.Text
}

// quoteIdent quotes an identifier for SQLite.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
