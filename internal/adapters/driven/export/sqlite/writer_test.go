package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hydraworks-labs/inpsheet-cli/internal/core/domain"
	"github.com/hydraworks-labs/inpsheet-cli/internal/core/ports/driven"
)

func sampleSheets() []driven.Sheet {
	t := domain.NewTable([]domain.ColumnDescriptor{
		{Name: "Pipe"},
		{Name: "Elevation", Unit: "feet"},
	})
	t.Append(domain.Record{
		"Pipe":             domain.TextValue("P2"),
		"Elevation (feet)": domain.NumberValue(2240.16),
	})
	t.Append(domain.Record{
		"Pipe": domain.TextValue("P3"),
	})
	return []driven.Sheet{{Name: "Pipe_Elevations_Summary", Table: t}}
}

func openDB(t *testing.T, path string) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestWriter_WriteWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.db")
	w := NewWriter()

	require.NoError(t, w.WriteWorkbook(context.Background(), path, sampleSheets()))

	db := openDB(t, path)

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM "Pipe_Elevations_Summary"`).Scan(&count))
	assert.Equal(t, 2, count)

	var elev sql.NullFloat64
	require.NoError(t, db.QueryRow(
		`SELECT "Elevation (feet)" FROM "Pipe_Elevations_Summary" WHERE "Pipe" = 'P2'`).Scan(&elev))
	require.True(t, elev.Valid)
	assert.Equal(t, 2240.16, elev.Float64)

	// Missing cell stored as NULL.
	require.NoError(t, db.QueryRow(
		`SELECT "Elevation (feet)" FROM "Pipe_Elevations_Summary" WHERE "Pipe" = 'P3'`).Scan(&elev))
	assert.False(t, elev.Valid)
}

func TestWriter_RecordsRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.db")
	w := NewWriter()
	ctx := context.Background()

	require.NoError(t, w.WriteWorkbook(ctx, path, sampleSheets()))
	require.NoError(t, w.WriteWorkbook(ctx, path, sampleSheets()))

	db := openDB(t, path)

	var runs int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM export_runs").Scan(&runs))
	assert.Equal(t, 2, runs)
}

func TestWriter_ReplacesPreviousTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.db")
	w := NewWriter()
	ctx := context.Background()

	require.NoError(t, w.WriteWorkbook(ctx, path, sampleSheets()))
	require.NoError(t, w.WriteWorkbook(ctx, path, sampleSheets()))

	db := openDB(t, path)

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM "Pipe_Elevations_Summary"`).Scan(&count))
	assert.Equal(t, 2, count)
}

func TestColumnType(t *testing.T) {
	tbl := domain.NewTable([]domain.ColumnDescriptor{
		{Name: "A"}, {Name: "B"}, {Name: "C"},
	})
	tbl.Append(domain.Record{
		"A": domain.NumberValue(1),
		"B": domain.TextValue("x"),
	})
	tbl.Append(domain.Record{
		"A": domain.NumberValue(2),
		"B": domain.NumberValue(3),
	})

	assert.Equal(t, "REAL", columnType(tbl, "A"))
	assert.Equal(t, "TEXT", columnType(tbl, "B"))
	assert.Equal(t, "TEXT", columnType(tbl, "C"))
}
