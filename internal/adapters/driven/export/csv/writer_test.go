package csv

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hydraworks-labs/inpsheet-cli/internal/core/domain"
	"github.com/hydraworks-labs/inpsheet-cli/internal/core/ports/driven"
)

func sampleSheet() driven.Sheet {
	t := domain.NewTable([]domain.ColumnDescriptor{
		{Name: "Pipe"},
		{Name: "Length", Unit: "feet"},
	})
	t.Append(domain.Record{
		"Pipe":          domain.TextValue("Pipe_1"),
		"Length (feet)": domain.NumberValue(50.39),
	})
	t.Append(domain.Record{
		"Pipe": domain.TextValue("Pipe_2"),
	})
	return driven.Sheet{Name: "Pipe_Detail_Summary", Table: t}
}

func TestWriter_WriteWorkbook(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	w := NewWriter()

	err := w.WriteWorkbook(context.Background(), dir, []driven.Sheet{sampleSheet()})
	require.NoError(t, err)

	f, err := os.Open(filepath.Join(dir, "Pipe_Detail_Summary.csv"))
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Pipe", "Length (feet)"}, rows[0])
	assert.Equal(t, []string{"Pipe_1", "50.39"}, rows[1])
	assert.Equal(t, []string{"Pipe_2", ""}, rows[2])
}

func TestWriter_Overwrites(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	w := NewWriter()
	ctx := context.Background()

	require.NoError(t, w.WriteWorkbook(ctx, dir, []driven.Sheet{sampleSheet()}))
	require.NoError(t, w.WriteWorkbook(ctx, dir, []driven.Sheet{sampleSheet()}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriter_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewWriter().WriteWorkbook(ctx, t.TempDir(), []driven.Sheet{sampleSheet()})
	assert.ErrorIs(t, err, context.Canceled)
}
