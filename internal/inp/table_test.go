package inp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTableSection(t *testing.T) {
	lines := []string{
		"Pump  Name  Flow",
		"Units -     gpm",
		"1     Main  120.5",
		"2     Spare 60.0",
	}

	tbl, skipped := ParseTableSection(lines, ";")
	require.NotNil(t, tbl)
	assert.Zero(t, skipped)
	assert.Equal(t, []string{"Pump", "Name", "Flow (gpm)"}, tbl.Keys())
	require.Equal(t, 2, tbl.NumRows())
	assert.Equal(t, 120.5, tbl.Cell(0, "Flow (gpm)").Number)
	assert.Equal(t, "Main", tbl.Cell(0, "Name").Text)
}

func TestParseTableSection_TextLeadIdentifiers(t *testing.T) {
	// Pipe names need not start with a digit; data begins at the first
	// non-unit line after the header.
	lines := []string{
		"Pipe, Diameter, Length",
		"-, (in), (ft)",
		"Gustafson1-1, 7.63, 50.39",
	}

	tbl, skipped := ParseTableSection(lines, ";")
	require.NotNil(t, tbl)
	assert.Zero(t, skipped)
	require.Equal(t, 1, tbl.NumRows())
	assert.Equal(t, "Gustafson1-1", tbl.Cell(0, "Pipe").Text)
	assert.Equal(t, 7.63, tbl.Cell(0, "Diameter (in)").Number)
	assert.Equal(t, 50.39, tbl.Cell(0, "Length (ft)").Number)
}

func TestParseTableSection_MismatchedRowsSkipped(t *testing.T) {
	lines := []string{
		"Pump  Name",
		"1     Main  extra  field",
		"2     Spare",
	}

	tbl, skipped := ParseTableSection(lines, ";")
	require.NotNil(t, tbl)
	assert.Equal(t, 1, skipped)
	assert.Equal(t, 1, tbl.NumRows())
}

func TestParseTableSection_AllRowsMismatch(t *testing.T) {
	lines := []string{
		"Pump  Name",
		"1     Main  x",
		"2     Spare y",
	}

	// Correct header, zero rows: still a table, not a crash.
	tbl, skipped := ParseTableSection(lines, ";")
	require.NotNil(t, tbl)
	assert.Equal(t, 2, skipped)
	assert.True(t, tbl.IsEmpty())
	assert.Equal(t, []string{"Pump", "Name"}, tbl.Keys())
}

func TestParseTableSection_NoHeader(t *testing.T) {
	tbl, _ := ParseTableSection([]string{"", ";comment"}, ";")
	assert.Nil(t, tbl)
}

const controlValveContent = `
CV  Name     Cv
1   Relief1  250.0
2   Relief2  180.0

CV  Setting  State
1   45.0     1
2   50.0     0
`

func TestParseMultiBlockTable(t *testing.T) {
	tbl, skipped := ParseMultiBlockTable(strings.Split(controlValveContent, "\n"), ";")
	require.NotNil(t, tbl)
	assert.Zero(t, skipped)

	// Blocks join on the leading CV column.
	assert.Equal(t, []string{"CV", "Name", "Cv", "Setting", "State"}, tbl.Keys())
	require.Equal(t, 2, tbl.NumRows())
	assert.Equal(t, "Relief1", tbl.Cell(0, "Name").Text)
	assert.Equal(t, 45.0, tbl.Cell(0, "Setting").Number)
	assert.Equal(t, 0.0, tbl.Cell(1, "State").Number)
}

func TestParseMultiBlockTable_CollidingColumnsRenamed(t *testing.T) {
	content := "ID  K\n1  10.0\n\nID  K\n1  20.0\n"
	tbl, _ := ParseMultiBlockTable(strings.Split(content, "\n"), ";")
	require.NotNil(t, tbl)

	assert.Equal(t, []string{"ID", "K", "K_b1"}, tbl.Keys())
	assert.Equal(t, 10.0, tbl.Cell(0, "K").Number)
	assert.Equal(t, 20.0, tbl.Cell(0, "K_b1").Number)
}

func TestParseMultiBlockTable_UnmatchedIDsAppended(t *testing.T) {
	content := "ID  A\n1  10.0\n\nID  B\n2  20.0\n"
	tbl, _ := ParseMultiBlockTable(strings.Split(content, "\n"), ";")
	require.NotNil(t, tbl)

	require.Equal(t, 2, tbl.NumRows())
	assert.True(t, tbl.Cell(1, "A").IsMissing())
	assert.Equal(t, 20.0, tbl.Cell(1, "B").Number)
}
