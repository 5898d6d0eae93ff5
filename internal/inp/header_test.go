package inp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hydraworks-labs/inpsheet-cli/internal/core/domain"
)

func TestParseHeader_CommaDelimitedWithUnitRow(t *testing.T) {
	lines := []string{
		"Pipe, Diameter, Length",
		"-, (in), (ft)",
		"Gustafson1-1, 7.63, 50.39",
	}

	h := ParseHeader(lines, ";")
	require.Len(t, h.Columns, 3)
	assert.Equal(t, DelimComma, h.Delim)
	assert.Equal(t, 2, h.DataStart)

	keys := make([]string, len(h.Columns))
	for i, c := range h.Columns {
		keys[i] = c.Key()
	}
	// Unit substrings survive verbatim in the column keys.
	assert.Equal(t, []string{"Pipe", "Diameter (in)", "Length (ft)"}, keys)
}

func TestParseHeader_WhitespaceSingleRow(t *testing.T) {
	lines := []string{
		"Pump  Name  Flow",
		"1     Main  120.5",
	}

	h := ParseHeader(lines, ";")
	require.Len(t, h.Columns, 3)
	assert.Equal(t, DelimWhitespace, h.Delim)
	assert.Equal(t, "Pump", h.Columns[0].Name)
	assert.Empty(t, h.Columns[0].Unit)
}

func TestParseHeader_InlineParenthesizedUnit(t *testing.T) {
	lines := []string{
		"Branch  Name  Junctions (Up,Down)",
		"1       J84   30, 280",
	}

	h := ParseHeader(lines, ";")
	require.Len(t, h.Columns, 3)
	assert.Equal(t, "Junctions (Up,Down)", h.Columns[2].Key())
	// The parenthesized comma does not switch the delimiter.
	assert.Equal(t, DelimWhitespace, h.Delim)
}

func TestParseHeader_UnitsRow(t *testing.T) {
	lines := []string{
		"Valve  Flow  Pressure",
		"Units  gpm   psig",
		"1      55.2  101.3",
	}

	h := ParseHeader(lines, ";")
	require.Len(t, h.Columns, 3)
	assert.Equal(t, "Valve", h.Columns[0].Key())
	assert.Equal(t, "Flow (gpm)", h.Columns[1].Key())
	assert.Equal(t, "Pressure (psig)", h.Columns[2].Key())
}

func TestParseHeader_NearestUnitRowWins(t *testing.T) {
	// Two unit rows could supply position 1; the nearer one wins.
	lines := []string{
		"Pipe  Diameter",
		"-     (in)",
		"-     (ft)",
		"1     7.63",
	}

	h := ParseHeader(lines, ";")
	require.Len(t, h.Columns, 2)
	assert.Equal(t, "Diameter (in)", h.Columns[1].Key())
}

func TestParseHeader_NoHeader(t *testing.T) {
	h := ParseHeader([]string{"", "; only a comment"}, ";")
	assert.Empty(t, h.Columns)
	assert.Equal(t, 2, h.DataStart)
}

func TestParseHeader_OnlyUnitRows(t *testing.T) {
	h := ParseHeader([]string{"(in)  (ft)"}, ";")
	assert.Empty(t, h.Columns)
}

func TestParseHeader_SkipsSeparatorsAndComments(t *testing.T) {
	lines := []string{
		"; section comment",
		"Pump  Name",
		"------------",
		"1     Main",
	}

	h := ParseHeader(lines, ";")
	require.Len(t, h.Columns, 2)
	assert.Equal(t, 3, h.DataStart)
}

func TestDelimiter_Split(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, DelimComma.Split("a, b ,c"))
	assert.Equal(t, []string{"a", "b", "c"}, DelimWhitespace.Split("  a  b\tc "))
}

func TestIsDataLine(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"1 Main", true},
		{"-3.2 4", true},
		{"+7 x", true},
		{".5 y", true},
		{"Pump Name", false},
		{"", false},
		{"- (in)", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, isDataLine(tt.line), "line %q", tt.line)
	}
}

func TestNameFields_DuplicateNamesStayDistinctWithUnits(t *testing.T) {
	cols := nameFields([]string{"K", "(in)", "K", "(out)"}, DelimWhitespace)
	require.Len(t, cols, 2)
	assert.NotEqual(t, cols[0].Key(), cols[1].Key())
	assert.Equal(t, domain.ColumnDescriptor{Name: "K", Unit: "in"}, cols[0])
}
