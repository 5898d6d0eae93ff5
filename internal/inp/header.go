package inp

import (
	"regexp"
	"strings"

	"github.com/hydraworks-labs/inpsheet-cli/internal/core/domain"
)

// Delimiter is the field separator shared by a section's header and
// data rows.
type Delimiter int

const (
	// DelimWhitespace splits fields on whitespace runs.
	DelimWhitespace Delimiter = iota

	// DelimComma splits fields on commas, trimming surrounding space.
	DelimComma
)

// Split divides a line into fields.
func (d Delimiter) Split(line string) []string {
	if d == DelimComma {
		parts := strings.Split(line, ",")
		fields := make([]string, len(parts))
		for i, p := range parts {
			fields[i] = strings.TrimSpace(p)
		}
		return fields
	}
	return strings.Fields(line)
}

// Header is the parsed header of one columnar section.
type Header struct {
	// Columns is the ordered, unit-annotated column set.
	Columns []domain.ColumnDescriptor

	// Delim is the field delimiter the header used; rows use the same.
	Delim Delimiter

	// DataStart is the index into the section's lines where data rows
	// begin. Equal to len(lines) when the section has no data rows.
	DataStart int
}

// inlineUnitRE matches a trailing parenthesized unit inside one field,
// e.g. "Diameter (in)".
var inlineUnitRE = regexp.MustCompile(`^(.*?)\s*\(([^)]*)\)$`)

// knownUnits are bare unit words that appear in unit rows without
// parentheses in the source format.
var knownUnits = map[string]bool{
	"feet":        true,
	"inches":      true,
	"psia":        true,
	"psig":        true,
	"barrels/day": true,
	"gpm":         true,
	"seconds":     true,
	"percent":     true,
}

// headerLine is one physical header line with its position within the
// section block.
type headerLine struct {
	index  int
	fields []string
}

// ParseHeader locates a section's header, which may span several
// physical lines (a name line plus one or more unit lines), and merges
// it into an ordered column descriptor sequence.
//
// Resolution is two-phase: candidate lines are collected and split
// first, then unit tokens are attached to names positionally. When
// more than one unit row could supply a unit for the same position,
// the row nearest the name line wins. A name with no discoverable
// unit keeps its bare key. Zero parseable fields yield a Header with
// no columns.
func ParseHeader(lines []string, comment string) Header {
	h := Header{DataStart: len(lines)}

	type rawLine struct {
		index int
		text  string
	}
	var raws []rawLine

	// Collect header candidates. Data starts at the first numeric-led
	// line, or at the second non-unit line: identifiers can be plain
	// text, so once a name line is held, any further line that is not a
	// unit row is a data row.
	haveName := false
	for i, l := range lines {
		line := strings.TrimSpace(l)
		if line == "" || strings.HasPrefix(line, comment) {
			continue
		}
		if isDataLine(line) {
			h.DataStart = i
			break
		}
		if strings.HasPrefix(line, "---") {
			continue
		}
		d := DelimWhitespace
		if commaOutsideParens(line) {
			d = DelimComma
		}
		if !isUnitRow(d.Split(line)) {
			if haveName {
				h.DataStart = i
				break
			}
			haveName = true
		}
		raws = append(raws, rawLine{index: i, text: line})
	}
	if len(raws) == 0 {
		return h
	}

	for _, r := range raws {
		if commaOutsideParens(r.text) {
			h.Delim = DelimComma
			break
		}
	}

	candidates := make([]headerLine, len(raws))
	for i, r := range raws {
		candidates[i] = headerLine{index: r.index, fields: h.Delim.Split(r.text)}
	}

	// Pick the name line: the widest candidate that is not a unit row.
	nameIdx := -1
	for i, c := range candidates {
		if isUnitRow(c.fields) {
			continue
		}
		if nameIdx < 0 || len(c.fields) > len(candidates[nameIdx].fields) {
			nameIdx = i
		}
	}
	if nameIdx < 0 {
		return h
	}

	h.Columns = nameFields(candidates[nameIdx].fields, h.Delim)
	if len(h.Columns) == 0 {
		return h
	}

	// Attach units from unit rows, nearest line first.
	nameLine := candidates[nameIdx].index
	assigned := make([]bool, len(h.Columns))
	for i := range h.Columns {
		assigned[i] = h.Columns[i].Unit != ""
	}

	unitRows := make([]headerLine, 0, len(candidates))
	for i, c := range candidates {
		if i != nameIdx && isUnitRow(c.fields) {
			unitRows = append(unitRows, c)
		}
	}
	for i := 1; i < len(unitRows); i++ {
		for j := i; j > 0 && lineDistance(unitRows[j].index, nameLine) < lineDistance(unitRows[j-1].index, nameLine); j-- {
			unitRows[j], unitRows[j-1] = unitRows[j-1], unitRows[j]
		}
	}

	for _, row := range unitRows {
		for pos, field := range row.fields {
			if pos >= len(h.Columns) {
				break
			}
			unit := unitToken(field)
			if unit == "" || assigned[pos] {
				continue
			}
			h.Columns[pos].Unit = unit
			assigned[pos] = true
		}
	}

	return h
}

// nameFields converts the name line's fields into column descriptors,
// folding inline parenthesized units into the preceding name.
func nameFields(fields []string, delim Delimiter) []domain.ColumnDescriptor {
	var cols []domain.ColumnDescriptor
	for _, f := range fields {
		if f == "" {
			continue
		}

		if delim == DelimComma {
			col := domain.ColumnDescriptor{Name: f}
			if m := inlineUnitRE.FindStringSubmatch(f); m != nil && m[1] != "" {
				col = domain.ColumnDescriptor{Name: m[1], Unit: m[2]}
			}
			cols = append(cols, col)
			continue
		}

		// Whitespace split: a fully parenthesized token is the unit of
		// the previous name.
		if strings.HasPrefix(f, "(") && strings.HasSuffix(f, ")") && len(cols) > 0 && cols[len(cols)-1].Unit == "" {
			cols[len(cols)-1].Unit = strings.Trim(f, "()")
			continue
		}
		cols = append(cols, domain.ColumnDescriptor{Name: f})
	}
	return cols
}

// isUnitRow reports whether every field of a candidate line is a unit
// token, a placeholder, or the literal "Units" label.
func isUnitRow(fields []string) bool {
	if len(fields) == 0 {
		return false
	}
	meaningful := false
	for _, f := range fields {
		switch {
		case f == "" || f == "-":
		case strings.EqualFold(f, "units") || strings.EqualFold(f, "unit"):
		case strings.EqualFold(f, "n/a"):
		case strings.HasPrefix(f, "(") && strings.HasSuffix(f, ")"):
			meaningful = true
		case knownUnits[strings.ToLower(f)]:
			meaningful = true
		default:
			return false
		}
	}
	return meaningful
}

// unitToken extracts the unit from one unit-row field, empty when the
// field is a placeholder.
func unitToken(field string) string {
	f := strings.TrimSpace(field)
	f = strings.Trim(f, "()")
	switch {
	case f == "" || f == "-":
		return ""
	case strings.EqualFold(f, "units") || strings.EqualFold(f, "unit"):
		return ""
	case strings.EqualFold(f, "n/a"):
		return ""
	}
	return f
}

// commaOutsideParens reports whether a line contains a comma that is
// not inside parentheses. Parenthesized commas, as in
// "Junctions (Up,Down)", do not make a section comma-delimited.
func commaOutsideParens(line string) bool {
	depth := 0
	for _, r := range line {
		switch r {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				return true
			}
		}
	}
	return false
}

// isDataLine reports whether a trimmed line starts a data row: a
// leading digit, optionally behind a sign or decimal point.
func isDataLine(line string) bool {
	if line == "" {
		return false
	}
	if line[0] >= '0' && line[0] <= '9' {
		return true
	}
	if (line[0] == '-' || line[0] == '+' || line[0] == '.') && len(line) > 1 {
		return line[1] >= '0' && line[1] <= '9'
	}
	return false
}

func lineDistance(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
