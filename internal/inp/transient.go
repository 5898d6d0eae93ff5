package inp

import (
	"regexp"
	"strings"

	"github.com/hydraworks-labs/inpsheet-cli/internal/core/domain"
)

// transientBlockRE opens one equipment's transient block,
// e.g. "J1 (Pump) Transient Data:".
var transientBlockRE = regexp.MustCompile(`([A-Za-z]+\d+)\s+\(([^)]+)\)\s+Transient Data:`)

// transientHeaderRE extracts the value column name and unit from the
// header line following "Time Data", e.g. "Time    Speed (percent)".
var transientHeaderRE = regexp.MustCompile(`^Time\s+(.+?)\s*\(([^)]+)\)\s*$`)

// EquipmentSeries holds one equipment's time-indexed values.
type EquipmentSeries struct {
	// Equipment is the series key, e.g. "J1 (Pump)".
	Equipment string

	// Series is the two-column time table.
	Series *domain.Table
}

// ParseTransient parses a Transient Data Table section into one time
// series per equipment, in first-seen order. Two-field rows that fail
// numeric coercion are skipped and counted.
func ParseTransient(lines []string, comment string) (series []EquipmentSeries, skipped int) {
	content := strings.Join(lines, "\n")
	matches := transientBlockRE.FindAllStringSubmatchIndex(content, -1)

	for i, m := range matches {
		id := content[m[2]:m[3]]
		typ := content[m[4]:m[5]]
		end := len(content)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		block := content[m[1]:end]

		if !strings.Contains(block, "Time Data") {
			continue
		}

		colName, unit := "Value", ""
		for _, bl := range strings.Split(block, "\n") {
			if hm := transientHeaderRE.FindStringSubmatch(strings.TrimSpace(bl)); hm != nil {
				colName, unit = strings.TrimSpace(hm[1]), hm[2]
				break
			}
		}

		cols := []domain.ColumnDescriptor{
			{Name: "Time"},
			{Name: colName, Unit: unit},
		}
		t := domain.NewTable(cols)
		valueKey := cols[1].Key()

		for _, bl := range strings.Split(block, "\n") {
			line := strings.TrimSpace(bl)
			if line == "" || strings.HasPrefix(line, comment) {
				continue
			}
			fields := strings.Fields(line)
			if len(fields) != 2 || !isDataLine(line) {
				continue
			}

			tv, okT := ParseNumber(fields[0])
			vv, okV := ParseNumber(fields[1])
			if !okT || !okV {
				skipped++
				continue
			}
			t.Append(domain.Record{"Time": tv, valueKey: vv})
		}

		if !t.IsEmpty() {
			series = append(series, EquipmentSeries{
				Equipment: id + " (" + typ + ")",
				Series:    t,
			})
		}
	}
	return series, skipped
}
