package inp

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/hydraworks-labs/inpsheet-cli/internal/core/domain"
)

var (
	// pipeBlockRE opens one pipe's detailed attribute block.
	pipeBlockRE = regexp.MustCompile(`Pipe\s+(\d+)\s+Detailed Input Data`)

	pipeNameRE = regexp.MustCompile(`Name:\s*(.+)`)
	pipeGeomRE = regexp.MustCompile(`Geometry:\s*(.+)`)

	// pipePropRE matches attribute lines of the form
	// "Length= 50.39 feet".
	pipePropRE = regexp.MustCompile(`([A-Za-z][A-Za-z &]*?)=\s*([-+]?[0-9.]+)\s+([a-z/]+)`)
)

// ParsePipeDetail parses the key-value "Pipe Detail Summary" section
// into one row per pipe. Attribute units are folded into the column
// keys; attributes absent from a given pipe leave missing cells.
func ParsePipeDetail(content string) *domain.Table {
	matches := pipeBlockRE.FindAllStringSubmatchIndex(content, -1)
	if len(matches) == 0 {
		return domain.NewTable(nil)
	}

	type pipeInfo struct {
		id    string
		attrs map[string]domain.Value
	}

	var pipes []pipeInfo
	var propOrder []string
	units := make(map[string]string)

	for i, m := range matches {
		num := content[m[2]:m[3]]
		end := len(content)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		block := content[m[1]:end]

		info := pipeInfo{
			id:    "Pipe_" + num,
			attrs: make(map[string]domain.Value),
		}

		if nm := pipeNameRE.FindStringSubmatch(block); nm != nil {
			info.attrs["Name"] = domain.TextValue(strings.TrimSpace(nm[1]))
		}
		if gm := pipeGeomRE.FindStringSubmatch(block); gm != nil {
			info.attrs["Geometry"] = domain.TextValue(strings.TrimSpace(gm[1]))
		}

		for _, pm := range pipePropRE.FindAllStringSubmatch(block, -1) {
			prop := strings.TrimSpace(pm[1])
			val, err := strconv.ParseFloat(pm[2], 64)
			if err != nil {
				continue
			}
			if _, seen := units[prop]; !seen {
				propOrder = append(propOrder, prop)
			}
			units[prop] = pm[3]
			info.attrs[prop] = domain.NumberValue(val)
		}

		pipes = append(pipes, info)
	}

	cols := []domain.ColumnDescriptor{
		{Name: "Pipe"},
		{Name: "Name"},
		{Name: "Geometry"},
	}
	for _, prop := range propOrder {
		cols = append(cols, domain.ColumnDescriptor{Name: prop, Unit: units[prop]})
	}

	t := domain.NewTable(cols)
	for _, p := range pipes {
		rec := domain.Record{"Pipe": domain.TextValue(p.id)}
		if v, ok := p.attrs["Name"]; ok {
			rec["Name"] = v
		}
		if v, ok := p.attrs["Geometry"]; ok {
			rec["Geometry"] = v
		}
		for _, prop := range propOrder {
			key := domain.ColumnDescriptor{Name: prop, Unit: units[prop]}.Key()
			if v, ok := p.attrs[prop]; ok {
				rec[key] = v
			}
		}
		t.Append(rec)
	}
	return t
}
