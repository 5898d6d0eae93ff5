package inp

import (
	"regexp"
	"strings"

	"github.com/hydraworks-labs/inpsheet-cli/internal/core/domain"
)

// componentTypes maps section label keywords to readable component
// types for the node map. Order matters: more specific labels first.
var componentTypes = []struct {
	keyword string
	comp    string
}{
	{"Control Valve Table", "Control Valve"},
	{"Check Valve Table", "Check Valve"},
	{"Relief Valve Table", "Relief Valve"},
	{"Assigned Pressure Table", "Boundary"},
	{"Assigned Flow Table", "Source"},
	{"Surge Tank Table", "Surge Tank"},
	{"Reservoir Table", "Reservoir"},
	{"Branch Table", "Junction"},
	{"Valve Table", "Valve"},
	{"Pump Table", "Pump"},
}

var (
	// upDownRE matches connectivity rows: pipe ID followed by an
	// "up, down" node pair, e.g. "17   Main   30, 280".
	upDownRE = regexp.MustCompile(`^\s*(\d+)\s+.*?(\d+)\s*,\s*(\d+)`)

	// pipeRefRE matches pipe references scattered across component
	// tables, e.g. "(P17)".
	pipeRefRE = regexp.MustCompile(`\(P(\d+)\)`)
)

// connectivityColumns is the column set of the derived table.
func connectivityColumns() []domain.ColumnDescriptor {
	return []domain.ColumnDescriptor{
		{Name: "Name"},
		{Name: "Upstream Node"},
		{Name: "Downstream Node"},
		{Name: "Notes"},
	}
}

// BuildNodeMap scans all component tables and maps node IDs to
// descriptive names, e.g. "30" to "Junction 30 (J 84)". The first
// table naming a node wins; later attribute blocks that reuse the ID
// do not overwrite it.
func BuildNodeMap(sections []domain.RawSection) map[string]string {
	nodes := make(map[string]string)

	for _, sec := range sections {
		comp := componentType(sec.Label)
		if comp == "" {
			continue
		}

		for _, raw := range sec.Lines {
			line := strings.TrimSpace(raw)
			if line == "" || !isDataLine(line) {
				continue
			}
			parts := strings.Fields(line)
			if len(parts) < 2 {
				continue
			}

			id := parts[0]
			if _, seen := nodes[id]; seen {
				continue
			}

			name := parts[1]
			switch {
			// Names split across tokens: "J 84".
			case len(parts) > 2 && parts[1] == "J" && allDigits(parts[2]):
				name = "J " + parts[2]
			// Multi-word names: "Wiedeman Federal".
			case len(parts) > 2 && parts[2] != "Yes" && parts[2] != "No" && !numberRE.MatchString(parts[2]):
				name = parts[1] + " " + parts[2]
			}

			nodes[id] = comp + " " + id + " (" + name + ")"
		}
	}
	return nodes
}

// ExtractConnectivity derives the pipe connectivity table. It prefers
// a table carrying a "Junctions (Up,Down)" column; when none exists it
// falls back to collecting "(P<n>)" pipe references from component
// tables, pairing each pipe's first two referencing nodes.
func ExtractConnectivity(sections []domain.RawSection, nodes map[string]string) *domain.Table {
	t := domain.NewTable(connectivityColumns())

	for _, sec := range sections {
		content := strings.Join(sec.Lines, "\n")
		if !strings.Contains(content, "Junctions") || !strings.Contains(content, "Up,Down") {
			continue
		}

		for _, raw := range sec.Lines {
			m := upDownRE.FindStringSubmatch(raw)
			if m == nil {
				continue
			}
			t.Append(domain.Record{
				"Name":            domain.TextValue("Pipe_" + m[1]),
				"Upstream Node":   domain.TextValue(nodeName(nodes, m[2])),
				"Downstream Node": domain.TextValue(nodeName(nodes, m[3])),
				"Notes":           domain.TextValue(""),
			})
		}
		if !t.IsEmpty() {
			return t
		}
	}

	// Fallback: infer pipe endpoints from component references.
	links := make(map[string][]string)
	var order []string

	for _, sec := range sections {
		if !strings.Contains(sec.Label, "Table") {
			continue
		}
		for _, raw := range sec.Lines {
			line := strings.TrimSpace(raw)
			if line == "" || !isDataLine(line) {
				continue
			}
			parts := strings.Fields(line)
			label := nodeName(nodes, parts[0])

			for _, ref := range pipeRefRE.FindAllStringSubmatch(line, -1) {
				key := "Pipe_" + ref[1]
				if _, seen := links[key]; !seen {
					order = append(order, key)
				}
				if !contains(links[key], label) {
					links[key] = append(links[key], label)
				}
			}
		}
	}

	for _, key := range order {
		ends := links[key]
		up, down := "Unknown", "Boundary/Open"
		if len(ends) > 0 {
			up = ends[0]
		}
		if len(ends) > 1 {
			down = ends[1]
		}
		t.Append(domain.Record{
			"Name":            domain.TextValue(key),
			"Upstream Node":   domain.TextValue(up),
			"Downstream Node": domain.TextValue(down),
			"Notes":           domain.TextValue("Inferred from Components"),
		})
	}
	return t
}

func componentType(label string) string {
	for _, ct := range componentTypes {
		if strings.Contains(label, ct.keyword) {
			return ct.comp
		}
	}
	return ""
}

func nodeName(nodes map[string]string, id string) string {
	if name, ok := nodes[id]; ok {
		return name
	}
	return "Node " + id
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
