package domain

import "strings"

// ColumnMatching returns the key of the first column whose name
// contains substr, case-insensitively. Unit suffixes are part of the
// key, so "diameter" matches "Diameter (inches)".
func (t *Table) ColumnMatching(substr string) (string, bool) {
	substr = strings.ToLower(substr)
	for _, key := range t.Keys() {
		if strings.Contains(strings.ToLower(key), substr) {
			return key, true
		}
	}
	return "", false
}

// PipeNames returns the Name column of the pipe detail table in row
// order, empty when the section was absent.
func (n *ParsedNetwork) PipeNames() []string {
	t := n.PipeDetailSummary()
	key, ok := t.ColumnMatching("name")
	if !ok {
		return nil
	}

	names := make([]string, 0, t.NumRows())
	for i := range t.Rows {
		names = append(names, t.Cell(i, key).String())
	}
	return names
}

// pipeAttribute maps pipe IDs to the first detail column matching
// substr. Pipes missing the attribute are omitted.
func (n *ParsedNetwork) pipeAttribute(substr string) map[string]Value {
	t := n.PipeDetailSummary()
	key, ok := t.ColumnMatching(substr)
	if !ok {
		return nil
	}
	idKey, ok := t.ColumnMatching("pipe")
	if !ok {
		return nil
	}

	out := make(map[string]Value, t.NumRows())
	for i := range t.Rows {
		v := t.Cell(i, key)
		if v.IsMissing() {
			continue
		}
		out[t.Cell(i, idKey).String()] = v
	}
	return out
}

// PipeDiameters returns pipe ID → diameter from the detail table.
func (n *ParsedNetwork) PipeDiameters() map[string]Value {
	return n.pipeAttribute("diameter")
}

// PipeLengths returns pipe ID → length from the detail table.
func (n *ParsedNetwork) PipeLengths() map[string]Value {
	return n.pipeAttribute("length")
}

// PipeRoughness returns pipe ID → roughness from the detail table.
func (n *ParsedNetwork) PipeRoughness() map[string]Value {
	return n.pipeAttribute("roughness")
}
