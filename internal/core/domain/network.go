package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Well-known canonical section names produced by the parser in
// addition to the tables named after their source labels.
const (
	SectionPipeDetailSummary     = "Pipe_Detail_Summary"
	SectionPipeElevationsSummary = "Pipe_Elevations_Summary"
	SectionNetworkConnectivity   = "Network_Connectivity"
)

// ParseStats counts what one parse observed. Locally recovered
// conditions (skipped rows, dropped sections) are counted here rather
// than surfaced as errors.
type ParseStats struct {
	// Sections is the number of marker-delimited sections found.
	Sections int

	// Recognized is the number of sections with a known kind.
	Recognized int

	// Dropped is the number of unrecognized sections.
	Dropped int

	// Rows is the number of records parsed across all tables.
	Rows int

	// SkippedRows counts row-shape mismatches across all sections.
	SkippedRows int
}

// ParsedNetwork is the immutable section store built by one parse of
// one source file. It is constructed once by the parser and read-only
// afterwards, so concurrent readers need no locking.
type ParsedNetwork struct {
	// ID uniquely identifies this parse run.
	ID string

	// Path is the source file path, empty when parsed from memory.
	Path string

	// Stats summarises the parse.
	Stats ParseStats

	tables         map[string]*Table
	order          []string
	elevDetail     map[string]*Table
	elevOrder      []string
	transient      map[string]*Table
	transientOrder []string
}

// NewParsedNetwork creates an empty section store.
func NewParsedNetwork() *ParsedNetwork {
	return &ParsedNetwork{
		tables:     make(map[string]*Table),
		elevDetail: make(map[string]*Table),
		transient:  make(map[string]*Table),
	}
}

// PutTable stores a table under its canonical section name,
// preserving first-seen order. Intended for the parser only.
func (n *ParsedNetwork) PutTable(name string, t *Table) {
	if _, ok := n.tables[name]; !ok {
		n.order = append(n.order, name)
	}
	n.tables[name] = t
}

// PutElevationDetail stores the per-segment table for one pipe.
// Intended for the parser only.
func (n *ParsedNetwork) PutElevationDetail(pipe string, t *Table) {
	if _, ok := n.elevDetail[pipe]; !ok {
		n.elevOrder = append(n.elevOrder, pipe)
	}
	n.elevDetail[pipe] = t
}

// PutTransient stores the time-series table for one piece of
// equipment. Intended for the parser only.
func (n *ParsedNetwork) PutTransient(equipment string, t *Table) {
	if _, ok := n.transient[equipment]; !ok {
		n.transientOrder = append(n.transientOrder, equipment)
	}
	n.transient[equipment] = t
}

// SectionNames returns the canonical section names in first-seen order.
func (n *ParsedNetwork) SectionNames() []string {
	names := make([]string, len(n.order))
	copy(names, n.order)
	return names
}

// Section returns the table stored under a canonical section name. A
// name absent from the store yields an empty table, never nil: callers
// branch on emptiness, not on presence.
func (n *ParsedNetwork) Section(name string) *Table {
	if t, ok := n.tables[name]; ok {
		return t
	}
	return NewTable(nil)
}

// PipeDetailSummary returns the pipe attribute table, empty when the
// section was absent from the source file.
func (n *ParsedNetwork) PipeDetailSummary() *Table {
	return n.Section(SectionPipeDetailSummary)
}

// PipeElevationsSummary returns the per-pipe elevation statistics
// table, empty when no elevation section was present.
func (n *ParsedNetwork) PipeElevationsSummary() *Table {
	return n.Section(SectionPipeElevationsSummary)
}

// Connectivity returns the derived pipe connectivity table, empty when
// nothing could be derived.
func (n *ParsedNetwork) Connectivity() *Table {
	return n.Section(SectionNetworkConnectivity)
}

// PipeElevationsDetailed returns the per-segment records for one pipe.
// Unknown pipe identifiers are ErrNotFound. The identifier may be the
// full key ("P2 (Mainline)") or the bare leading ID ("P2").
func (n *ParsedNetwork) PipeElevationsDetailed(pipe string) (*Table, error) {
	if t, ok := n.elevDetail[pipe]; ok {
		return t, nil
	}
	if key, ok := matchBareID(n.elevOrder, pipe); ok {
		return n.elevDetail[key], nil
	}
	return nil, fmt.Errorf("pipe %q: %w", pipe, ErrNotFound)
}

// ElevationPipes returns the pipe identifiers with detailed elevation
// profiles, in first-seen order.
func (n *ParsedNetwork) ElevationPipes() []string {
	pipes := make([]string, len(n.elevOrder))
	copy(pipes, n.elevOrder)
	return pipes
}

// TransientData returns the time-series table for one piece of
// equipment. Unknown identifiers are ErrNotFound. The identifier may
// be the full key ("P1 (Pump)") or the bare leading ID ("P1").
func (n *ParsedNetwork) TransientData(equipment string) (*Table, error) {
	if t, ok := n.transient[equipment]; ok {
		return t, nil
	}
	if key, ok := matchBareID(n.transientOrder, equipment); ok {
		return n.transient[key], nil
	}
	return nil, fmt.Errorf("equipment %q: %w", equipment, ErrNotFound)
}

// TransientEquipment returns the equipment identifiers with transient
// data, in first-seen order.
func (n *ParsedNetwork) TransientEquipment() []string {
	ids := make([]string, len(n.transientOrder))
	copy(ids, n.transientOrder)
	return ids
}

// IsEmpty reports whether the parse produced no sections at all.
func (n *ParsedNetwork) IsEmpty() bool {
	return len(n.order) == 0 && len(n.elevOrder) == 0 && len(n.transientOrder) == 0
}

// Summary renders a human-readable report of section names and row
// counts. Diagnostic only; the exact formatting is not a contract.
func (n *ParsedNetwork) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Parsed %d sections (%d recognized, %d dropped)\n",
		n.Stats.Sections, n.Stats.Recognized, n.Stats.Dropped)
	if n.Path != "" {
		fmt.Fprintf(&b, "Source: %s\n", n.Path)
	}
	for _, name := range n.order {
		fmt.Fprintf(&b, "  %-32s %d rows\n", name, n.tables[name].NumRows())
	}
	if len(n.elevOrder) > 0 {
		fmt.Fprintf(&b, "  Elevation profiles: %d pipes\n", len(n.elevOrder))
	}
	if len(n.transientOrder) > 0 {
		fmt.Fprintf(&b, "  Transient series: %d equipment\n", len(n.transientOrder))
	}
	if n.Stats.SkippedRows > 0 {
		fmt.Fprintf(&b, "  Skipped %d malformed rows\n", n.Stats.SkippedRows)
	}
	return b.String()
}

// matchBareID finds the unique key whose leading identifier equals id,
// e.g. "P2" matches "P2 (Mainline)". Ambiguous matches are rejected.
func matchBareID(keys []string, id string) (string, bool) {
	found := ""
	for _, k := range keys {
		bare, _, _ := strings.Cut(k, " ")
		if bare == id {
			if found != "" {
				return "", false
			}
			found = k
		}
	}
	return found, found != ""
}

// SortedKeys is a small helper for deterministic iteration over
// record maps in tests and exports.
func SortedKeys(r Record) []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
