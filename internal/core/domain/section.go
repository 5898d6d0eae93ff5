package domain

import "strings"

// SectionKind classifies a raw section label into one of the known
// section types handled by the parser.
type SectionKind int

const (
	// KindUnrecognized marks decorative or metadata blocks. They are
	// dropped without error.
	KindUnrecognized SectionKind = iota

	// KindPipeDetail is the key-value "Pipe Detail Summary" section.
	KindPipeDetail

	// KindElevation is the per-pipe "Pipe Elevations" profile section.
	KindElevation

	// KindBranch is the columnar "Branch Table" section.
	KindBranch

	// KindPump is the columnar "Pump Table" section.
	KindPump

	// KindValve is the columnar "Valve Table" section.
	KindValve

	// KindControlValve is the multi-block "Control Valve Table" section.
	KindControlValve

	// KindAssignedPressure is the multi-block "Assigned Pressure Table" section.
	KindAssignedPressure

	// KindTransient is the per-equipment "Transient Data Table" section.
	KindTransient

	// KindGenericTable covers the remaining columnar component tables
	// (reservoirs, check valves, relief valves, surge tanks, assigned flows).
	KindGenericTable
)

// String returns a human-readable representation of the kind.
func (k SectionKind) String() string {
	switch k {
	case KindPipeDetail:
		return "PipeDetail"
	case KindElevation:
		return "Elevation"
	case KindBranch:
		return "Branch"
	case KindPump:
		return "Pump"
	case KindValve:
		return "Valve"
	case KindControlValve:
		return "ControlValve"
	case KindAssignedPressure:
		return "AssignedPressure"
	case KindTransient:
		return "Transient"
	case KindGenericTable:
		return "GenericTable"
	default:
		return "Unrecognized"
	}
}

// RawSection is one labelled block cut out of the source file.
// It is created by the splitter and never mutated after classification.
type RawSection struct {
	// Label is the free-form heading text between the section markers.
	Label string

	// Kind is the classification of Label.
	Kind SectionKind

	// Lines are the raw lines up to the next marker, blanks and
	// comments included. Header and row parsing skip those.
	Lines []string
}

// ClassifySection maps a free-form section label to a fixed kind.
// Matching is tolerant of case, surrounding whitespace and trailing
// punctuation. Unknown labels classify as KindUnrecognized.
func ClassifySection(label string) SectionKind {
	l := strings.ToLower(strings.Trim(strings.TrimSpace(label), "*:.- "))
	l = strings.Join(strings.Fields(l), " ")

	switch {
	case strings.Contains(l, "pipe detail summary"):
		return KindPipeDetail
	case strings.Contains(l, "pipe elevations"):
		return KindElevation
	case strings.Contains(l, "transient data"):
		return KindTransient
	case strings.Contains(l, "control valve"):
		return KindControlValve
	case strings.Contains(l, "assigned pressure"):
		return KindAssignedPressure
	case strings.Contains(l, "check valve"),
		strings.Contains(l, "relief valve"),
		strings.Contains(l, "surge tank"),
		strings.Contains(l, "reservoir"),
		strings.Contains(l, "assigned flow"):
		return KindGenericTable
	case strings.Contains(l, "branch"):
		return KindBranch
	case strings.Contains(l, "pump"):
		return KindPump
	case strings.Contains(l, "valve"):
		return KindValve
	case strings.Contains(l, "table"):
		return KindGenericTable
	default:
		return KindUnrecognized
	}
}

// CanonicalName converts a section label to the canonical store key,
// e.g. "Pipe Detail Summary" becomes "Pipe_Detail_Summary".
func CanonicalName(label string) string {
	name := strings.Trim(strings.TrimSpace(label), "* ")
	name = strings.Join(strings.Fields(name), " ")
	return strings.ReplaceAll(name, " ", "_")
}
