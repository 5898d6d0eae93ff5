package domain

// Elevation column keys shared by the profile parser and the summary
// table. Elevation sections report everything in feet.
const (
	ColLengthAlongPipe = "Length Along Pipe (feet)"
	ColSegmentLength   = "Length of Segment (feet)"
	ColElevation       = "Elevation (feet)"
)

// ElevationSummary holds the per-pipe statistics derived from one
// pipe's elevation profile.
//
// Invariants: Min <= Start <= Max, Min <= End <= Max,
// Change == End - Start, TotalLength == sum of segment lengths.
// A single-segment profile has Change == 0 and Min == Max.
type ElevationSummary struct {
	// Pipe is the pipe identifier as it appears in the section,
	// e.g. "P2 (Mainline)".
	Pipe string

	// NumSegments is the number of profile segments, >= 1.
	NumSegments int

	// TotalLength is the sum of segment lengths in feet.
	TotalLength float64

	// Start is the elevation of the first segment in file order.
	Start float64

	// End is the elevation of the last segment in file order.
	End float64

	// Change is End minus Start.
	Change float64

	// Min is the lowest elevation across all segments.
	Min float64

	// Max is the highest elevation across all segments.
	Max float64
}

// ElevationSummaryColumns is the column set of the elevation summary
// table, in export order.
func ElevationSummaryColumns() []ColumnDescriptor {
	return []ColumnDescriptor{
		{Name: "Pipe"},
		{Name: "Num Segments"},
		{Name: "Total Length", Unit: "feet"},
		{Name: "Start Elevation", Unit: "feet"},
		{Name: "End Elevation", Unit: "feet"},
		{Name: "Elevation Change", Unit: "feet"},
		{Name: "Min Elevation", Unit: "feet"},
		{Name: "Max Elevation", Unit: "feet"},
	}
}

// Record converts the summary to a table record keyed by
// ElevationSummaryColumns.
func (s ElevationSummary) Record() Record {
	return Record{
		"Pipe":                    TextValue(s.Pipe),
		"Num Segments":            NumberValue(float64(s.NumSegments)),
		"Total Length (feet)":     NumberValue(s.TotalLength),
		"Start Elevation (feet)":  NumberValue(s.Start),
		"End Elevation (feet)":    NumberValue(s.End),
		"Elevation Change (feet)": NumberValue(s.Change),
		"Min Elevation (feet)":    NumberValue(s.Min),
		"Max Elevation (feet)":    NumberValue(s.Max),
	}
}
