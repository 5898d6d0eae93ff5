package inp

import (
	"regexp"
	"strings"

	"github.com/hydraworks-labs/inpsheet-cli/internal/core/domain"
)

// pipeHeaderRE matches the line opening one pipe's profile,
// e.g. "P2 (Mainline)".
var pipeHeaderRE = regexp.MustCompile(`^([A-Za-z]+\d+)\s+\(([^)]+)\)\s*$`)

// PipeProfile holds one pipe's elevation segments in file order.
type PipeProfile struct {
	// Pipe is the profile key, e.g. "P2 (Mainline)".
	Pipe string

	// Segments is the per-segment table (position, length, elevation).
	Segments *domain.Table
}

// elevationColumns is the fixed column set of elevation profiles.
func elevationColumns() []domain.ColumnDescriptor {
	return []domain.ColumnDescriptor{
		{Name: "Length Along Pipe", Unit: "feet"},
		{Name: "Length of Segment", Unit: "feet"},
		{Name: "Elevation", Unit: "feet"},
	}
}

// ParseElevations parses a Pipe Elevations section into per-pipe
// segment tables, in first-seen pipe order. Rows whose shape does not
// match the three-column profile layout are skipped and counted.
func ParseElevations(lines []string, comment string) (profiles []PipeProfile, skipped int) {
	var current *PipeProfile

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, comment) {
			continue
		}

		if m := pipeHeaderRE.FindStringSubmatch(line); m != nil {
			if current != nil && !current.Segments.IsEmpty() {
				profiles = append(profiles, *current)
			}
			current = &PipeProfile{
				Pipe:     m[1] + " (" + m[2] + ")",
				Segments: domain.NewTable(elevationColumns()),
			}
			continue
		}

		// Column header and unit lines of the profile layout.
		if strings.Contains(line, "Length") && strings.Contains(line, "Elevation") {
			continue
		}
		if strings.Contains(line, "Along Pipe") || strings.Contains(line, "of Segment") {
			continue
		}
		if strings.HasPrefix(line, "(feet)") || line == "n/a" {
			continue
		}

		if current == nil {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 3 {
			skipped++
			continue
		}

		along, okA := ParseNumber(fields[0])
		segLen, okL := ParseNumber(fields[1])
		elev, okE := ParseNumber(fields[2])
		if !okA || !okL || !okE {
			skipped++
			continue
		}

		current.Segments.Append(domain.Record{
			domain.ColLengthAlongPipe: along,
			domain.ColSegmentLength:   segLen,
			domain.ColElevation:       elev,
		})
	}

	if current != nil && !current.Segments.IsEmpty() {
		profiles = append(profiles, *current)
	}
	return profiles, skipped
}

// SummarizeProfile derives the per-pipe elevation statistics from one
// profile. Start and end come from the first and last segment with a
// numeric elevation in file order; min and max range over all
// segments. A single-segment profile yields change 0 and min == max.
// ok is false when no segment carries a numeric elevation.
func SummarizeProfile(p PipeProfile) (domain.ElevationSummary, bool) {
	sum := domain.ElevationSummary{
		Pipe:        p.Pipe,
		NumSegments: p.Segments.NumRows(),
	}

	first := true
	for _, row := range p.Segments.Rows {
		if l := row[domain.ColSegmentLength]; l.Numeric {
			sum.TotalLength += l.Number
		}

		e := row[domain.ColElevation]
		if !e.Numeric {
			continue
		}
		if first {
			sum.Start = e.Number
			sum.Min = e.Number
			sum.Max = e.Number
			first = false
		}
		sum.End = e.Number
		if e.Number < sum.Min {
			sum.Min = e.Number
		}
		if e.Number > sum.Max {
			sum.Max = e.Number
		}
	}
	if first {
		return domain.ElevationSummary{}, false
	}

	sum.Change = sum.End - sum.Start
	return sum, true
}

// SummarizeProfiles builds the elevation summary table, one record per
// pipe in profile order.
func SummarizeProfiles(profiles []PipeProfile) *domain.Table {
	t := domain.NewTable(domain.ElevationSummaryColumns())
	for _, p := range profiles {
		if sum, ok := SummarizeProfile(p); ok {
			t.Append(sum.Record())
		}
	}
	return t
}
