package inp

import (
	"strings"

	"github.com/hydraworks-labs/inpsheet-cli/internal/core/domain"
	"github.com/hydraworks-labs/inpsheet-cli/internal/logger"
)

// Options configure a Parser. Zero values select the de facto source
// format conventions.
type Options struct {
	// SectionMarker overrides the marker pattern; it must capture the
	// section label in its first subexpression.
	SectionMarker string

	// CommentPrefix overrides the comment line prefix.
	CommentPrefix string
}

// Parser converts raw .inp report text into a ParsedNetwork. It is
// stateless and safe for concurrent use; each Parse builds a fresh
// store.
type Parser struct {
	splitter *Splitter
}

// New creates a parser with the given options.
func New(opts Options) (*Parser, error) {
	s, err := NewSplitter(opts.SectionMarker, opts.CommentPrefix)
	if err != nil {
		return nil, err
	}
	return &Parser{splitter: s}, nil
}

// Parse runs the full pipeline over the loaded file content: split,
// classify, parse each section by kind, derive elevation statistics
// and connectivity. It never fails: structural problems in one
// section are recovered locally and never abort the others, and a
// file with no recognizable markers yields an empty store.
func (p *Parser) Parse(content string) *domain.ParsedNetwork {
	n := domain.NewParsedNetwork()
	comment := p.splitter.comment

	var sections []domain.RawSection
	for sec := range p.splitter.Sections(content) {
		sections = append(sections, sec)
	}

	n.Stats.Sections = len(sections)
	for _, sec := range sections {
		if sec.Kind == domain.KindUnrecognized {
			// Expected for decorative and metadata blocks.
			n.Stats.Dropped++
			logger.Debug("dropping unrecognized section %q", sec.Label)
			continue
		}
		n.Stats.Recognized++
		logger.Debug("section %q classified as %s", sec.Label, sec.Kind)

		switch sec.Kind {
		case domain.KindPipeDetail:
			t := ParsePipeDetail(strings.Join(sec.Lines, "\n"))
			if !t.IsEmpty() {
				n.PutTable(domain.SectionPipeDetailSummary, t)
				n.Stats.Rows += t.NumRows()
			}

		case domain.KindElevation:
			profiles, skipped := ParseElevations(sec.Lines, comment)
			n.Stats.SkippedRows += skipped
			for _, prof := range profiles {
				n.PutElevationDetail(prof.Pipe, prof.Segments)
				n.Stats.Rows += prof.Segments.NumRows()
			}
			if summary := SummarizeProfiles(profiles); !summary.IsEmpty() {
				n.PutTable(domain.SectionPipeElevationsSummary, summary)
			}

		case domain.KindTransient:
			series, skipped := ParseTransient(sec.Lines, comment)
			n.Stats.SkippedRows += skipped
			for _, eq := range series {
				n.PutTransient(eq.Equipment, eq.Series)
				n.Stats.Rows += eq.Series.NumRows()
			}

		case domain.KindControlValve, domain.KindAssignedPressure:
			t, skipped := ParseMultiBlockTable(sec.Lines, comment)
			p.putTable(n, sec, t, skipped)

		default:
			t, skipped := ParseTableSection(sec.Lines, comment)
			p.putTable(n, sec, t, skipped)
		}
	}

	nodes := BuildNodeMap(sections)
	if conn := ExtractConnectivity(sections, nodes); !conn.IsEmpty() {
		n.PutTable(domain.SectionNetworkConnectivity, conn)
		n.Stats.Rows += conn.NumRows()
	}

	if n.Stats.SkippedRows > 0 {
		logger.Warn("skipped %d malformed rows", n.Stats.SkippedRows)
	}
	return n
}

// putTable stores a columnar section result, skipping sections whose
// header could not be parsed.
func (p *Parser) putTable(n *domain.ParsedNetwork, sec domain.RawSection, t *domain.Table, skipped int) {
	n.Stats.SkippedRows += skipped
	if t == nil || len(t.Columns) == 0 {
		logger.Warn("section %q has no parseable header, skipping", sec.Label)
		return
	}
	n.PutTable(domain.CanonicalName(sec.Label), t)
	n.Stats.Rows += t.NumRows()
}
