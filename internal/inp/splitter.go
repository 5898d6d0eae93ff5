package inp

import (
	"fmt"
	"iter"
	"regexp"
	"strings"

	"github.com/hydraworks-labs/inpsheet-cli/internal/core/domain"
)

// DefaultSectionMarker matches the marker lines delimiting report
// sections, e.g. "*** Pipe Detail Summary ***". The grammar is
// configurable; this is the de facto convention of the source format.
const DefaultSectionMarker = `^\*{3}\s+(.+?)\s+\*{3}\s*$`

// DefaultCommentPrefix marks comment lines within a section block.
const DefaultCommentPrefix = ";"

// Splitter cuts raw report text into labelled, classified sections.
type Splitter struct {
	marker  *regexp.Regexp
	comment string
}

// NewSplitter creates a splitter with the given marker pattern and
// comment prefix. Empty arguments select the defaults. The pattern
// must capture the section label in its first subexpression.
func NewSplitter(markerPattern, commentPrefix string) (*Splitter, error) {
	if markerPattern == "" {
		markerPattern = DefaultSectionMarker
	}
	if commentPrefix == "" {
		commentPrefix = DefaultCommentPrefix
	}

	re, err := regexp.Compile(markerPattern)
	if err != nil {
		return nil, fmt.Errorf("section marker pattern: %w", err)
	}
	if re.NumSubexp() < 1 {
		return nil, fmt.Errorf("section marker pattern must capture the label: %w", domain.ErrInvalidInput)
	}

	return &Splitter{marker: re, comment: commentPrefix}, nil
}

// Sections yields the marker-delimited sections of content in file
// order. Lines before the first marker are discarded; blank and
// comment lines inside a section are preserved in the block and
// skipped later by header and row parsing. The sequence is lazy and
// single-pass; call Sections again to restart from the top.
func (s *Splitter) Sections(content string) iter.Seq[domain.RawSection] {
	return func(yield func(domain.RawSection) bool) {
		var current *domain.RawSection

		lines := strings.Split(content, "\n")
		if n := len(lines); n > 0 && lines[n-1] == "" {
			// A trailing newline is file termination, not an empty line.
			lines = lines[:n-1]
		}

		for _, raw := range lines {
			line := strings.TrimRight(raw, "\r")

			if m := s.marker.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
				if current != nil && !yield(*current) {
					return
				}
				label := strings.TrimSpace(m[1])
				current = &domain.RawSection{
					Label: label,
					Kind:  domain.ClassifySection(label),
				}
				continue
			}

			if current != nil {
				current.Lines = append(current.Lines, line)
			}
		}

		if current != nil {
			yield(*current)
		}
	}
}

// IsComment reports whether a line is a comment under this splitter's
// comment prefix.
func (s *Splitter) IsComment(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), s.comment)
}

// CommentPrefix returns the configured comment prefix.
func (s *Splitter) CommentPrefix() string {
	return s.comment
}
