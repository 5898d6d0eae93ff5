package driving

import (
	"context"

	"github.com/hydraworks-labs/inpsheet-cli/internal/core/domain"
	"github.com/hydraworks-labs/inpsheet-cli/internal/core/ports/driven"
)

// ExportOptions control how a parsed network is flattened into sheets.
type ExportOptions struct {
	// DetailedSegments adds one sheet per elevation profile and one
	// per transient series on top of the summary sheets.
	DetailedSegments bool
}

// ExportService flattens a parsed network into ordered workbook sheets
// and writes them through a driven.SheetWriter.
type ExportService interface {
	// BuildSheets returns the export sheets in workbook order:
	// connectivity first, then the stored sections, then the optional
	// detail sheets. An empty network returns domain.ErrNoSections.
	BuildSheets(network *domain.ParsedNetwork, opts ExportOptions) ([]driven.Sheet, error)

	// Export builds the sheets and writes them to dest.
	Export(ctx context.Context, network *domain.ParsedNetwork, dest string, opts ExportOptions) error
}
