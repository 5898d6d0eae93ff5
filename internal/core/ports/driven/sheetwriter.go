package driven

import (
	"context"

	"github.com/hydraworks-labs/inpsheet-cli/internal/core/domain"
)

// Sheet is one named table in an export workbook. Names are already
// sanitized and truncated by the export service; writers use them
// verbatim.
type Sheet struct {
	Name  string
	Table *domain.Table
}

// SheetWriter persists an ordered set of sheets to a destination. The
// meaning of dest depends on the implementation: a directory for CSV,
// a database file for SQLite.
type SheetWriter interface {
	// WriteWorkbook writes all sheets, preserving their order. It
	// creates dest if needed and overwrites previous contents.
	WriteWorkbook(ctx context.Context, dest string, sheets []Sheet) error
}
