package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/hydraworks-labs/inpsheet-cli/internal/core/domain"
	"github.com/hydraworks-labs/inpsheet-cli/internal/core/ports/driven"
	"github.com/hydraworks-labs/inpsheet-cli/internal/core/ports/driving"
	"github.com/hydraworks-labs/inpsheet-cli/internal/logger"
)

// Ensure ExportService implements the interface.
var _ driving.ExportService = (*ExportService)(nil)

// maxSheetName is the workbook sheet name limit.
const maxSheetName = 31

// ExportService flattens a parsed network into ordered workbook sheets.
type ExportService struct {
	writer driven.SheetWriter
}

// NewExportService creates an export service writing through writer.
func NewExportService(writer driven.SheetWriter) *ExportService {
	return &ExportService{writer: writer}
}

// BuildSheets returns the export sheets in workbook order: the
// connectivity sheet first, then the stored sections in first-seen
// order, then per-pipe elevation and per-equipment transient sheets
// when opts.DetailedSegments is set.
func (s *ExportService) BuildSheets(network *domain.ParsedNetwork, opts driving.ExportOptions) ([]driven.Sheet, error) {
	if network == nil || network.IsEmpty() {
		return nil, domain.ErrNoSections
	}

	var sheets []driven.Sheet
	if conn := network.Connectivity(); !conn.IsEmpty() {
		sheets = append(sheets, driven.Sheet{
			Name:  sheetName(domain.SectionNetworkConnectivity),
			Table: conn,
		})
	}

	for _, name := range network.SectionNames() {
		if name == domain.SectionNetworkConnectivity {
			continue
		}
		t := network.Section(name)
		if t.IsEmpty() {
			continue
		}
		sheets = append(sheets, driven.Sheet{Name: sheetName(name), Table: t})
	}

	if opts.DetailedSegments {
		for _, pipe := range network.ElevationPipes() {
			t, err := network.PipeElevationsDetailed(pipe)
			if err != nil {
				continue
			}
			sheets = append(sheets, driven.Sheet{Name: sheetName("Elev_" + pipe), Table: t})
		}
		for _, eq := range network.TransientEquipment() {
			t, err := network.TransientData(eq)
			if err != nil {
				continue
			}
			sheets = append(sheets, driven.Sheet{Name: sheetName("Trans_" + eq), Table: t})
		}
	}

	if len(sheets) == 0 {
		return nil, domain.ErrNoSections
	}
	return sheets, nil
}

// Export builds the sheets and writes them to dest.
func (s *ExportService) Export(ctx context.Context, network *domain.ParsedNetwork, dest string, opts driving.ExportOptions) error {
	sheets, err := s.BuildSheets(network, opts)
	if err != nil {
		return err
	}

	logger.Section("Export")
	logger.Debug("writing %d sheets to %s", len(sheets), dest)
	if err := s.writer.WriteWorkbook(ctx, dest, sheets); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	logger.Info("exported %d sheets to %s", len(sheets), dest)
	return nil
}

// sheetName sanitizes a section name for use as a workbook sheet name
// and truncates it to the 31-character limit.
func sheetName(name string) string {
	repl := strings.NewReplacer(
		"[", "_", "]", "_", ":", "_", "*", "_",
		"?", "_", "/", "_", "\\", "_", " ", "_",
		"(", "", ")", "",
	)
	name = repl.Replace(name)
	if len(name) > maxSheetName {
		name = name[:maxSheetName]
	}
	return name
}
