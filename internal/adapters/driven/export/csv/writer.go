// Package csv implements driven.SheetWriter as a directory of CSV
// files, one per sheet.
package csv

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hydraworks-labs/inpsheet-cli/internal/core/ports/driven"
	"github.com/hydraworks-labs/inpsheet-cli/internal/logger"
)

// Ensure Writer implements the interface.
var _ driven.SheetWriter = (*Writer)(nil)

// Writer writes each sheet to <dest>/<sheet name>.csv.
type Writer struct{}

// NewWriter creates a CSV sheet writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteWorkbook writes all sheets into the dest directory, creating it
// if needed. Existing files with matching names are overwritten.
func (w *Writer) WriteWorkbook(ctx context.Context, dest string, sheets []driven.Sheet) error {
	if err := os.MkdirAll(dest, 0755); err != nil {
		return fmt.Errorf("creating export directory: %w", err)
	}

	for _, sheet := range sheets {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := w.writeSheet(dest, sheet); err != nil {
			return fmt.Errorf("sheet %s: %w", sheet.Name, err)
		}
		logger.Debug("wrote %s (%d rows)", sheet.Name, sheet.Table.NumRows())
	}
	return nil
}

func (w *Writer) writeSheet(dest string, sheet driven.Sheet) error {
	f, err := os.Create(filepath.Join(dest, sheet.Name+".csv"))
	if err != nil {
		return err
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	keys := sheet.Table.Keys()
	if err := cw.Write(keys); err != nil {
		return err
	}

	row := make([]string, len(keys))
	for i := range sheet.Table.Rows {
		for j, key := range keys {
			row[j] = sheet.Table.Cell(i, key).String()
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	return f.Close()
}
