package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hydraworks-labs/inpsheet-cli/internal/adapters/driven/config/file"
	"github.com/hydraworks-labs/inpsheet-cli/internal/core/domain"
	"github.com/hydraworks-labs/inpsheet-cli/internal/core/ports/driving"
)

var (
	exportOut      string
	exportFormat   string
	exportDetailed bool
	exportStrict   bool
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export a report file as workbook sheets",
	Long: `Parses the report file and writes its sections as workbook sheets.
The csv format writes a directory of CSV files; the sqlite format writes
a single database with one table per sheet.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output path (default derived from the input file)")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "output format: csv or sqlite (default csv)")
	exportCmd.Flags().BoolVar(&exportDetailed, "detailed", false, "include per-pipe elevation and transient sheets")
	exportCmd.Flags().BoolVar(&exportStrict, "strict", false, "fail when the file has no recognizable sections")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	network, err := loadNetwork(cmd, args)
	if err != nil {
		return err
	}

	format := resolveFormat()
	svc, ok := exporters[format]
	if !ok {
		return fmt.Errorf("unknown export format %q", format)
	}

	opts := driving.ExportOptions{DetailedSegments: resolveDetailed()}
	dest := resolveDest(args[0], format)

	if err := svc.Export(cmd.Context(), network, dest, opts); err != nil {
		if errors.Is(err, domain.ErrNoSections) && !exportStrict {
			cmd.Println("No sections found; nothing exported.")
			return nil
		}
		return err
	}

	cmd.Printf("Exported %s to %s\n", args[0], dest)
	return nil
}

// resolveFormat picks the output format: flag, then config, then csv.
func resolveFormat() string {
	if exportFormat != "" {
		return strings.ToLower(exportFormat)
	}
	if configStore != nil {
		if f := configStore.GetString(file.KeyExportFormat); f != "" {
			return strings.ToLower(f)
		}
	}
	return "csv"
}

// resolveDetailed honours the flag, falling back to the config key.
func resolveDetailed() bool {
	if exportDetailed {
		return true
	}
	return configStore != nil && configStore.GetBool(file.KeyDetailedSegments)
}

// resolveDest derives the output path from the input file name when no
// --out flag is given: a sibling directory for csv, a .db file for
// sqlite. The configured export directory, when set, becomes the
// parent.
func resolveDest(input, format string) string {
	if exportOut != "" {
		return exportOut
	}

	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	name := base + "_export"
	if format == "sqlite" {
		name = base + ".db"
	}

	dir := filepath.Dir(input)
	if configStore != nil {
		if d := configStore.GetString(file.KeyExportDirectory); d != "" {
			dir = d
		}
	}
	return filepath.Join(dir, name)
}
