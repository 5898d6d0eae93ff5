package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/hydraworks-labs/inpsheet-cli/internal/core/domain"
	"github.com/hydraworks-labs/inpsheet-cli/internal/core/ports/driving"
	"github.com/hydraworks-labs/inpsheet-cli/internal/logger"
)

var watchExport bool

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Re-parse a report file whenever it changes",
	Long: `Watches the report file and prints an updated summary after every
change. With --export, each change also re-exports the workbook using
the configured format and destination. Stop with Ctrl-C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().BoolVar(&watchExport, "export", false, "re-export the workbook after each change")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if watchService == nil {
		return errors.New("watch service not configured")
	}

	format := resolveFormat()
	svc := exporters[format]
	if watchExport && svc == nil {
		return errors.New("no exporter configured for format " + format)
	}

	err := watchService.Watch(cmd.Context(), args[0], func(network *domain.ParsedNetwork) {
		cmd.Print(network.Summary())
		if watchExport {
			dest := resolveDest(args[0], format)
			opts := driving.ExportOptions{DetailedSegments: resolveDetailed()}
			if err := svc.Export(cmd.Context(), network, dest, opts); err != nil {
				logger.Warn("export failed: %v", err)
			} else {
				cmd.Printf("Exported to %s\n", dest)
			}
		}
		cmd.Println("---")
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
