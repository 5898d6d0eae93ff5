// Package cli implements the inpsheet command line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/hydraworks-labs/inpsheet-cli/internal/core/ports/driven"
	"github.com/hydraworks-labs/inpsheet-cli/internal/core/ports/driving"
	"github.com/hydraworks-labs/inpsheet-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services injected by the composition root before Execute.
var (
	networkService driving.NetworkService
	exporters      map[string]driving.ExportService
	watchService   driving.WatchService
	configStore    driven.ConfigStore
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "inpsheet",
	Short: "Parse AFT Impulse .inp report files into tabular data",
	Long: `inpsheet splits semi-structured .inp report files into sections,
parses component tables, elevation profiles and transient series, and
exports them as workbook sheets.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Services bundles everything the CLI needs from the core. Exporters
// maps output formats ("csv", "sqlite") to their export services.
type Services struct {
	Network   driving.NetworkService
	Exporters map[string]driving.ExportService
	Watch     driving.WatchService
	Config    driven.ConfigStore
}

// SetServices wires core services into the command tree.
func SetServices(s Services) {
	networkService = s.Network
	exporters = s.Exporters
	watchService = s.Watch
	configStore = s.Config
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
