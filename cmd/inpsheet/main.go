package main

import (
	"fmt"
	"os"

	"github.com/hydraworks-labs/inpsheet-cli/internal/adapters/driven/config/file"
	exportcsv "github.com/hydraworks-labs/inpsheet-cli/internal/adapters/driven/export/csv"
	exportsqlite "github.com/hydraworks-labs/inpsheet-cli/internal/adapters/driven/export/sqlite"
	"github.com/hydraworks-labs/inpsheet-cli/internal/adapters/driving/cli"
	"github.com/hydraworks-labs/inpsheet-cli/internal/core/ports/driving"
	"github.com/hydraworks-labs/inpsheet-cli/internal/core/services"
	"github.com/hydraworks-labs/inpsheet-cli/internal/inp"
)

// version is set at build time via
// -ldflags "-X main.version=v1.2.3".
var version string

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}

	opts := inp.Options{
		SectionMarker: configStore.GetString(file.KeySectionMarker),
		CommentPrefix: configStore.GetString(file.KeyCommentPrefix),
	}
	network, err := services.NewNetworkService(opts)
	if err != nil {
		return err
	}

	cli.SetServices(cli.Services{
		Network: network,
		Exporters: map[string]driving.ExportService{
			"csv":    services.NewExportService(exportcsv.NewWriter()),
			"sqlite": services.NewExportService(exportsqlite.NewWriter()),
		},
		Watch:  services.NewWatchService(network),
		Config: configStore,
	})
	cli.SetVersion(version)

	return cli.Execute()
}
