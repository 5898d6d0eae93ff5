package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/hydraworks-labs/inpsheet-cli/internal/adapters/driving/tui"
)

var viewCmd = &cobra.Command{
	Use:   "view [file]",
	Short: "Browse a report file's sections interactively",
	Args:  cobra.ExactArgs(1),
	RunE:  runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	network, err := loadNetwork(cmd, args)
	if err != nil {
		return err
	}

	app := tui.NewApp(network)
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("running viewer: %w", err)
	}
	return nil
}
