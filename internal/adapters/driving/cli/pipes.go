package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var pipesJSON bool

var pipesCmd = &cobra.Command{
	Use:   "pipes [file]",
	Short: "Show the pipe detail summary table",
	Args:  cobra.ExactArgs(1),
	RunE:  runPipes,
}

func init() {
	pipesCmd.Flags().BoolVar(&pipesJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(pipesCmd)
}

func runPipes(cmd *cobra.Command, args []string) error {
	network, err := loadNetwork(cmd, args)
	if err != nil {
		return err
	}

	t := network.PipeDetailSummary()
	if pipesJSON {
		data, err := json.MarshalIndent(tableJSON(t), "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling pipes: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	printTable(cmd, t)
	return nil
}
