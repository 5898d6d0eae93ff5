package cli

import (
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary [file]",
	Short: "Print a human-readable summary of a report file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		network, err := loadNetwork(cmd, args)
		if err != nil {
			return err
		}
		cmd.Print(network.Summary())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
