package cli

import (
	"github.com/spf13/cobra"
)

var transientCmd = &cobra.Command{
	Use:   "transient [file] [equipment]",
	Short: "List transient equipment, or show one equipment's series",
	Long: `Without an equipment argument, lists the equipment IDs that have
transient data. With an ID (e.g. J1), prints that equipment's time series.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runTransient,
}

func init() {
	rootCmd.AddCommand(transientCmd)
}

func runTransient(cmd *cobra.Command, args []string) error {
	network, err := loadNetwork(cmd, args)
	if err != nil {
		return err
	}

	if len(args) == 2 {
		series, err := network.TransientData(args[1])
		if err != nil {
			return err
		}
		printTable(cmd, series)
		return nil
	}

	equipment := network.TransientEquipment()
	if len(equipment) == 0 {
		cmd.Println("No transient data found.")
		return nil
	}
	for _, eq := range equipment {
		cmd.Println(eq)
	}
	return nil
}
