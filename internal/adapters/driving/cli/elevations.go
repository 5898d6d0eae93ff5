package cli

import (
	"github.com/spf13/cobra"
)

var elevationsCmd = &cobra.Command{
	Use:   "elevations [file] [pipe]",
	Short: "Show elevation statistics, or one pipe's full profile",
	Long: `Without a pipe argument, prints the per-pipe elevation summary.
With a pipe ID (e.g. P2), prints that pipe's segment-by-segment profile.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runElevations,
}

func init() {
	rootCmd.AddCommand(elevationsCmd)
}

func runElevations(cmd *cobra.Command, args []string) error {
	network, err := loadNetwork(cmd, args)
	if err != nil {
		return err
	}

	if len(args) == 2 {
		detail, err := network.PipeElevationsDetailed(args[1])
		if err != nil {
			return err
		}
		printTable(cmd, detail)
		return nil
	}

	printTable(cmd, network.PipeElevationsSummary())
	return nil
}
