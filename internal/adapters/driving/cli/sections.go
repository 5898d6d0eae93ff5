package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var sectionsJSON bool

var sectionsCmd = &cobra.Command{
	Use:   "sections [file]",
	Short: "List the parsed sections of a report file",
	Args:  cobra.ExactArgs(1),
	RunE:  runSections,
}

func init() {
	sectionsCmd.Flags().BoolVar(&sectionsJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(sectionsCmd)
}

func runSections(cmd *cobra.Command, args []string) error {
	network, err := loadNetwork(cmd, args)
	if err != nil {
		return err
	}

	names := network.SectionNames()
	if sectionsJSON {
		data, err := json.MarshalIndent(names, "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling sections: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(names) == 0 {
		cmd.Println("No sections found.")
		return nil
	}
	for _, name := range names {
		cmd.Printf("%s (%d rows)\n", name, network.Section(name).NumRows())
	}
	return nil
}
