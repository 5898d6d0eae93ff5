package cli

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hydraworks-labs/inpsheet-cli/internal/core/domain"
)

// loadNetwork loads and parses the report file named in args[0].
func loadNetwork(cmd *cobra.Command, args []string) (*domain.ParsedNetwork, error) {
	if networkService == nil {
		return nil, errors.New("network service not configured")
	}

	network, err := networkService.Load(cmd.Context(), args[0])
	if err != nil {
		return nil, fmt.Errorf("loading report: %w", err)
	}
	return network, nil
}

// printTable renders a table as aligned columns.
func printTable(cmd *cobra.Command, t *domain.Table) {
	if t.IsEmpty() {
		cmd.Println("(no rows)")
		return
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
	keys := t.Keys()
	fmt.Fprintln(w, strings.Join(keys, "\t"))

	cells := make([]string, len(keys))
	for i := range t.Rows {
		for j, key := range keys {
			cells[j] = t.Cell(i, key).String()
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	w.Flush()
}

// tableJSON converts a table to an ordered list of key/value rows for
// JSON output.
func tableJSON(t *domain.Table) []map[string]any {
	rows := make([]map[string]any, 0, t.NumRows())
	for i := range t.Rows {
		row := make(map[string]any, len(t.Columns))
		for _, key := range t.Keys() {
			v := t.Cell(i, key)
			switch {
			case v.IsMissing():
				row[key] = nil
			case v.Numeric:
				row[key] = v.Number
			default:
				row[key] = v.Text
			}
		}
		rows = append(rows, row)
	}
	return rows
}
