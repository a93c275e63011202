// internal/cli/table.go
package accuracycharts

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mwiater/accuracycharts/internal/plotdata"
	"github.com/spf13/cobra"
)

var (
	tableOutput string
	tablePretty bool
)

// tableCmd prints the plot table as JSON.
var tableCmd = &cobra.Command{
	Use:   "table [records-file]",
	Short: "Print the plot table as JSON",
	Long: `Builds the plot table (threshold, accuracy, precision, recall and F1 with
their tooltips) from a records file and prints it as JSON. Non-finite numbers
are written as the strings "NaN", "Infinity" and "-Infinity".`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		chart, _, err := buildChart(cmd, args)
		if err != nil {
			return err
		}
		if tableOutput == "" {
			return writeTableJSON(cmd.OutOrStdout(), chart.Table(), tablePretty)
		}
		var buf bytes.Buffer
		if err := writeTableJSON(&buf, chart.Table(), tablePretty); err != nil {
			return err
		}
		if err := os.WriteFile(tableOutput, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("unable to write %s: %w", tableOutput, err)
		}
		cmd.Printf("Wrote %d rows to %s\n", len(chart.Table().Rows), tableOutput)
		return nil
	},
}

func writeTableJSON(w io.Writer, table plotdata.PlotTable, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(table); err != nil {
		return fmt.Errorf("unable to encode plot table: %w", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(tableCmd)
	tableCmd.Flags().StringVarP(&tableOutput, "output", "o", "", "write the table to a file instead of stdout")
	tableCmd.Flags().BoolVar(&tablePretty, "pretty", false, "indent the JSON output")
}
