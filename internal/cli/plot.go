// internal/cli/plot.go
package accuracycharts

import (
	"github.com/mwiater/accuracycharts/internal/termplot"
	"github.com/spf13/cobra"
)

var (
	plotWidth  int
	plotHeight int
	plotTable  bool
)

// plotCmd draws the curves in the terminal.
var plotCmd = &cobra.Command{
	Use:   "plot [records-file]",
	Short: "Plot the metric curves in the terminal",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		chart, _, err := buildChart(cmd, args)
		if err != nil {
			return err
		}
		graph, err := termplot.Plot(chart.Table(), chart.Options(), plotWidth, plotHeight)
		if err != nil {
			return err
		}
		cmd.Println(graph)
		if plotTable {
			cmd.Println()
			cmd.Println(termplot.Table(chart.Table()))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(plotCmd)
	plotCmd.Flags().IntVar(&plotWidth, "width", 60, "plot width in columns")
	plotCmd.Flags().IntVar(&plotHeight, "height", 15, "plot height in rows")
	plotCmd.Flags().BoolVar(&plotTable, "table", false, "also print the values as a table")
}
