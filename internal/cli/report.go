// internal/cli/report.go
package accuracycharts

import (
	"github.com/spf13/cobra"
)

var (
	reportOutput string
	reportWatch  bool
)

// reportCmd writes the standalone HTML chart page.
var reportCmd = &cobra.Command{
	Use:   "report [records-file]",
	Short: "Write an HTML page charting the four metrics by threshold",
	Long: `Generates a self-contained HTML page that draws accuracy, precision, recall
and F1 against the threshold, with per-point tooltips and the configured chart options.
With --watch the page is rewritten every time the records file changes.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if reportWatch {
			return runReportWatch(cmd, args, reportOutput)
		}
		return runReport(cmd, args, reportOutput)
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVar(&reportOutput, "html-output", "reports/accuracy-charts.html", "path to write the HTML report")
	reportCmd.Flags().BoolVar(&reportWatch, "watch", false, "rewrite the report whenever the records file changes")
}
