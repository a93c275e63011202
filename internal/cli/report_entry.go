// internal/cli/report_entry.go
package accuracycharts

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/mwiater/accuracycharts/internal/logging"
	"github.com/mwiater/accuracycharts/internal/plotdata"
	"github.com/mwiater/accuracycharts/internal/report"
	"github.com/mwiater/accuracycharts/internal/watch"
	"github.com/spf13/cobra"
)

func runReport(cmd *cobra.Command, args []string, outputPath string) error {
	chart, _, err := buildChart(cmd, args)
	if err != nil {
		return err
	}
	if err := writeReport(chart.Table(), chart.Options(), outputPath); err != nil {
		return err
	}
	cmd.Printf("Report written to %s\n", outputPath)
	return nil
}

func runReportWatch(cmd *cobra.Command, args []string, outputPath string) error {
	path, err := resolveInput(args)
	if err != nil {
		return err
	}
	if path == stdinPath {
		return fmt.Errorf("--watch needs a records file, not stdin")
	}
	opts, err := chartOptions()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return watchReport(ctx, cmd, path, opts, outputPath)
}

// watchReport rewrites outputPath on every reload of path until ctx is done.
func watchReport(ctx context.Context, cmd *cobra.Command, path string, opts plotdata.ChartOptions, outputPath string) error {
	chart := plotdata.NewChart(opts, nil)
	w := watch.New(path, chart,
		watch.OnTable(func(table plotdata.PlotTable) {
			if err := writeReport(table, opts, outputPath); err != nil {
				logging.LogEvent("report write failed: %v", err)
				cmd.PrintErrf("Error: %v\n", err)
				return
			}
			cmd.Printf("Report written to %s (%d rows)\n", outputPath, len(table.Rows))
		}),
		watch.OnError(func(err error) {
			logging.LogEvent("reload failed: %v", err)
			cmd.PrintErrf("Reload failed: %v\n", err)
		}),
	)
	cmd.Printf("Watching %s (Ctrl+C to stop)\n", path)
	return w.Run(ctx)
}

func writeReport(table plotdata.PlotTable, opts plotdata.ChartOptions, outputPath string) error {
	var buf bytes.Buffer
	if err := report.Write(&buf, table, opts, GetConfig().ReportTitle()); err != nil {
		return fmt.Errorf("unable to render report %s: %w", outputPath, err)
	}
	if dir := filepath.Dir(outputPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("unable to create report directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(outputPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("unable to write report %s: %w", outputPath, err)
	}
	return nil
}
