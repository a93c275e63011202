// internal/cli/view.go
package accuracycharts

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mwiater/accuracycharts/internal/logging"
	"github.com/mwiater/accuracycharts/internal/plotdata"
	"github.com/mwiater/accuracycharts/internal/tui"
	"github.com/mwiater/accuracycharts/internal/watch"
	"github.com/spf13/cobra"
)

var viewWatch bool

// viewCmd opens the interactive viewer.
var viewCmd = &cobra.Command{
	Use:   "view [records-file]",
	Short: "Browse thresholds and tooltips in an interactive terminal viewer",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		chart, path, err := buildChart(cmd, args)
		if err != nil {
			return err
		}
		if viewWatch && path == stdinPath {
			return fmt.Errorf("--watch needs a records file, not stdin")
		}

		// Console log lines would draw over the alt screen.
		if err := logging.InitWriter(nil, GetConfig().LogFilePath()); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		model := tui.New(chart.Table(), chart.Options(), path, viewWatch)
		program := tui.NewProgram(ctx, model)

		if viewWatch {
			watchCtx, cancel := context.WithCancel(ctx)
			defer cancel()
			w := watch.New(path, plotdata.NewChart(chart.Options(), nil),
				watch.OnTable(func(table plotdata.PlotTable) { program.Send(tui.TableUpdatedMsg{Table: table}) }),
				watch.OnError(func(err error) {
					logging.LogEvent("reload failed: %v", err)
					program.Send(tui.WatchErrMsg{Err: err})
				}),
			)
			go func() {
				if err := w.Run(watchCtx); err != nil {
					program.Send(tui.WatchErrMsg{Err: err})
				}
			}()
		}

		if _, err := program.Run(); err != nil {
			return fmt.Errorf("viewer failed: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
	viewCmd.Flags().BoolVar(&viewWatch, "watch", false, "reload the table whenever the records file changes")
}
