// internal/cli/input.go
package accuracycharts

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mwiater/accuracycharts/internal/logging"
	"github.com/mwiater/accuracycharts/internal/plotdata"
	"github.com/mwiater/accuracycharts/internal/records"
	"github.com/spf13/cobra"
)

// stdinPath selects standard input as the records source.
const stdinPath = "-"

var errNoInput = errors.New("no records input: pass a file argument, --input, or - for stdin")

// resolveInput picks the records path: positional argument first, then
// --input / config "input".
func resolveInput(args []string) (string, error) {
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		return args[0], nil
	}
	if in := strings.TrimSpace(GetConfig().Input); in != "" {
		return in, nil
	}
	return "", errNoInput
}

// loadRecords reads records from path, or from the command's stdin for "-".
func loadRecords(cmd *cobra.Command, path string) ([]plotdata.MetricRecord, error) {
	if path == stdinPath {
		recs, err := records.Decode(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("unable to read records from stdin: %w", err)
		}
		return recs, nil
	}
	return records.Load(path)
}

// chartOptions returns the configured chart options.
func chartOptions() (plotdata.ChartOptions, error) {
	return GetConfig().ChartOptions()
}

// buildChart loads the input and returns a chart holding its table.
func buildChart(cmd *cobra.Command, args []string) (*plotdata.Chart, string, error) {
	path, err := resolveInput(args)
	if err != nil {
		return nil, "", err
	}
	opts, err := chartOptions()
	if err != nil {
		return nil, "", err
	}
	recs, err := loadRecords(cmd, path)
	if err != nil {
		return nil, "", err
	}
	chart := plotdata.NewChart(opts, nil)
	table := chart.SetData(recs)
	logging.LogTable(path, table, opts)
	return chart, path, nil
}
