// internal/cli/render.go
package accuracycharts

import (
	"bytes"
	"fmt"
	"os"

	"github.com/mwiater/accuracycharts/internal/render"
	"github.com/spf13/cobra"
)

var (
	renderOutput string
	renderFormat string
)

// renderCmd draws the curves to an SVG or PNG image.
var renderCmd = &cobra.Command{
	Use:   "render [records-file]",
	Short: "Render the metric curves to an SVG or PNG image",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		chart, _, err := buildChart(cmd, args)
		if err != nil {
			return err
		}

		format := render.FormatForPath(renderOutput)
		if renderFormat != "" {
			if format, err = render.ParseFormat(renderFormat); err != nil {
				return err
			}
		}
		cfg := GetConfig()
		width, height := cfg.RenderSize()
		settings := render.Settings{
			Format: format,
			Width:  width,
			Height: height,
			Title:  cfg.ReportTitle(),
		}

		var buf bytes.Buffer
		if err := render.Render(&buf, chart.Table(), chart.Options(), settings); err != nil {
			return fmt.Errorf("unable to render %s: %w", renderOutput, err)
		}
		if err := os.WriteFile(renderOutput, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("unable to write %s: %w", renderOutput, err)
		}
		cmd.Printf("Chart written to %s (%s, %dx%d)\n", renderOutput, format, width, height)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "accuracy-charts.svg", "image file to write")
	renderCmd.Flags().StringVar(&renderFormat, "format", "", "svg or png (default: from the output extension)")
}
