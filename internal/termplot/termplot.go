// internal/termplot/termplot.go
// Package termplot draws a plot table in the terminal: an ASCII line plot
// of the four curves and a styled table of the rows.
package termplot

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/guptarohit/asciigraph"

	"github.com/mwiater/accuracycharts/internal/plotdata"
)

// ErrNoPoints is returned when every value in the table is non-finite.
var ErrNoPoints = errors.New("no finite points to plot")

var (
	seriesColors = []asciigraph.AnsiColor{asciigraph.Blue, asciigraph.Red, asciigraph.Green, asciigraph.Yellow}
	legendColors = []lipgloss.Color{lipgloss.Color("12"), lipgloss.Color("9"), lipgloss.Color("10"), lipgloss.Color("11")}
	seriesNames  = []string{plotdata.NameAccuracy, plotdata.NamePrecision, plotdata.NameRecall, plotdata.NameF1}
)

// Series returns accuracy, precision, recall and F1 as parallel slices in
// row order. Non-finite values become NaN so the plot leaves a gap.
func Series(t plotdata.PlotTable) [][]float64 {
	out := make([][]float64, 4)
	for i := range out {
		out[i] = make([]float64, 0, len(t.Rows))
	}
	for _, row := range t.Rows {
		for i, v := range []float64{row.Accuracy, row.Precision, row.Recall, row.F1} {
			if math.IsInf(v, 0) {
				v = math.NaN()
			}
			out[i] = append(out[i], v)
		}
	}
	return out
}

func hasFinite(values []float64) bool {
	for _, v := range values {
		if !math.IsNaN(v) {
			return true
		}
	}
	return false
}

// Plot renders the curves with asciigraph. Points are spaced by row, so the
// caption names the threshold span rather than a scale.
func Plot(t plotdata.PlotTable, opts plotdata.ChartOptions, width, height int) (string, error) {
	var (
		data   [][]float64
		colors []asciigraph.AnsiColor
		legend []string
	)
	for i, s := range Series(t) {
		if !hasFinite(s) {
			continue
		}
		data = append(data, s)
		colors = append(colors, seriesColors[i])
		legend = append(legend, lipgloss.NewStyle().Foreground(legendColors[i]).Render("■ "+seriesNames[i]))
	}
	if len(data) == 0 {
		return "", ErrNoPoints
	}

	caption := fmt.Sprintf("%s: %s .. %s   (%s)",
		opts.HAxisTitle(),
		plotdata.FormatFixed(t.Rows[0].Threshold, 2),
		plotdata.FormatFixed(t.Rows[len(t.Rows)-1].Threshold, 2),
		opts.VAxisTitle(),
	)
	options := []asciigraph.Option{
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(colors...),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(1),
		asciigraph.Precision(2),
	}
	if height > 0 {
		options = append(options, asciigraph.Height(height))
	}
	if width > 0 && len(t.Rows) > 1 {
		options = append(options, asciigraph.Width(width))
	}

	graph := asciigraph.PlotMany(data, options...)
	return graph + "\n\n" + strings.Join(legend, "  "), nil
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	oddRowStyle = cellStyle.Foreground(lipgloss.Color("245"))
)

// Table renders the rows with five-decimal values.
func Table(t plotdata.PlotTable) string {
	rows := make([][]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		rows = append(rows, FormatRow(row))
	}
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("62"))).
		Headers("Threshold", "Accuracy", "Precision", "Recall", "F1").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row%2 == 1:
				return oddRowStyle
			default:
				return cellStyle
			}
		})
	return tbl.Render()
}

// FormatRow returns threshold, accuracy, precision, recall and F1 fixed to
// five decimals.
func FormatRow(row plotdata.PlotRow) []string {
	return []string{
		plotdata.FormatFixed(row.Threshold, 5),
		plotdata.FormatFixed(row.Accuracy, 5),
		plotdata.FormatFixed(row.Precision, 5),
		plotdata.FormatFixed(row.Recall, 5),
		plotdata.FormatFixed(row.F1, 5),
	}
}
