// internal/render/render.go
// Package render draws the accuracy, precision, recall and F1 curves of a
// plot table into an SVG or PNG image.
package render

import (
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/mwiater/accuracycharts/internal/plotdata"
)

// ErrNoPoints is returned when no series has a finite point to draw.
var ErrNoPoints = errors.New("no finite points to plot")

// Format selects the image encoding.
type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

// ParseFormat accepts "svg" or "png" in any case.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatSVG:
		return FormatSVG, nil
	case FormatPNG:
		return FormatPNG, nil
	}
	return "", fmt.Errorf("unsupported image format %q (want svg or png)", s)
}

// FormatForPath picks the format from a file extension, defaulting to SVG.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".png") {
		return FormatPNG
	}
	return FormatSVG
}

// Settings controls the image.
type Settings struct {
	Format Format
	Width  int
	Height int
	Title  string
}

// seriesColors follow the report palette: accuracy, precision, recall, f1.
var seriesColors = []drawing.Color{
	drawing.ColorFromHex("3B82F6"),
	drawing.ColorFromHex("EF4444"),
	drawing.ColorFromHex("10B981"),
	drawing.ColorFromHex("F59E0B"),
}

// Curve is one named series of (threshold, value) points with non-finite
// values removed.
type Curve struct {
	Name string
	X    []float64
	Y    []float64
}

// Curves splits the table into its four series, in column order.
func Curves(table plotdata.PlotTable) []Curve {
	curves := []Curve{
		{Name: plotdata.NameAccuracy},
		{Name: plotdata.NamePrecision},
		{Name: plotdata.NameRecall},
		{Name: plotdata.NameF1},
	}
	for _, row := range table.Rows {
		for i, v := range []float64{row.Accuracy, row.Precision, row.Recall, row.F1} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			curves[i].X = append(curves[i].X, row.Threshold)
			curves[i].Y = append(curves[i].Y, v)
		}
	}
	return curves
}

// Render writes the chart to w.
func Render(w io.Writer, table plotdata.PlotTable, opts plotdata.ChartOptions, settings Settings) error {
	ch, err := buildChart(table, opts, settings)
	if err != nil {
		return err
	}

	provider := chart.SVG
	if settings.Format == FormatPNG {
		provider = chart.PNG
	}
	if err := ch.Render(provider, w); err != nil {
		return fmt.Errorf("unable to render chart: %w", err)
	}
	return nil
}

func buildChart(table plotdata.PlotTable, opts plotdata.ChartOptions, settings Settings) (chart.Chart, error) {
	yMin, yMax := 0.0, 1.0
	var series []chart.Series
	for i, c := range Curves(table) {
		if len(c.X) == 0 {
			continue
		}
		for _, v := range c.Y {
			yMin = math.Min(yMin, v)
			yMax = math.Max(yMax, v)
		}
		xs, ys := c.X, c.Y
		if len(xs) == 1 {
			// go-chart draws a line series from at least two points.
			xs = []float64{xs[0], xs[0]}
			ys = []float64{ys[0], ys[0]}
		}
		series = append(series, chart.ContinuousSeries{
			Name:    c.Name,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeWidth: 2,
				StrokeColor: seriesColors[i],
				DotWidth:    2,
				DotColor:    seriesColors[i],
			},
		})
	}
	if len(series) == 0 {
		return chart.Chart{}, ErrNoPoints
	}

	ch := chart.Chart{
		Title:      settings.Title,
		Width:      settings.Width,
		Height:     settings.Height,
		Background: chart.Style{Padding: chart.Box{Top: 24, Left: 16, Right: 16, Bottom: 48}},
		XAxis: chart.XAxis{
			Name:  opts.HAxisTitle(),
			Range: &chart.ContinuousRange{Min: 0, Max: 1},
		},
		YAxis: chart.YAxis{
			Name:  opts.VAxisTitle(),
			Range: &chart.ContinuousRange{Min: yMin, Max: yMax},
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch, chart.Style{FontSize: float64(opts.LegendFontSize())})}
	return ch, nil
}
