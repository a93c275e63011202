// internal/report/report.go
// Package report renders a plot table as a standalone HTML page backed by a
// Google Charts line chart.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"io"

	"github.com/mwiater/accuracycharts/internal/plotdata"
)

// PageData is the view model of the report template.
type PageData struct {
	Title       string
	Rows        int
	TableJSON   template.JS
	OptionsJSON template.JS
}

// Generate renders the table and options into an HTML page.
func Generate(table plotdata.PlotTable, opts plotdata.ChartOptions, title string) (string, error) {
	var buf bytes.Buffer
	if err := Write(&buf, table, opts, title); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Write renders the page into w.
func Write(w io.Writer, table plotdata.PlotTable, opts plotdata.ChartOptions, title string) error {
	tableJSON, err := json.Marshal(table)
	if err != nil {
		return fmt.Errorf("unable to marshal plot table: %w", err)
	}
	optsJSON, err := json.Marshal(opts)
	if err != nil {
		return fmt.Errorf("unable to marshal chart options: %w", err)
	}

	viewModel := PageData{
		Title:       title,
		Rows:        len(table.Rows),
		TableJSON:   template.JS(tableJSON),
		OptionsJSON: template.JS(optsJSON),
	}
	if err := pageTemplate.Execute(w, viewModel); err != nil {
		return fmt.Errorf("unable to render report: %w", err)
	}
	return nil
}

var pageTemplate = template.Must(template.New("accuracy-charts").Parse(pageTemplateHTML))

const pageTemplateHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{ .Title }}</title>
  <script src="https://www.gstatic.com/charts/loader.js"></script>
  <style>
    :root {
      --text: #0F172A;
      --secondary: #64748B;
      --border: #E2E8F0;
      --background: #FFFFFF;
      --light: #F1F5F9;
    }
    body {
      margin: 0;
      font-family: system-ui, -apple-system, "Segoe UI", Roboto, sans-serif;
      background-color: var(--light);
      color: var(--text);
    }
    .chart-card {
      background: var(--background);
      border-radius: 16px;
      padding: 1.5rem;
      margin: 2rem auto;
      max-width: 1100px;
      box-shadow: 0 1px 3px rgba(15, 23, 42, 0.1);
      border: 1px solid var(--border);
    }
    .chart-title {
      font-size: 1.5rem;
      font-weight: 700;
      margin-bottom: 0.25rem;
    }
    .chart-subtitle {
      color: var(--secondary);
      margin-bottom: 1.5rem;
    }
    .chart-canvas {
      position: relative;
      height: 480px;
    }
  </style>
</head>
<body>
  <div class="chart-card">
    <div class="chart-title">{{ .Title }}</div>
    <div class="chart-subtitle">{{ .Rows }} thresholds. Drag to pan, scroll to zoom, right-click to reset.</div>
    <div class="chart-canvas" id="accuracyCharts" role="img" aria-label="Accuracy, precision, recall and F1 by threshold"></div>
  </div>
  <script>
    const plotData = {{ .TableJSON }};
    const chartOptions = {{ .OptionsJSON }};
    const numericColumns = [0, 1, 3, 5, 7];

    function revive(value) {
      if (value === "NaN") { return NaN; }
      if (value === "Infinity") { return Infinity; }
      if (value === "-Infinity") { return -Infinity; }
      return value;
    }

    function drawChart() {
      const rows = plotData.map((row, i) => {
        if (i === 0) { return row; }
        return row.map((cell, col) => numericColumns.includes(col) ? revive(cell) : cell);
      });
      const table = google.visualization.arrayToDataTable(rows);
      const chart = new google.visualization.LineChart(document.getElementById("accuracyCharts"));
      chart.draw(table, chartOptions);
    }

    google.charts.load("current", {packages: ["corechart"]});
    google.charts.setOnLoadCallback(drawChart);
  </script>
</body>
</html>
`
