package report

import (
	"strings"
	"testing"

	"github.com/mwiater/accuracycharts/internal/plotdata"
)

func TestGenerateEmbedsTableAndOptions(t *testing.T) {
	table := plotdata.BuildPlotTable([]plotdata.MetricRecord{
		{"threshold": 0.5, "accuracy": 0.8, "precision": "NaN", "recall": 0.9},
	})
	html, err := Generate(table, plotdata.DefaultChartOptions(), "Model <A>")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if !strings.Contains(html, "<title>Model &lt;A&gt;</title>") {
		t.Fatal("expected escaped title")
	}
	if !strings.Contains(html, `"Accuracy: 0.80000, threshold: 0.50000"`) {
		t.Fatal("expected tooltip in embedded table JSON")
	}
	if !strings.Contains(html, `"NaN","Precision: NaN, threshold: 0.50000"`) {
		t.Fatal("expected NaN sentinel in embedded table JSON")
	}
	if !strings.Contains(html, `"hAxis":{"title":"Thresholds"}`) {
		t.Fatal("expected chart options JSON")
	}
	if !strings.Contains(html, "google.visualization.LineChart") {
		t.Fatal("expected line chart bootstrapping")
	}
	if !strings.Contains(html, "1 thresholds.") {
		t.Fatal("expected row count in subtitle")
	}
}

func TestGenerateEmptyTable(t *testing.T) {
	html, err := Generate(plotdata.BuildPlotTable(nil), plotdata.DefaultChartOptions(), "Empty")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if !strings.Contains(html, `const plotData = [["Threshold","Accuracy",{"role":"tooltip","type":"string"}`) {
		t.Fatalf("expected header-only table, got:\n%s", html)
	}
}
