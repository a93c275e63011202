package accuracycharts

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mwiater/accuracycharts/internal/appconfig"
	"github.com/mwiater/accuracycharts/internal/render"
	"github.com/spf13/cobra"
)

const sampleRecords = `[
  {"threshold": 0.5, "accuracy": 0.8, "precision": 0.6, "recall": 0.9},
  {"threshold": 0.7, "accuracy": {"doubleValue": 0.75}, "precision": 0.8, "recall": 0.5}
]`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func withConfig(t *testing.T, cfg *appconfig.Config) {
	t.Helper()
	prev := currentConfig
	currentConfig = cfg
	t.Cleanup(func() { currentConfig = prev })
}

func TestTableCommand(t *testing.T) {
	input := writeTemp(t, "curves.json", sampleRecords)
	logPath := filepath.Join(t.TempDir(), "test.log")

	out, err := executeRoot(t, "table", input, "--logFile", logPath)
	if err != nil {
		t.Fatalf("table command failed: %v", err)
	}

	var rows [][]any
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("output is not a 2D array: %v\n%s", err, out)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "Threshold" || rows[0][1] != "Accuracy" {
		t.Fatalf("unexpected header %v", rows[0])
	}
	if rows[2][2] != "Accuracy: 0.75000, threshold: 0.70000" {
		t.Fatalf("unexpected tooltip %v", rows[2][2])
	}
}

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

// TestRenderCommandNoPoints checks that a table with nothing to draw fails
// without leaving an image behind.
func TestRenderCommandNoPoints(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")
	inputs := map[string]string{
		"empty":   `[]`,
		"all-nan": `[{"threshold": 0.5, "accuracy": "NaN", "precision": "NaN", "recall": "NaN"}]`,
	}
	for name, content := range inputs {
		input := writeTemp(t, name+".json", content)
		outPath := filepath.Join(t.TempDir(), name+".svg")

		_, err := executeRoot(t, "render", input, "--logFile", logPath, "--output", outPath)
		if !errors.Is(err, render.ErrNoPoints) {
			t.Fatalf("%s: expected ErrNoPoints, got %v", name, err)
		}
		if _, statErr := os.Stat(outPath); !errors.Is(statErr, os.ErrNotExist) {
			t.Fatalf("%s: expected no image file, stat returned %v", name, statErr)
		}
	}
}

func TestResolveInput(t *testing.T) {
	withConfig(t, &appconfig.Config{})
	if _, err := resolveInput(nil); !errors.Is(err, errNoInput) {
		t.Fatalf("expected errNoInput, got %v", err)
	}

	withConfig(t, &appconfig.Config{Input: "from-config.json"})
	if got, _ := resolveInput(nil); got != "from-config.json" {
		t.Fatalf("expected config input, got %q", got)
	}
	if got, _ := resolveInput([]string{"arg.json"}); got != "arg.json" {
		t.Fatalf("expected positional argument to win, got %q", got)
	}
}

func TestLoadRecordsFromStdin(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetIn(strings.NewReader(sampleRecords))
	recs, err := loadRecords(cmd, stdinPath)
	if err != nil {
		t.Fatalf("loadRecords: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
}

func TestRunValidate(t *testing.T) {
	valid := writeTemp(t, "ok.json", sampleRecords)
	var out bytes.Buffer
	if err := runValidate(nil, &out, valid); err != nil {
		t.Fatalf("expected valid records, got %v", err)
	}
	if !strings.Contains(out.String(), "VALID") {
		t.Fatalf("expected VALID verdict, got %q", out.String())
	}

	invalid := writeTemp(t, "bad.json", `[{"threshold": true}]`)
	out.Reset()
	if err := runValidate(nil, &out, invalid); !errors.Is(err, errInvalidRecords) {
		t.Fatalf("expected errInvalidRecords, got %v", err)
	}
	if !strings.Contains(out.String(), "INVALID") {
		t.Fatalf("expected INVALID verdict, got %q", out.String())
	}

	out.Reset()
	if err := runValidate(strings.NewReader(`{"data": []}`), &out, stdinPath); err != nil {
		t.Fatalf("expected stdin envelope to validate, got %v", err)
	}

	if err := runValidate(nil, &out, filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestWriteReport(t *testing.T) {
	withConfig(t, &appconfig.Config{})
	input := writeTemp(t, "curves.json", sampleRecords)
	cmd := &cobra.Command{}
	chart, _, err := buildChart(cmd, []string{input})
	if err != nil {
		t.Fatalf("buildChart: %v", err)
	}

	outPath := filepath.Join(t.TempDir(), "nested", "report.html")
	if err := writeReport(chart.Table(), chart.Options(), outPath); err != nil {
		t.Fatalf("writeReport: %v", err)
	}
	page, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.Contains(string(page), "google.visualization") {
		t.Fatal("expected chart loader in report")
	}
	if !strings.Contains(string(page), "Precision: 0.60000, threshold: 0.50000") {
		t.Fatal("expected tooltip data in report")
	}
}

func TestCollectCommandData(t *testing.T) {
	data := collectCommandData(rootCmd, "", "")
	if data[0].path != "accuracycharts" {
		t.Fatalf("expected root first, got %q", data[0].path)
	}
	want := map[string]bool{
		"  accuracycharts table":          false,
		"  accuracycharts report":         false,
		"    accuracycharts show options": false,
		"    accuracycharts list commands": false,
	}
	for _, d := range data {
		if _, ok := want[d.path]; ok {
			want[d.path] = true
		}
	}
	for path, seen := range want {
		if !seen {
			t.Errorf("missing %q in command listing", path)
		}
	}

	var out bytes.Buffer
	printer := &cobra.Command{}
	printer.SetOut(&out)
	runListCommands(printer, rootCmd)
	if !strings.HasPrefix(out.String(), "Commands and Subcommands:") {
		t.Fatalf("unexpected listing:\n%s", out.String())
	}
}
