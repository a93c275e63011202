// internal/appconfig/appconfig_test.go
package appconfig

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func readConfig(t *testing.T, path string) *viper.Viper {
	t.Helper()
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("ReadInConfig(%s): %v", path, err)
	}
	return v
}

// TestFromViper covers a valid file with chart overrides, an invalid
// explorer action and an empty viper.
func TestFromViper(t *testing.T) {
	dir := t.TempDir()
	validConfig := `{
        "debug": true,
        "input": "curves.json",
        "chart": {"legendFontSize": 11, "vAxisTitle": "Score", "explorerActions": ["dragToPan"]},
        "render": {"width": 800}
    }`
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte(validConfig), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := FromViper(readConfig(t, path))
	if err != nil {
		t.Fatalf("FromViper() with valid config failed: %v", err)
	}
	if !cfg.Debug || cfg.Input != "curves.json" || cfg.ConfigPath != path {
		t.Fatalf("unexpected config %+v", cfg)
	}
	opts, err := cfg.ChartOptions()
	if err != nil {
		t.Fatalf("ChartOptions error: %v", err)
	}
	if opts.LegendFontSize() != 11 || opts.VAxisTitle() != "Score" || opts.HAxisTitle() != "Thresholds" {
		t.Fatalf("unexpected chart options %v", opts.Map())
	}
	if got := opts.ExplorerActions(); len(got) != 1 || got[0] != "dragToPan" {
		t.Fatalf("unexpected explorer actions %v", got)
	}
	if w, h := cfg.RenderSize(); w != 800 || h != 576 {
		t.Fatalf("expected 800x576, got %dx%d", w, h)
	}

	badAction := filepath.Join(dir, "action.json")
	if err := os.WriteFile(badAction, []byte(`{"chart":{"explorerActions":["pinch"]}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := FromViper(readConfig(t, badAction)); err == nil || !strings.Contains(err.Error(), "invalid chart configuration") {
		t.Fatalf("expected chart configuration error, got %v", err)
	}

	cfg, err = FromViper(viper.New())
	if err != nil {
		t.Fatalf("FromViper() on empty viper failed: %v", err)
	}
	if cfg.ConfigPath != "" || cfg.LogFilePath() != "accuracycharts.log" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestDefaults(t *testing.T) {
	var cfg Config
	if cfg.LogFilePath() != "accuracycharts.log" {
		t.Fatalf("unexpected default log file %q", cfg.LogFilePath())
	}
	if cfg.ReportTitle() != "Accuracy / Precision / Recall / F1" {
		t.Fatalf("unexpected default title %q", cfg.ReportTitle())
	}
	if w, h := cfg.RenderSize(); w != 1024 || h != 576 {
		t.Fatalf("expected 1024x576, got %dx%d", w, h)
	}
	opts, err := cfg.ChartOptions()
	if err != nil || opts.LegendFontSize() != 9 {
		t.Fatalf("expected default chart options, got %v err=%v", opts.Map(), err)
	}
}

func TestShowConfig(t *testing.T) {
	var buf bytes.Buffer
	ShowConfig(&buf, "", nil)
	out := buf.String()
	if !strings.Contains(out, "No config file loaded") {
		t.Fatalf("expected defaults notice, got: %s", out)
	}
	if !strings.Contains(out, "Explorer Actions: dragToPan, scrollToZoom, rightClickToReset") {
		t.Fatalf("expected explorer actions, got: %s", out)
	}

	buf.Reset()
	ShowConfig(&buf, "config/config.json", &Config{Input: "in.jsonl", Chart: ChartConfig{HAxisTitle: "Cutoff"}})
	out = buf.String()
	if !strings.Contains(out, "Config file: config/config.json") || !strings.Contains(out, "hAxis Title:      Cutoff") {
		t.Fatalf("unexpected summary: %s", out)
	}
}
