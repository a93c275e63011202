package appconfig

import (
	"fmt"
	"io"
	"strings"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, file string, cfg *Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}

	if cfg == nil {
		cfg = &Config{}
	}

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintf(out, "  Debug:            %v\n", cfg.Debug)
	fmt.Fprintf(out, "  Log File:         %s\n", cfg.LogFilePath())
	fmt.Fprintf(out, "  Input:            %s\n", orDash(cfg.Input))
	fmt.Fprintf(out, "  Report Title:     %s\n", cfg.ReportTitle())
	w, h := cfg.RenderSize()
	fmt.Fprintf(out, "  Render Size:      %dx%d\n", w, h)

	opts, err := cfg.ChartOptions()
	if err != nil {
		fmt.Fprintf(out, "  Chart Options:    %v\n", err)
		return
	}
	actions := make([]string, 0, len(opts.ExplorerActions()))
	for _, a := range opts.ExplorerActions() {
		actions = append(actions, string(a))
	}
	fmt.Fprintf(out, "  Legend Font Size: %d\n", opts.LegendFontSize())
	fmt.Fprintf(out, "  hAxis Title:      %s\n", opts.HAxisTitle())
	fmt.Fprintf(out, "  vAxis Title:      %s\n", opts.VAxisTitle())
	fmt.Fprintf(out, "  Explorer Actions: %s\n", strings.Join(actions, ", "))
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
