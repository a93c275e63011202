// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/mwiater/accuracycharts/internal/plotdata"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// defaultLogFile is used when the config does not name a log file.
	defaultLogFile = "accuracycharts.log"
	// defaultReportTitle is the HTML page title.
	defaultReportTitle = "Accuracy / Precision / Recall / F1"
	// defaultRenderWidth and defaultRenderHeight size rendered images.
	defaultRenderWidth  = 1024
	defaultRenderHeight = 576
)

// Config represents the top-level application configuration.
type Config struct {
	Debug      bool         `json:"debug" mapstructure:"debug"`
	LogFile    string       `json:"logFile,omitempty" mapstructure:"logFile"`
	Input      string       `json:"input,omitempty" mapstructure:"input"`
	Chart      ChartConfig  `json:"chart" mapstructure:"chart"`
	Report     ReportConfig `json:"report" mapstructure:"report"`
	Render     RenderConfig `json:"render" mapstructure:"render"`
	ConfigPath string       `json:"-" mapstructure:"-"`
}

// ChartConfig overrides the static chart options. Empty fields keep the
// built-in defaults.
type ChartConfig struct {
	LegendFontSize  int      `json:"legendFontSize,omitempty" mapstructure:"legendFontSize"`
	HAxisTitle      string   `json:"hAxisTitle,omitempty" mapstructure:"hAxisTitle"`
	VAxisTitle      string   `json:"vAxisTitle,omitempty" mapstructure:"vAxisTitle"`
	ExplorerActions []string `json:"explorerActions,omitempty" mapstructure:"explorerActions"`
}

// ReportConfig configures the HTML report.
type ReportConfig struct {
	Title string `json:"title,omitempty" mapstructure:"title"`
}

// RenderConfig configures image rendering.
type RenderConfig struct {
	Width  int `json:"width,omitempty" mapstructure:"width"`
	Height int `json:"height,omitempty" mapstructure:"height"`
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if path := c.LogFile; strings.TrimSpace(path) != "" {
		return path
	}
	return defaultLogFile
}

// ChartOptions applies the chart overrides to the default options.
func (c Config) ChartOptions() (plotdata.ChartOptions, error) {
	opts, err := plotdata.DefaultChartOptions().WithOverrides(plotdata.Overrides{
		LegendFontSize:  c.Chart.LegendFontSize,
		HAxisTitle:      c.Chart.HAxisTitle,
		VAxisTitle:      c.Chart.VAxisTitle,
		ExplorerActions: c.Chart.ExplorerActions,
	})
	if err != nil {
		return plotdata.ChartOptions{}, fmt.Errorf("invalid chart configuration: %w", err)
	}
	return opts, nil
}

// ReportTitle returns the HTML report title.
func (c Config) ReportTitle() string {
	if t := strings.TrimSpace(c.Report.Title); t != "" {
		return t
	}
	return defaultReportTitle
}

// RenderSize returns the image size in pixels, falling back to 1024x576.
func (c Config) RenderSize() (int, int) {
	w, h := c.Render.Width, c.Render.Height
	if w <= 0 {
		w = defaultRenderWidth
	}
	if h <= 0 {
		h = defaultRenderHeight
	}
	return w, h
}

// FromViper materializes the merged configuration held by v (flags over
// config file over defaults) and rejects invalid chart overrides.
func FromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.ConfigPath = v.ConfigFileUsed()
	if _, err := cfg.ChartOptions(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
