// Package config provides centralized configuration for the analysis run.
// It loads configuration from environment variables with defaults that match
// the conventional repository layout and validates all settings before the
// pipeline starts so misconfiguration fails fast.
package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Chart file names written under Paths.ResultsDir. The top-10 CSV is
// placed next to the top-10 chart by the report package.
const (
	GenrePlotFile = "genre_sales.png"
	TopPlotFile   = "top10_playstation.png"
)

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Paths   PathsConfig
	Charts  ChartConfig
	Logging LoggingConfig
}

// PathsConfig holds the input dataset and output locations.
type PathsConfig struct {
	// DataPath is the sales dataset CSV (default: Data/Video_Games.csv)
	DataPath string `env:"DATA_PATH" default:"Data/Video_Games.csv"`

	// ResultsDir receives every generated artifact (default: results)
	ResultsDir string `env:"RESULTS_DIR" default:"results"`
}

// ChartConfig holds rendered image dimensions in inches.
type ChartConfig struct {
	// Width applies to both charts (default: 10)
	Width float64 `env:"CHART_WIDTH_IN" default:"10"`

	// GenreHeight is the genre bar chart height (default: 5)
	GenreHeight float64 `env:"CHART_GENRE_HEIGHT_IN" default:"5"`

	// TopHeight is the top-10 horizontal bar chart height (default: 6)
	TopHeight float64 `env:"CHART_TOP_HEIGHT_IN" default:"6"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// GenrePlotPath returns the output path of the genre sales chart.
func (c *Config) GenrePlotPath() string {
	return filepath.Join(c.Paths.ResultsDir, GenrePlotFile)
}

// TopPlotPath returns the output path of the top-10 chart.
func (c *Config) TopPlotPath() string {
	return filepath.Join(c.Paths.ResultsDir, TopPlotFile)
}

// String returns a compact representation of the config for logging.
func (c *Config) String() string {
	var b strings.Builder
	b.WriteString("Config{")
	fmt.Fprintf(&b, "Paths: {DataPath: %q, ResultsDir: %q}, ", c.Paths.DataPath, c.Paths.ResultsDir)
	fmt.Fprintf(&b, "Charts: {Width: %g, GenreHeight: %g, TopHeight: %g}, ",
		c.Charts.Width, c.Charts.GenreHeight, c.Charts.TopHeight)
	fmt.Fprintf(&b, "Logging: {Level: %q, Format: %q}", c.Logging.Level, c.Logging.Format)
	b.WriteString("}")
	return b.String()
}
