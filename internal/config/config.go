package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	Report ReportConfig `yaml:"report"`
	Server ServerConfig `yaml:"server"`
}

type ReportConfig struct {
	// YearsToRun is the year count a complete run must have. 0 means the run's economic life.
	YearsToRun  int    `yaml:"years_to_run"`
	FileName    string `yaml:"file_name"`
	ChartWidth  int    `yaml:"chart_width"`
	ChartHeight int    `yaml:"chart_height"`
}

type ServerConfig struct {
	Port           string   `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// Default is the compiled-in configuration used when no file is given.
func Default() *Config {
	return &Config{
		Report: ReportConfig{
			FileName:    "cecdata.xlsx",
			ChartWidth:  800,
			ChartHeight: 600,
		},
		Server: ServerConfig{
			Port:           "8080",
			AllowedOrigins: []string{"*"},
		},
	}
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked reads the file over the defaults, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	d := Default()
	d.Report = MergeReport(d.Report, c.Report)
	if c.Server.Port != "" {
		d.Server.Port = c.Server.Port
	}
	if c.Server.AllowedOrigins != nil {
		d.Server.AllowedOrigins = c.Server.AllowedOrigins
	}
	return d, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	r := c.Report
	if r.YearsToRun < 0 {
		return fmt.Errorf("report.years_to_run must be >= 0, got %d", r.YearsToRun)
	}
	if r.ChartWidth <= 0 || r.ChartHeight <= 0 {
		return fmt.Errorf("report chart size must be positive, got %dx%d", r.ChartWidth, r.ChartHeight)
	}
	if !strings.HasSuffix(strings.ToLower(r.FileName), ".xlsx") {
		return fmt.Errorf("report.file_name %q must end in .xlsx", r.FileName)
	}
	if c.Server.Port == "" {
		return errors.New("server.port is required")
	}
	return nil
}

// MergeReport overlays non-zero fields from override onto base.
// This is used when loading a file and when a request carries its own settings.
func MergeReport(base, override ReportConfig) ReportConfig {
	out := base
	if override.YearsToRun != 0 {
		out.YearsToRun = override.YearsToRun
	}
	if override.FileName != "" {
		out.FileName = override.FileName
	}
	if override.ChartWidth != 0 {
		out.ChartWidth = override.ChartWidth
	}
	if override.ChartHeight != 0 {
		out.ChartHeight = override.ChartHeight
	}
	return out
}
