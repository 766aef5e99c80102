// =============================================================================
// Sales Order Report - Configuration Module
// =============================================================================
//
// This module loads the application configuration from a YAML file. The
// configuration covers ambient settings only: output file names, optional
// exports, archival, logging and progress telemetry.
//
// Business rules (discount rates, report caps, required columns) are fixed
// by design and deliberately not configurable.
//
// The config file is optional: a missing file yields the defaults, so the
// tool works with zero setup.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	// ReportFile is the name of the text report inside the output directory.
	// Default: "report.txt"
	ReportFile string `yaml:"report_file"`

	// SummaryFile is the name of the JSON summary inside the output
	// directory.
	// Default: "summary.json"
	SummaryFile string `yaml:"summary_file"`

	// XLSXFile is the name of the optional XLSX summary workbook inside the
	// output directory. Empty disables the export.
	// Default: "" (disabled)
	XLSXFile string `yaml:"xlsx_file"`

	// ArchiveDir is the directory processed input files are moved to after a
	// fully successful run. Empty disables archival; failed runs never
	// archive.
	// Default: "" (disabled)
	ArchiveDir string `yaml:"archive_dir"`

	// LogMode selects the logger configuration: "dev" or "prod".
	// Default: "prod"
	LogMode string `yaml:"log_mode"`

	// ProgressInterval is the number of data rows between progress log
	// entries. Purely observational; it never affects results.
	// Default: 250
	ProgressInterval int `yaml:"progress_interval"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads the configuration from a YAML file.
//
// PARAMETERS:
//   - path: The path to the configuration file.
//
// RETURNS:
//   - The loaded configuration with defaults applied. If the file does not
//     exist, the defaults are returned without error.
//   - An error if the file exists but cannot be read or parsed, or if a
//     value is invalid.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// applyDefaults sets default values for any unset options.
func applyDefaults(cfg *Config) {
	if cfg.ReportFile == "" {
		cfg.ReportFile = "report.txt"
	}
	if cfg.SummaryFile == "" {
		cfg.SummaryFile = "summary.json"
	}
	if cfg.LogMode == "" {
		cfg.LogMode = "prod"
	}
	if cfg.ProgressInterval == 0 {
		cfg.ProgressInterval = 250
	}
}

// validate rejects configurations the job cannot honor.
func validate(cfg *Config) error {
	if cfg.ProgressInterval < 0 {
		return fmt.Errorf("progress_interval must be non-negative")
	}
	if cfg.ReportFile == cfg.SummaryFile {
		return fmt.Errorf("report_file and summary_file must differ")
	}
	return nil
}
