// Package config loads and saves the footprint CLI configuration.
//
// Configuration comes from, in increasing precedence: built-in defaults, the YAML
// config file (~/.footprint/config.yaml unless FOOTPRINT_CONFIG or --config say
// otherwise), a .env file in the working directory, and FOOTPRINT_* environment
// variables. CLI flags are applied on top by the commands themselves.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rshade/footprint/internal/footprint"
	"github.com/rshade/footprint/internal/greenops"
)

// Output format names.
const (
	OutputFormatTable  = "table"
	OutputFormatJSON   = "json"
	OutputFormatNDJSON = "ndjson"
)

const (
	configFileName   = "config.yaml"
	defaultPrecision = 1
	maxPrecision     = 6
	maxConcurrency   = 256
)

// Config is the complete CLI configuration.
type Config struct {
	Output     OutputConfig     `yaml:"output"`
	Logging    LoggingConfig    `yaml:"logging"`
	Factors    FactorsConfig    `yaml:"factors"`
	Comparison ComparisonConfig `yaml:"comparison"`
	Engine     EngineConfig     `yaml:"engine"`

	configPath string
	loadErr    error
}

// OutputConfig controls how results are rendered.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
	Precision     int    `yaml:"precision"`
	Unit          string `yaml:"unit"`
}

// LoggingConfig controls log level, format and destination.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file,omitempty"`
}

// FactorsConfig points at an optional custom emission factor file.
type FactorsConfig struct {
	File string `yaml:"file,omitempty"`
}

// ComparisonConfig holds the reference values used for comparison.
type ComparisonConfig struct {
	// NationalAverages are monthly kg CO2e per category.
	NationalAverages footprint.Breakdown `yaml:"national_averages"`

	// TreeAbsorptionKg is kg CO2 absorbed per tree per year.
	TreeAbsorptionKg float64 `yaml:"tree_absorption_kg"`
}

// EngineConfig controls batch estimation.
type EngineConfig struct {
	Concurrency int `yaml:"concurrency"`
}

// Default returns the built-in configuration without reading any files.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			DefaultFormat: OutputFormatTable,
			Precision:     defaultPrecision,
			Unit:          "kg",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Comparison: ComparisonConfig{
			NationalAverages: footprint.DefaultNationalAverages,
			TreeAbsorptionKg: footprint.TreeAbsorptionKgPerYear,
		},
		Engine: EngineConfig{
			Concurrency: 4, //nolint:mnd // Batch estimates are CPU-trivial; a small pool suffices.
		},
	}
}

// New returns the effective configuration for the default config path.
//
// A missing config file is not an error. A file that cannot be parsed leaves the
// defaults in place; the error is available from LoadError.
func New() *Config {
	path, err := DefaultConfigPath()
	if err != nil {
		cfg := Default()
		cfg.loadErr = err
		return cfg
	}
	cfg, err := Load(path)
	if err != nil {
		cfg = Default()
		cfg.configPath = path
		cfg.loadErr = err
		loadDotEnv()
		cfg.applyEnvOverrides()
	}
	return cfg
}

// Load reads the config file at path over the defaults, then applies .env and
// environment overrides. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	cfg.configPath = path

	if _, err := os.Stat(path); err == nil {
		if mergeErr := ShallowMergeYAML(cfg, path); mergeErr != nil {
			return nil, mergeErr
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("cannot access config path %s: %w", path, err)
	}

	loadDotEnv()
	cfg.applyEnvOverrides()
	return cfg, nil
}

// LoadError returns the error encountered by New, if any.
func (c *Config) LoadError() error {
	return c.loadErr
}

// ConfigPath returns the file this configuration was loaded from or saves to.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath changes the file Save writes to.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// Save writes the configuration as YAML to ConfigPath, creating parent directories.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("config path is not set")
	}
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err = os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config file %s: %w", c.configPath, err)
	}
	return nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	var errs []error

	switch c.Output.DefaultFormat {
	case OutputFormatTable, OutputFormatJSON, OutputFormatNDJSON:
	default:
		errs = append(errs, fmt.Errorf("output.default_format: unsupported format %q", c.Output.DefaultFormat))
	}
	if c.Output.Precision < 0 || c.Output.Precision > maxPrecision {
		errs = append(errs, fmt.Errorf("output.precision: must be between 0 and %d, got %d",
			maxPrecision, c.Output.Precision))
	}
	if !greenops.IsRecognizedUnit(c.Output.Unit) {
		errs = append(errs, fmt.Errorf("output.unit: unsupported unit %q", c.Output.Unit))
	}

	for _, cat := range footprint.Categories() {
		if v := c.Comparison.NationalAverages.Value(cat); v < 0 {
			errs = append(errs, fmt.Errorf("comparison.national_averages.%s: must be >= 0, got %g",
				strings.ToLower(string(cat)), v))
		}
	}
	if c.Comparison.TreeAbsorptionKg <= 0 {
		errs = append(errs, fmt.Errorf("comparison.tree_absorption_kg: must be > 0, got %g",
			c.Comparison.TreeAbsorptionKg))
	}

	if c.Engine.Concurrency < 1 || c.Engine.Concurrency > maxConcurrency {
		errs = append(errs, fmt.Errorf("engine.concurrency: must be between 1 and %d, got %d",
			maxConcurrency, c.Engine.Concurrency))
	}

	if c.Factors.File != "" {
		if _, err := os.Stat(c.Factors.File); err != nil {
			errs = append(errs, fmt.Errorf("factors.file: %w", err))
		}
	}

	return errors.Join(errs...)
}

// GetConfigDir returns the footprint configuration directory:
// FOOTPRINT_HOME if set, otherwise ~/.footprint.
func GetConfigDir() (string, error) {
	if home := os.Getenv(EnvHome); home != "" {
		return home, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".footprint"), nil
}

// DefaultConfigPath returns FOOTPRINT_CONFIG if set, otherwise config.yaml in GetConfigDir.
func DefaultConfigPath() (string, error) {
	if p := os.Getenv(EnvConfig); p != "" {
		return p, nil
	}
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}
