package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/footprint/internal/config"
	"github.com/rshade/footprint/internal/factors"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the configuration file for syntax and semantic correctness.

This includes:
- Output format, precision and unit
- Non-negative national averages and a positive tree absorption rate
- Batch concurrency bounds
- The custom factor file, if one is configured, loads and has a supported version`,
		Example: `  # Validate current configuration
  footprint config validate

  # Validate and show detailed information
  footprint config validate --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate executes the configuration validation logic.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	cfg := config.GetGlobalConfig()

	if err := cfg.LoadError(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	var table *factors.Table
	if cfg.Factors.File != "" {
		t, err := factors.Load(cfg.Factors.File)
		if err != nil {
			return fmt.Errorf("configuration validation failed: %w", err)
		}
		table = t
	}

	cmd.Printf("Configuration is valid\n")

	if verbose {
		printVerboseDetails(cmd, cfg, table)
	}

	return nil
}

// printVerboseDetails prints detailed configuration information.
func printVerboseDetails(cmd *cobra.Command, cfg *config.Config, table *factors.Table) {
	cmd.Println()
	cmd.Println("Configuration details:")
	if path := cfg.ConfigPath(); path != "" {
		cmd.Printf("  Config file: %s\n", path)
	}
	cmd.Printf("  Output format: %s\n", cfg.Output.DefaultFormat)
	cmd.Printf("  Output precision: %d\n", cfg.Output.Precision)
	cmd.Printf("  Output unit: %s\n", cfg.Output.Unit)
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	if cfg.Logging.File != "" {
		cmd.Printf("  Log file: %s\n", cfg.Logging.File)
	}
	cmd.Printf("  Batch concurrency: %d\n", cfg.Engine.Concurrency)

	if table != nil {
		cmd.Printf("  Factor table: %s v%s (%s)\n", table.Name(), table.Version(), cfg.Factors.File)
	} else {
		t := factors.Default()
		cmd.Printf("  Factor table: %s v%s (built-in)\n", t.Name(), t.Version())
	}
}
