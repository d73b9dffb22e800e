package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/footprint/internal/config"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the footprint CLI.
// It wires up configuration, logging and tracing, and the calc, factors and
// config subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var session *commandSession

	cmd := &cobra.Command{
		Use:           "footprint",
		Short:         "Household carbon footprint calculator",
		Long:          "footprint: Estimate the monthly and annual carbon footprint of a household",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfigFlag(cmd); err != nil {
				return err
			}
			session = setupLogging(cmd)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, session)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file (default ~/.footprint/config.yaml)")
	cmd.AddCommand(NewCalcCmd(), newFactorsCmd(), newConfigCmd())

	return cmd
}

// loadConfigFlag replaces the global configuration when --config names a file.
// Otherwise it warns when the default config file exists but could not be loaded.
func loadConfigFlag(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		if err := config.GetGlobalConfig().LoadError(); err != nil {
			cmd.PrintErrf("Warning: using default configuration: %v\n", err)
		}
		return nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("loading config %s: %w", path, err)
	}
	config.SetGlobalConfig(cfg)
	return nil
}

const rootCmdExample = `  # Estimate a household from flags (omitted inputs use the form defaults)
  footprint calc --region Delhi --electricity-kwh 250 --vehicle "Petrol Car" --personal-km 120

  # Estimate every household in a profile file
  footprint calc --profile households.yaml --output json

  # What-if: compare with a different diet
  footprint calc --profile home.yaml --set diet.diet_type=Vegetarian

  # Edit a household interactively
  footprint calc --profile home.yaml --interactive

  # Show the active emission factors
  footprint factors list

  # Initialize configuration
  footprint config init

  # Set configuration values
  footprint config set output.unit t`

// newFactorsCmd creates the factors command group.
func newFactorsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "factors", Short: "Emission factor table commands"}
	cmd.PersistentFlags().String("factors", "", "custom emission factor YAML file")
	cmd.AddCommand(NewFactorsListCmd(), NewFactorsRegionsCmd(), NewFactorsExportCmd())
	return cmd
}

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(
		NewConfigInitCmd(), NewConfigSetCmd(), NewConfigGetCmd(),
		NewConfigListCmd(), NewConfigValidateCmd(),
	)
	return cmd
}
