package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/footprint/internal/config"
	"github.com/rshade/footprint/internal/factors"
	"github.com/rshade/footprint/internal/greenops"
)

const formatYAML = "yaml"

// activeFactorTable loads the table named by --factors, falling back to the
// configured factor file and then to the built-in table.
func activeFactorTable(cmd *cobra.Command) (*factors.Table, error) {
	path, _ := cmd.Flags().GetString("factors")
	if path == "" {
		path = config.GetGlobalConfig().Factors.File
	}
	return loadFactorTable(path)
}

func validateListFormat(format string) error {
	switch format {
	case config.OutputFormatTable, config.OutputFormatJSON, formatYAML:
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s (table, json, yaml)", format)
	}
}

// NewFactorsListCmd creates the "factors list" command printing every coefficient.
func NewFactorsListCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the emission factors in the active table",
		Example: `  # Built-in table
  footprint factors list

  # A custom table as JSON
  footprint factors list --factors my-factors.yaml --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateListFormat(output); err != nil {
				return err
			}
			t, err := activeFactorTable(cmd)
			if err != nil {
				return err
			}
			return renderFactorList(cmd.OutOrStdout(), output, t)
		},
	}

	cmd.Flags().StringVar(&output, "output", config.OutputFormatTable, "output format (table, json, yaml)")
	return cmd
}

func renderFactorList(w io.Writer, format string, t *factors.Table) error {
	switch format {
	case config.OutputFormatJSON:
		return writeJSON(w, t.Export())
	case formatYAML:
		return yaml.NewEncoder(w).Encode(t.Export())
	}

	fmt.Fprintf(w, "Factor table: %s v%s\n\n", t.Name(), t.Version())
	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(tw, "KEY\tVALUE")
	fmt.Fprintln(tw, "---\t-----")
	for _, k := range t.Keys() {
		fmt.Fprintf(tw, "%s\t%s\n", k, formatFactor(t.MustFactor(k)))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "\n%d regions; see 'footprint factors regions'\n", len(t.Regions()))
	return nil
}

// NewFactorsRegionsCmd creates the "factors regions" command printing grid factors.
func NewFactorsRegionsCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "regions",
		Short: "List the regional electricity grid factors",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateListFormat(output); err != nil {
				return err
			}
			t, err := activeFactorTable(cmd)
			if err != nil {
				return err
			}
			return renderRegions(cmd.OutOrStdout(), output, t)
		},
	}

	cmd.Flags().StringVar(&output, "output", config.OutputFormatTable, "output format (table, json, yaml)")
	return cmd
}

func renderRegions(w io.Writer, format string, t *factors.Table) error {
	switch format {
	case config.OutputFormatJSON:
		return json.NewEncoder(w).Encode(t.RegionFactors())
	case formatYAML:
		return yaml.NewEncoder(w).Encode(t.RegionFactors())
	}

	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(tw, "REGION\tKG CO2E/KWH")
	fmt.Fprintln(tw, "------\t-----------")
	for _, r := range t.Regions() {
		fmt.Fprintf(tw, "%s\t%s\n", r, formatFactor(t.GridFactor(r)))
	}
	return tw.Flush()
}

// NewFactorsExportCmd creates the "factors export" command writing the active
// table as a factor file that can be edited and passed back with --factors.
func NewFactorsExportCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Write the active factor table to a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%s already exists, use --force to overwrite", path)
				}
			}
			t, err := activeFactorTable(cmd)
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(t.Export())
			if err != nil {
				return fmt.Errorf("encoding factor table: %w", err)
			}
			if err = os.WriteFile(path, data, 0o600); err != nil {
				return fmt.Errorf("writing factor file: %w", err)
			}
			cmd.Printf("Factor table %s v%s written to %s\n", t.Name(), t.Version(), path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

// formatFactor prints a coefficient with up to four decimals and no trailing zeros.
func formatFactor(v float64) string {
	s := greenops.FormatFloat(v, 4) //nolint:mnd // Factor precision.
	if strings.Contains(s, ".") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	return s
}
