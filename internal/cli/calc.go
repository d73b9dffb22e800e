package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/footprint/internal/config"
	"github.com/rshade/footprint/internal/engine"
	"github.com/rshade/footprint/internal/factors"
	"github.com/rshade/footprint/internal/footprint"
	"github.com/rshade/footprint/internal/greenops"
	"github.com/rshade/footprint/internal/ingest"
	"github.com/rshade/footprint/internal/logging"
	"github.com/rshade/footprint/internal/tui"
)

// CalcParams holds the parameters for the calc command execution.
// Exported for testing.
type CalcParams struct {
	Profile     string
	SaveProfile string
	Name        string
	Members     int

	Set         []string // dotted.field=value what-if overrides
	Interactive bool

	FactorsFile string
	Output      string
	Unit        string
	Concurrency int
}

// inputFlag binds a calc flag to a household field.
type inputFlag struct {
	name  string
	path  string
	usage string
}

// calcInputFlags lists the per-field input flags in form order.
//
//nolint:gochecknoglobals // Compile-time constant lookup table.
var calcInputFlags = []inputFlag{
	{"region", "home.region", "state or union territory for the grid factor"},
	{"electricity-kwh", "home.electricity_kwh", "electricity use in kWh per month"},
	{"lpg-cylinders", "home.lpg_cylinders", "14.2 kg LPG cylinders per month"},
	{"biomass", "home.biomass", "biomass cooking: Never, Occasionally, Daily"},
	{"solar-pct", "home.solar_pct", "share of electricity from solar (0-100)"},
	{"vehicle", "transport.vehicle", "personal vehicle type"},
	{"personal-km", "transport.personal_km_weekly", "personal vehicle km per week"},
	{"bus-km", "transport.bus_km_weekly", "bus km per week"},
	{"train-km", "transport.train_km_weekly", "train km per week"},
	{"short-flights", "transport.short_flights_yearly", "short-haul flights per year"},
	{"long-flights", "transport.long_flights_yearly", "long-haul flights per year"},
	{"diet", "diet.diet_type", "diet type"},
	{"meals", "diet.meals_per_day", "meals per day"},
	{"meat-frequency", "diet.meat_frequency", "meat meal frequency"},
	{"dairy-l", "diet.dairy_liters_per_day", "dairy liters per day"},
	{"organic-pct", "diet.organic_pct", "share of organic food (0-100)"},
	{"food-kg", "waste.food_kg", "food waste kg per month"},
	{"plastic-kg", "waste.plastic_kg", "plastic waste kg per month"},
	{"paper-kg", "waste.paper_kg", "paper waste kg per month"},
	{"textile-kg", "waste.textile_kg", "textile waste kg per month"},
	{"ewaste-kg", "waste.ewaste_kg", "e-waste kg per month"},
	{"composted-pct", "waste.composted_pct", "share of food waste composted (0-100)"},
	{"recycled-pct", "waste.recycled_pct", "share of dry waste recycled (0-100)"},
}

// NewCalcCmd creates the "calc" command that estimates household footprints.
//
// Inputs come from per-field flags (omitted fields use the form defaults) or from
// a --profile file holding one or many households; flags set explicitly override
// the profile for every household. --set applies what-if overrides and reports
// the change, --interactive opens the what-if editor.
func NewCalcCmd() *cobra.Command {
	var params CalcParams

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Estimate the carbon footprint of a household",
		Long: `Estimate the monthly and annual carbon footprint of one or more households
across home energy, transport, diet and waste, and compare it with the national average.

Field paths accepted by --set:
  ` + strings.Join(fieldPaths(), "\n  "),
		Example: `  # Flags for a single household
  footprint calc --region Karnataka --electricity-kwh 180 --diet Non-Vegetarian --meat-frequency Frequent

  # Batch estimate as NDJSON
  footprint calc --profile households.yaml --output ndjson --concurrency 8

  # What-if: switch to an EV
  footprint calc --profile home.yaml --set transport.vehicle="EV Car"

  # Report in tonnes
  footprint calc --unit t`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeCalc(cmd, params)
		},
	}

	defaults := ingest.DefaultHousehold()
	for _, f := range calcInputFlags {
		field, ok := footprint.LookupField(f.path)
		if !ok {
			continue
		}
		usage := f.usage
		if len(field.Choices) > 0 {
			usage += " (" + strings.Join(field.Choices, ", ") + ")"
		}
		cmd.Flags().String(f.name, field.Get(defaults), usage)
	}

	cmd.Flags().StringVar(&params.Profile, "profile", "", "YAML or JSON file with one or many households")
	cmd.Flags().StringVar(&params.SaveProfile, "save-profile", "", "write the effective households to this file")
	cmd.Flags().StringVar(&params.Name, "name", "", "household name")
	cmd.Flags().IntVar(&params.Members, "members", 0, "number of household members, for per-person figures")
	cmd.Flags().StringArrayVar(&params.Set, "set", nil, "what-if override field=value (repeatable)")
	cmd.Flags().BoolVar(&params.Interactive, "interactive", false, "open the interactive what-if editor")
	cmd.Flags().StringVar(&params.FactorsFile, "factors", "", "custom emission factor YAML file")
	cmd.Flags().StringVar(&params.Output, "output", "", "output format (table, json, ndjson)")
	cmd.Flags().StringVar(&params.Unit, "unit", "", "display unit (g, kg, t, lb)")
	cmd.Flags().IntVar(&params.Concurrency, "concurrency", 0, "parallel estimates for batch profiles")

	return cmd
}

func fieldPaths() []string {
	fields := footprint.Fields()
	paths := make([]string, len(fields))
	for i, f := range fields {
		paths[i] = f.Path
	}
	return paths
}

// keyValueParts is the expected number of parts when splitting key=value strings.
const keyValueParts = 2

// maxFieldOverrides bounds the number of --set flags.
const maxFieldOverrides = 100

// ParseFieldOverrides parses --set field=value flags into a map keyed by
// lower-case field path. Exported for testing.
func ParseFieldOverrides(sets []string) (map[string]string, error) {
	if len(sets) > maxFieldOverrides {
		return nil, fmt.Errorf("too many overrides: %d (max %d)", len(sets), maxFieldOverrides)
	}

	overrides := make(map[string]string, len(sets))
	for _, s := range sets {
		parts := strings.SplitN(s, "=", keyValueParts)
		if len(parts) != keyValueParts {
			return nil, fmt.Errorf("invalid override format %q: expected field=value", s)
		}
		key := strings.ToLower(strings.TrimSpace(parts[0]))
		value := strings.TrimSpace(parts[1])
		if key == "" {
			return nil, fmt.Errorf("field cannot be empty in %q", s)
		}
		if _, ok := footprint.LookupField(key); !ok {
			return nil, fmt.Errorf("unknown field %q", key)
		}
		overrides[key] = value
	}
	return overrides, nil
}

// calcSettings are the effective calc settings after config and flags are merged.
type calcSettings struct {
	output      string
	render      tui.RenderOptions
	factorsFile string
	concurrency int
}

// resolveCalcSettings applies explicitly set flags over the global configuration.
func resolveCalcSettings(params CalcParams) (calcSettings, error) {
	cfg := config.GetGlobalConfig()
	s := calcSettings{
		output:      cfg.Output.DefaultFormat,
		render:      tui.RenderOptions{Unit: cfg.Output.Unit, Precision: cfg.Output.Precision},
		factorsFile: cfg.Factors.File,
		concurrency: cfg.Engine.Concurrency,
	}
	if params.Output != "" {
		s.output = strings.ToLower(params.Output)
	}
	if params.Unit != "" {
		s.render.Unit = params.Unit
	}
	if params.FactorsFile != "" {
		s.factorsFile = params.FactorsFile
	}
	if params.Concurrency > 0 {
		s.concurrency = params.Concurrency
	}

	if !isValidOutputFormat(s.output) {
		return s, fmt.Errorf("unsupported output format: %s", s.output)
	}
	if !greenops.IsRecognizedUnit(s.render.Unit) {
		return s, fmt.Errorf("%w: %s", greenops.ErrInvalidUnit, s.render.Unit)
	}
	return s, nil
}

// isValidOutputFormat checks if the provided format is one of the supported output formats.
func isValidOutputFormat(format string) bool {
	switch format {
	case config.OutputFormatTable, config.OutputFormatJSON, config.OutputFormatNDJSON:
		return true
	default:
		return false
	}
}

// loadFactorTable returns the table in path, or the built-in table when path is empty.
func loadFactorTable(path string) (*factors.Table, error) {
	if path == "" {
		return factors.Default(), nil
	}
	t, err := factors.Load(path)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// newEngine builds an engine from the global comparison settings.
func newEngine(cmd *cobra.Command, table *factors.Table) *engine.Engine {
	cfg := config.GetGlobalConfig()
	log := logging.FromContext(cmd.Context())
	return engine.New(table, cfg.Comparison.NationalAverages,
		engine.WithTreeAbsorption(cfg.Comparison.TreeAbsorptionKg),
		engine.WithProgress(func(done, total int) {
			log.Debug().Int("done", done).Int("total", total).Msg("batch progress")
		}),
	)
}

// buildHouseholds loads the profile, or starts from the form defaults, and applies
// every explicitly set input flag.
func buildHouseholds(cmd *cobra.Command, params CalcParams) ([]footprint.Household, error) {
	var households []footprint.Household
	if params.Profile != "" {
		loaded, err := ingest.LoadHouseholdsWithContext(cmd.Context(), params.Profile)
		if err != nil {
			return nil, err
		}
		households = loaded
	} else {
		households = []footprint.Household{ingest.DefaultHousehold()}
	}

	for i := range households {
		h := &households[i]
		for _, f := range calcInputFlags {
			if !cmd.Flags().Changed(f.name) {
				continue
			}
			value, _ := cmd.Flags().GetString(f.name)
			if err := footprint.SetField(h, f.path, value); err != nil {
				return nil, fmt.Errorf("--%s: %w", f.name, err)
			}
		}
		if cmd.Flags().Changed("name") {
			h.Name = params.Name
		}
		if cmd.Flags().Changed("members") {
			h.Members = params.Members
		}
	}
	return households, nil
}

func executeCalc(cmd *cobra.Command, params CalcParams) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)
	start := time.Now()

	settings, err := resolveCalcSettings(params)
	if err != nil {
		return err
	}

	overrides, err := ParseFieldOverrides(params.Set)
	if err != nil {
		return fmt.Errorf("parsing overrides: %w", err)
	}

	table, err := loadFactorTable(settings.factorsFile)
	if err != nil {
		return err
	}

	households, err := buildHouseholds(cmd, params)
	if err != nil {
		return err
	}

	log.Debug().Ctx(ctx).
		Str("operation", "calc").
		Str("profile", params.Profile).
		Str("factor_table", table.Name()).
		Int("household_count", len(households)).
		Int("override_count", len(overrides)).
		Bool("interactive", params.Interactive).
		Msg("starting footprint calculation")

	if params.SaveProfile != "" {
		if err = ingest.WriteHouseholds(params.SaveProfile, households); err != nil {
			return err
		}
		cmd.PrintErrf("Profile saved to %s\n", params.SaveProfile)
	}

	eng := newEngine(cmd, table)
	w := cmd.OutOrStdout()

	switch {
	case params.Interactive:
		if len(households) != 1 {
			return errors.New("interactive mode needs exactly one household")
		}
		err = executeInteractiveCalc(cmd, eng, households[0], overrides, settings)
	case len(overrides) > 0:
		if len(households) != 1 {
			return errors.New("--set needs exactly one household")
		}
		var result *engine.WhatIfResult
		result, err = eng.WhatIf(ctx, households[0], overrides)
		if err == nil {
			err = renderWhatIf(w, settings.output, result, settings.render)
		}
	case len(households) == 1:
		var report *engine.Report
		report, err = eng.Estimate(ctx, households[0])
		if err == nil {
			err = renderReport(w, settings.output, report, settings.render)
		}
	default:
		var items []engine.BatchItem
		items, err = eng.EstimateBatch(ctx, households, settings.concurrency)
		if err == nil {
			err = renderBatch(w, settings.output, items, eng.Summarize(items), settings.render)
		}
	}
	if err != nil {
		log.Error().Ctx(ctx).Err(err).Msg("footprint calculation failed")
		return err
	}

	log.Info().Ctx(ctx).
		Str("operation", "calc").
		Dur("duration_ms", time.Since(start)).
		Msg("footprint calculation complete")
	return nil
}

// executeInteractiveCalc runs the what-if editor for h and prints the final result
// when the user quits.
func executeInteractiveCalc(
	cmd *cobra.Command,
	eng *engine.Engine,
	h footprint.Household,
	overrides map[string]string,
	settings calcSettings,
) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	if !isTerminal(os.Stdout) {
		return errors.New("interactive mode requires a terminal")
	}

	if len(overrides) > 0 {
		for path, value := range overrides {
			if err := footprint.SetField(&h, path, value); err != nil {
				return err
			}
		}
	}

	initial, err := eng.WhatIf(ctx, h, nil)
	if err != nil {
		return err
	}

	log.Debug().Ctx(ctx).Str("household", h.Name).Msg("launching interactive what-if editor")

	model := tui.NewWhatIfModel(ctx, h, initial, settings.render, eng.WhatIf)
	finalModel, err := tea.NewProgram(model).Run()
	if err != nil {
		return fmt.Errorf("running interactive TUI: %w", err)
	}

	whatIf, ok := finalModel.(*tui.WhatIfModel)
	if !ok {
		return fmt.Errorf("unexpected model type: %T, expected *tui.WhatIfModel", finalModel)
	}

	result := whatIf.Result()
	if result != nil && len(whatIf.GetOverrides()) > 0 {
		cmd.Println("\nFinal Estimate:")
		return renderWhatIf(cmd.OutOrStdout(), settings.output, result, settings.render)
	}
	return nil
}
