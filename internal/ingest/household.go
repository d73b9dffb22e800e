// Package ingest reads household profiles from YAML or JSON files.
//
// A profile holds either one household at the top level or a list under
// "households". Fields a profile omits take the form defaults from
// DefaultHousehold, so a profile only needs to state what differs.
package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rshade/footprint/internal/factors"
	"github.com/rshade/footprint/internal/footprint"
	"github.com/rshade/footprint/internal/logging"
)

// Format is a profile file encoding.
type Format string

// Supported profile formats.
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

type constError string

func (e constError) Error() string { return string(e) }

// Ingest errors.
const (
	ErrUnsupportedFormat = constError("unsupported profile format")
	ErrEmptyProfile      = constError("profile contains no households")
	ErrMeatFrequency     = constError("unknown meat frequency")
)

const keyHouseholds = "households"

// Form defaults for fields a profile leaves out.
const (
	defaultElectricityKWh = 200
	defaultLPGCylinders   = 1
	defaultMealsPerDay    = 3
	defaultDairyLiters    = 0.5
	defaultOrganicPct     = 20
	defaultWasteKg        = 5
	defaultEWasteKg       = 0.5
	defaultCompostedPct   = 20
	defaultRecycledPct    = 30
)

// DefaultHousehold returns the household a blank input form starts from.
func DefaultHousehold() footprint.Household {
	return footprint.Household{
		Home: footprint.HomeInput{
			Region:         factors.RegionOther,
			ElectricityKWh: defaultElectricityKWh,
			LPGCylinders:   defaultLPGCylinders,
			Biomass:        footprint.BiomassNever,
		},
		Transport: footprint.TransportInput{
			Vehicle: factors.VehicleNone,
		},
		Diet: footprint.DietInput{
			DietType:          factors.DietVegan,
			MealsPerDay:       defaultMealsPerDay,
			DairyLitersPerDay: defaultDairyLiters,
			OrganicPct:        defaultOrganicPct,
		},
		Waste: footprint.WasteInput{
			FoodKg:       defaultWasteKg,
			PlasticKg:    defaultWasteKg,
			PaperKg:      defaultWasteKg,
			TextileKg:    defaultWasteKg,
			EWasteKg:     defaultEWasteKg,
			CompostedPct: defaultCompostedPct,
			RecycledPct:  defaultRecycledPct,
		},
	}
}

// FormatForPath picks the profile format from a file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// LoadHouseholds reads the households in the profile at path.
func LoadHouseholds(path string) ([]footprint.Household, error) {
	return LoadHouseholdsWithContext(context.Background(), path)
}

// LoadHouseholdsWithContext is LoadHouseholds with the logger carried in ctx.
func LoadHouseholdsWithContext(ctx context.Context, path string) ([]footprint.Household, error) {
	log := logging.FromContext(ctx)
	log.Debug().
		Ctx(ctx).
		Str("component", "ingest").
		Str("operation", "load_profile").
		Str("profile_path", path).
		Msg("loading household profile")

	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Error().
			Ctx(ctx).
			Str("component", "ingest").
			Str("profile_path", path).
			Err(err).
			Msg("failed to read profile file")
		return nil, fmt.Errorf("reading profile file: %w", err)
	}

	return ParseHouseholdsWithContext(ctx, data, format)
}

// ParseHouseholds decodes profile bytes in the given format.
func ParseHouseholds(data []byte, format Format) ([]footprint.Household, error) {
	return ParseHouseholdsWithContext(context.Background(), data, format)
}

// ParseHouseholdsWithContext is ParseHouseholds with the logger carried in ctx.
func ParseHouseholdsWithContext(ctx context.Context, data []byte, format Format) ([]footprint.Household, error) {
	log := logging.FromContext(ctx)

	var doc interface{}
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing profile JSON: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing profile YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	entries, err := splitEntries(doc)
	if err != nil {
		return nil, err
	}

	households := make([]footprint.Household, 0, len(entries))
	for i, entry := range entries {
		h, decodeErr := decodeHousehold(entry)
		if decodeErr != nil {
			return nil, fmt.Errorf("household %d: %w", i, decodeErr)
		}
		households = append(households, h)
	}

	log.Debug().
		Ctx(ctx).
		Str("component", "ingest").
		Str("format", string(format)).
		Int("household_count", len(households)).
		Msg("profile parsed successfully")

	return households, nil
}

// splitEntries returns the household documents: the list under "households" when
// present, otherwise the whole document.
func splitEntries(doc interface{}) ([]interface{}, error) {
	m, ok := doc.(map[string]interface{})
	if !ok || len(m) == 0 {
		return nil, ErrEmptyProfile
	}

	raw, ok := m[keyHouseholds]
	if !ok {
		return []interface{}{m}, nil
	}
	list, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%q must be a list", keyHouseholds)
	}
	if len(list) == 0 {
		return nil, ErrEmptyProfile
	}
	return list, nil
}

// profileExtras holds profile-only conveniences that are not Household fields.
type profileExtras struct {
	Diet struct {
		MeatFrequency string `yaml:"meat_frequency"`
	} `yaml:"diet"`
}

// decodeHousehold re-marshals one entry and decodes it over the form defaults.
func decodeHousehold(entry interface{}) (footprint.Household, error) {
	data, err := yaml.Marshal(entry)
	if err != nil {
		return footprint.Household{}, fmt.Errorf("re-marshalling household: %w", err)
	}

	h := DefaultHousehold()
	if err = yaml.Unmarshal(data, &h); err != nil {
		return footprint.Household{}, fmt.Errorf("decoding household: %w", err)
	}

	var extras profileExtras
	if err = yaml.Unmarshal(data, &extras); err != nil {
		return footprint.Household{}, fmt.Errorf("decoding household: %w", err)
	}
	if f := extras.Diet.MeatFrequency; f != "" {
		m, ok := footprint.MeatMultiplier(footprint.MeatFrequency(f))
		if !ok {
			return footprint.Household{}, fmt.Errorf("%w: %q", ErrMeatFrequency, f)
		}
		h.Diet.MeatMultiplier = m
	}
	return h, nil
}

// WriteHouseholds writes households to path in the format its extension names,
// in a shape LoadHouseholds reads back.
func WriteHouseholds(path string, households []footprint.Household) error {
	if len(households) == 0 {
		return ErrEmptyProfile
	}

	var doc interface{} = households[0]
	if len(households) > 1 {
		doc = map[string]interface{}{keyHouseholds: households}
	}

	format, err := FormatForPath(path)
	if err != nil {
		return err
	}

	var data []byte
	switch format {
	case FormatJSON:
		data, err = json.MarshalIndent(doc, "", "  ")
	default:
		data, err = yaml.Marshal(doc)
	}
	if err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}
	if err = os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing profile file: %w", err)
	}
	return nil
}
