package footprint

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rshade/footprint/internal/factors"
)

// FieldKind says how a household field is edited.
type FieldKind int

// Field kinds.
const (
	FieldNumber FieldKind = iota
	FieldChoice
	FieldText
)

// Field describes one editable household input addressed by a dotted path such
// as "transport.personal_km_weekly".
type Field struct {
	Path    string
	Label   string
	Kind    FieldKind
	Choices []string

	get func(h *Household) string
	set func(h *Household, v string) error
}

// Get returns the field's current value from h in string form.
func (f Field) Get(h Household) string {
	return f.get(&h)
}

// householdFields lists every editable field in form order.
//
//nolint:gochecknoglobals // Read-only accessor table.
var householdFields = []Field{
	textField("home.region", "Region",
		func(h *Household) *string { return &h.Home.Region }),
	numberField("home.electricity_kwh", "Electricity (kWh/month)",
		func(h *Household) *float64 { return &h.Home.ElectricityKWh }),
	numberField("home.lpg_cylinders", "LPG cylinders/month",
		func(h *Household) *float64 { return &h.Home.LPGCylinders }),
	{
		Path:    "home.biomass",
		Label:   "Biomass use",
		Kind:    FieldChoice,
		Choices: []string{string(BiomassNever), string(BiomassOccasionally), string(BiomassDaily)},
		get:     func(h *Household) string { return string(h.Home.Biomass) },
		set: func(h *Household, v string) error {
			h.Home.Biomass = BiomassUsage(v)
			return nil
		},
	},
	numberField("home.solar_pct", "Solar share (%)",
		func(h *Household) *float64 { return &h.Home.SolarPct }),
	{
		Path:    "transport.vehicle",
		Label:   "Personal vehicle",
		Kind:    FieldChoice,
		Choices: factors.VehicleLabels(),
		get:     func(h *Household) string { return h.Transport.Vehicle },
		set: func(h *Household, v string) error {
			h.Transport.Vehicle = v
			return nil
		},
	},
	numberField("transport.personal_km_weekly", "Personal km/week",
		func(h *Household) *float64 { return &h.Transport.PersonalKmWeekly }),
	numberField("transport.bus_km_weekly", "Bus km/week",
		func(h *Household) *float64 { return &h.Transport.BusKmWeekly }),
	numberField("transport.train_km_weekly", "Train km/week",
		func(h *Household) *float64 { return &h.Transport.TrainKmWeekly }),
	numberField("transport.short_flights_yearly", "Short flights/year",
		func(h *Household) *float64 { return &h.Transport.ShortFlightsYearly }),
	numberField("transport.long_flights_yearly", "Long flights/year",
		func(h *Household) *float64 { return &h.Transport.LongFlightsYearly }),
	{
		Path:    "diet.diet_type",
		Label:   "Diet",
		Kind:    FieldChoice,
		Choices: factors.DietTypes(),
		get:     func(h *Household) string { return h.Diet.DietType },
		set: func(h *Household, v string) error {
			h.Diet.DietType = v
			return nil
		},
	},
	numberField("diet.meals_per_day", "Meals/day",
		func(h *Household) *float64 { return &h.Diet.MealsPerDay }),
	{
		Path:    "diet.meat_frequency",
		Label:   "Meat frequency",
		Kind:    FieldChoice,
		Choices: meatFrequencyNames(),
		get:     func(h *Household) string { return string(MeatFrequencyFor(h.Diet.MeatMultiplier)) },
		set: func(h *Household, v string) error {
			m, ok := MeatMultiplier(MeatFrequency(v))
			if !ok {
				return fmt.Errorf("unknown meat frequency %q", v)
			}
			h.Diet.MeatMultiplier = m
			return nil
		},
	},
	numberField("diet.dairy_liters_per_day", "Dairy (L/day)",
		func(h *Household) *float64 { return &h.Diet.DairyLitersPerDay }),
	numberField("diet.organic_pct", "Organic share (%)",
		func(h *Household) *float64 { return &h.Diet.OrganicPct }),
	numberField("waste.food_kg", "Food waste (kg/month)",
		func(h *Household) *float64 { return &h.Waste.FoodKg }),
	numberField("waste.plastic_kg", "Plastic (kg/month)",
		func(h *Household) *float64 { return &h.Waste.PlasticKg }),
	numberField("waste.paper_kg", "Paper (kg/month)",
		func(h *Household) *float64 { return &h.Waste.PaperKg }),
	numberField("waste.textile_kg", "Textile (kg/month)",
		func(h *Household) *float64 { return &h.Waste.TextileKg }),
	numberField("waste.ewaste_kg", "E-waste (kg/month)",
		func(h *Household) *float64 { return &h.Waste.EWasteKg }),
	numberField("waste.composted_pct", "Composted (%)",
		func(h *Household) *float64 { return &h.Waste.CompostedPct }),
	numberField("waste.recycled_pct", "Recycled (%)",
		func(h *Household) *float64 { return &h.Waste.RecycledPct }),
}

func numberField(path, label string, ptr func(h *Household) *float64) Field {
	return Field{
		Path:  path,
		Label: label,
		Kind:  FieldNumber,
		get:   func(h *Household) string { return strconv.FormatFloat(*ptr(h), 'f', -1, 64) },
		set: func(h *Household, v string) error {
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				return fmt.Errorf("invalid number %q", v)
			}
			*ptr(h) = f
			return nil
		},
	}
}

func textField(path, label string, ptr func(h *Household) *string) Field {
	return Field{
		Path:  path,
		Label: label,
		Kind:  FieldText,
		get:   func(h *Household) string { return *ptr(h) },
		set: func(h *Household, v string) error {
			*ptr(h) = strings.TrimSpace(v)
			return nil
		},
	}
}

func meatFrequencyNames() []string {
	names := make([]string, 0, len(meatMultipliers))
	for _, f := range MeatFrequencies() {
		names = append(names, string(f))
	}
	return names
}

// MeatFrequencyFor maps a multiplier back to its bucket, or "" when it matches none.
func MeatFrequencyFor(multiplier float64) MeatFrequency {
	for _, f := range MeatFrequencies() {
		if meatMultipliers[f] == multiplier {
			return f
		}
	}
	return ""
}

// Fields returns the editable household fields in form order.
func Fields() []Field {
	out := make([]Field, len(householdFields))
	copy(out, householdFields)
	return out
}

// LookupField finds a field by its dotted path, case-insensitively.
func LookupField(path string) (Field, bool) {
	p := strings.ToLower(strings.TrimSpace(path))
	for _, f := range householdFields {
		if f.Path == p {
			return f, true
		}
	}
	return Field{}, false
}

// SetField assigns a field of h from its string form. Choice values are not
// checked here; Validate rejects unknown diets and meat frequencies.
func SetField(h *Household, path, value string) error {
	f, ok := LookupField(path)
	if !ok {
		return fmt.Errorf("%w: unknown field %q", ErrInvalidInput, path)
	}
	if err := f.set(h, value); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidInput, f.Path, err)
	}
	return nil
}
