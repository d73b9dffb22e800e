// Package footprint implements the household emission calculators.
//
// Each calculator is a pure function of its input record and a factor source and
// returns a monthly footprint in kg CO2e. Inputs are expected to be validated by the
// caller (see Validate); the calculators do not re-check ranges.
package footprint

// Factors is the read-only coefficient source used by the calculators.
// *factors.Table satisfies it.
type Factors interface {
	MustFactor(key string) float64
	GridFactor(region string) float64
	DietFactor(dietType string) (float64, error)
	VehicleFactor(vehicle string) float64
}

// HomeInput holds monthly home energy use.
type HomeInput struct {
	Region         string       `json:"region"          yaml:"region"`
	ElectricityKWh float64      `json:"electricity_kwh" yaml:"electricity_kwh" validate:"gte=0"`
	LPGCylinders   float64      `json:"lpg_cylinders"   yaml:"lpg_cylinders"   validate:"gte=0"`
	Biomass        BiomassUsage `json:"biomass"         yaml:"biomass"`
	SolarPct       float64      `json:"solar_pct"       yaml:"solar_pct"       validate:"gte=0,lte=100"`
}

// TransportInput holds weekly distances and annual flight counts.
type TransportInput struct {
	Vehicle            string  `json:"vehicle"             yaml:"vehicle"`
	PersonalKmWeekly   float64 `json:"personal_km_weekly"  yaml:"personal_km_weekly"  validate:"gte=0"`
	BusKmWeekly        float64 `json:"bus_km_weekly"       yaml:"bus_km_weekly"       validate:"gte=0"`
	TrainKmWeekly      float64 `json:"train_km_weekly"     yaml:"train_km_weekly"     validate:"gte=0"`
	ShortFlightsYearly float64 `json:"short_flights_yearly" yaml:"short_flights_yearly" validate:"gte=0"`
	LongFlightsYearly  float64 `json:"long_flights_yearly" yaml:"long_flights_yearly" validate:"gte=0"`
}

// DietInput holds daily eating habits.
//
// MeatMultiplier is 0 for Vegan and Vegetarian diets and otherwise one of the
// MeatFrequency bucket values. It is ignored for Vegan diets.
type DietInput struct {
	DietType          string  `json:"diet_type"           yaml:"diet_type"`
	MealsPerDay       float64 `json:"meals_per_day"       yaml:"meals_per_day"       validate:"gte=0"`
	MeatMultiplier    float64 `json:"meat_multiplier"     yaml:"meat_multiplier"     validate:"meat_multiplier"`
	DairyLitersPerDay float64 `json:"dairy_liters_per_day" yaml:"dairy_liters_per_day" validate:"gte=0"`
	OrganicPct        float64 `json:"organic_pct"         yaml:"organic_pct"         validate:"gte=0,lte=100"`
}

// WasteInput holds monthly waste quantities and disposal habits.
type WasteInput struct {
	FoodKg       float64 `json:"food_kg"       yaml:"food_kg"       validate:"gte=0"`
	PlasticKg    float64 `json:"plastic_kg"    yaml:"plastic_kg"    validate:"gte=0"`
	PaperKg      float64 `json:"paper_kg"      yaml:"paper_kg"      validate:"gte=0"`
	TextileKg    float64 `json:"textile_kg"    yaml:"textile_kg"    validate:"gte=0"`
	EWasteKg     float64 `json:"ewaste_kg"     yaml:"ewaste_kg"     validate:"gte=0"`
	CompostedPct float64 `json:"composted_pct" yaml:"composted_pct" validate:"gte=0,lte=100"`
	RecycledPct  float64 `json:"recycled_pct"  yaml:"recycled_pct"  validate:"gte=0,lte=100"`
}

// Household bundles the four activity inputs for one household.
type Household struct {
	Name      string         `json:"name"      yaml:"name"`
	Members   int            `json:"members"   yaml:"members"   validate:"gte=0"`
	Home      HomeInput      `json:"home"      yaml:"home"`
	Transport TransportInput `json:"transport" yaml:"transport"`
	Diet      DietInput      `json:"diet"      yaml:"diet"`
	Waste     WasteInput     `json:"waste"     yaml:"waste"`
}
