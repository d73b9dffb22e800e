package footprint

// Time conversion constants. These are domain approximations kept in one place
// so they can be recalibrated.
const (
	// WeeksPerMonth converts weekly distances to monthly (52.14 weeks / 12 months).
	WeeksPerMonth = 4.345

	// DaysPerMonth converts daily quantities (meals, dairy) to monthly.
	DaysPerMonth = 30

	// MonthsPerYear converts monthly footprints to annual and amortizes annual
	// flight counts to a monthly rate.
	MonthsPerYear = 12

	// percentBase converts a 0-100 percentage to a fraction.
	percentBase = 100.0
)

// TreeAbsorptionKgPerYear is the assumed kg CO2 absorbed by one tree per year.
const TreeAbsorptionKgPerYear = 22.0

// BiomassUsage is how often a household burns biomass (wood, dung, crop waste) for cooking or heat.
type BiomassUsage string

// Recognized biomass usage categories.
const (
	BiomassNever        BiomassUsage = "Never"
	BiomassOccasionally BiomassUsage = "Occasionally"
	BiomassDaily        BiomassUsage = "Daily"
)

// biomassDaysPerMonth maps usage to an assumed number of burning days per month.
// Unrecognized usage counts as zero days.
//
//nolint:gochecknoglobals // Compile-time constant lookup table.
var biomassDaysPerMonth = map[BiomassUsage]float64{
	BiomassNever:        0,
	BiomassOccasionally: 15,
	BiomassDaily:        30,
}

// BiomassDays returns the monthly burning-day count for usage, or 0 if unrecognized.
func BiomassDays(usage BiomassUsage) float64 {
	return biomassDaysPerMonth[usage]
}

// MeatFrequency buckets the number of meat or fish meals eaten per week.
type MeatFrequency string

// Recognized meat frequency buckets.
const (
	MeatNone         MeatFrequency = "None"
	MeatOccasional   MeatFrequency = "Occasional"    // 1-2 meals per week
	MeatFrequent     MeatFrequency = "Frequent"      // 3-5 meals per week
	MeatVeryFrequent MeatFrequency = "Very frequent" // 6-7 meals per week
)

//nolint:gochecknoglobals // Compile-time constant lookup table.
var meatMultipliers = map[MeatFrequency]float64{
	MeatNone:         0,
	MeatOccasional:   0.5,
	MeatFrequent:     1.0,
	MeatVeryFrequent: 1.2,
}

// MeatMultiplier returns the diet multiplier for a meat frequency bucket.
// The boolean is false for unrecognized buckets.
func MeatMultiplier(f MeatFrequency) (float64, bool) {
	v, ok := meatMultipliers[f]
	return v, ok
}

// MeatFrequencies returns the recognized buckets in display order.
func MeatFrequencies() []MeatFrequency {
	return []MeatFrequency{MeatNone, MeatOccasional, MeatFrequent, MeatVeryFrequent}
}

// isMeatMultiplier reports whether v is one of the bucket multipliers.
func isMeatMultiplier(v float64) bool {
	for _, m := range meatMultipliers {
		if m == v {
			return true
		}
	}
	return false
}
