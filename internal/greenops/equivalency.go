package greenops

import (
	"fmt"
	"math"
)

// Calculate converts a CarbonInput to kilograms and computes the tree, km-driven and
// smartphone equivalencies using the default tree absorption rate.
//
// Callers pass an annual figure: the tree equivalency assumes one tree absorbs
// TreeYearFactor kg per year.
func Calculate(input CarbonInput) (EquivalencyOutput, error) {
	return CalculateWithTreeRate(input, TreeYearFactor)
}

// CalculateWithTreeRate is Calculate with a caller-supplied kg CO2 absorbed per tree per year.
//
// It returns an empty output and the normalization error for invalid input, an empty
// output with InputKg set when the value is below MinEquivalencyThresholdKg, and
// ErrCalculationOverflow when a division yields NaN or Inf (including a zero tree rate).
func CalculateWithTreeRate(input CarbonInput, treeKgPerYear float64) (EquivalencyOutput, error) {
	kg, err := NormalizeToKg(input.Value, input.Unit)
	if err != nil {
		return EquivalencyOutput{IsEmpty: true}, err
	}

	if kg < MinEquivalencyThresholdKg {
		return EquivalencyOutput{InputKg: kg, IsEmpty: true}, nil
	}

	trees := kg / treeKgPerYear
	km := kg / KmDrivenFactor
	phones := kg / SmartphoneChargeFactor

	for _, v := range []float64{trees, km, phones} {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return EquivalencyOutput{IsEmpty: true}, ErrCalculationOverflow
		}
	}

	treesFormatted := formatEquivalencyValue(trees)
	kmFormatted := formatEquivalencyValue(km)
	phonesFormatted := formatEquivalencyValue(phones)

	results := []EquivalencyResult{
		{
			Type:           EquivalencyTreesNeeded,
			Value:          trees,
			FormattedValue: treesFormatted,
			Label:          "trees needed for a year",
		},
		{
			Type:           EquivalencyKmDriven,
			Value:          km,
			FormattedValue: kmFormatted,
			Label:          "km driven",
		},
		{
			Type:           EquivalencySmartphonesCharged,
			Value:          phones,
			FormattedValue: phonesFormatted,
			Label:          "smartphones charged",
		},
	}

	return EquivalencyOutput{
		InputKg: kg,
		Results: results,
		DisplayText: fmt.Sprintf(
			"Equivalent to driving ~%s km or charging ~%s smartphones; ~%s trees would need a year to absorb it",
			kmFormatted, phonesFormatted, treesFormatted),
		CompactText: fmt.Sprintf("(≈ %s trees, %s km)", treesFormatted, kmFormatted),
	}, nil
}

// formatEquivalencyValue rounds v to an integer with separators, switching to
// abbreviated notation at LargeNumberThreshold.
func formatEquivalencyValue(v float64) string {
	if v >= LargeNumberThreshold {
		return FormatLarge(v)
	}
	return FormatNumber(int64(math.Round(v)))
}
