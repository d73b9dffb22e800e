package greenops

import (
	"math"
	"strings"
)

// getUnitFactor returns the kilogram conversion factor for unit, matched
// case-insensitively, and whether the unit is recognized.
func getUnitFactor(unit string) (float64, bool) {
	switch strings.ToLower(unit) {
	case "g", "gco2e":
		return GramsToKg, true
	case "kg", "kgco2e":
		return KgToKg, true
	case "t", "tco2e":
		return TonsToKg, true
	case "lb", "lbco2e":
		return PoundsToKg, true
	default:
		return 0, false
	}
}

// NormalizeToKg converts a carbon quantity from unit to kilograms.
//
// Returns ErrCalculationOverflow for NaN or infinite values (or an overflowing
// result), ErrNegativeValue for negative values and ErrInvalidUnit for unknown units.
func NormalizeToKg(value float64, unit string) (float64, error) {
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, ErrCalculationOverflow
	}
	if value < 0 {
		return 0, ErrNegativeValue
	}

	factor, ok := getUnitFactor(unit)
	if !ok {
		return 0, ErrInvalidUnit
	}

	result := value * factor
	if math.IsInf(result, 0) {
		return 0, ErrCalculationOverflow
	}
	return result, nil
}

// FromKg converts kilograms to the given unit. It is the inverse of NormalizeToKg
// and returns the same errors.
func FromKg(kg float64, unit string) (float64, error) {
	if math.IsInf(kg, 0) || math.IsNaN(kg) {
		return 0, ErrCalculationOverflow
	}
	if kg < 0 {
		return 0, ErrNegativeValue
	}

	factor, ok := getUnitFactor(unit)
	if !ok {
		return 0, ErrInvalidUnit
	}
	return kg / factor, nil
}

// IsRecognizedUnit reports whether unit is a supported carbon unit.
func IsRecognizedUnit(unit string) bool {
	_, ok := getUnitFactor(unit)
	return ok
}

// UnitLabel returns the display label for unit, e.g. "t" -> "t CO2e".
// Unrecognized units are returned unchanged.
func UnitLabel(unit string) string {
	if !IsRecognizedUnit(unit) {
		return unit
	}
	base := strings.ToLower(unit)
	base = strings.TrimSuffix(base, "co2e")
	return base + " CO2e"
}
