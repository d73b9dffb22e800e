// Package greenops turns kg CO2e figures into relatable equivalencies and
// display strings.
//
// A household's annual footprint is expressed as trees needed to absorb it, km
// driven in a petrol car and smartphones charged.
package greenops

import "fmt"

// EquivalencyType represents a category of carbon emission equivalency.
type EquivalencyType int

const (
	// EquivalencyTreesNeeded is the number of trees absorbing the CO2e over a year.
	EquivalencyTreesNeeded EquivalencyType = iota

	// EquivalencyKmDriven is the distance driven in an average petrol car.
	EquivalencyKmDriven

	// EquivalencySmartphonesCharged is the number of full smartphone charges.
	EquivalencySmartphonesCharged
)

// String returns a human-readable representation of the EquivalencyType.
func (e EquivalencyType) String() string {
	switch e {
	case EquivalencyTreesNeeded:
		return "TreesNeeded"
	case EquivalencyKmDriven:
		return "KmDriven"
	case EquivalencySmartphonesCharged:
		return "SmartphonesCharged"
	default:
		return fmt.Sprintf("EquivalencyType(%d)", e)
	}
}

// MarshalText encodes the type by name so JSON output is readable.
func (e EquivalencyType) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// CarbonInput is a carbon amount with its unit.
type CarbonInput struct {
	// Value is the numeric carbon emission amount.
	Value float64 `json:"value"`

	// Unit is the measurement unit (g, kg, t, lb, optionally suffixed with CO2e).
	Unit string `json:"unit"`
}

// EquivalencyResult represents a single calculated equivalency.
type EquivalencyResult struct {
	Type           EquivalencyType `json:"type"`
	Value          float64         `json:"value"`
	FormattedValue string          `json:"formatted_value"`
	Label          string          `json:"label"`
}

// EquivalencyOutput contains all equivalency results for display.
type EquivalencyOutput struct {
	// InputKg is the normalized input value in kilograms CO2e.
	InputKg float64 `json:"input_kg"`

	// Results contains calculated equivalencies in display order.
	Results []EquivalencyResult `json:"results"`

	// DisplayText is the prose form, e.g.
	// "Equivalent to driving ~9,531 km or charging ~222,628 smartphones".
	DisplayText string `json:"display_text"`

	// CompactText is the abbreviated form, e.g. "(≈ 83 trees, 9,531 km)".
	CompactText string `json:"compact_text"`

	// IsEmpty is true if no equivalencies were calculated.
	IsEmpty bool `json:"is_empty"`
}

// Trees returns the tree-equivalent result value, or 0 when absent.
func (o EquivalencyOutput) Trees() float64 {
	for _, r := range o.Results {
		if r.Type == EquivalencyTreesNeeded {
			return r.Value
		}
	}
	return 0
}
