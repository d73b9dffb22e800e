// Package factors holds the emission factor table used by the footprint calculators.
//
// A Table maps activity keys (energy sources, vehicles, flights, diet types, waste
// materials and discount fractions) to kg CO2e coefficients, plus a per-region grid
// electricity table. Tables are immutable once built and safe for concurrent use.
package factors

import (
	"fmt"
	"math"
	"sort"
)

// Table is an immutable emission factor table.
type Table struct {
	name    string
	version string
	factors map[string]float64
	regions map[string]float64
}

// New builds a Table from the given factor and region maps.
//
// The maps are copied. Every key of the default table must be present, every value
// must be finite and non-negative, and discount fractions must lie within [0,1].
func New(name, version string, factors, regions map[string]float64) (*Table, error) {
	t := &Table{
		name:    name,
		version: version,
		factors: make(map[string]float64, len(factors)),
		regions: make(map[string]float64, len(regions)),
	}

	for k, v := range factors {
		if err := checkValue(v); err != nil {
			return nil, fmt.Errorf("factor %q: %w", k, err)
		}
		t.factors[k] = v
	}
	for r, v := range regions {
		if err := checkValue(v); err != nil {
			return nil, fmt.Errorf("region %q: %w", r, err)
		}
		t.regions[r] = v
	}

	for _, k := range requiredKeys() {
		if _, ok := t.factors[k]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, k)
		}
	}
	for _, k := range discountKeys {
		if t.factors[k] > 1 {
			return nil, fmt.Errorf("%s=%g: %w", k, t.factors[k], ErrDiscountRange)
		}
	}

	return t, nil
}

func checkValue(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return ErrNegativeFactor
	}
	return nil
}

// Name returns the table name, e.g. "india".
func (t *Table) Name() string { return t.name }

// Version returns the table's semantic version string.
func (t *Table) Version() string { return t.version }

// Factor returns the coefficient stored under key.
// It returns ErrKeyNotFound if the key is not present.
func (t *Table) Factor(key string) (float64, error) {
	v, ok := t.factors[key]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	return v, nil
}

// MustFactor returns the coefficient for a key that New guarantees to exist.
// It panics for any other key.
func (t *Table) MustFactor(key string) float64 {
	v, err := t.Factor(key)
	if err != nil {
		panic(err)
	}
	return v
}

// GridFactor returns the grid electricity coefficient for region.
// Unrecognized regions fall back to the generic GRID factor; this never fails.
func (t *Table) GridFactor(region string) float64 {
	if v, ok := t.regions[region]; ok {
		return v
	}
	return t.factors[KeyGrid]
}

// HasRegion reports whether region has its own grid coefficient.
func (t *Table) HasRegion(region string) bool {
	_, ok := t.regions[region]
	return ok
}

// DietFactor returns the per-meal coefficient for a diet type.
// It returns ErrInvalidCategory for unrecognized diet types.
func (t *Table) DietFactor(dietType string) (float64, error) {
	if !IsDietType(dietType) {
		return 0, fmt.Errorf("%w: diet type %q", ErrInvalidCategory, dietType)
	}
	return t.factors[dietType], nil
}

// VehicleFactor returns the per-km coefficient for a personal vehicle label.
// "No personal vehicle" and unrecognized labels map to 0; this never fails.
func (t *Table) VehicleFactor(vehicle string) float64 {
	key := vehicleKeys[vehicle]
	if key == "" {
		return 0
	}
	return t.factors[key]
}

// Keys returns all factor keys in sorted order.
func (t *Table) Keys() []string {
	keys := make([]string, 0, len(t.factors))
	for k := range t.factors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Regions returns all region names in sorted order.
func (t *Table) Regions() []string {
	regions := make([]string, 0, len(t.regions))
	for r := range t.regions {
		regions = append(regions, r)
	}
	sort.Strings(regions)
	return regions
}

// Factors returns a copy of the factor map.
func (t *Table) Factors() map[string]float64 {
	out := make(map[string]float64, len(t.factors))
	for k, v := range t.factors {
		out[k] = v
	}
	return out
}

// RegionFactors returns a copy of the region grid map.
func (t *Table) RegionFactors() map[string]float64 {
	out := make(map[string]float64, len(t.regions))
	for k, v := range t.regions {
		out[k] = v
	}
	return out
}
