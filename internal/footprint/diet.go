package footprint

import "github.com/rshade/footprint/internal/factors"

// DietBreakdown holds the components of the diet footprint.
type DietBreakdown struct {
	Base     float64 `json:"base"`
	Dairy    float64 `json:"dairy"`
	Discount float64 `json:"discount_multiplier"`
}

// Total returns (base + dairy) scaled by the organic discount multiplier.
func (d DietBreakdown) Total() float64 {
	return (d.Base + d.Dairy) * d.Discount
}

// DietComponents computes the monthly diet footprint components.
//
// The meat multiplier does not apply to Vegan diets. Dairy is always priced at the
// Vegan (baseline) factor regardless of diet type. Organic sourcing reduces the
// total by up to ORGANIC_DISCOUNT.
//
// It returns factors.ErrInvalidCategory for an unrecognized diet type.
func DietComponents(f Factors, in DietInput) (DietBreakdown, error) {
	perMeal, err := f.DietFactor(in.DietType)
	if err != nil {
		return DietBreakdown{}, err
	}

	meat := in.MeatMultiplier
	if in.DietType == factors.DietVegan {
		meat = 1
	}

	// TODO: price dairy by diet type once per-diet dairy factors are sourced.
	dairyFactor := f.MustFactor(factors.DietVegan)

	return DietBreakdown{
		Base:     perMeal * in.MealsPerDay * DaysPerMonth * meat,
		Dairy:    in.DairyLitersPerDay * dairyFactor * DaysPerMonth,
		Discount: 1 - (in.OrganicPct/percentBase)*f.MustFactor(factors.KeyOrganicDiscount),
	}, nil
}

// Diet returns the monthly diet footprint in kg CO2e.
func Diet(f Factors, in DietInput) (float64, error) {
	d, err := DietComponents(f, in)
	if err != nil {
		return 0, err
	}
	return d.Total(), nil
}
