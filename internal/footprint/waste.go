package footprint

import "github.com/rshade/footprint/internal/factors"

// WasteBreakdown holds the components of the waste footprint.
type WasteBreakdown struct {
	Composted    float64 `json:"composted"`
	NonComposted float64 `json:"non_composted"`
	Recycled     float64 `json:"recycled"`
	NonRecycled  float64 `json:"non_recycled"`
	EWaste       float64 `json:"ewaste"`
}

// Total returns the sum of the components.
func (w WasteBreakdown) Total() float64 {
	return w.Composted + w.NonComposted + w.Recycled + w.NonRecycled + w.EWaste
}

// WasteComponents computes the monthly waste footprint components.
//
// The composted share of food waste is discounted by COMPOSTING_DISCOUNT. Plastic,
// paper and textile are pooled and the recycled share discounted by
// RECYCLING_DISCOUNT. E-waste is never discounted.
func WasteComponents(f Factors, in WasteInput) WasteBreakdown {
	food := in.FoodKg * f.MustFactor(factors.KeyFoodWaste)
	recyclable := in.PlasticKg*f.MustFactor(factors.KeyPlasticWaste) +
		in.PaperKg*f.MustFactor(factors.KeyPaperWaste) +
		in.TextileKg*f.MustFactor(factors.KeyTextileWaste)

	composted := in.CompostedPct / percentBase
	recycled := in.RecycledPct / percentBase

	return WasteBreakdown{
		Composted:    composted * food * (1 - f.MustFactor(factors.KeyCompostingDiscount)),
		NonComposted: (1 - composted) * food,
		Recycled:     recycled * recyclable * (1 - f.MustFactor(factors.KeyRecyclingDiscount)),
		NonRecycled:  (1 - recycled) * recyclable,
		EWaste:       in.EWasteKg * f.MustFactor(factors.KeyEWaste),
	}
}

// Waste returns the monthly waste footprint in kg CO2e.
func Waste(f Factors, in WasteInput) float64 {
	return WasteComponents(f, in).Total()
}
