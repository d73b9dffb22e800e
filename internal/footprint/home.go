package footprint

import "github.com/rshade/footprint/internal/factors"

// HomeBreakdown holds the components of the home energy footprint.
type HomeBreakdown struct {
	Electricity float64 `json:"electricity"`
	LPG         float64 `json:"lpg"`
	Biomass     float64 `json:"biomass"`
}

// Total returns the sum of the components.
func (h HomeBreakdown) Total() float64 {
	return h.Electricity + h.LPG + h.Biomass
}

// HomeComponents computes the monthly home energy footprint by source.
//
// Grid draw is reduced by the solar share before applying the region's grid factor;
// unknown regions use the generic grid factor. Biomass is priced per burning day.
func HomeComponents(f Factors, in HomeInput) HomeBreakdown {
	effectiveKWh := in.ElectricityKWh * (1 - in.SolarPct/percentBase)
	return HomeBreakdown{
		Electricity: effectiveKWh * f.GridFactor(in.Region),
		LPG:         in.LPGCylinders * f.MustFactor(factors.KeyLPG),
		Biomass:     BiomassDays(in.Biomass) * f.MustFactor(factors.KeyBiomass),
	}
}

// Home returns the monthly home energy footprint in kg CO2e.
func Home(f Factors, in HomeInput) float64 {
	return HomeComponents(f, in).Total()
}
