package engine

import (
	"time"

	"github.com/rshade/footprint/internal/footprint"
	"github.com/rshade/footprint/internal/greenops"
)

// Report is the complete estimate for one household. Quantities are kg CO2e.
type Report struct {
	ID            string    `json:"id"`
	Name          string    `json:"name,omitempty"`
	GeneratedAt   time.Time `json:"generated_at"`
	FactorTable   string    `json:"factor_table"`
	FactorVersion string    `json:"factor_version"`

	Input  footprint.Household `json:"input"`
	Result footprint.Result    `json:"result"`

	MonthlyTotal float64 `json:"monthly_total"`
	AnnualTotal  float64 `json:"annual_total"`

	// PerCapitaAnnual is AnnualTotal divided by the household members, or zero
	// when the member count is unknown.
	PerCapitaAnnual float64 `json:"per_capita_annual,omitempty"`

	Comparison      footprint.Comparison       `json:"comparison"`
	Equivalencies   greenops.EquivalencyOutput `json:"equivalencies"`
	Recommendations []footprint.Recommendation `json:"recommendations"`
}

// AboveAverage returns the categories in which the household exceeds the national average.
func (r *Report) AboveAverage() []footprint.Category {
	var out []footprint.Category
	for _, rec := range r.Recommendations {
		if rec.AboveAverage {
			out = append(out, rec.Category)
		}
	}
	return out
}
