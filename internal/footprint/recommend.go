package footprint

import (
	"fmt"

	"github.com/rshade/footprint/internal/greenops"
)

// Recommendation compares one category against the national average.
type Recommendation struct {
	Category        Category `json:"category"`
	UserMonthly     float64  `json:"user_monthly"`
	NationalMonthly float64  `json:"national_monthly"`
	Difference      float64  `json:"difference"`
	AboveAverage    bool     `json:"above_average"`
	Message         string   `json:"message"`
	Tip             string   `json:"tip,omitempty"`
}

// categoryTips are shown for categories where the user is above average.
//
//nolint:gochecknoglobals // Compile-time constant lookup table.
var categoryTips = map[Category]string{
	CategoryHome:      "Shift more of your electricity to rooftop solar and switch off idle appliances.",
	CategoryTransport: "Carpool or use public transit for regular trips.",
	CategoryDiet:      "Swap one meat meal a week for a plant-based one.",
	CategoryWaste:     "Compost organic waste and recycle plastics.",
}

// Recommend compares each monthly category value with the national monthly average
// and returns one recommendation per category in category order.
func Recommend(userMonthly, nationalMonthly Breakdown) []Recommendation {
	recs := make([]Recommendation, 0, len(Categories()))
	for _, c := range Categories() {
		you := userMonthly.Value(c)
		avg := nationalMonthly.Value(c)

		r := Recommendation{
			Category:        c,
			UserMonthly:     you,
			NationalMonthly: avg,
			Difference:      you - avg,
		}
		if you > avg {
			r.AboveAverage = true
			r.Message = fmt.Sprintf("You're ~%s kg CO2e above average. Aim to cut 10-20%%.",
				greenops.FormatFloat(you-avg, 1))
			r.Tip = categoryTips[c]
		} else {
			r.Message = fmt.Sprintf("Great! You're ~%s kg CO2e below average.",
				greenops.FormatFloat(avg-you, 1))
		}
		recs = append(recs, r)
	}
	return recs
}
