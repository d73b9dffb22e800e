package footprint

// Result is the full monthly footprint of one household, by category and component.
type Result struct {
	Monthly   Breakdown          `json:"monthly"`
	Home      HomeBreakdown      `json:"home"`
	Transport TransportBreakdown `json:"transport"`
	Diet      DietBreakdown      `json:"diet"`
	Waste     WasteBreakdown     `json:"waste"`
}

// Calculate runs the four calculators for a household.
//
// The household is not validated; call Validate first when inputs come from users.
// It returns factors.ErrInvalidCategory for an unrecognized diet type.
func Calculate(f Factors, h Household) (Result, error) {
	diet, err := DietComponents(f, h.Diet)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Home:      HomeComponents(f, h.Home),
		Transport: TransportComponents(f, h.Transport),
		Diet:      diet,
		Waste:     WasteComponents(f, h.Waste),
	}
	res.Monthly = Aggregate(res.Home.Total(), res.Transport.Total(), res.Diet.Total(), res.Waste.Total())
	return res, nil
}
