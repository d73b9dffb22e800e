package footprint

import "github.com/rshade/footprint/internal/factors"

// TransportBreakdown holds the components of the transport footprint.
type TransportBreakdown struct {
	Personal float64 `json:"personal"`
	Bus      float64 `json:"bus"`
	Train    float64 `json:"train"`
	Flights  float64 `json:"flights"`
}

// Total returns the sum of the components.
func (t TransportBreakdown) Total() float64 {
	return t.Personal + t.Bus + t.Train + t.Flights
}

// TransportComponents computes the monthly transport footprint by mode.
//
// Weekly distances are scaled by WeeksPerMonth. Annual flight counts are amortized
// over MonthsPerYear. An unrecognized vehicle or "No personal vehicle" contributes 0.
func TransportComponents(f Factors, in TransportInput) TransportBreakdown {
	flights := in.ShortFlightsYearly*f.MustFactor(factors.KeyShortFlight) +
		in.LongFlightsYearly*f.MustFactor(factors.KeyLongFlight)

	return TransportBreakdown{
		Personal: in.PersonalKmWeekly * WeeksPerMonth * f.VehicleFactor(in.Vehicle),
		Bus:      in.BusKmWeekly * WeeksPerMonth * f.MustFactor(factors.KeyBus),
		Train:    in.TrainKmWeekly * WeeksPerMonth * f.MustFactor(factors.KeyTrain),
		Flights:  flights / MonthsPerYear,
	}
}

// Transport returns the monthly transport footprint in kg CO2e.
func Transport(f Factors, in TransportInput) float64 {
	return TransportComponents(f, in).Total()
}
