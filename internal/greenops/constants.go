package greenops

// Equivalency divisors, kg CO2e per unit of the everyday activity.
//
//	equivalency = kg_CO2e / factor
const (
	// KmDrivenFactor is kg CO2e per km in an average petrol car.
	KmDrivenFactor = 0.192

	// SmartphoneChargeFactor is kg CO2e per full smartphone charge.
	SmartphoneChargeFactor = 0.00822

	// TreeYearFactor is kg CO2 absorbed by one tree in a year.
	TreeYearFactor = 22.0
)

// Unit conversion constants for normalizing carbon values to kilograms.
const (
	// GramsToKg converts grams to kilograms.
	GramsToKg = 0.001

	// KgToKg is the identity conversion for kilograms.
	KgToKg = 1.0

	// TonsToKg converts metric tons to kilograms.
	TonsToKg = 1000.0

	// PoundsToKg converts pounds to kilograms.
	PoundsToKg = 0.453592
)

// Display thresholds.
const (
	// MinEquivalencyThresholdKg is the minimum kg CO2e for showing equivalencies.
	// Below it the equivalencies become meaninglessly small.
	MinEquivalencyThresholdKg = 1.0

	// LargeNumberThreshold switches to "~X.X million" display.
	LargeNumberThreshold = 1_000_000

	// BillionThreshold switches to "~X.X billion" display.
	BillionThreshold = 1_000_000_000
)
