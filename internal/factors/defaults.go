package factors

import "sync"

// DefaultName and DefaultVersion identify the built-in table.
const (
	DefaultName    = "india"
	DefaultVersion = "1.0.0"
)

// indiaFactors are the built-in coefficients for Indian households.
//
//nolint:gochecknoglobals // Read-only seed data copied into the default Table.
var indiaFactors = map[string]float64{
	KeyGrid:    0.82,
	KeyLPG:     2.983,
	KeyBiomass: 0.075,

	KeyPetrolCar:       0.192,
	KeyDieselCar:       0.171,
	KeyCNG:             0.135,
	KeyEVCar:           0.100,
	KeyPetrolMotorbike: 0.082,
	KeyDieselMotorbike: 0.080,
	KeyEVMotorbike:     0.050,
	KeyBus:             0.089,
	KeyTrain:           0.041,

	KeyShortFlight: 300,
	KeyLongFlight:  700,

	DietVegan:          1.2,
	DietVegetarian:     1.5,
	DietNonVegetarian:  2.5,
	DietHeavyMeatEater: 3.0,

	KeyFoodWaste:    2.0,
	KeyPlasticWaste: 6.0,
	KeyPaperWaste:   1.5,
	KeyTextileWaste: 3.0,
	KeyEWaste:       5.0,

	// Composting avoids roughly 70% of food-waste methane; recycling halves
	// the footprint of plastic, paper and textile.
	KeyOrganicDiscount:    0.20,
	KeyCompostingDiscount: 0.7,
	KeyRecyclingDiscount:  0.5,
}

// indiaRegions are the built-in state grid coefficients, kg CO2e per kWh.
//
//nolint:gochecknoglobals // Read-only seed data copied into the default Table.
var indiaRegions = map[string]float64{
	"Andhra Pradesh": 0.82,
	"Delhi":          0.90,
	"Karnataka":      0.65,
	"Maharashtra":    0.79,
	"Tamil Nadu":     0.63,
	"Telangana":      0.75,
	"Uttar Pradesh":  0.85,
	RegionOther:      0.82,
}

//nolint:gochecknoglobals // Lazily built shared immutable table.
var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the built-in India table. The same instance is returned on every call.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := New(DefaultName, DefaultVersion, indiaFactors, indiaRegions)
		if err != nil {
			panic("factors: invalid built-in table: " + err.Error())
		}
		defaultTable = t
	})
	return defaultTable
}

// requiredKeys returns the keys every table must define.
func requiredKeys() []string {
	keys := make([]string, 0, len(indiaFactors))
	for k := range indiaFactors {
		keys = append(keys, k)
	}
	return keys
}
