package factors

// Energy source keys.
const (
	KeyGrid    = "GRID"
	KeyLPG     = "LPG"
	KeyBiomass = "BIOMASS"
)

// Vehicle and transit keys, kg CO2e per km.
const (
	KeyPetrolCar       = "PETROL_CAR"
	KeyDieselCar       = "DIESEL_CAR"
	KeyCNG             = "CNG"
	KeyEVCar           = "EV_CAR"
	KeyPetrolMotorbike = "PETROL_MOTORBIKE"
	KeyDieselMotorbike = "DIESEL_MOTORBIKE"
	KeyEVMotorbike     = "EV_MOTORBIKE"
	KeyBus             = "BUS"
	KeyTrain           = "TRAIN"
)

// Flight keys, kg CO2e per trip.
const (
	KeyShortFlight = "SHORT_FLIGHT"
	KeyLongFlight  = "LONG_FLIGHT"
)

// Diet type keys, kg CO2e per meal. These double as the user-facing diet labels.
const (
	DietVegan          = "Vegan"
	DietVegetarian     = "Vegetarian"
	DietNonVegetarian  = "Non-Vegetarian"
	DietHeavyMeatEater = "Heavy Meat Eater"
)

// Waste material keys, kg CO2e per kg.
const (
	KeyFoodWaste    = "FOOD_WASTE"
	KeyPlasticWaste = "PLASTIC_WASTE"
	KeyPaperWaste   = "PAPER_WASTE"
	KeyTextileWaste = "TEXTILE_WASTE"
	KeyEWaste       = "E_WASTE"
)

// Discount fraction keys. Values are bounded to [0,1].
const (
	KeyOrganicDiscount    = "ORGANIC_DISCOUNT"
	KeyCompostingDiscount = "COMPOSTING_DISCOUNT"
	KeyRecyclingDiscount  = "RECYCLING_DISCOUNT"
)

// Personal vehicle labels accepted by VehicleFactor.
const (
	VehicleNone       = "No personal vehicle"
	VehiclePetrolCar  = "Petrol Car"
	VehicleDieselCar  = "Diesel Car"
	VehicleCNGCar     = "CNG Car"
	VehicleEVCar      = "EV Car"
	VehiclePetrolBike = "Petrol Bike"
	VehicleDieselBike = "Diesel Bike"
	VehicleEVBike     = "EV Bike"
)

// RegionOther is the catch-all region label.
const RegionOther = "Other"

// vehicleKeys maps personal vehicle labels to factor keys.
// VehicleNone maps to the empty key and therefore to a zero factor.
//
//nolint:gochecknoglobals // Compile-time constant lookup table.
var vehicleKeys = map[string]string{
	VehicleNone:       "",
	VehiclePetrolCar:  KeyPetrolCar,
	VehicleDieselCar:  KeyDieselCar,
	VehicleCNGCar:     KeyCNG,
	VehicleEVCar:      KeyEVCar,
	VehiclePetrolBike: KeyPetrolMotorbike,
	VehicleDieselBike: KeyDieselMotorbike,
	VehicleEVBike:     KeyEVMotorbike,
}

// dietKeys lists the recognized diet types in display order.
//
//nolint:gochecknoglobals // Compile-time constant lookup table.
var dietKeys = []string{DietVegan, DietVegetarian, DietNonVegetarian, DietHeavyMeatEater}

// discountKeys lists the keys whose values are fractions.
//
//nolint:gochecknoglobals // Compile-time constant lookup table.
var discountKeys = []string{KeyOrganicDiscount, KeyCompostingDiscount, KeyRecyclingDiscount}

// VehicleLabels returns the recognized personal vehicle labels in display order.
func VehicleLabels() []string {
	return []string{
		VehicleNone, VehiclePetrolCar, VehicleDieselCar, VehicleCNGCar,
		VehicleEVCar, VehiclePetrolBike, VehicleDieselBike, VehicleEVBike,
	}
}

// DietTypes returns the recognized diet types in display order.
func DietTypes() []string {
	out := make([]string, len(dietKeys))
	copy(out, dietKeys)
	return out
}

// IsDietType reports whether s is a recognized diet type.
func IsDietType(s string) bool {
	for _, d := range dietKeys {
		if d == s {
			return true
		}
	}
	return false
}

// IsVehicleLabel reports whether s is a recognized personal vehicle label.
func IsVehicleLabel(s string) bool {
	_, ok := vehicleKeys[s]
	return ok
}
