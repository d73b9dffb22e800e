package footprint_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/footprint/internal/factors"
	"github.com/rshade/footprint/internal/footprint"
)

const eps = 1e-9

func TestHome(t *testing.T) {
	tbl := factors.Default()

	t.Run("Delhi scenario", func(t *testing.T) {
		in := footprint.HomeInput{
			Region:         "Delhi",
			ElectricityKWh: 200,
			LPGCylinders:   1,
			Biomass:        footprint.BiomassNever,
			SolarPct:       0,
		}
		parts := footprint.HomeComponents(tbl, in)
		assert.InDelta(t, 180.0, parts.Electricity, eps)
		assert.InDelta(t, 2.983, parts.LPG, eps)
		assert.InDelta(t, 0.0, parts.Biomass, eps)
		assert.InDelta(t, 182.983, footprint.Home(tbl, in), eps)
	})

	t.Run("zero usage is zero for any solar share", func(t *testing.T) {
		for _, solar := range []float64{0, 25, 50, 100} {
			in := footprint.HomeInput{Region: "Karnataka", Biomass: footprint.BiomassNever, SolarPct: solar}
			assert.Zero(t, footprint.Home(tbl, in), "solar=%v", solar)
		}
	})

	t.Run("full solar removes electricity", func(t *testing.T) {
		in := footprint.HomeInput{Region: "Delhi", ElectricityKWh: 1500, LPGCylinders: 2, SolarPct: 100}
		parts := footprint.HomeComponents(tbl, in)
		assert.Zero(t, parts.Electricity)
		assert.InDelta(t, 2*2.983, parts.Total(), eps)
	})

	t.Run("half solar halves grid draw", func(t *testing.T) {
		in := footprint.HomeInput{Region: "Delhi", ElectricityKWh: 200, SolarPct: 50}
		assert.InDelta(t, 90.0, footprint.HomeComponents(tbl, in).Electricity, eps)
	})

	t.Run("unknown region uses generic grid factor", func(t *testing.T) {
		in := footprint.HomeInput{Region: "Narnia", ElectricityKWh: 100}
		assert.InDelta(t, 82.0, footprint.Home(tbl, in), eps)
	})

	t.Run("biomass day mapping", func(t *testing.T) {
		tests := []struct {
			usage footprint.BiomassUsage
			want  float64
		}{
			{footprint.BiomassNever, 0},
			{footprint.BiomassOccasionally, 15 * 0.075},
			{footprint.BiomassDaily, 30 * 0.075},
			{"Sometimes", 0},
		}
		for _, tt := range tests {
			in := footprint.HomeInput{Biomass: tt.usage}
			assert.InDelta(t, tt.want, footprint.HomeComponents(tbl, in).Biomass, eps, string(tt.usage))
		}
	})
}

func TestTransport(t *testing.T) {
	tbl := factors.Default()

	t.Run("no vehicle and no travel is zero", func(t *testing.T) {
		in := footprint.TransportInput{Vehicle: factors.VehicleNone}
		assert.Zero(t, footprint.Transport(tbl, in))
	})

	t.Run("no vehicle ignores personal km", func(t *testing.T) {
		in := footprint.TransportInput{Vehicle: factors.VehicleNone, PersonalKmWeekly: 300}
		assert.Zero(t, footprint.Transport(tbl, in))
	})

	t.Run("unknown vehicle contributes zero", func(t *testing.T) {
		in := footprint.TransportInput{Vehicle: "Hot air balloon", PersonalKmWeekly: 300}
		assert.Zero(t, footprint.TransportComponents(tbl, in).Personal)
	})

	t.Run("personal term is linear in km", func(t *testing.T) {
		one := footprint.TransportComponents(tbl, footprint.TransportInput{
			Vehicle: factors.VehiclePetrolCar, PersonalKmWeekly: 100,
		})
		two := footprint.TransportComponents(tbl, footprint.TransportInput{
			Vehicle: factors.VehiclePetrolCar, PersonalKmWeekly: 200,
		})
		assert.InDelta(t, 100*4.345*0.192, one.Personal, eps)
		assert.Equal(t, 2*one.Personal, two.Personal)
	})

	t.Run("all modes", func(t *testing.T) {
		in := footprint.TransportInput{
			Vehicle:            factors.VehicleEVBike,
			PersonalKmWeekly:   50,
			BusKmWeekly:        40,
			TrainKmWeekly:      100,
			ShortFlightsYearly: 2,
			LongFlightsYearly:  1,
		}
		parts := footprint.TransportComponents(tbl, in)
		assert.InDelta(t, 50*4.345*0.050, parts.Personal, eps)
		assert.InDelta(t, 40*4.345*0.089, parts.Bus, eps)
		assert.InDelta(t, 100*4.345*0.041, parts.Train, eps)
		assert.InDelta(t, (2*300.0+700.0)/12, parts.Flights, eps)
		assert.InDelta(t, parts.Personal+parts.Bus+parts.Train+parts.Flights, footprint.Transport(tbl, in), eps)
	})
}

func TestDiet(t *testing.T) {
	tbl := factors.Default()

	t.Run("vegan baseline", func(t *testing.T) {
		for _, meals := range []float64{1, 3, 6} {
			got, err := footprint.Diet(tbl, footprint.DietInput{DietType: factors.DietVegan, MealsPerDay: meals})
			require.NoError(t, err)
			assert.InDelta(t, 1.2*meals*30, got, eps)
		}
	})

	t.Run("vegan ignores meat multiplier", func(t *testing.T) {
		got, err := footprint.Diet(tbl, footprint.DietInput{
			DietType: factors.DietVegan, MealsPerDay: 3, MeatMultiplier: 1.2,
		})
		require.NoError(t, err)
		assert.InDelta(t, 108.0, got, eps)
	})

	t.Run("vegetarian without meat is zero base", func(t *testing.T) {
		d, err := footprint.DietComponents(tbl, footprint.DietInput{
			DietType: factors.DietVegetarian, MealsPerDay: 3, MeatMultiplier: 0, DairyLitersPerDay: 1,
		})
		require.NoError(t, err)
		assert.Zero(t, d.Base)
		assert.InDelta(t, 36.0, d.Dairy, eps)
	})

	t.Run("dairy priced at vegan factor for every diet", func(t *testing.T) {
		for _, diet := range factors.DietTypes() {
			d, err := footprint.DietComponents(tbl, footprint.DietInput{DietType: diet, DairyLitersPerDay: 0.5})
			require.NoError(t, err)
			assert.InDelta(t, 0.5*1.2*30, d.Dairy, eps, diet)
		}
	})

	t.Run("full organic sourcing", func(t *testing.T) {
		d, err := footprint.DietComponents(tbl, footprint.DietInput{
			DietType: factors.DietHeavyMeatEater, MealsPerDay: 3, MeatMultiplier: 1.2, OrganicPct: 100,
		})
		require.NoError(t, err)
		assert.InDelta(t, 0.8, d.Discount, eps)
		assert.InDelta(t, 3.0*3*30*1.2*0.8, d.Total(), eps)
	})

	t.Run("non-vegetarian with dairy and organic", func(t *testing.T) {
		got, err := footprint.Diet(tbl, footprint.DietInput{
			DietType:          factors.DietNonVegetarian,
			MealsPerDay:       2,
			MeatMultiplier:    0.5,
			DairyLitersPerDay: 0.25,
			OrganicPct:        50,
		})
		require.NoError(t, err)
		base := 2.5 * 2 * 30 * 0.5
		dairy := 0.25 * 1.2 * 30
		assert.InDelta(t, (base+dairy)*0.9, got, eps)
	})

	t.Run("unknown diet type fails", func(t *testing.T) {
		_, err := footprint.Diet(tbl, footprint.DietInput{DietType: "Carnivore", MealsPerDay: 3})
		require.ErrorIs(t, err, factors.ErrInvalidCategory)
	})
}

func TestWaste(t *testing.T) {
	tbl := factors.Default()

	t.Run("full composting", func(t *testing.T) {
		parts := footprint.WasteComponents(tbl, footprint.WasteInput{FoodKg: 10, CompostedPct: 100})
		assert.InDelta(t, 10*2.0*(1-0.7), parts.Composted+parts.NonComposted, eps)
		assert.Zero(t, parts.NonComposted)
	})

	t.Run("no composting or recycling is the raw sum", func(t *testing.T) {
		in := footprint.WasteInput{FoodKg: 5, PlasticKg: 4, PaperKg: 3, TextileKg: 2, EWasteKg: 1}
		raw := 5*2.0 + 4*6.0 + 3*1.5 + 2*3.0 + 1*5.0
		assert.InDelta(t, raw, footprint.Waste(tbl, in), eps)
	})

	t.Run("full recycling halves recyclables", func(t *testing.T) {
		in := footprint.WasteInput{PlasticKg: 1, PaperKg: 2, TextileKg: 1, RecycledPct: 100}
		parts := footprint.WasteComponents(tbl, in)
		assert.InDelta(t, (6.0+3.0+3.0)*0.5, parts.Recycled, eps)
		assert.Zero(t, parts.NonRecycled)
	})

	t.Run("e-waste is never discounted", func(t *testing.T) {
		in := footprint.WasteInput{EWasteKg: 2, CompostedPct: 100, RecycledPct: 100}
		assert.InDelta(t, 10.0, footprint.Waste(tbl, in), eps)
	})

	t.Run("form defaults", func(t *testing.T) {
		in := footprint.WasteInput{
			FoodKg: 5, PlasticKg: 5, PaperKg: 5, TextileKg: 5, EWasteKg: 0.5,
			CompostedPct: 20, RecycledPct: 30,
		}
		assert.InDelta(t, 55.725, footprint.Waste(tbl, in), eps)
	})
}

func TestCalculators_NonNegativeFinite(t *testing.T) {
	tbl := factors.Default()
	values := []float64{0, 0.5, 1, 7, 100, 2000}
	pcts := []float64{0, 33, 100}

	for _, v := range values {
		for _, p := range pcts {
			h := footprint.Household{
				Home: footprint.HomeInput{
					Region: "Telangana", ElectricityKWh: v, LPGCylinders: v,
					Biomass: footprint.BiomassDaily, SolarPct: p,
				},
				Transport: footprint.TransportInput{
					Vehicle: factors.VehicleDieselCar, PersonalKmWeekly: v, BusKmWeekly: v,
					TrainKmWeekly: v, ShortFlightsYearly: v, LongFlightsYearly: v,
				},
				Diet: footprint.DietInput{
					DietType: factors.DietNonVegetarian, MealsPerDay: v, MeatMultiplier: 1.0,
					DairyLitersPerDay: v, OrganicPct: p,
				},
				Waste: footprint.WasteInput{
					FoodKg: v, PlasticKg: v, PaperKg: v, TextileKg: v, EWasteKg: v,
					CompostedPct: p, RecycledPct: p,
				},
			}
			res, err := footprint.Calculate(tbl, h)
			require.NoError(t, err)
			for i, got := range res.Monthly.Values() {
				assert.GreaterOrEqual(t, got, 0.0, "category %d v=%v p=%v", i, v, p)
				assert.False(t, math.IsInf(got, 0) || math.IsNaN(got), "category %d v=%v p=%v", i, v, p)
			}
		}
	}
}
