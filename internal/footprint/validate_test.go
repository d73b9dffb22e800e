package footprint_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/footprint/internal/factors"
	"github.com/rshade/footprint/internal/footprint"
)

func validHousehold() footprint.Household {
	return footprint.Household{
		Name:    "test",
		Members: 2,
		Home:    footprint.HomeInput{Region: "Delhi", ElectricityKWh: 200, LPGCylinders: 1, SolarPct: 10},
		Transport: footprint.TransportInput{
			Vehicle: factors.VehiclePetrolCar, PersonalKmWeekly: 100,
		},
		Diet: footprint.DietInput{
			DietType: factors.DietNonVegetarian, MealsPerDay: 3, MeatMultiplier: 0.5, OrganicPct: 20,
		},
		Waste: footprint.WasteInput{FoodKg: 5, CompostedPct: 20, RecycledPct: 30},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(h *footprint.Household)
		wantErr     error
		errContains string
	}{
		{name: "valid", mutate: func(*footprint.Household) {}},
		{
			name: "unknown region, vehicle and biomass are fine",
			mutate: func(h *footprint.Household) {
				h.Home.Region = "Mars"
				h.Transport.Vehicle = "Rocket"
				h.Home.Biomass = "Weekly"
			},
		},
		{
			name:        "negative electricity",
			mutate:      func(h *footprint.Household) { h.Home.ElectricityKWh = -1 },
			wantErr:     footprint.ErrInvalidInput,
			errContains: "home.electricity_kwh must be >= 0",
		},
		{
			name:        "solar above 100",
			mutate:      func(h *footprint.Household) { h.Home.SolarPct = 101 },
			wantErr:     footprint.ErrInvalidInput,
			errContains: "home.solar_pct must be <= 100",
		},
		{
			name:        "NaN km",
			mutate:      func(h *footprint.Household) { h.Transport.BusKmWeekly = math.NaN() },
			wantErr:     footprint.ErrInvalidInput,
			errContains: "transport.bus_km_weekly",
		},
		{
			name:        "meat multiplier not a bucket",
			mutate:      func(h *footprint.Household) { h.Diet.MeatMultiplier = 0.7 },
			wantErr:     footprint.ErrInvalidInput,
			errContains: "diet.meat_multiplier must be one of",
		},
		{
			name:        "empty diet type",
			mutate:      func(h *footprint.Household) { h.Diet.DietType = "" },
			wantErr:     factors.ErrInvalidCategory,
			errContains: `diet type ""`,
		},
		{
			name:    "unknown diet type",
			mutate:  func(h *footprint.Household) { h.Diet.DietType = "Keto" },
			wantErr: factors.ErrInvalidCategory,
		},
		{
			name: "multiple failures are joined",
			mutate: func(h *footprint.Household) {
				h.Waste.RecycledPct = 150
				h.Waste.FoodKg = -2
			},
			wantErr:     footprint.ErrInvalidInput,
			errContains: "waste.food_kg must be >= 0",
		},
		{
			name:    "negative members",
			mutate:  func(h *footprint.Household) { h.Members = -1 },
			wantErr: footprint.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := validHousehold()
			tt.mutate(&h)

			err := footprint.Validate(h)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			if tt.errContains != "" {
				assert.Contains(t, err.Error(), tt.errContains)
			}
		})
	}
}
