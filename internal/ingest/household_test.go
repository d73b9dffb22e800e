package ingest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/footprint/internal/factors"
	"github.com/rshade/footprint/internal/footprint"
	"github.com/rshade/footprint/internal/ingest"
)

func writeProfile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultHousehold(t *testing.T) {
	h := ingest.DefaultHousehold()

	assert.Equal(t, factors.RegionOther, h.Home.Region)
	assert.InDelta(t, 200, h.Home.ElectricityKWh, 1e-9)
	assert.InDelta(t, 1, h.Home.LPGCylinders, 1e-9)
	assert.Equal(t, footprint.BiomassNever, h.Home.Biomass)
	assert.Equal(t, factors.VehicleNone, h.Transport.Vehicle)
	assert.Equal(t, factors.DietVegan, h.Diet.DietType)
	assert.InDelta(t, 3, h.Diet.MealsPerDay, 1e-9)
	assert.InDelta(t, 0.5, h.Waste.EWasteKg, 1e-9)
	assert.InDelta(t, 30, h.Waste.RecycledPct, 1e-9)
	require.NoError(t, footprint.Validate(h))
}

func TestLoadHouseholds_SingleYAML(t *testing.T) {
	path := writeProfile(t, "home.yaml", `
name: Sharma family
members: 4
home:
  region: Delhi
  electricity_kwh: 350
transport:
  vehicle: Petrol Car
  personal_km_weekly: 120
diet:
  diet_type: Non-Vegetarian
  meat_frequency: Frequent
`)

	hs, err := ingest.LoadHouseholds(path)
	require.NoError(t, err)
	require.Len(t, hs, 1)

	h := hs[0]
	assert.Equal(t, "Sharma family", h.Name)
	assert.Equal(t, 4, h.Members)
	assert.Equal(t, "Delhi", h.Home.Region)
	assert.InDelta(t, 350, h.Home.ElectricityKWh, 1e-9)
	// Omitted fields keep the form defaults.
	assert.InDelta(t, 1, h.Home.LPGCylinders, 1e-9)
	assert.Equal(t, factors.VehiclePetrolCar, h.Transport.Vehicle)
	assert.InDelta(t, 120, h.Transport.PersonalKmWeekly, 1e-9)
	assert.Equal(t, factors.DietNonVegetarian, h.Diet.DietType)
	assert.InDelta(t, 1.0, h.Diet.MeatMultiplier, 1e-9)
	assert.InDelta(t, 3, h.Diet.MealsPerDay, 1e-9)
	assert.InDelta(t, 5, h.Waste.FoodKg, 1e-9)
}

func TestLoadHouseholds_ListJSON(t *testing.T) {
	path := writeProfile(t, "street.json", `{
	"households": [
		{"name": "a", "home": {"electricity_kwh": 100}},
		{"name": "b", "members": 2, "diet": {"diet_type": "Vegetarian", "meat_multiplier": 0}}
	]
}`)

	hs, err := ingest.LoadHouseholds(path)
	require.NoError(t, err)
	require.Len(t, hs, 2)
	assert.Equal(t, "a", hs[0].Name)
	assert.InDelta(t, 100, hs[0].Home.ElectricityKWh, 1e-9)
	assert.Equal(t, factors.DietVegan, hs[0].Diet.DietType)
	assert.Equal(t, "b", hs[1].Name)
	assert.Equal(t, 2, hs[1].Members)
	assert.Equal(t, factors.DietVegetarian, hs[1].Diet.DietType)
}

func TestLoadHouseholds_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr error
		errText string
	}{
		{name: "unsupported extension", file: "p.toml", content: "x = 1", wantErr: ingest.ErrUnsupportedFormat},
		{name: "empty document", file: "p.yaml", content: "# nothing\n", wantErr: ingest.ErrEmptyProfile},
		{name: "empty list", file: "p.yaml", content: "households: []\n", wantErr: ingest.ErrEmptyProfile},
		{name: "households not a list", file: "p.yaml", content: "households: 3\n", errText: "must be a list"},
		{name: "bad yaml", file: "p.yml", content: "home: [oops\n", errText: "parsing profile YAML"},
		{name: "bad json", file: "p.json", content: "{", errText: "parsing profile JSON"},
		{
			name:    "unknown meat frequency",
			file:    "p.yaml",
			content: "diet:\n  meat_frequency: Always\n",
			wantErr: ingest.ErrMeatFrequency,
		},
		{
			name:    "wrong field type",
			file:    "p.yaml",
			content: "home:\n  electricity_kwh: lots\n",
			errText: "household 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ingest.LoadHouseholds(writeProfile(t, tt.file, tt.content))
			require.Error(t, err)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			}
			if tt.errText != "" {
				assert.Contains(t, err.Error(), tt.errText)
			}
		})
	}
}

func TestLoadHouseholds_MissingFile(t *testing.T) {
	_, err := ingest.LoadHouseholds(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading profile file")
}

func TestWriteHouseholds_RoundTrip(t *testing.T) {
	one := ingest.DefaultHousehold()
	one.Name = "one"
	two := ingest.DefaultHousehold()
	two.Name = "two"
	two.Transport.BusKmWeekly = 40

	for _, name := range []string{"out.yaml", "out.json"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, ingest.WriteHouseholds(path, []footprint.Household{one, two}))

			got, err := ingest.LoadHouseholds(path)
			require.NoError(t, err)
			assert.Equal(t, []footprint.Household{one, two}, got)
		})
	}

	t.Run("single household", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "single.yaml")
		require.NoError(t, ingest.WriteHouseholds(path, []footprint.Household{one}))
		got, err := ingest.LoadHouseholds(path)
		require.NoError(t, err)
		assert.Equal(t, []footprint.Household{one}, got)
	})

	require.ErrorIs(t, ingest.WriteHouseholds("x.yaml", nil), ingest.ErrEmptyProfile)
}
