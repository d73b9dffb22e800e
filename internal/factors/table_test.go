package factors

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	tbl := Default()
	require.NotNil(t, tbl)
	assert.Same(t, tbl, Default(), "Default should return a shared instance")
	assert.Equal(t, DefaultName, tbl.Name())
	assert.Equal(t, DefaultVersion, tbl.Version())

	v, err := tbl.Factor(KeyLPG)
	require.NoError(t, err)
	assert.InDelta(t, 2.983, v, 1e-12)
}

func TestTable_Factor(t *testing.T) {
	tbl := Default()

	tests := []struct {
		name    string
		key     string
		want    float64
		wantErr error
	}{
		{name: "grid", key: KeyGrid, want: 0.82},
		{name: "petrol car", key: KeyPetrolCar, want: 0.192},
		{name: "long flight", key: KeyLongFlight, want: 700},
		{name: "diet key", key: DietVegan, want: 1.2},
		{name: "organic discount", key: KeyOrganicDiscount, want: 0.20},
		{name: "unknown key", key: "COAL", wantErr: ErrKeyNotFound},
		{name: "case sensitive", key: "grid", wantErr: ErrKeyNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tbl.Factor(tt.key)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestTable_GridFactor(t *testing.T) {
	tbl := Default()

	assert.InDelta(t, 0.90, tbl.GridFactor("Delhi"), 1e-12)
	assert.InDelta(t, 0.63, tbl.GridFactor("Tamil Nadu"), 1e-12)
	assert.InDelta(t, 0.82, tbl.GridFactor("Atlantis"), 1e-12, "unknown region falls back to GRID")
	assert.InDelta(t, 0.82, tbl.GridFactor(""), 1e-12)
	assert.True(t, tbl.HasRegion("Karnataka"))
	assert.False(t, tbl.HasRegion("Atlantis"))
}

func TestTable_DietFactor(t *testing.T) {
	tbl := Default()

	for diet, want := range map[string]float64{
		DietVegan:          1.2,
		DietVegetarian:     1.5,
		DietNonVegetarian:  2.5,
		DietHeavyMeatEater: 3.0,
	} {
		got, err := tbl.DietFactor(diet)
		require.NoError(t, err, diet)
		assert.InDelta(t, want, got, 1e-12, diet)
	}

	_, err := tbl.DietFactor("Pescatarian")
	require.ErrorIs(t, err, ErrInvalidCategory)

	// Non-diet keys are not diet types even though they exist in the table.
	_, err = tbl.DietFactor(KeyGrid)
	require.ErrorIs(t, err, ErrInvalidCategory)
}

func TestTable_VehicleFactor(t *testing.T) {
	tbl := Default()

	tests := []struct {
		vehicle string
		want    float64
	}{
		{VehicleNone, 0},
		{VehiclePetrolCar, 0.192},
		{VehicleDieselCar, 0.171},
		{VehicleCNGCar, 0.135},
		{VehicleEVCar, 0.100},
		{VehiclePetrolBike, 0.082},
		{VehicleDieselBike, 0.080},
		{VehicleEVBike, 0.050},
		{"Hovercraft", 0},
		{"", 0},
	}
	for _, tt := range tests {
		t.Run(tt.vehicle, func(t *testing.T) {
			assert.InDelta(t, tt.want, tbl.VehicleFactor(tt.vehicle), 1e-12)
		})
	}
}

func TestNew_Validation(t *testing.T) {
	base := Default()

	t.Run("copies input maps", func(t *testing.T) {
		f := base.Factors()
		tbl, err := New("copy", "1.0.0", f, base.RegionFactors())
		require.NoError(t, err)
		f[KeyGrid] = 99
		assert.InDelta(t, 0.82, tbl.MustFactor(KeyGrid), 1e-12)
	})

	t.Run("missing required key", func(t *testing.T) {
		f := base.Factors()
		delete(f, KeyBus)
		_, err := New("x", "1.0.0", f, nil)
		require.ErrorIs(t, err, ErrKeyNotFound)
	})

	t.Run("negative factor", func(t *testing.T) {
		f := base.Factors()
		f[KeyTrain] = -0.1
		_, err := New("x", "1.0.0", f, nil)
		require.ErrorIs(t, err, ErrNegativeFactor)
	})

	t.Run("NaN region", func(t *testing.T) {
		_, err := New("x", "1.0.0", base.Factors(), map[string]float64{"Delhi": math.NaN()})
		require.ErrorIs(t, err, ErrNegativeFactor)
	})

	t.Run("discount above one", func(t *testing.T) {
		f := base.Factors()
		f[KeyRecyclingDiscount] = 1.5
		_, err := New("x", "1.0.0", f, nil)
		require.ErrorIs(t, err, ErrDiscountRange)
	})
}

func TestTable_Listing(t *testing.T) {
	tbl := Default()

	keys := tbl.Keys()
	assert.Len(t, keys, len(indiaFactors))
	assert.IsNonDecreasing(t, keys)

	regions := tbl.Regions()
	assert.Equal(t, []string{
		"Andhra Pradesh", "Delhi", "Karnataka", "Maharashtra",
		RegionOther, "Tamil Nadu", "Telangana", "Uttar Pradesh",
	}, regions)
}

func TestLabels(t *testing.T) {
	assert.Len(t, VehicleLabels(), 8)
	for _, v := range VehicleLabels() {
		assert.True(t, IsVehicleLabel(v), v)
	}
	assert.False(t, IsVehicleLabel("Tram"))

	diets := DietTypes()
	assert.Equal(t, []string{DietVegan, DietVegetarian, DietNonVegetarian, DietHeavyMeatEater}, diets)
	diets[0] = "mutated"
	assert.Equal(t, DietVegan, DietTypes()[0], "DietTypes must return a copy")
}
