package cli_test

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/footprint/internal/cli"
	"github.com/rshade/footprint/internal/config"
	"github.com/rshade/footprint/internal/factors"
	"github.com/rshade/footprint/internal/ingest"
)

func decodeJSON(t *testing.T, s string) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(s), &out), s)
	return out
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestCalc_DefaultsPlainTable(t *testing.T) {
	setupCLITest(t)

	out, _, err := runCLI(t, "calc")
	require.NoError(t, err)

	assert.Contains(t, out, "Monthly total:  343.7 kg CO2e")
	assert.Contains(t, out, "CATEGORY")
	assert.Contains(t, out, "Home")
	assert.Contains(t, out, "Recommendations:")
	assert.Contains(t, out, "Factors:        "+factors.DefaultName)
}

func TestCalc_JSON(t *testing.T) {
	setupCLITest(t)

	out, _, err := runCLI(t, "calc", "--output", "json", "--name", "flat 4B", "--members", "4")
	require.NoError(t, err)

	report := decodeJSON(t, out)
	assert.Equal(t, "flat 4B", report["name"])
	assert.InDelta(t, 343.668, report["monthly_total"], eps)
	assert.InDelta(t, 343.668*12, report["annual_total"], eps)
	assert.InDelta(t, 343.668*12/4, report["per_capita_annual"], eps)
	assert.Len(t, report["recommendations"], 4)
}

func TestCalc_InputFlags(t *testing.T) {
	setupCLITest(t)

	out, _, err := runCLI(t, "calc", "--output", "json",
		"--region", "Delhi", "--electricity-kwh", "200", "--lpg-cylinders", "1",
		"--biomass", "Never", "--solar-pct", "0")
	require.NoError(t, err)

	report := decodeJSON(t, out)
	monthly := report["result"].(map[string]interface{})["monthly"].(map[string]interface{})
	assert.InDelta(t, 182.983, monthly["home"], eps)
}

func TestCalc_NDJSON(t *testing.T) {
	setupCLITest(t)

	out, _, err := runCLI(t, "calc", "--output", "ndjson")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1)
	assert.InDelta(t, 343.668, decodeJSON(t, lines[0])["monthly_total"], eps)
}

func TestCalc_Unit(t *testing.T) {
	setupCLITest(t)

	out, _, err := runCLI(t, "calc", "--unit", "t")
	require.NoError(t, err)
	assert.Contains(t, out, "Annual total:   4.1 t CO2e")
}

func TestCalc_WhatIf(t *testing.T) {
	setupCLITest(t)

	t.Run("json", func(t *testing.T) {
		out, _, err := runCLI(t, "calc", "--output", "json",
			"--set", "transport.vehicle=Petrol Car", "--set", "transport.personal_km_weekly=100")
		require.NoError(t, err)

		result := decodeJSON(t, out)
		assert.InDelta(t, 83.424, result["total_change"], eps)
		assert.Len(t, result["changes"], 2)
	})

	t.Run("plain", func(t *testing.T) {
		out, _, err := runCLI(t, "calc",
			"--set", "transport.vehicle=Petrol Car", "--set", "transport.personal_km_weekly=100")
		require.NoError(t, err)

		assert.Contains(t, out, "What-If Footprint Analysis")
		assert.Contains(t, out, "Change:    +83.4 kg CO2e/mo")
		assert.Contains(t, out, "transport.vehicle: No personal vehicle -> Petrol Car")
	})
}

func TestCalc_Profile(t *testing.T) {
	dir := setupCLITest(t)

	profile := writeFile(t, dir, "households.yaml", `households:
  - name: flat 4B
    members: 4
  - name: bungalow
    home:
      electricity_kwh: -5
  - name: commuter
    transport:
      vehicle: Petrol Car
      personal_km_weekly: 100
`)

	t.Run("ndjson keeps order and reports failures", func(t *testing.T) {
		out, _, err := runCLI(t, "calc", "--profile", profile, "--output", "ndjson", "--concurrency", "2")
		require.NoError(t, err)

		var records []map[string]interface{}
		sc := bufio.NewScanner(strings.NewReader(out))
		for sc.Scan() {
			records = append(records, decodeJSON(t, sc.Text()))
		}
		require.Len(t, records, 3)

		assert.Equal(t, "flat 4B", records[0]["name"])
		assert.NotNil(t, records[0]["report"])
		assert.Equal(t, "bungalow", records[1]["name"])
		assert.Nil(t, records[1]["report"])
		assert.NotEmpty(t, records[1]["error"])
		assert.Equal(t, "commuter", records[2]["name"])
	})

	t.Run("json summary", func(t *testing.T) {
		out, _, err := runCLI(t, "calc", "--profile", profile, "--output", "json")
		require.NoError(t, err)

		doc := decodeJSON(t, out)
		summary := doc["summary"].(map[string]interface{})
		assert.InDelta(t, 2, summary["count"], eps)
		assert.InDelta(t, 1, summary["failed"], eps)
	})

	t.Run("plain table", func(t *testing.T) {
		out, _, err := runCLI(t, "calc", "--profile", profile)
		require.NoError(t, err)

		assert.Contains(t, out, "HOUSEHOLD")
		assert.Contains(t, out, "commuter")
		assert.Contains(t, out, "error:")
		assert.Contains(t, out, "Households: 2  Failed: 1")
	})

	t.Run("flags override every household", func(t *testing.T) {
		out, _, err := runCLI(t, "calc", "--profile", profile, "--output", "ndjson", "--electricity-kwh", "0")
		require.NoError(t, err)

		assert.NotContains(t, out, `"error"`)
	})
}

func TestCalc_SaveProfile(t *testing.T) {
	dir := setupCLITest(t)
	path := filepath.Join(dir, "home.json")

	_, stderr, err := runCLI(t, "calc", "--region", "Kerala", "--name", "home", "--save-profile", path)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Profile saved to")

	households, err := ingest.LoadHouseholds(path)
	require.NoError(t, err)
	require.Len(t, households, 1)
	assert.Equal(t, "home", households[0].Name)
	assert.Equal(t, "Kerala", households[0].Home.Region)
}

func TestCalc_Errors(t *testing.T) {
	dir := setupCLITest(t)
	twoHouseholds := writeFile(t, dir, "two.yaml", "households:\n  - name: a\n  - name: b\n")

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "bad number", args: []string{"--electricity-kwh", "abc"}, wantErr: "--electricity-kwh"},
		{name: "bad meat frequency", args: []string{"--meat-frequency", "Daily"}, wantErr: "--meat-frequency"},
		{name: "unsupported output", args: []string{"--output", "xml"}, wantErr: "unsupported output format"},
		{name: "unknown unit", args: []string{"--unit", "stone"}, wantErr: "invalid carbon unit"},
		{name: "unknown override field", args: []string{"--set", "home.pool=1"}, wantErr: "unknown field"},
		{name: "override without value", args: []string{"--set", "home.solar_pct"}, wantErr: "expected field=value"},
		{name: "override on batch", args: []string{"--profile", twoHouseholds, "--set", "home.solar_pct=10"}, wantErr: "exactly one household"},
		{name: "missing profile", args: []string{"--profile", filepath.Join(dir, "nope.yaml")}, wantErr: "nope.yaml"},
		{name: "missing factor file", args: []string{"--factors", filepath.Join(dir, "nope-factors.yaml")}, wantErr: "nope-factors.yaml"},
		{name: "invalid household", args: []string{"--solar-pct", "150"}, wantErr: "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runCLI(t, append([]string{"calc"}, tt.args...)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCalc_CustomFactors(t *testing.T) {
	dir := setupCLITest(t)
	path := writeFile(t, dir, "factors.yaml", `name: test-grid
version: 1.2.0
regions:
  Zeroland: 0
`)

	out, _, err := runCLI(t, "calc", "--factors", path, "--region", "Zeroland", "--lpg-cylinders", "0", "--output", "json")
	require.NoError(t, err)

	report := decodeJSON(t, out)
	assert.Equal(t, "test-grid", report["factor_table"])
	assert.Equal(t, "1.2.0", report["factor_version"])
	monthly := report["result"].(map[string]interface{})["monthly"].(map[string]interface{})
	assert.InDelta(t, 0, monthly["home"], eps)
}

func TestCalc_ConfigDefaults(t *testing.T) {
	dir := setupCLITest(t)
	path := writeFile(t, dir, "custom.yaml", "output:\n  default_format: json\n")

	out, _, err := runCLI(t, "--config", path, "calc")
	require.NoError(t, err)
	assert.InDelta(t, 343.668, decodeJSON(t, out)["monthly_total"], eps)
	assert.Equal(t, path, config.GetGlobalConfig().ConfigPath())
}

func TestParseFieldOverrides(t *testing.T) {
	tests := []struct {
		name    string
		sets    []string
		want    map[string]string
		wantErr bool
	}{
		{name: "empty", sets: nil, want: map[string]string{}},
		{
			name: "trims and lowercases keys",
			sets: []string{" Home.Solar_Pct = 40 ", "transport.vehicle=EV Car"},
			want: map[string]string{"home.solar_pct": "40", "transport.vehicle": "EV Car"},
		},
		{name: "value with equals sign", sets: []string{"home.region=a=b"}, want: map[string]string{"home.region": "a=b"}},
		{name: "missing equals", sets: []string{"home.region"}, wantErr: true},
		{name: "empty key", sets: []string{"=1"}, wantErr: true},
		{name: "unknown field", sets: []string{"home.garden=1"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cli.ParseFieldOverrides(tt.sets)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalc_InteractiveNeedsTerminal(t *testing.T) {
	setupCLITest(t)

	_, _, err := runCLI(t, "calc", "--interactive")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "terminal")
}
