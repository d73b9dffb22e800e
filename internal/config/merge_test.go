package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/footprint/internal/config"
)

// writeOverlay is a test helper that writes YAML content to a temp file
// and returns its path.
func writeOverlay(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "overlay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestShallowMergeYAML_SingleKeyOverride(t *testing.T) {
	target := config.Default()
	overlay := writeOverlay(t, `
output:
  default_format: json
  precision: 3
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Equal(t, "json", target.Output.DefaultFormat)
	assert.Equal(t, 3, target.Output.Precision)
	// Unset fields in a present section keep their defaults.
	assert.Equal(t, "kg", target.Output.Unit)

	assert.Equal(t, "info", target.Logging.Level)
	assert.Equal(t, 4, target.Engine.Concurrency)
}

func TestShallowMergeYAML_MultipleKeyOverride(t *testing.T) {
	target := config.Default()
	overlay := writeOverlay(t, `
comparison:
  national_averages:
    home: 500
    transport: 200
    diet: 600
    waste: 50
  tree_absorption_kg: 25
engine:
  concurrency: 8
factors:
  file: /tmp/custom.yaml
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.InDelta(t, 500, target.Comparison.NationalAverages.Home, 1e-9)
	assert.InDelta(t, 50, target.Comparison.NationalAverages.Waste, 1e-9)
	assert.InDelta(t, 25, target.Comparison.TreeAbsorptionKg, 1e-9)
	assert.Equal(t, 8, target.Engine.Concurrency)
	assert.Equal(t, "/tmp/custom.yaml", target.Factors.File)
	assert.Equal(t, "table", target.Output.DefaultFormat)
}

func TestShallowMergeYAML_UnknownKeysIgnored(t *testing.T) {
	target := config.Default()
	overlay := writeOverlay(t, `
plugins:
  aws: {}
logging:
  level: debug
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))
	assert.Equal(t, "debug", target.Logging.Level)
}

func TestShallowMergeYAML_EmptyFile(t *testing.T) {
	target := config.Default()
	overlay := writeOverlay(t, "# nothing here\n")

	require.NoError(t, config.ShallowMergeYAML(target, overlay))
	assert.Equal(t, config.Default().Output, target.Output)
}

func TestShallowMergeYAML_Errors(t *testing.T) {
	t.Run("nil target", func(t *testing.T) {
		err := config.ShallowMergeYAML(nil, "whatever.yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "nil target")
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.ShallowMergeYAML(config.Default(), filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading overlay file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		overlay := writeOverlay(t, "output: [unclosed\n")
		err := config.ShallowMergeYAML(config.Default(), overlay)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing overlay YAML")
	})

	t.Run("wrong section type", func(t *testing.T) {
		overlay := writeOverlay(t, "engine:\n  concurrency: lots\n")
		err := config.ShallowMergeYAML(config.Default(), overlay)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `applying overlay section "engine"`)
	})
}
