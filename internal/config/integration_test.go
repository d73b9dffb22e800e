package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/footprint/internal/config"
)

func TestGlobalConfig(t *testing.T) {
	isolateEnv(t)
	config.ResetGlobalConfigForTest()
	t.Cleanup(config.ResetGlobalConfigForTest)

	first := config.GetGlobalConfig()
	require.NotNil(t, first)
	assert.Same(t, first, config.GetGlobalConfig())

	custom := config.Default()
	custom.Output.DefaultFormat = "json"
	config.SetGlobalConfig(custom)
	assert.Equal(t, "json", config.GetDefaultOutputFormat())
	assert.Equal(t, 1, config.GetOutputPrecision())
	assert.Equal(t, "info", config.GetLogLevel())
}

func TestGetConfigDir(t *testing.T) {
	home := isolateEnv(t)
	dir, err := config.GetConfigDir()
	require.NoError(t, err)
	assert.Equal(t, home, dir)

	t.Setenv(config.EnvHome, "")
	dir, err = config.GetConfigDir()
	require.NoError(t, err)
	assert.Equal(t, ".footprint", filepath.Base(dir))
}

func TestDefaultConfigPath(t *testing.T) {
	home := isolateEnv(t)
	path, err := config.DefaultConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "config.yaml"), path)

	t.Setenv(config.EnvConfig, "/etc/footprint.yaml")
	path, err = config.DefaultConfigPath()
	require.NoError(t, err)
	assert.Equal(t, "/etc/footprint.yaml", path)
}

func TestEnsureConfigDir(t *testing.T) {
	home := isolateEnv(t)
	nested := filepath.Join(home, "a", "b")
	t.Setenv(config.EnvHome, nested)

	require.NoError(t, config.EnsureConfigDir())
	info, err := os.Stat(nested)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestEnsureLogDir(t *testing.T) {
	home := isolateEnv(t)
	config.ResetGlobalConfigForTest()
	t.Cleanup(config.ResetGlobalConfigForTest)

	cfg := config.Default()
	cfg.Logging.File = filepath.Join(home, "logs", "footprint.log")
	config.SetGlobalConfig(cfg)

	require.NoError(t, config.EnsureLogDir())
	info, err := os.Stat(filepath.Join(home, "logs"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestDefaultLogFile(t *testing.T) {
	home := isolateEnv(t)
	path, err := config.DefaultLogFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "logs", "footprint.log"), path)
}
