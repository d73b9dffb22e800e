package cli_test

import (
	"bytes"
	"testing"

	"github.com/rshade/footprint/internal/cli"
	"github.com/rshade/footprint/internal/config"
)

const eps = 1e-6

// setupCLITest isolates the config directory and FOOTPRINT_* variables and
// resets the global configuration around the test.
func setupCLITest(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	for _, key := range []string{
		config.EnvConfig, config.EnvLogFormat, config.EnvLogFile,
		config.EnvFactors, config.EnvOutput, config.EnvUnit,
	} {
		t.Setenv(key, "")
	}
	t.Setenv(config.EnvLogLevel, "error")

	config.ResetGlobalConfigForTest()
	t.Cleanup(config.ResetGlobalConfigForTest)
	return home
}

// runCLI executes the root command with args and returns stdout and stderr.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}
