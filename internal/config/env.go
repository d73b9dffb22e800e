package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables recognised by the CLI.
const (
	EnvHome      = "FOOTPRINT_HOME"
	EnvConfig    = "FOOTPRINT_CONFIG"
	EnvLogLevel  = "FOOTPRINT_LOG_LEVEL"
	EnvLogFormat = "FOOTPRINT_LOG_FORMAT"
	EnvLogFile   = "FOOTPRINT_LOG_FILE"
	EnvFactors   = "FOOTPRINT_FACTORS"
	EnvOutput    = "FOOTPRINT_OUTPUT"
	EnvUnit      = "FOOTPRINT_UNIT"
)

const dotEnvFile = ".env"

// loadDotEnv reads ./.env when present. Variables already set in the
// environment win over the file.
func loadDotEnv() {
	if _, err := os.Stat(dotEnvFile); err != nil {
		return
	}
	_ = godotenv.Load(dotEnvFile)
}

// applyEnvOverrides copies FOOTPRINT_* variables onto the configuration.
func (c *Config) applyEnvOverrides() {
	if v := envValue(EnvLogLevel); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
	if v := envValue(EnvLogFormat); v != "" {
		c.Logging.Format = strings.ToLower(v)
	}
	if v := envValue(EnvLogFile); v != "" {
		c.Logging.File = v
	}
	if v := envValue(EnvFactors); v != "" {
		c.Factors.File = v
	}
	if v := envValue(EnvOutput); v != "" {
		c.Output.DefaultFormat = strings.ToLower(v)
	}
	if v := envValue(EnvUnit); v != "" {
		c.Output.Unit = v
	}
}

func envValue(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
