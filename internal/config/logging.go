package config

import (
	"path/filepath"

	"github.com/rshade/footprint/internal/logging"
)

const logFileName = "footprint.log"

// ToLoggingConfig converts the YAML logging section into a logging.Config.
// A configured file switches output to that file.
func (l LoggingConfig) ToLoggingConfig() logging.Config {
	cfg := logging.Config{
		Level:  l.Level,
		Format: l.Format,
		Output: logging.OutputStderr,
	}
	if l.File != "" {
		cfg.Output = logging.OutputFile
		cfg.File = l.File
	}
	return cfg
}

// GetLoggingConfig returns a copy of the global logging section.
func GetLoggingConfig() LoggingConfig {
	return GetGlobalConfig().Logging
}

// DefaultLogFile returns the conventional log file location inside the config directory.
func DefaultLogFile() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "logs", logFileName), nil
}
