package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rshade/footprint/internal/config"
	"github.com/rshade/footprint/internal/logging"
)

const builtinFactorSource = "built-in"

// commandSession ties the log output of one command invocation to its start time.
type commandSession struct {
	log     logging.LogPathResult
	command string
	started time.Time
}

// factorSource names the factor table a command will use: --factors when the
// command has the flag and it is set, then the configured file, then the built-in table.
func factorSource(cmd *cobra.Command, cfg *config.Config) string {
	if f := cmd.Flags().Lookup("factors"); f != nil && f.Value.String() != "" {
		return f.Value.String()
	}
	if cfg.Factors.File != "" {
		return cfg.Factors.File
	}
	return builtinFactorSource
}

// setupLogging configures logging from the config file, environment and --debug,
// stores the logger and a trace ID in the command context and records the
// configuration the command runs with.
func setupLogging(cmd *cobra.Command) *commandSession {
	cfg := config.GetGlobalConfig()
	loggingCfg := config.GetLoggingConfig()

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = "console"
		loggingCfg.File = ""
	}

	if loggingCfg.File != "" {
		if err := config.EnsureLogDir(); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not create log directory: %v\n", err)
		}
	}

	result := logging.NewLoggerWithPath(loggingCfg.ToLoggingConfig())
	logger = logging.ComponentLogger(result.Logger, "cli")

	if result.UsingFile {
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	} else if result.FallbackUsed {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	}

	ctx := cmd.Context()
	ctx = logging.ContextWithTraceID(ctx, logging.GetOrGenerateTraceID(ctx))
	ctx = logger.WithContext(ctx)
	cmd.SetContext(ctx)

	configPath := cfg.ConfigPath()
	if configPath == "" {
		configPath = "defaults"
	}

	logger.Debug().Ctx(ctx).
		Str("command", cmd.CommandPath()).
		Str("config_path", configPath).
		Str("factor_source", factorSource(cmd, cfg)).
		Str("output_format", cfg.Output.DefaultFormat).
		Str("unit", cfg.Output.Unit).
		Msg("command started")

	return &commandSession{log: result, command: cmd.CommandPath(), started: time.Now()}
}

// cleanupLogging logs the command duration and closes the log file, if any.
func cleanupLogging(cmd *cobra.Command, s *commandSession) error {
	if s == nil {
		return nil
	}
	logging.FromContext(cmd.Context()).Debug().Ctx(cmd.Context()).
		Str("command", s.command).
		Dur("duration", time.Since(s.started)).
		Msg("command finished")
	return s.log.Close()
}
