package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/wastecalc/internal/config"
	"github.com/rshade/wastecalc/internal/logging"
)

// setupLogging configures logging based on config file, environment, and CLI
// flags. While the interactive calculator owns the terminal nothing may be
// written to stderr, so logs go to the configured file or nowhere.
func setupLogging(cmd *cobra.Command, interactive bool) logging.LogPathResult {
	loggingCfg := config.GetLoggingConfig()

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg.Level = "debug"
		if !interactive {
			loggingCfg.Format = logging.FormatConsole
			loggingCfg.File = ""
		}
	}

	if loggingCfg.File != "" {
		if err := config.EnsureLogDir(); err != nil && !interactive {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not create log directory: %v\n", err)
		}
	}

	logCfg := loggingCfg.ToLoggingConfig()
	if interactive && logCfg.Output != logging.OutputFile {
		logCfg.Output = logging.OutputDiscard
	}

	result := logging.NewLoggerWithPath(logCfg)
	if interactive && result.FallbackUsed {
		logCfg.Output = logging.OutputDiscard
		result = logging.NewLoggerWithPath(logCfg)
	}
	logger = logging.ComponentLogger(result.Logger, "cli")

	if !interactive {
		if result.UsingFile && debug {
			logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
		} else if result.FallbackUsed {
			logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
		}
	}

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = logger.WithContext(ctx)
	cmd.SetContext(ctx)

	logger.Info().Ctx(ctx).Str("command", cmd.Name()).Msg("command started")

	return result
}

// cleanupLogging closes the log file handle.
func cleanupLogging(logResult *logging.LogPathResult) error {
	if logResult != nil {
		return logResult.Close()
	}
	return nil
}
