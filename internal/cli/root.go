// Package cli implements the wastecalc command line: the root command that
// runs the interactive calculator and the scripted calc, about and config
// subcommands.
package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/rshade/wastecalc/internal/config"
	"github.com/rshade/wastecalc/internal/i18n"
	"github.com/rshade/wastecalc/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root command. Run without a subcommand it starts the
// interactive calculator.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:     "wastecalc",
		Short:   "Waste price calculator",
		Long:    "wastecalc prices sorted household waste (organic or inorganic) at a flat rate per kilogram.",
		Version: ver,
		Example: rootCmdExample,
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := applyGlobalFlags(cmd); err != nil {
				return err
			}
			result := setupLogging(cmd, cmd == cmd.Root())
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
		RunE: runInteractive,
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("lang", "", "interface language (en, id), overrides ui.language")
	cmd.AddCommand(NewCalcCmd(), NewAboutCmd(), newConfigCmd())

	return cmd
}

const rootCmdExample = `  # Start the interactive calculator
  wastecalc

  # Price 2.5 kg of organic waste
  wastecalc calc --category organic --weight 2.5

  # Price and copy the result to the clipboard
  wastecalc calc --category inorganic --weight 3 --share

  # Use the Indonesian interface
  wastecalc --lang id

  # Initialize configuration
  wastecalc config init`

// applyGlobalFlags copies persistent flags that override configuration into
// the global config.
func applyGlobalFlags(cmd *cobra.Command) error {
	cfg := config.GetGlobalConfig()

	if cmd.Flags().Changed("lang") {
		lang, _ := cmd.Flags().GetString("lang")
		if _, err := i18n.Parse(lang); err != nil {
			return fmt.Errorf("invalid --lang %q: %w", lang, err)
		}
		cfg.UI.Language = lang
	}
	return nil
}

// resolveStrings returns the catalog for the configured language. An
// unusable system locale falls back to English.
func resolveStrings(ctx context.Context, cfg *config.Config) (*i18n.Strings, error) {
	pref := cfg.LanguagePreference()
	tag, err := i18n.Parse(pref)
	if err != nil {
		logging.FromContext(ctx).Debug().
			Ctx(ctx).
			Str("component", "cli").
			Str("preference", pref).
			Err(err).
			Msg("unrecognized language, using English")
		tag = language.English
	}
	return i18n.New(tag)
}

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigValidateCmd(), NewConfigShowCmd())
	return cmd
}
