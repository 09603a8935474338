package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/wastecalc/internal/config"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates ~/.wastecalc/config.yaml for syntax and semantic correctness.

This includes:
- YAML syntax
- schema_version compatibility
- ui.language, share.method, logging.level and logging.format values`,
		Example: `  # Validate current configuration
  wastecalc config validate

  # Validate and show detailed information
  wastecalc config validate --verbose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate loads the file strictly, without the fallback to
// defaults that normal commands use, and validates it.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	path, err := config.DefaultConfigPath()
	if err != nil {
		return err
	}

	cfg, err := config.Load(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		cmd.Printf("No configuration file at %s, defaults are in effect\n", path)
		cfg = config.Default()
	case err != nil:
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cmd.Printf("Configuration is valid\n")

	if verbose {
		printVerboseDetails(cmd, cfg)
	}

	return nil
}

// printVerboseDetails prints detailed configuration information.
func printVerboseDetails(cmd *cobra.Command, cfg *config.Config) {
	cmd.Println()
	cmd.Println("Configuration details:")
	cmd.Printf("  Schema version: %s\n", cfg.SchemaVersion)
	cmd.Printf("  Language: %s\n", valueOr(cfg.UI.Language, "(system)"))
	cmd.Printf("  Strict weight: %t\n", cfg.Form.StrictWeight)
	cmd.Printf("  Share method: %s\n", valueOr(cfg.Share.Method, "auto"))
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	cmd.Printf("  Log file: %s\n", valueOr(cfg.Logging.File, "(none)"))
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
