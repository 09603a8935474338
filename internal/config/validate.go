package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/rs/zerolog"

	"github.com/rshade/wastecalc/internal/i18n"
	"github.com/rshade/wastecalc/internal/logging"
	"github.com/rshade/wastecalc/internal/share"
)

// supportedSchema is the range of schema versions this build can read.
const supportedSchema = "^1.0.0"

type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors.
const (
	// ErrUnsupportedSchema means the file was written by an incompatible release.
	ErrUnsupportedSchema = constError("unsupported config schema version")

	// ErrInvalidConfig wraps semantic validation failures.
	ErrInvalidConfig = constError("invalid configuration")
)

// Validate checks every section and returns all problems joined.
func (c *Config) Validate() error {
	var errs []error

	if err := validateSchemaVersion(c.SchemaVersion); err != nil {
		errs = append(errs, err)
	}
	if c.UI.Language != "" {
		if _, err := i18n.Parse(c.UI.Language); err != nil {
			errs = append(errs, fmt.Errorf("%w: ui.language %q: %w", ErrInvalidConfig, c.UI.Language, err))
		}
	}
	if err := share.ValidateMethod(c.Share.Method); err != nil {
		errs = append(errs, fmt.Errorf("%w: share.method: %w", ErrInvalidConfig, err))
	}
	if err := c.Logging.validate(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// validateSchemaVersion accepts an empty version as the current one.
func validateSchemaVersion(v string) error {
	if v == "" {
		return nil
	}
	version, err := semver.NewVersion(v)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrUnsupportedSchema, v, err)
	}
	constraint, err := semver.NewConstraint(supportedSchema)
	if err != nil {
		return fmt.Errorf("parsing schema constraint: %w", err)
	}
	if !constraint.Check(version) {
		return fmt.Errorf("%w: %s does not satisfy %s", ErrUnsupportedSchema, v, supportedSchema)
	}
	return nil
}

func (lc LoggingConfig) validate() error {
	var errs []error
	if lc.Level != "" {
		if _, err := zerolog.ParseLevel(strings.ToLower(lc.Level)); err != nil {
			errs = append(errs, fmt.Errorf("%w: logging.level %q", ErrInvalidConfig, lc.Level))
		}
	}
	switch strings.ToLower(lc.Format) {
	case "", logging.FormatJSON, logging.FormatConsole:
	default:
		errs = append(errs, fmt.Errorf("%w: logging.format %q", ErrInvalidConfig, lc.Format))
	}
	return errors.Join(errs...)
}
