// Package config loads, validates and saves the wastecalc configuration file
// (~/.wastecalc/config.yaml) and applies environment overrides on top of it.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/rshade/wastecalc/internal/form"
)

// CurrentSchemaVersion is written by Save and config init.
const CurrentSchemaVersion = "1.0.0"

// configFileName is the name of the config file inside the config directory.
const configFileName = "config.yaml"

// Environment variables.
const (
	EnvHome          = "WASTECALC_HOME"
	EnvLogLevel      = "WASTECALC_LOG_LEVEL"
	EnvLogFormat     = "WASTECALC_LOG_FORMAT"
	EnvLang          = "WASTECALC_LANG"
	EnvShareMethod   = "WASTECALC_SHARE_METHOD"
	EnvStrictWeight  = "WASTECALC_STRICT_WEIGHT"
	envSystemLocale  = "LANG"
	configDirName    = ".wastecalc"
	configFilePerm   = 0o600
	configDirPerm    = 0o700
	defaultLogLevel  = "info"
	defaultLogFormat = "json"
)

// Config is the full wastecalc configuration.
type Config struct {
	SchemaVersion string        `yaml:"schema_version"`
	UI            UIConfig      `yaml:"ui"`
	Form          FormConfig    `yaml:"form"`
	Share         ShareConfig   `yaml:"share"`
	Logging       LoggingConfig `yaml:"logging"`

	configPath string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	// Language is a BCP 47 tag or POSIX locale. Empty follows $LANG.
	Language string `yaml:"language"`
}

// FormConfig holds calculation form behavior.
type FormConfig struct {
	// StrictWeight reports unparseable weights as a validation failure
	// instead of ignoring them.
	StrictWeight bool `yaml:"strict_weight"`
}

// ShareConfig selects the share capability.
type ShareConfig struct {
	// Method is one of auto, clipboard, osc52, stdout, none.
	Method string `yaml:"method"`
}

// Default returns the built-in configuration without reading any file.
func Default() *Config {
	return &Config{
		SchemaVersion: CurrentSchemaVersion,
		Share:         ShareConfig{Method: "auto"},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}

// New returns the configuration from the default config file with environment
// overrides applied. A missing file yields the defaults; an unreadable or
// malformed file is reported on stderr and the defaults are used.
func New() *Config {
	path, err := DefaultConfigPath()
	if err != nil {
		cfg := Default()
		cfg.applyEnv()
		return cfg
	}

	cfg, err := Load(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: ignoring config file %s: %v\n", path, err)
		}
		cfg = Default()
		cfg.configPath = path
	}
	cfg.applyEnv()
	return cfg
}

// Load reads the file at path on top of the defaults. Environment overrides
// are not applied.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.configPath = path
	return cfg, nil
}

// Save writes the configuration to its config path.
func (c *Config) Save() error {
	if c.configPath == "" {
		path, err := DefaultConfigPath()
		if err != nil {
			return err
		}
		c.configPath = path
	}

	if err := os.MkdirAll(filepath.Dir(c.configPath), configDirPerm); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(c.configPath, data, configFilePerm); err != nil {
		return fmt.Errorf("writing config %s: %w", c.configPath, err)
	}
	return nil
}

// SetConfigPath sets where Save writes.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// ConfigPath returns where the configuration was loaded from or will be saved.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// ParseMode returns the form parse mode selected by Form.StrictWeight.
func (c *Config) ParseMode() form.ParseMode {
	if c.Form.StrictWeight {
		return form.ParseStrict
	}
	return form.ParseSilent
}

// LanguagePreference returns the configured language, falling back to the
// system locale.
func (c *Config) LanguagePreference() string {
	if c.UI.Language != "" {
		return c.UI.Language
	}
	return os.Getenv(envSystemLocale)
}

// applyEnv overrides file values with WASTECALC_* variables.
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv(EnvLang); v != "" {
		c.UI.Language = v
	}
	if v := os.Getenv(EnvShareMethod); v != "" {
		c.Share.Method = v
	}
	if v := os.Getenv(EnvStrictWeight); v != "" {
		if strict, err := strconv.ParseBool(v); err == nil {
			c.Form.StrictWeight = strict
		}
	}
}

// GetConfigDir returns the wastecalc configuration directory.
func GetConfigDir() (string, error) {
	if home := os.Getenv(EnvHome); home != "" {
		return home, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, configDirName), nil
}

// DefaultConfigPath returns the path of config.yaml in the config directory.
func DefaultConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}
