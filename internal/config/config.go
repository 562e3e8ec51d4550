package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/vango-dev/reconcile/internal/errors"
)

const (
	// ConfigName is the configuration file name without extension.
	ConfigName = "reconcile"

	// ConfigFileName is the name of the configuration file.
	ConfigFileName = ConfigName + ".json"

	// EnvPrefix prefixes environment variable overrides.
	EnvPrefix = "RECONCILE"

	// DefaultIndent is the default JSON output indentation.
	DefaultIndent = "  "

	// DefaultNamespace is the default metrics namespace.
	DefaultNamespace = "vango"

	// DefaultSubsystem is the default metrics subsystem.
	DefaultSubsystem = "reconcile"
)

// Config represents the complete reconcile.json configuration.
type Config struct {
	// Output controls how results are printed.
	Output OutputConfig `mapstructure:"output" json:"output"`

	// Debug controls hook validation and recompute logging.
	Debug DebugConfig `mapstructure:"debug" json:"debug"`

	// Metrics controls Prometheus metrics collection.
	Metrics MetricsConfig `mapstructure:"metrics" json:"metrics"`

	// configDir is the directory the configuration was loaded from.
	configDir string
}

// OutputConfig controls result printing.
type OutputConfig struct {
	// Indent is the JSON indentation string.
	Indent string `mapstructure:"indent" json:"indent"`

	// Compact prints single-line JSON, ignoring Indent.
	Compact bool `mapstructure:"compact" json:"compact"`
}

// DebugConfig controls debug behavior.
type DebugConfig struct {
	// HookOrder enables hook order validation.
	HookOrder bool `mapstructure:"hookOrder" json:"hookOrder"`

	// LogRecompute logs memo recomputations at debug level.
	LogRecompute bool `mapstructure:"logRecompute" json:"logRecompute"`
}

// MetricsConfig controls Prometheus metrics.
type MetricsConfig struct {
	// Enabled collects metrics and prints them after each command.
	Enabled bool `mapstructure:"enabled" json:"enabled"`

	// Namespace is the metrics namespace.
	Namespace string `mapstructure:"namespace" json:"namespace"`

	// Subsystem is the metrics subsystem.
	Subsystem string `mapstructure:"subsystem" json:"subsystem"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Output: OutputConfig{
			Indent: DefaultIndent,
		},
		Metrics: MetricsConfig{
			Namespace: DefaultNamespace,
			Subsystem: DefaultSubsystem,
		},
	}
}

// NewViper returns a viper instance with defaults, the config file location
// and environment overrides set up for dir. Callers may bind flags to it
// before passing it to Decode.
func NewViper(dir string) *viper.Viper {
	v := viper.New()

	defaults := New()
	v.SetDefault("output.indent", defaults.Output.Indent)
	v.SetDefault("output.compact", defaults.Output.Compact)
	v.SetDefault("debug.hookOrder", defaults.Debug.HookOrder)
	v.SetDefault("debug.logRecompute", defaults.Debug.LogRecompute)
	v.SetDefault("metrics.enabled", defaults.Metrics.Enabled)
	v.SetDefault("metrics.namespace", defaults.Metrics.Namespace)
	v.SetDefault("metrics.subsystem", defaults.Metrics.Subsystem)

	v.SetConfigName(ConfigName)
	v.SetConfigType("json")
	v.AddConfigPath(dir)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads configuration for dir. A missing reconcile.json yields defaults.
func Load(dir string) (*Config, error) {
	return Decode(NewViper(dir), dir)
}

// Decode reads the config file registered on v (if any) and decodes the
// merged result. A .env file in dir is loaded into the environment first.
func Decode(v *viper.Viper, dir string) (*Config, error) {
	envPath := filepath.Join(dir, ".env")
	if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
		return nil, errors.New("E020").
			WithDetail("Failed to read " + envPath + ": " + err.Error())
	}

	if err := v.ReadInConfig(); err != nil {
		if _, missing := err.(viper.ConfigFileNotFoundError); !missing {
			return nil, errors.New("E020").
				WithDetail("Failed to read " + ConfigFileName + ": " + err.Error()).
				WithSuggestion("Check that " + ConfigFileName + " is valid JSON")
		}
	}

	cfg := New()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.New("E020").Wrap(err)
	}
	cfg.configDir = dir

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if strings.Trim(c.Output.Indent, " \t") != "" {
		return errors.New("E020").
			WithDetail("output.indent may only contain spaces and tabs")
	}
	if c.Metrics.Enabled && c.Metrics.Namespace == "" {
		return errors.New("E020").
			WithDetail("metrics.namespace is required when metrics are enabled")
	}
	return nil
}

// Dir returns the directory the configuration was loaded for.
func (c *Config) Dir() string {
	return c.configDir
}

// Path returns the path of the configuration file.
func (c *Config) Path() string {
	return filepath.Join(c.configDir, ConfigFileName)
}

// Exists checks if a reconcile.json exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}
