// Package config loads scrub configuration from YAML files and merges
// it with CLI flag overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/harrison/scrub/internal/models"
)

// Config represents scrub configuration options.
type Config struct {
	// Recursive enables recursive directory traversal
	Recursive bool `yaml:"recursive"`

	// DryRun shows actions without renaming anything
	DryRun bool `yaml:"dry_run"`

	// Replacement is the substitution character (exactly one character,
	// not a path separator)
	Replacement string `yaml:"replacement"`

	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// LogDir is the directory for run log files; empty disables file logging
	LogDir string `yaml:"log_dir"`
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Recursive:   false,
		DryRun:      false,
		Replacement: string(models.DefaultReplacement),
		LogLevel:    "info",
		LogDir:      "",
	}
}

// LoadConfig loads configuration from the specified file path.
// If the file doesn't exist, returns default configuration without error.
// If the file exists but is malformed, returns an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// LoadConfigFromDir loads configuration from dir/.scrub/config.yaml,
// falling back to defaults when the file is absent.
func LoadConfigFromDir(dir string) (*Config, error) {
	return LoadConfig(filepath.Join(dir, ".scrub", "config.yaml"))
}

// MergeWithFlags overrides config values with CLI flag values.
// Only non-nil pointers are applied; flags take precedence over the file.
func (c *Config) MergeWithFlags(recursive, dryRun *bool, replacement, logLevel, logDir *string) {
	if recursive != nil {
		c.Recursive = *recursive
	}
	if dryRun != nil {
		c.DryRun = *dryRun
	}
	if replacement != nil {
		c.Replacement = *replacement
	}
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
	if logDir != nil {
		c.LogDir = *logDir
	}
}

// Validate checks the merged configuration for invalid values.
func (c *Config) Validate() error {
	if _, err := models.ValidateReplacement(c.Replacement); err != nil {
		return err
	}

	switch c.LogLevel {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q (valid: trace, debug, info, warn, error)", c.LogLevel)
	}

	return nil
}

// ReplacementRune returns the validated replacement character.
// Validate must have succeeded first.
func (c *Config) ReplacementRune() rune {
	r, err := models.ValidateReplacement(c.Replacement)
	if err != nil {
		return models.DefaultReplacement
	}
	return r
}

// Options builds the immutable option bundle handed to the core.
func (c *Config) Options() models.Options {
	return models.Options{
		Recursive:   c.Recursive,
		DryRun:      c.DryRun,
		Replacement: c.ReplacementRune(),
	}
}
