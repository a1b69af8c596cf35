// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults, environment variables,
// or must be provided via CLI flags.
type Config struct {
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	Port        int    `json:"port,omitempty"`         // HTTP server port

	// Models
	LiteModel     string `json:"lite_model,omitempty"`     // Model for cheap calls (translation)
	StandardModel string `json:"standard_model,omitempty"` // Model for material generation

	// Behavior
	GenerationTimeout string `json:"generation_timeout,omitempty"` // Per-step timeout, Go duration string
	Verbose           bool   `json:"verbose,omitempty"`            // Print detailed progress information
}

// Environment variable names recognized alongside the config file.
const (
	EnvAPIKey            = "GEMINI_API_KEY"
	EnvDatabaseURL       = "DATABASE_URL"
	EnvGenerationTimeout = "GENERATION_TIMEOUT"
)

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv returns a Config populated from environment variables only.
func FromEnv() Config {
	return Config{
		APIKey:            os.Getenv(EnvAPIKey),
		DatabaseURL:       os.Getenv(EnvDatabaseURL),
		GenerationTimeout: os.Getenv(EnvGenerationTimeout),
	}
}

// Validate checks that the configuration has valid values.
// Required fields are not checked here; those are enforced by CLI flag
// validation after merging.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.GenerationTimeout != "" {
		if _, err := time.ParseDuration(c.GenerationTimeout); err != nil {
			return fmt.Errorf("config error: invalid 'generation_timeout': %w", err)
		}
	}
	return nil
}

// ParsedGenerationTimeout returns the configured per-step timeout, or zero
// when unset or unparseable (callers fall back to the built-in default).
func (c *Config) ParsedGenerationTimeout() time.Duration {
	if c.GenerationTimeout == "" {
		return 0
	}
	d, err := time.ParseDuration(c.GenerationTimeout)
	if err != nil {
		return 0
	}
	return d
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags, and environment values as defaults for the config file.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.LiteModel == "" {
		result.LiteModel = defaults.LiteModel
	}
	if result.StandardModel == "" {
		result.StandardModel = defaults.StandardModel
	}
	if result.GenerationTimeout == "" {
		result.GenerationTimeout = defaults.GenerationTimeout
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
