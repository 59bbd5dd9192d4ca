// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Document  string `json:"document,omitempty"`   // Path to LaTeX resume file
	Target    string `json:"target,omitempty"`     // Path to target role description text file
	TargetURL string `json:"target_url,omitempty"` // URL to fetch target role description from

	// Generation
	APIKey      string  `json:"api_key,omitempty"`     // Generation backend API key
	Provider    string  `json:"provider,omitempty"`    // Generation provider (gemini, openai, anthropic)
	Model       string  `json:"model,omitempty"`       // Model identifier
	Temperature float64 `json:"temperature,omitempty"` // Sampling temperature (0.0-2.0)
	Mode        string  `json:"mode,omitempty"`        // Rewrite mode (minimal, balanced, aggressive)

	// Pacing
	ThrottleSeconds int `json:"throttle_seconds,omitempty"` // Delay between generation calls
	TimeoutSeconds  int `json:"timeout_seconds,omitempty"`  // Per-call generation timeout

	// Behavior
	UseBrowser  bool   `json:"use_browser,omitempty"`  // Use headless browser for SPA sites
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	// Validate mutually exclusive fields
	if c.Target != "" && c.TargetURL != "" {
		return fmt.Errorf("config error: 'target' and 'target_url' are mutually exclusive")
	}

	// Validate numeric ranges
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("config error: 'temperature' must be within [0, 2]")
	}
	if c.ThrottleSeconds < 0 {
		return fmt.Errorf("config error: 'throttle_seconds' must be non-negative")
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'timeout_seconds' must be non-negative")
	}

	if c.Mode != "" {
		switch c.Mode {
		case "minimal", "balanced", "aggressive":
		default:
			return fmt.Errorf("config error: unknown mode %q", c.Mode)
		}
	}

	// Validate file paths exist (if specified)
	if c.Document != "" {
		if _, err := os.Stat(c.Document); os.IsNotExist(err) {
			return fmt.Errorf("config error: document file not found: %s", c.Document)
		}
	}

	if c.Target != "" {
		if _, err := os.Stat(c.Target); os.IsNotExist(err) {
			return fmt.Errorf("config error: target file not found: %s", c.Target)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Document == "" {
		result.Document = defaults.Document
	}
	if result.Target == "" {
		result.Target = defaults.Target
	}
	if result.TargetURL == "" {
		result.TargetURL = defaults.TargetURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Provider == "" {
		result.Provider = defaults.Provider
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.Mode == "" {
		result.Mode = defaults.Mode
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Int fields: use default if zero
	if result.ThrottleSeconds == 0 {
		result.ThrottleSeconds = defaults.ThrottleSeconds
	}
	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}

	// Float fields
	if result.Temperature == 0 {
		result.Temperature = defaults.Temperature
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
