// Package config provides configuration loading and validation for the CLI
// and server, plus the auth (password/JWT) configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the application configuration loadable from a JSON file.
// All fields are optional; missing values use defaults or come from CLI flags
// and environment variables.
type Config struct {
	// Server
	Port int `json:"port,omitempty"`

	// Backing services
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	Model       string `json:"model,omitempty"`        // LLM model name

	// Workflow tuning
	StageTimeoutMinutes int `json:"stage_timeout_minutes,omitempty"` // per-agent-call timeout
	StateTTLHours       int `json:"state_ttl_hours,omitempty"`       // checkpoint TTL

	// Behavior
	CompanyName string `json:"company_name,omitempty"` // default company for CLI runs
	Verbose     bool   `json:"verbose,omitempty"`
}

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

// Validate checks that the configuration has valid values. Required fields
// are not checked here; flag validation after merging handles those.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' out of range: %d", c.Port)
	}
	if c.StageTimeoutMinutes < 0 {
		return fmt.Errorf("config error: 'stage_timeout_minutes' must be non-negative")
	}
	if c.StateTTLHours < 0 {
		return fmt.Errorf("config error: 'state_ttl_hours' must be non-negative")
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. Config file values act as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.CompanyName == "" {
		result.CompanyName = defaults.CompanyName
	}
	if result.StageTimeoutMinutes == 0 {
		result.StageTimeoutMinutes = defaults.StageTimeoutMinutes
	}
	if result.StateTTLHours == 0 {
		result.StateTTLHours = defaults.StateTTLHours
	}

	// Bool fields: unset and false are indistinguishable, so CLI flags win.

	return result
}
