// Package config holds the run configuration: the two required
// credentials sourced from the environment and the optional settings
// file controlling output location and filtering.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Environment variables holding the required credentials.
const (
	EnvAPIKey    = "YOUTUBE_API_KEY"
	EnvChannelID = "YOUTUBE_CHANNEL_ID"
)

// Defaults applied when the settings file is absent or leaves a field unset.
const (
	DefaultOutputPath = "data/videos.json"
	DefaultMinSeconds = 180
	DefaultPageSize   = 50
)

// ValidationError reports a missing required environment variable.
type ValidationError struct {
	Var string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("required environment variable %s is not set", e.Var)
}

// Settings are the tunable, non-secret parameters, optionally loaded
// from a YAML file.
type Settings struct {
	OutputPath string `yaml:"outputPath"`
	MinSeconds int    `yaml:"minSeconds"`
	PageSize   int64  `yaml:"pageSize"`
}

// Config is the complete configuration for a single run. It is built
// once at startup and passed by parameter into the components that
// need it.
type Config struct {
	APIKey    string
	ChannelID string
	Settings  Settings
}

// DefaultSettings returns the settings used when no file is given.
func DefaultSettings() Settings {
	return Settings{
		OutputPath: DefaultOutputPath,
		MinSeconds: DefaultMinSeconds,
		PageSize:   DefaultPageSize,
	}
}

// Load reads the credentials from the environment and, if settingsPath
// is non-empty, merges the settings file over the defaults. Missing
// credentials are not an error here; Validate reports them so the
// caller controls when the check happens.
func Load(settingsPath string) (*Config, error) {
	cfg := &Config{
		APIKey:    os.Getenv(EnvAPIKey),
		ChannelID: os.Getenv(EnvChannelID),
		Settings:  DefaultSettings(),
	}

	if settingsPath != "" {
		data, err := os.ReadFile(settingsPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read settings file: %w", err)
		}

		var s Settings
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("failed to parse settings file: %w", err)
		}

		if s.OutputPath != "" {
			cfg.Settings.OutputPath = s.OutputPath
		}
		if s.MinSeconds > 0 {
			cfg.Settings.MinSeconds = s.MinSeconds
		}
		if s.PageSize > 0 {
			cfg.Settings.PageSize = s.PageSize
		}
	}

	return cfg, nil
}

// Validate checks that both required credentials are present.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return &ValidationError{Var: EnvAPIKey}
	}
	if c.ChannelID == "" {
		return &ValidationError{Var: EnvChannelID}
	}
	return nil
}
