// Package config loads and persists the termsh configuration file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the application configuration.
type Config struct {
	ScrollbackLines       int               `json:"scrollback_lines"`
	HistoryLimit          int               `json:"history_limit"`
	CommandTimeoutSeconds int               `json:"command_timeout_seconds"` // 0 disables the timeout
	Completions           CompletionsConfig `json:"completions"`
	LogLevel              string            `json:"log_level"`
	LogFormat             string            `json:"log_format"` // "json" or "text"
	LogFile               string            `json:"log_file"`   // empty means the default path
}

// CompletionsConfig extends the built-in completion vocabulary.
type CompletionsConfig struct {
	Commands []string            `json:"commands"`
	Flags    map[string][]string `json:"flags"`
}

// Default returns a configuration with default values.
func Default() Config {
	return Config{
		ScrollbackLines:       1000,
		HistoryLimit:          1000,
		CommandTimeoutSeconds: 0,
		LogLevel:              "info",
		LogFormat:             "json",
	}
}

// Load loads configuration from the specified path. If the file doesn't
// exist, one is created with default values.
func Load(configPath string) (Config, error) {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return Config{}, fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := Default()
			if err := Save(configPath, cfg); err != nil {
				return Config{}, fmt.Errorf("failed to create default config: %w", err)
			}
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Save saves the configuration to the specified path.
func Save(configPath string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if c.ScrollbackLines <= 0 {
		return fmt.Errorf("scrollback_lines must be positive, got: %d", c.ScrollbackLines)
	}

	if c.HistoryLimit <= 0 {
		return fmt.Errorf("history_limit must be positive, got: %d", c.HistoryLimit)
	}

	if c.CommandTimeoutSeconds < 0 {
		return fmt.Errorf("command_timeout_seconds must not be negative, got: %d", c.CommandTimeoutSeconds)
	}

	switch c.LogLevel {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log_level: %s", c.LogLevel)
	}

	switch c.LogFormat {
	case "", "json", "text":
	default:
		return fmt.Errorf("unknown log_format: %s", c.LogFormat)
	}

	return nil
}

// GetConfigPath returns the default configuration file path.
func GetConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".termsh/config.json"
	}
	return filepath.Join(homeDir, ".termsh", "config.json")
}
