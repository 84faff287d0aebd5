// Package config loads application configuration from TOML
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config holds application configuration
type Config struct {
	Theme       string  `toml:"theme"`
	IndexPath   string  `toml:"index_path"`
	RepoURL     string  `toml:"repo_url"`
	MinSpacing  float64 `toml:"min_spacing"`
	LevelHeight float64 `toml:"level_height"`
	Margin      float64 `toml:"margin"`
	MinScale    float64 `toml:"min_scale"`
	MaxScale    float64 `toml:"max_scale"`
	AnimationMs int     `toml:"animation_ms"`
	StepDelayMs int     `toml:"step_delay_ms"`
	MaxResults  int     `toml:"max_results"`

	Settings map[string]string `toml:"settings"`

	// Session settings (not persisted to TOML, overrides persisted settings)
	sessionSettings map[string]string
}

// Load loads the config file from the standard location
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return defaultConfig(), nil // Return default if can't find config path
	}

	return LoadFromFile(configPath)
}

// LoadFromFile loads config from a specific file
func LoadFromFile(filePath string) (*Config, error) {
	// If file doesn't exist, return default config
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return defaultConfig(), nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.applyDefaults()

	return &config, nil
}

// applyDefaults fills in zero values left by a partial config file
func (c *Config) applyDefaults() {
	def := defaultConfig()
	if c.Theme == "" {
		c.Theme = def.Theme
	}
	if c.IndexPath == "" {
		c.IndexPath = def.IndexPath
	}
	if c.MinSpacing <= 0 {
		c.MinSpacing = def.MinSpacing
	}
	if c.LevelHeight <= 0 {
		c.LevelHeight = def.LevelHeight
	}
	if c.Margin <= 0 {
		c.Margin = def.Margin
	}
	if c.MinScale <= 0 {
		c.MinScale = def.MinScale
	}
	if c.MaxScale <= c.MinScale {
		c.MaxScale = def.MaxScale
	}
	if c.AnimationMs <= 0 {
		c.AnimationMs = def.AnimationMs
	}
	if c.StepDelayMs <= 0 {
		c.StepDelayMs = def.StepDelayMs
	}
	if c.MaxResults <= 0 {
		c.MaxResults = def.MaxResults
	}
	if c.Settings == nil {
		c.Settings = make(map[string]string)
	}
	if c.sessionSettings == nil {
		c.sessionSettings = make(map[string]string)
	}
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".config", "orbit", "config.toml"), nil
}

// defaultConfig returns the default configuration
func defaultConfig() *Config {
	return &Config{
		Theme:           "default",
		IndexPath:       "index.json",
		MinSpacing:      18,
		LevelHeight:     5,
		Margin:          10,
		MinScale:        0.2,
		MaxScale:        3.0,
		AnimationMs:     600,
		StepDelayMs:     120,
		MaxResults:      50,
		Settings:        make(map[string]string),
		sessionSettings: make(map[string]string),
	}
}

// GetConfigDir returns the config directory
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	configDir := filepath.Join(home, ".config", "orbit")
	return configDir, nil
}

// EnsureConfigDir creates the config directory if it doesn't exist
func EnsureConfigDir() error {
	configDir, err := GetConfigDir()
	if err != nil {
		return err
	}

	return os.MkdirAll(configDir, 0755)
}

// Set sets a session configuration value
func (c *Config) Set(key, value string) {
	if c.sessionSettings == nil {
		c.sessionSettings = make(map[string]string)
	}
	c.sessionSettings[key] = value
}

// Get retrieves a configuration value, checking session settings first (which override persisted settings)
// Returns empty string if not found in either source
func (c *Config) Get(key string) string {
	// Check session settings first (they override persisted settings)
	if c.sessionSettings != nil {
		if val, ok := c.sessionSettings[key]; ok {
			return val
		}
	}

	// Fall back to persisted settings
	if c.Settings != nil {
		if val, ok := c.Settings[key]; ok {
			return val
		}
	}

	return ""
}

// Save persists the configuration to the TOML file
// Note: This only persists the Settings map, not session settings
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	// Ensure the config directory exists
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
