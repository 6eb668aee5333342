package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/thenoetrevino/staffdesk/internal/config/colors"
	"gopkg.in/yaml.v3"
)

const appName = "staffdesk"

// Config represents the application configuration
type Config struct {
	Database    DatabaseConfig     `yaml:"database"`
	LogLevel    string             `yaml:"log_level" env:"STAFFDESK_LOG_LEVEL"`
	KeyMappings KeyMappings        `yaml:"key_mappings"`
	ColorScheme colors.ColorScheme `yaml:"theme"`

	// ThemeFile is a yaml file whose theme section is merged over the config
	ThemeFile string `yaml:"-" env:"STAFFDESK_THEME_FILE"`
}

// DatabaseConfig locates the SQLite store
type DatabaseConfig struct {
	Path string `yaml:"path" env:"STAFFDESK_DB_PATH"`
}

// loadThemeFile merges the theme section of ThemeFile, if any
func loadThemeFile(config *Config) {
	if config.ThemeFile == "" {
		return
	}

	themeData, err := os.ReadFile(config.ThemeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from the user's config directory, then overlays the
// STAFFDESK_* environment variables. Missing values fall back to defaults.
func Load() (*Config, error) {
	var config Config

	if configPath, err := getConfigPath(); err == nil {
		if err := readFile(configPath, &config); err != nil {
			return nil, err
		}
	}

	if err := env.Parse(&config); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	loadThemeFile(&config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	return &config, nil
}

// readFile parses a yaml config file; a missing file is not an error
func readFile(path string, config *Config) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() (string, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return "", err
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return "", err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}

	return configPath, os.WriteFile(configPath, data, 0o644)
}

// Level returns the configured slog level, defaulting to debug
func (c *Config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelDebug
	}
	return level
}

// DataDir is the directory holding the store and the logs
func (c *Config) DataDir() string {
	return filepath.Dir(c.Database.Path)
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", appName, "config.yaml"), nil
}

// DefaultDataDir returns $XDG_DATA_HOME/staffdesk, or ~/.staffdesk
func DefaultDataDir() string {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, appName)
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, "."+appName)
	}
	return "." + appName
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Database.Path == "" {
		c.Database.Path = filepath.Join(DefaultDataDir(), appName+".db")
	}
	if c.LogLevel == "" {
		c.LogLevel = "debug"
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}

// Path returns where Load reads and Save writes the config file
func Path() (string, error) {
	return getConfigPath()
}
