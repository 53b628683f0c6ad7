package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"mcskb/internal/logging"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const APP_NAME = "mcskb" // application name used for config directory

// DefaultPort is used when neither the environment nor a config file sets one.
const DefaultPort = 2011

// Config holds the server configuration. Values come from an optional YAML
// config file, with environment variables taking precedence.
type Config struct {
	// APIKeys is the shared-secret allow-list checked by the auth middleware.
	APIKeys []string `yaml:"api_keys"`
	// LogLevel is the logging verbosity (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
	// Port is the HTTP listen port.
	Port int `yaml:"port"`
	// DataDir is the directory holding the five collection JSON files.
	DataDir string `yaml:"data_dir"`
}

// ConfigPath returns the standard config file path for the current platform
func ConfigPath() (string, error) {
	configDir := filepath.Join(xdg.ConfigHome, APP_NAME)
	configPath := filepath.Join(configDir, "config.yaml")

	logging.Debug("Determined config path", "path", configPath)
	return configPath, nil
}

// Load builds the configuration: defaults, then the config file if one
// exists, then environment variable overrides. A missing config file is
// not an error; the service can run on environment variables alone.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	if configPath, exists := FindConfigFile(); exists {
		logging.Debug("Loading config from", "path", configPath)
		fileCfg, err := LoadFrom(configPath)
		if err != nil {
			return nil, err
		}
		cfg.merge(fileCfg)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFrom loads config from a specific path
func LoadFrom(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	var cfg Config
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// FindConfigFile returns the path to an existing config file, and whether it exists.
func FindConfigFile() (string, bool) {
	primary, err := ConfigPath()
	if err != nil {
		logging.Error("Failed to get config path", "error", err)
		return "", false
	}

	if _, err := os.Stat(primary); err == nil {
		logging.Debug("Config found at primary path", "path", primary)
		return primary, true
	}

	return primary, false
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Port:     DefaultPort,
		DataDir:  "data",
	}
}

// merge copies non-zero fields of other over c.
func (c *Config) merge(other *Config) {
	if len(other.APIKeys) > 0 {
		c.APIKeys = other.APIKeys
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
	if other.Port != 0 {
		c.Port = other.Port
	}
	if other.DataDir != "" {
		c.DataDir = other.DataDir
	}
}

// applyEnv overrides config fields from environment variables:
// API_KEYS, LOG_LEVEL, PORT and DATA_DIR.
func (c *Config) applyEnv() error {
	if raw, ok := os.LookupEnv("API_KEYS"); ok {
		c.APIKeys = ParseAPIKeys(raw)
	}
	if level, ok := os.LookupEnv("LOG_LEVEL"); ok {
		c.LogLevel = level
	}
	if rawPort, ok := os.LookupEnv("PORT"); ok {
		port, err := strconv.Atoi(strings.TrimSpace(rawPort))
		if err != nil {
			return fmt.Errorf("invalid PORT value %q: %w", rawPort, err)
		}
		c.Port = port
	}
	if dir, ok := os.LookupEnv("DATA_DIR"); ok {
		c.DataDir = dir
	}
	return nil
}

// ParseAPIKeys splits a raw allow-list on commas and newlines, trims
// whitespace and drops blank entries.
func ParseAPIKeys(raw string) []string {
	split := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '\n'
	})

	var keys []string
	for _, key := range split {
		key = strings.TrimSpace(key)
		if key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}

// KeySet returns the allow-list as a set for O(1) auth checks.
func (c *Config) KeySet() map[string]struct{} {
	set := make(map[string]struct{}, len(c.APIKeys))
	for _, key := range c.APIKeys {
		set[key] = struct{}{}
	}
	return set
}
