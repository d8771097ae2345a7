package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	coreerrors "github.com/Aman-CERP/sitequery/internal/errors"
)

// Config is the complete sitequery configuration.
type Config struct {
	ShardDir        string `yaml:"shard_dir" json:"shard_dir"`
	DefaultLimit    int    `yaml:"default_limit" json:"default_limit"`
	StemmerLanguage string `yaml:"stemmer_language" json:"stemmer_language"`
	LogLevel        string `yaml:"log_level" json:"log_level"`
	CacheSize       int    `yaml:"cache_size" json:"cache_size"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		ShardDir:        "./shards",
		DefaultLimit:    20,
		StemmerLanguage: "porter",
		LogLevel:        "info",
		CacheSize:       1000,
	}
}

// GetUserConfigPath returns the path to the user/global configuration file,
// following the XDG Base Directory convention:
//   - $XDG_CONFIG_HOME/sitequery/config.yaml (if set)
//   - ~/.config/sitequery/config.yaml (default)
func GetUserConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "sitequery", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), ".config", "sitequery", "config.yaml")
	}
	return filepath.Join(home, ".config", "sitequery", "config.yaml")
}

// UserConfigExists reports whether the user configuration file exists.
func UserConfigExists() bool {
	return fileExists(GetUserConfigPath())
}

// Load applies configuration in order of increasing precedence:
//  1. Hardcoded defaults
//  2. User config (~/.config/sitequery/config.yaml)
//  3. Project config (sitequery.yaml in dir)
//  4. SITEQUERY_* environment variables
func Load(dir string) (*Config, error) {
	cfg := NewConfig()

	userPath := GetUserConfigPath()
	if fileExists(userPath) {
		if err := cfg.loadYAML(userPath); err != nil {
			return nil, err
		}
	}

	if err := cfg.loadFromFile(dir); err != nil {
		return nil, err
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFromFile loads sitequery.yaml or sitequery.yml from dir, if present.
func (c *Config) loadFromFile(dir string) error {
	yamlPath := filepath.Join(dir, "sitequery.yaml")
	if fileExists(yamlPath) {
		return c.loadYAML(yamlPath)
	}
	ymlPath := filepath.Join(dir, "sitequery.yml")
	if fileExists(ymlPath) {
		return c.loadYAML(ymlPath)
	}
	return nil
}

// loadYAML merges non-zero fields parsed from path into c.
func (c *Config) loadYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return coreerrors.IOError(fmt.Sprintf("failed to read config file %s", path), err)
	}

	var parsed Config
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return coreerrors.ConfigError(fmt.Sprintf("failed to parse config file %s", path), err)
	}
	c.mergeWith(&parsed)
	return nil
}

// mergeWith overwrites c's fields with other's non-zero-value fields.
func (c *Config) mergeWith(other *Config) {
	if other.ShardDir != "" {
		c.ShardDir = other.ShardDir
	}
	if other.DefaultLimit != 0 {
		c.DefaultLimit = other.DefaultLimit
	}
	if other.StemmerLanguage != "" {
		c.StemmerLanguage = other.StemmerLanguage
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
	if other.CacheSize != 0 {
		c.CacheSize = other.CacheSize
	}
}

// applyEnvOverrides applies SITEQUERY_* environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("SITEQUERY_SHARD_DIR"); v != "" {
		c.ShardDir = v
	}
	if v := os.Getenv("SITEQUERY_DEFAULT_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.DefaultLimit = n
		}
	}
	if v := os.Getenv("SITEQUERY_STEMMER_LANGUAGE"); v != "" {
		c.StemmerLanguage = v
	}
	if v := os.Getenv("SITEQUERY_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("SITEQUERY_CACHE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.CacheSize = n
		}
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.DefaultLimit < 0 {
		return coreerrors.ValidationError(fmt.Sprintf("default_limit must be non-negative, got %d", c.DefaultLimit), nil)
	}
	if c.CacheSize < 0 {
		return coreerrors.ValidationError(fmt.Sprintf("cache_size must be non-negative, got %d", c.CacheSize), nil)
	}

	validStemmers := map[string]bool{"porter": true, "none": true}
	if !validStemmers[strings.ToLower(c.StemmerLanguage)] {
		return coreerrors.ValidationError(fmt.Sprintf("stemmer_language must be 'porter' or 'none', got %s", c.StemmerLanguage), nil)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.LogLevel)] {
		return coreerrors.ValidationError(fmt.Sprintf("log_level must be 'debug', 'info', 'warn', or 'error', got %s", c.LogLevel), nil)
	}
	return nil
}

// WriteYAML writes the configuration to path.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return coreerrors.ConfigError("failed to marshal config", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return coreerrors.IOError(fmt.Sprintf("failed to write config file %s", path), err)
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
