package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/harrison/catr/internal/models"
)

// Config represents catr configuration options
type Config struct {
	// Mode is the default numbering mode (plain, number, number-nonblank).
	// The -n and -b flags override it.
	Mode string `yaml:"mode"`

	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// LogDir is the directory where run logs are written. Empty disables file logging.
	LogDir string `yaml:"log_dir"`

	// UnknownKeys lists top-level keys in the file that catr does not recognise
	UnknownKeys []string `yaml:"-"`
}

var knownKeys = map[string]bool{
	"mode":      true,
	"log_level": true,
	"log_dir":   true,
}

var validLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		Mode:     models.ModePlain.String(),
		LogLevel: "warn",
		LogDir:   "",
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// A second pass over the raw map tells us which keys were actually
	// present, so an explicit empty log_dir still overrides.
	var rawMap map[string]interface{}
	if err := yaml.Unmarshal(data, &rawMap); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if _, exists := rawMap["mode"]; exists {
		cfg.Mode = fileCfg.Mode
	}
	if _, exists := rawMap["log_level"]; exists {
		cfg.LogLevel = normalizeLevel(fileCfg.LogLevel)
	}
	if _, exists := rawMap["log_dir"]; exists {
		cfg.LogDir = fileCfg.LogDir
	}

	for key := range rawMap {
		if !knownKeys[key] {
			cfg.UnknownKeys = append(cfg.UnknownKeys, key)
		}
	}
	sort.Strings(cfg.UnknownKeys)

	return cfg, nil
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
func (c *Config) MergeWithFlags(mode *models.Mode, logLevel *string, logDir *string) {
	if mode != nil {
		c.Mode = mode.String()
	}
	if logLevel != nil {
		c.LogLevel = normalizeLevel(*logLevel)
	}
	if logDir != nil {
		c.LogDir = *logDir
	}
}

// normalizeLevel lower-cases a log level; the logger accepts any case.
func normalizeLevel(level string) string {
	return strings.ToLower(strings.TrimSpace(level))
}

// NumberingMode returns the configured Mode.
// Call Validate first; an invalid mode yields ModePlain.
func (c *Config) NumberingMode() models.Mode {
	mode, err := models.ParseMode(c.Mode)
	if err != nil {
		return models.ModePlain
	}
	return mode
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	if _, err := models.ParseMode(c.Mode); err != nil {
		return err
	}

	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	return nil
}
