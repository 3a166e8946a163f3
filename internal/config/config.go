package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/harrison/minigrep/internal/logger"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the name of the configuration file inside the home directory.
const ConfigFileName = "config.yaml"

// Config represents minigrep tool configuration.
// It controls diagnostics only; search behaviour comes from the command line.
type Config struct {
	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// LogFile enables a per-run log file under LogDir
	LogFile bool `yaml:"log_file"`

	// LogDir is the directory where run logs are written.
	// Empty means <home>/logs.
	LogDir string `yaml:"log_dir"`
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "warn",
		LogFile:  false,
		LogDir:   "",
	}
}

// LoadConfig loads configuration from the specified file path.
// If the file doesn't exist, returns default configuration without error.
// If the file exists but is malformed, returns an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Pointer fields tell an explicit false apart from an absent key.
	type yamlConfig struct {
		LogLevel string `yaml:"log_level"`
		LogFile  *bool  `yaml:"log_file"`
		LogDir   string `yaml:"log_dir"`
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(yamlCfg.LogLevel))
	}
	if yamlCfg.LogFile != nil {
		cfg.LogFile = *yamlCfg.LogFile
	}
	if yamlCfg.LogDir != "" {
		cfg.LogDir = yamlCfg.LogDir
	}

	return cfg, nil
}

// LoadConfigFromDir loads configuration from config.yaml in the specified directory.
// If the directory or file doesn't exist, returns default configuration without error.
func LoadConfigFromDir(dir string) (*Config, error) {
	return LoadConfig(filepath.Join(dir, ConfigFileName))
}

// MergeWithFlags merges CLI flags into the configuration.
// Non-nil flag values override configuration values.
// Passing a log directory also turns the file log on.
func (c *Config) MergeWithFlags(logLevel *string, logDir *string) {
	if logLevel != nil {
		c.LogLevel = strings.ToLower(strings.TrimSpace(*logLevel))
	}
	if logDir != nil {
		c.LogDir = *logDir
		c.LogFile = true
	}
}

// ResolveLogDir fills in LogDir relative to home when it is empty.
func (c *Config) ResolveLogDir(home string) {
	if c.LogDir == "" {
		c.LogDir = filepath.Join(home, "logs")
	}
}

// Validate validates the configuration values
func (c *Config) Validate() error {
	if !logger.IsValidLevel(c.LogLevel) {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	if c.LogFile && strings.TrimSpace(c.LogDir) == "" {
		return fmt.Errorf("log_dir cannot be empty when log_file is enabled")
	}

	return nil
}
