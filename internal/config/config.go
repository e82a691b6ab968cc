package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the name of the farscape configuration file
const ConfigFileName = "config.yaml"

// ConfigDirName is the name of the farscape configuration directory
const ConfigDirName = ".farscape"

// Config holds all farscape configuration
type Config struct {
	Frontend FrontendConfig `yaml:"frontend"`
	Parse    ParseConfig    `yaml:"parse"`
	Output   OutputConfig   `yaml:"output"`
}

// FrontendConfig holds configuration for the external compiler frontend
type FrontendConfig struct {
	// Binary is the frontend executable name or path.
	Binary string `yaml:"binary"`
	// ExtraArgs are passed verbatim to every frontend invocation.
	ExtraArgs []string `yaml:"extra_args"`
}

// ParseConfig holds defaults for the extraction pipeline
type ParseConfig struct {
	IncludePaths []string `yaml:"include_paths"`
	Defines      []string `yaml:"defines"`
	// Macros enables the preprocessor macro pass by default.
	Macros bool `yaml:"macros"`
	// MacroPrefixes is the default macro name allowlist (empty = all).
	MacroPrefixes []string `yaml:"macro_prefixes"`
}

// OutputConfig holds configuration for output formatting
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
}

// ErrConfigNotFound is returned when no config file can be found
var ErrConfigNotFound = errors.New("config file not found")

// ErrInvalidConfig is returned when config validation fails
var ErrInvalidConfig = errors.New("invalid configuration")

// Load reads config from .farscape/config.yaml, falling back to defaults.
// It searches for the config directory starting from workDir and walking up
// the directory tree. If no config is found, returns defaults.
func Load(workDir string) (*Config, error) {
	configDir, err := FindConfigDir(workDir)
	if err != nil {
		// No config dir found, return defaults
		return DefaultConfig(), nil
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	return LoadFromPath(configPath)
}

// LoadFromPath reads config from a specific path.
// Merges loaded config with defaults and validates the result.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	loaded := &Config{}
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Merge with defaults
	merged := Merge(loaded, DefaultConfig())

	// Validate the merged config
	if err := Validate(merged); err != nil {
		return nil, err
	}

	return merged, nil
}

// FindConfigDir locates the .farscape directory by walking up from startDir.
// Returns the path to the .farscape directory if found.
func FindConfigDir(startDir string) (string, error) {
	// Get absolute path
	absDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	currentDir := absDir
	for {
		configDir := filepath.Join(currentDir, ConfigDirName)
		info, err := os.Stat(configDir)
		if err == nil && info.IsDir() {
			return configDir, nil
		}

		// Move to parent directory
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root, config not found
			return "", ErrConfigNotFound
		}
		currentDir = parentDir
	}
}

// Validate checks that config values are valid.
// Returns an error if validation fails.
func Validate(cfg *Config) error {
	if cfg.Frontend.Binary == "" {
		return fmt.Errorf("%w: frontend binary must not be empty", ErrInvalidConfig)
	}

	if !IsValidFormat(cfg.Output.DefaultFormat) {
		return fmt.Errorf("%w: default_format must be one of %v, got %q",
			ErrInvalidConfig, ValidFormats, cfg.Output.DefaultFormat)
	}

	for _, inc := range cfg.Parse.IncludePaths {
		if inc == "" {
			return fmt.Errorf("%w: include paths must not be empty strings", ErrInvalidConfig)
		}
	}

	return nil
}
