// Package config provides CLI configuration management for the salienza
// command-line tool. It supports loading configuration from YAML files
// and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// OutputFormat defines the supported output formats for CLI results.
type OutputFormat string

const (
	// OutputFormatText is human-readable plain text output.
	OutputFormatText OutputFormat = "text"
	// OutputFormatJSON is JSON-formatted output for machine processing.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatCSV is CSV-formatted output for spreadsheets.
	OutputFormatCSV OutputFormat = "csv"
	// OutputFormatHTML is the source text with highlighted entity spans.
	OutputFormatHTML OutputFormat = "html"
)

// Default configuration values.
const (
	DefaultLanguage     = "auto"
	DefaultTimeout      = 60 * time.Second
	DefaultOutputFormat = OutputFormatText
	DefaultConfigDir    = ".salienza"
	DefaultConfigFile   = "config.yaml"
)

// CLIConfig holds the CLI configuration settings.
type CLIConfig struct {
	// APIKey is the Google Cloud Natural Language API key.
	APIKey string `yaml:"api_key,omitempty"`

	// Endpoint overrides the Natural Language API endpoint.
	Endpoint string `yaml:"endpoint,omitempty"`

	// Language is the default input language (ISO 639-1 code or "auto").
	Language string `yaml:"language"`

	// Timeout is the default timeout for extraction requests.
	Timeout time.Duration `yaml:"timeout"`

	// OutputFormat specifies the default output format for commands.
	OutputFormat OutputFormat `yaml:"output_format"`

	// Local selects the local ONNX model extractor instead of the API.
	Local bool `yaml:"local,omitempty"`

	// Deduplicate merges near-duplicate entities after extraction.
	Deduplicate bool `yaml:"deduplicate"`

	// FilterStopwords removes stopword entities after extraction.
	FilterStopwords bool `yaml:"filter_stopwords"`

	// DatabaseEnabled turns on the Postgres analyses store.
	DatabaseEnabled bool `yaml:"database_enabled,omitempty"`

	// Debug enables verbose debug logging.
	Debug bool `yaml:"debug,omitempty"`
}

// DefaultConfig returns a CLIConfig with default values.
func DefaultConfig() *CLIConfig {
	return &CLIConfig{
		Language:        DefaultLanguage,
		Timeout:         DefaultTimeout,
		OutputFormat:    DefaultOutputFormat,
		Deduplicate:     true,
		FilterStopwords: true,
	}
}

// ConfigDir returns the configuration directory path.
// Uses $SALIENZA_CONFIG_DIR if set, otherwise ~/.salienza
func ConfigDir() (string, error) {
	if dir := os.Getenv("SALIENZA_CONFIG_DIR"); dir != "" {
		return dir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}

	return filepath.Join(home, DefaultConfigDir), nil
}

// ConfigPath returns the full path to the configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DefaultConfigFile), nil
}

// LoadConfig loads the CLI configuration from file and environment variables.
// Configuration is loaded in this order (later sources override earlier):
// 1. Default values
// 2. Config file (~/.salienza/config.yaml or $SALIENZA_CONFIG_DIR/config.yaml)
// 3. Environment variables (SALIENZA_API_KEY, SALIENZA_LANGUAGE, ...)
func LoadConfig() (*CLIConfig, error) {
	cfg := DefaultConfig()

	configPath, err := ConfigPath()
	if err != nil {
		return nil, fmt.Errorf("getting config path: %w", err)
	}

	if _, err := os.Stat(configPath); err == nil {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
	}

	loadFromEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(cfg *CLIConfig, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	// We need a temp struct for unmarshaling duration as string and for
	// distinguishing absent booleans from explicit false.
	type configFile struct {
		APIKey          string       `yaml:"api_key"`
		Endpoint        string       `yaml:"endpoint"`
		Language        string       `yaml:"language"`
		Timeout         string       `yaml:"timeout"`
		OutputFormat    OutputFormat `yaml:"output_format"`
		Local           *bool        `yaml:"local"`
		Deduplicate     *bool        `yaml:"deduplicate"`
		FilterStopwords *bool        `yaml:"filter_stopwords"`
		DatabaseEnabled *bool        `yaml:"database_enabled"`
		Debug           *bool        `yaml:"debug"`
	}

	var fileCfg configFile
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	if fileCfg.APIKey != "" {
		cfg.APIKey = fileCfg.APIKey
	}
	if fileCfg.Endpoint != "" {
		cfg.Endpoint = fileCfg.Endpoint
	}
	if fileCfg.Language != "" {
		cfg.Language = fileCfg.Language
	}
	if fileCfg.Timeout != "" {
		timeout, err := time.ParseDuration(fileCfg.Timeout)
		if err != nil {
			return fmt.Errorf("parsing timeout: %w", err)
		}
		cfg.Timeout = timeout
	}
	if fileCfg.OutputFormat != "" {
		cfg.OutputFormat = fileCfg.OutputFormat
	}
	if fileCfg.Local != nil {
		cfg.Local = *fileCfg.Local
	}
	if fileCfg.Deduplicate != nil {
		cfg.Deduplicate = *fileCfg.Deduplicate
	}
	if fileCfg.FilterStopwords != nil {
		cfg.FilterStopwords = *fileCfg.FilterStopwords
	}
	if fileCfg.DatabaseEnabled != nil {
		cfg.DatabaseEnabled = *fileCfg.DatabaseEnabled
	}
	if fileCfg.Debug != nil {
		cfg.Debug = *fileCfg.Debug
	}

	return nil
}

// loadFromEnv overlays environment variables onto the configuration.
func loadFromEnv(cfg *CLIConfig) {
	if v := os.Getenv("SALIENZA_API_KEY"); v != "" {
		cfg.APIKey = v
	}

	if v := os.Getenv("SALIENZA_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}

	if v := os.Getenv("SALIENZA_LANGUAGE"); v != "" {
		cfg.Language = v
	}

	if v := os.Getenv("SALIENZA_TIMEOUT"); v != "" {
		if timeout, err := time.ParseDuration(v); err == nil {
			cfg.Timeout = timeout
		}
	}

	if v := os.Getenv("SALIENZA_OUTPUT_FORMAT"); v != "" {
		cfg.OutputFormat = OutputFormat(v)
	}

	if v := os.Getenv("SALIENZA_LOCAL"); v == "true" || v == "1" {
		cfg.Local = true
	}

	if v := os.Getenv("SALIENZA_DATABASE_ENABLED"); v == "true" || v == "1" {
		cfg.DatabaseEnabled = true
	}

	if v := os.Getenv("SALIENZA_DEBUG"); v == "true" || v == "1" {
		cfg.Debug = true
	}
}

// Validate checks that the configuration is valid.
func (c *CLIConfig) Validate() error {
	if c.Language == "" {
		return fmt.Errorf("language is required")
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}

	if !c.OutputFormat.IsValid() {
		return fmt.Errorf("invalid output_format: %q (must be text, json, csv, or html)", c.OutputFormat)
	}

	return nil
}

// IsValid checks if the output format is valid.
func (f OutputFormat) IsValid() bool {
	switch f {
	case OutputFormatText, OutputFormatJSON, OutputFormatCSV, OutputFormatHTML:
		return true
	default:
		return false
	}
}

// String returns the string representation of the output format.
func (f OutputFormat) String() string {
	return string(f)
}

// SaveConfig saves the configuration to the config file.
func SaveConfig(cfg *CLIConfig) error {
	configDir, err := ConfigDir()
	if err != nil {
		return fmt.Errorf("getting config directory: %w", err)
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	configPath := filepath.Join(configDir, DefaultConfigFile)

	// Convert to YAML-friendly format with duration as string.
	type configFile struct {
		APIKey          string       `yaml:"api_key,omitempty"`
		Endpoint        string       `yaml:"endpoint,omitempty"`
		Language        string       `yaml:"language"`
		Timeout         string       `yaml:"timeout"`
		OutputFormat    OutputFormat `yaml:"output_format"`
		Local           bool         `yaml:"local,omitempty"`
		Deduplicate     bool         `yaml:"deduplicate"`
		FilterStopwords bool         `yaml:"filter_stopwords"`
		DatabaseEnabled bool         `yaml:"database_enabled,omitempty"`
		Debug           bool         `yaml:"debug,omitempty"`
	}

	fileCfg := configFile{
		APIKey:          cfg.APIKey,
		Endpoint:        cfg.Endpoint,
		Language:        cfg.Language,
		Timeout:         cfg.Timeout.String(),
		OutputFormat:    cfg.OutputFormat,
		Local:           cfg.Local,
		Deduplicate:     cfg.Deduplicate,
		FilterStopwords: cfg.FilterStopwords,
		DatabaseEnabled: cfg.DatabaseEnabled,
		Debug:           cfg.Debug,
	}

	data, err := yaml.Marshal(&fileCfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
