package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/eugenenazirov/samsconf/internal/samsconfig"
	"gopkg.in/yaml.v3"
)

const (
	defaultLogLevel    = "info"
	defaultLogEncoding = "json"
)

var (
	validLogLevels    = []string{"debug", "info", "warn", "error"}
	validLogEncodings = []string{"json", "console"}
)

// Config aggregates bootstrap configuration resolved from multiple sources.
// Precedence: CLI flags > YAML config > Environment variables > Defaults
type Config struct {
	ConfFile    string
	LogLevel    string
	LogEncoding string
}

// yamlConfig represents the YAML configuration file structure.
type yamlConfig struct {
	ConfFile string     `yaml:"conf_file"`
	Log      yamlLogger `yaml:"log"`
}

// yamlLogger represents the log section in YAML.
type yamlLogger struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
}

// CLIOverrides holds command-line flag overrides.
type CLIOverrides struct {
	ConfigFile string
	ConfFile   *string
	LogLevel   *string
}

// Load extracts configuration from multiple sources with precedence:
// CLI flags > YAML config > Environment variables > Defaults
func Load(overrides *CLIOverrides) (Config, error) {
	cfg := defaultConfig()

	// Apply environment variables (override defaults)
	applyEnvConfig(&cfg)

	// Load from YAML file if specified
	if overrides != nil && overrides.ConfigFile != "" {
		yamlCfg, err := loadFromFile(overrides.ConfigFile)
		if err != nil {
			return Config{}, fmt.Errorf("load YAML config: %w", err)
		}
		applyYAMLConfig(&cfg, yamlCfg)
	}

	// Apply CLI overrides (highest precedence)
	if overrides != nil {
		applyCLIOverrides(&cfg, overrides)
	}

	// Validate final configuration
	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// defaultConfig returns a Config with default values.
func defaultConfig() Config {
	return Config{
		ConfFile:    samsconfig.DefaultPath(),
		LogLevel:    defaultLogLevel,
		LogEncoding: defaultLogEncoding,
	}
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &yamlCfg, nil
}

// applyYAMLConfig applies YAML configuration to the Config struct.
func applyYAMLConfig(cfg *Config, yamlCfg *yamlConfig) {
	if yamlCfg.ConfFile != "" {
		cfg.ConfFile = yamlCfg.ConfFile
	}
	if yamlCfg.Log.Level != "" {
		cfg.LogLevel = strings.ToLower(yamlCfg.Log.Level)
	}
	if yamlCfg.Log.Encoding != "" {
		cfg.LogEncoding = strings.ToLower(yamlCfg.Log.Encoding)
	}
}

// applyEnvConfig applies environment variable configuration.
func applyEnvConfig(cfg *Config) {
	if path := strings.TrimSpace(os.Getenv("SAMS_CONF_FILE")); path != "" {
		cfg.ConfFile = path
	}
	if level := strings.TrimSpace(os.Getenv("SAMS_LOG_LEVEL")); level != "" {
		cfg.LogLevel = strings.ToLower(level)
	}
	if encoding := strings.TrimSpace(os.Getenv("SAMS_LOG_ENCODING")); encoding != "" {
		cfg.LogEncoding = strings.ToLower(encoding)
	}
}

// applyCLIOverrides applies command-line flag overrides.
func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) {
	if overrides.ConfFile != nil && *overrides.ConfFile != "" {
		cfg.ConfFile = *overrides.ConfFile
	}
	if overrides.LogLevel != nil && *overrides.LogLevel != "" {
		cfg.LogLevel = strings.ToLower(*overrides.LogLevel)
	}
}

// validateConfig validates the final configuration.
func validateConfig(cfg Config) error {
	if cfg.ConfFile == "" {
		return fmt.Errorf("configuration file path cannot be empty")
	}
	if !slices.Contains(validLogLevels, cfg.LogLevel) {
		return fmt.Errorf("log level must be one of %s, got %q", strings.Join(validLogLevels, ", "), cfg.LogLevel)
	}
	if !slices.Contains(validLogEncodings, cfg.LogEncoding) {
		return fmt.Errorf("log encoding must be one of %s, got %q", strings.Join(validLogEncodings, ", "), cfg.LogEncoding)
	}
	return nil
}
