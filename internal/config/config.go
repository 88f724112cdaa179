// Package config handles configuration loading for the Alpha Vantage
// tooling. It supports YAML config files with environment variable
// overrides, plus .env files for parity with the upstream client ecosystem.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	API     APIConfig     `mapstructure:"api"     yaml:"api"`
	Keygen  KeygenConfig  `mapstructure:"keygen"  yaml:"keygen"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// APIConfig holds Alpha Vantage API settings.
type APIConfig struct {
	Key        string `mapstructure:"key"         yaml:"key"`
	BaseURL    string `mapstructure:"base_url"    yaml:"base_url"`
	TimeoutSec int    `mapstructure:"timeout_sec" yaml:"timeout_sec"`
}

// KeygenConfig holds the key generator server settings.
type KeygenConfig struct {
	BindAddr string `mapstructure:"bind_addr" yaml:"bind_addr"`
	SiteURL  string `mapstructure:"site_url"  yaml:"site_url"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `mapstructure:"format" yaml:"format"` // "text" or "json"
}

// Load reads the configuration from file and environment variables.
// Config file search order:
//  1. ./config/config.yaml (project root)
//  2. ~/.alphavantage/config.yaml (home directory)
//  3. /etc/alphavantage/config.yaml (system)
//
// A .env file in the working directory is loaded first, then environment
// variables override config file values. Format: ALPHAVANTAGE_<SECTION>_<KEY>,
// e.g. ALPHAVANTAGE_API_KEY. The legacy ALPHA_VANTAGE_API_KEY variable is
// honored as a final fallback for the API key.
func Load() (*Config, error) {
	// Best effort; a missing .env is not an error.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(filepath.Join(homeDir(), ".alphavantage"))
	v.AddConfigPath("/etc/alphavantage")

	v.SetEnvPrefix("ALPHAVANTAGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found — that's fine, use defaults + env vars.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	overrideFromEnv(&cfg)
	return &cfg, nil
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetEnvPrefix("ALPHAVANTAGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	overrideFromEnv(&cfg)
	return &cfg, nil
}

// setDefaults sets sensible defaults for all config values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", "https://www.alphavantage.co/query")
	v.SetDefault("api.timeout_sec", 30)

	v.SetDefault("keygen.bind_addr", ":7785")
	v.SetDefault("keygen.site_url", "https://www.alphavantage.co")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// overrideFromEnv explicitly reads sensitive keys from environment
// variables.
func overrideFromEnv(cfg *Config) {
	if key := os.Getenv("ALPHAVANTAGE_API_KEY"); key != "" {
		cfg.API.Key = key
	}
	if cfg.API.Key == "" {
		cfg.API.Key = os.Getenv("ALPHA_VANTAGE_API_KEY")
	}
}

// homeDir returns the user's home directory.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
