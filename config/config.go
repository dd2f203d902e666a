package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration tree loaded from config.yaml
type Config struct {
	Port      string          `yaml:"port"`
	Coingecko CoingeckoConfig `yaml:"coingecko"`
	Coincap   CoincapConfig   `yaml:"coincap"`
	Gateway   GatewayConfig   `yaml:"gateway"`
	Cache     CacheConfig     `yaml:"cache"`
	API       APIConfig       `yaml:"api"`
	Dashboard DashboardConfig `yaml:"dashboard"`
}

// LoadConfig reads and parses the YAML configuration file.
// The PORT environment variable takes precedence over the configured port.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if port := os.Getenv("PORT"); port != "" {
		config.Port = port
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks cross-field constraints of the loaded configuration
func (c *Config) Validate() error {
	if err := c.Gateway.Validate(); err != nil {
		return fmt.Errorf("gateway configuration validation failed: %w", err)
	}
	if err := c.Cache.Validate(); err != nil {
		return fmt.Errorf("cache configuration validation failed: %w", err)
	}
	return nil
}

// GetPort returns the configured listen port or the default
func (c *Config) GetPort() string {
	if c.Port != "" {
		return c.Port
	}
	return "8080"
}
