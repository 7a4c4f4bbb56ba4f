// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"voicedash/core/types"
	"voicedash/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Server contains API server configuration
	Server ServerConfig `json:"server"`

	// Filters contains dashboard filter defaults
	Filters FilterConfig `json:"filters"`

	// Pricing contains pricing configuration
	Pricing PricingConfig `json:"pricing"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// ServerConfig contains API server settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr"`

	// DataPath is the path to the aggregate snapshot file loaded at startup
	DataPath string `json:"data_path,omitempty"`
}

// FilterConfig contains the defaults applied when normalizing filter state
type FilterConfig struct {
	// RangeDays is the width of the default date range
	RangeDays int `json:"range_days"`

	// PageSize is the default page size
	PageSize int `json:"page_size"`

	// MaxPageSize is the upper clamp for page size
	MaxPageSize int `json:"max_page_size"`

	// SortColumn is the default sort column
	SortColumn string `json:"sort_column"`
}

// PricingConfig contains pricing-related settings
type PricingConfig struct {
	// DefaultCurrency is the default currency
	DefaultCurrency types.Currency `json:"default_currency"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Server: ServerConfig{
			Addr: ":8080",
		},
		Filters: FilterConfig{
			RangeDays:   30,
			PageSize:    25,
			MaxPageSize: 100,
			SortColumn:  "date",
		},
		Pricing: PricingConfig{
			DefaultCurrency: types.CurrencyEUR,
		},
		Logging: logging.DefaultConfig(),
	}
}

// FilterDefaults returns the filter defaults in the shape the normalizer takes
func (c *Config) FilterDefaults() types.FilterDefaults {
	return types.FilterDefaults{
		RangeDays:   c.Filters.RangeDays,
		PageSize:    c.Filters.PageSize,
		MaxPageSize: c.Filters.MaxPageSize,
		SortColumn:  c.Filters.SortColumn,
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
