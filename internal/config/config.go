//-------------------------------------------------------------------------
//
// pgEdge Retail Reports
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package config handles configuration management for retail-reports.
// Configuration is loaded from config files and CLI flags (no environment
// variables). CLI flags take precedence over config file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for retail-reports.
type Config struct {
	// LogLevel controls logging verbosity (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`

	// SeedFile is a YAML dataset file; empty means the built-in sample.
	SeedFile string `mapstructure:"seed_file"`

	// Report holds configuration for report execution.
	Report ReportConfig `mapstructure:"report"`

	// Datagen holds configuration for random dataset generation.
	Datagen DatagenConfig `mapstructure:"datagen"`

	// Export holds configuration for the export subcommand.
	Export ExportConfig `mapstructure:"export"`
}

// ReportConfig holds configuration for report execution.
type ReportConfig struct {
	// StockThreshold is the low-stock alert level.
	StockThreshold int `mapstructure:"stock_threshold"`

	// AsOf pins "today" for date-relative reports (YYYY-MM-DD).
	// Empty means the wall clock.
	AsOf string `mapstructure:"as_of"`
}

// DatagenConfig holds configuration for random dataset generation.
type DatagenConfig struct {
	// Seed makes generation reproducible; 0 means a random seed.
	Seed uint64 `mapstructure:"seed"`

	// Locations is the number of locations to generate.
	Locations int `mapstructure:"locations"`

	// Customers is the number of customers to generate.
	Customers int `mapstructure:"customers"`

	// Products is the number of products to generate.
	Products int `mapstructure:"products"`

	// Sales is the number of sales to generate.
	Sales int `mapstructure:"sales"`
}

// ExportConfig holds configuration for the export subcommand.
type ExportConfig struct {
	// Connection is the PostgreSQL connection string.
	Connection string `mapstructure:"connection"`

	// DropExisting drops the existing schema before exporting.
	DropExisting bool `mapstructure:"drop_existing"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Report: ReportConfig{
			StockThreshold: 20,
		},
		Datagen: DatagenConfig{
			Locations: 10,
			Customers: 50,
			Products:  40,
			Sales:     200,
		},
	}
}

// Load reads configuration from config files.
// Config file locations (in order of precedence):
// 1. Path specified by configFile parameter
// 2. ./retail-reports.yaml
// 3. ~/.config/retail-reports/config.yaml
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("retail-reports")
	v.SetConfigType("yaml")

	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "retail-reports"))
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := DefaultConfig()

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// Validate checks configuration shared by all commands.
func (c *Config) Validate() error {
	if c.Report.StockThreshold < 1 {
		return fmt.Errorf("stock_threshold must be at least 1")
	}
	if c.Report.AsOf != "" {
		if _, err := time.Parse("2006-01-02", c.Report.AsOf); err != nil {
			return fmt.Errorf("as_of must be YYYY-MM-DD: %w", err)
		}
	}
	return nil
}

// ValidateDatagen checks configuration for random dataset generation.
func (c *Config) ValidateDatagen() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Datagen.Customers < 1 {
		return fmt.Errorf("datagen customers must be at least 1")
	}
	if c.Datagen.Products < 1 {
		return fmt.Errorf("datagen products must be at least 1")
	}
	if c.Datagen.Sales < 0 {
		return fmt.Errorf("datagen sales must be non-negative")
	}
	return nil
}

// ValidateExport checks configuration for the export command.
func (c *Config) ValidateExport() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Export.Connection == "" {
		return fmt.Errorf("connection string is required for export")
	}
	return nil
}

// AsOfTime returns the pinned report date, or zero when unset.
func (c *Config) AsOfTime() time.Time {
	if c.Report.AsOf == "" {
		return time.Time{}
	}
	t, _ := time.Parse("2006-01-02", c.Report.AsOf)
	return t
}
