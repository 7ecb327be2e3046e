//-------------------------------------------------------------------------
//
// pgEdge Pizza Analytics
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package config handles configuration management for pizza-analytics.
// Configuration is loaded from config files and CLI flags (no environment
// variables). CLI flags take precedence over config file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all configuration for pizza-analytics.
type Config struct {
	// Dataset is the directory containing the four dataset CSV files.
	Dataset string `mapstructure:"dataset"`

	// Connection is the PostgreSQL connection string.
	Connection string `mapstructure:"connection"`

	// LogLevel controls logging verbosity (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`

	// Report holds configuration for the report subcommand.
	Report ReportConfig `mapstructure:"report"`

	// Init holds configuration for the init subcommand.
	Init InitConfig `mapstructure:"init"`

	// Seed holds configuration for the seed subcommand.
	Seed SeedConfig `mapstructure:"seed"`
}

// ReportConfig holds configuration for metric reporting.
type ReportConfig struct {
	// Source selects where metrics are computed: "csv" (in-memory
	// engine over the dataset directory) or "postgres" (SQL battery).
	Source string `mapstructure:"source"`

	// Format is the output format: table, csv, json, markdown.
	Format string `mapstructure:"format"`

	// TopN is the row limit for the top-N metrics.
	TopN int `mapstructure:"top_n"`

	// RankN is the per-category rank cutoff for the partitioned
	// revenue ranking.
	RankN int `mapstructure:"rank_n"`

	// DenseHours reports all 24 hours in the orders-by-hour metric,
	// including hours with zero orders.
	DenseHours bool `mapstructure:"dense_hours"`
}

// InitConfig holds configuration for database initialization.
type InitConfig struct {
	// DropExisting drops existing tables before initialization.
	DropExisting bool `mapstructure:"drop_existing"`
}

// SeedConfig holds configuration for dataset generation.
type SeedConfig struct {
	// Orders is the number of orders to generate.
	Orders int `mapstructure:"orders"`

	// Seed is the RNG seed; 0 means a random seed.
	Seed uint64 `mapstructure:"seed"`

	// Out is the directory the generated CSV files are written to.
	Out string `mapstructure:"out"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Report: ReportConfig{
			Source: "csv",
			Format: "table",
			TopN:   5,
			RankN:  3,
		},
		Seed: SeedConfig{
			Orders: 1000,
			Out:    "dataset",
		},
	}
}

// Load reads configuration from config files.
// Config file locations (in order of precedence):
// 1. Path specified by configFile parameter
// 2. ./pizza-analytics.yaml
// 3. ~/.config/pizza-analytics/config.yaml
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("pizza-analytics")
	v.SetConfigType("yaml")

	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "pizza-analytics"))
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

// ValidateReport checks configuration required for the report command.
func (c *Config) ValidateReport() error {
	switch c.Report.Source {
	case "csv":
		if c.Dataset == "" {
			return fmt.Errorf("dataset directory is required for source 'csv'")
		}
	case "postgres":
		if c.Connection == "" {
			return fmt.Errorf("connection string is required for source 'postgres'")
		}
	default:
		return fmt.Errorf("source must be 'csv' or 'postgres'")
	}

	switch c.Report.Format {
	case "table", "csv", "json", "markdown", "md":
	default:
		return fmt.Errorf("format must be one of: table, csv, json, markdown")
	}

	if c.Report.TopN < 1 {
		return fmt.Errorf("top_n must be at least 1")
	}
	if c.Report.RankN < 1 {
		return fmt.Errorf("rank_n must be at least 1")
	}
	return nil
}

// ValidateInit checks configuration required for the init command.
func (c *Config) ValidateInit() error {
	if c.Connection == "" {
		return fmt.Errorf("connection string is required")
	}
	if c.Dataset == "" {
		return fmt.Errorf("dataset directory is required")
	}
	return nil
}

// ValidateSeed checks configuration required for the seed command.
func (c *Config) ValidateSeed() error {
	if c.Seed.Orders < 1 {
		return fmt.Errorf("orders must be at least 1")
	}
	if c.Seed.Out == "" {
		return fmt.Errorf("output directory is required")
	}
	return nil
}
