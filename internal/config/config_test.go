//-------------------------------------------------------------------------
//
// pgEdge Pizza Analytics
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.Report.Source != "csv" || cfg.Report.Format != "table" {
		t.Errorf("Report defaults = %+v", cfg.Report)
	}
	if cfg.Report.TopN != 5 || cfg.Report.RankN != 3 {
		t.Errorf("TopN/RankN = %d/%d, want 5/3", cfg.Report.TopN, cfg.Report.RankN)
	}
	if cfg.Seed.Orders != 1000 || cfg.Seed.Out != "dataset" {
		t.Errorf("Seed defaults = %+v", cfg.Seed)
	}
}

func TestLoadMissingFile(t *testing.T) {
	// No config file anywhere should fall back to defaults.
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Report.TopN != 5 {
		t.Errorf("TopN = %d, want default 5", cfg.Report.TopN)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pizza-analytics.yaml")
	content := `dataset: /data/pizzas
log_level: debug
report:
  source: postgres
  top_n: 10
connection: postgres://localhost/pizzas
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Dataset != "/data/pizzas" {
		t.Errorf("Dataset = %q", cfg.Dataset)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.Report.Source != "postgres" || cfg.Report.TopN != 10 {
		t.Errorf("Report = %+v", cfg.Report)
	}
	// Values absent from the file keep their defaults.
	if cfg.Report.RankN != 3 {
		t.Errorf("RankN = %d, want default 3", cfg.Report.RankN)
	}
}

func TestValidateReport(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid csv source", func(c *Config) {
			c.Dataset = "/data"
		}, false},
		{"csv source without dataset", func(c *Config) {}, true},
		{"valid postgres source", func(c *Config) {
			c.Report.Source = "postgres"
			c.Connection = "postgres://localhost/pizzas"
		}, false},
		{"postgres source without connection", func(c *Config) {
			c.Report.Source = "postgres"
		}, true},
		{"unknown source", func(c *Config) {
			c.Report.Source = "sqlite"
			c.Dataset = "/data"
		}, true},
		{"unknown format", func(c *Config) {
			c.Dataset = "/data"
			c.Report.Format = "xml"
		}, true},
		{"markdown format", func(c *Config) {
			c.Dataset = "/data"
			c.Report.Format = "markdown"
		}, false},
		{"zero top_n", func(c *Config) {
			c.Dataset = "/data"
			c.Report.TopN = 0
		}, true},
		{"zero rank_n", func(c *Config) {
			c.Dataset = "/data"
			c.Report.RankN = 0
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.ValidateReport()
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateReport() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateInit(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.ValidateInit(); err == nil {
		t.Error("ValidateInit() succeeded without connection or dataset")
	}

	cfg.Connection = "postgres://localhost/pizzas"
	cfg.Dataset = "/data"
	if err := cfg.ValidateInit(); err != nil {
		t.Errorf("ValidateInit() = %v, want nil", err)
	}
}

func TestValidateSeed(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.ValidateSeed(); err != nil {
		t.Errorf("ValidateSeed() on defaults = %v, want nil", err)
	}

	cfg.Seed.Orders = 0
	if err := cfg.ValidateSeed(); err == nil {
		t.Error("ValidateSeed() succeeded with zero orders")
	}

	cfg = DefaultConfig()
	cfg.Seed.Out = ""
	if err := cfg.ValidateSeed(); err == nil {
		t.Error("ValidateSeed() succeeded with empty output directory")
	}
}
