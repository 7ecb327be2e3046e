//-------------------------------------------------------------------------
//
// pgEdge Pizza Analytics
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package cli implements the command-line interface for pizza-analytics.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pgEdge/pizza-analytics/internal/config"
	"github.com/pgEdge/pizza-analytics/internal/logging"
	"github.com/pgEdge/pizza-analytics/internal/metrics"
	"github.com/pgEdge/pizza-analytics/pkg/version"
)

var (
	// Global flags
	cfgFile    string
	datasetDir string
	connection string
	logLevel   string

	// Global config
	cfg *config.Config

	rootCmd = &cobra.Command{
		Use:   "pizza-analytics",
		Short: "Descriptive sales analytics over a pizza sales dataset",
		Long: `pizza-analytics computes a fixed battery of descriptive sales metrics
(totals, top-N rankings, distributions, shares, running totals) over a
four-table pizza sales dataset: orders, order line items, pizza
variants, and pizza types.

Metrics can be computed from CSV files with the built-in engine, or
from a PostgreSQL database loaded with the same dataset; both paths
produce identical result tables.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ./pizza-analytics.yaml)")
	rootCmd.PersistentFlags().StringVar(&datasetDir, "dataset", "",
		"directory containing the dataset CSV files")
	rootCmd.PersistentFlags().StringVar(&connection, "connection", "",
		"PostgreSQL connection string")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level (debug, info, warn, error)")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(metricsCmd)
}

func initConfig() error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return err
	}

	// Override with CLI flags
	if datasetDir != "" {
		cfg.Dataset = datasetDir
	}
	if connection != "" {
		cfg.Connection = connection
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	// Reinitialize logger with config
	logging.Init(logging.Config{
		Level:  cfg.LogLevel,
		Pretty: true,
	})

	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(version.Info())
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "List available metrics",
	Long: `List the metric battery. Each metric can be computed from the CSV
dataset (in-memory engine) or from a loaded PostgreSQL database.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println("Available metrics:")
		cmd.Println()
		for _, m := range metrics.All() {
			cmd.Println(fmt.Sprintf("  %-30s %s", m.Name, m.Description))
		}
		cmd.Println()
		cmd.Println("Use 'pizza-analytics report --metric <name>' for a single metric.")
	},
}
