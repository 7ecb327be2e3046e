//-------------------------------------------------------------------------
//
// pgEdge Pizza Analytics
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pgEdge/pizza-analytics/internal/dataset"
	"github.com/pgEdge/pizza-analytics/internal/db"
	"github.com/pgEdge/pizza-analytics/internal/engine"
	"github.com/pgEdge/pizza-analytics/internal/logging"
	"github.com/pgEdge/pizza-analytics/internal/metrics"
	"github.com/pgEdge/pizza-analytics/internal/report"
)

var (
	reportSource     string
	reportFormat     string
	reportMetric     string
	reportTopN       int
	reportRankN      int
	reportDenseHours bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Compute the metric battery and print the result tables",
	Long: `Compute sales metrics and print one result table per metric. By
default all metrics run; use --metric to select a single one.

Examples:
  pizza-analytics report --dataset ./dataset
  pizza-analytics report --metric top_n_by_revenue --top 10 --format csv
  pizza-analytics report --source postgres --connection "postgres://..."`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportSource, "source", "",
		"metric source: csv (in-memory engine) or postgres (SQL battery)")
	reportCmd.Flags().StringVar(&reportFormat, "format", "",
		"output format: table, csv, json, markdown")
	reportCmd.Flags().StringVar(&reportMetric, "metric", "",
		"compute a single metric by name (see 'metrics')")
	reportCmd.Flags().IntVar(&reportTopN, "top", 0,
		"row limit for the top-N metrics (default: 5)")
	reportCmd.Flags().IntVar(&reportRankN, "rank", 0,
		"per-category rank cutoff (default: 3)")
	reportCmd.Flags().BoolVar(&reportDenseHours, "dense-hours", false,
		"include hours with zero orders in orders_by_hour")
}

func runReport(cmd *cobra.Command, args []string) error {
	// Override config with CLI flags
	if reportSource != "" {
		cfg.Report.Source = reportSource
	}
	if reportFormat != "" {
		cfg.Report.Format = reportFormat
	}
	if reportTopN > 0 {
		cfg.Report.TopN = reportTopN
	}
	if reportRankN > 0 {
		cfg.Report.RankN = reportRankN
	}
	if reportDenseHours {
		cfg.Report.DenseHours = true
	}

	if err := cfg.ValidateReport(); err != nil {
		return err
	}

	battery := metrics.All()
	if reportMetric != "" {
		m, err := metrics.Get(reportMetric)
		if err != nil {
			return err
		}
		battery = []metrics.Metric{m}
	}

	opts := metrics.Options{
		TopN:       cfg.Report.TopN,
		RankN:      cfg.Report.RankN,
		DenseHours: cfg.Report.DenseHours,
	}

	switch cfg.Report.Source {
	case "csv":
		return reportFromCSV(cmd, battery, opts)
	default:
		return reportFromPostgres(cmd, battery, opts)
	}
}

func reportFromCSV(cmd *cobra.Command, battery []metrics.Metric, opts metrics.Options) error {
	logging.Info().Str("dataset", cfg.Dataset).Msg("Loading dataset")

	snap, err := dataset.LoadDir(cfg.Dataset)
	if err != nil {
		return fmt.Errorf("loading dataset: %w", err)
	}

	logging.Debug().
		Int("pizza_types", len(snap.PizzaTypes)).
		Int("pizzas", len(snap.Pizzas)).
		Int("orders", len(snap.Orders)).
		Int("order_details", len(snap.Details)).
		Msg("Dataset loaded")

	eng := engine.New(snap)
	for _, m := range battery {
		t, err := m.Eval(eng, opts)
		if err != nil {
			return fmt.Errorf("computing %s: %w", m.Name, err)
		}
		printTable(cmd, m.Name, t)
	}
	return nil
}

func reportFromPostgres(cmd *cobra.Command, battery []metrics.Metric, opts metrics.Options) error {
	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.Connection)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	ok, err := db.SchemaExists(ctx, pool)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("sales schema not found; run 'pizza-analytics init' first")
	}

	for _, m := range battery {
		t, err := m.Query(ctx, pool, opts)
		if err != nil {
			return fmt.Errorf("computing %s: %w", m.Name, err)
		}
		printTable(cmd, m.Name, t)
	}
	return nil
}

func printTable(cmd *cobra.Command, name string, t report.Table) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "-- %s\n", name)
	if err := report.Render(out, t, cfg.Report.Format); err != nil {
		logging.Error().Err(err).Str("metric", name).Msg("Failed to render table")
	}
	fmt.Fprintln(out)
}
