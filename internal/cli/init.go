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
	"github.com/pgEdge/pizza-analytics/internal/logging"
)

var initDropExisting bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the sales schema in PostgreSQL and load the dataset",
	Long: `Create the four sales tables in a PostgreSQL database and load the
dataset CSV files into them. The dataset is validated before anything
is written.

Example:
  pizza-analytics init --dataset ./dataset --connection "postgres://..."`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initDropExisting, "drop-existing", false,
		"drop existing sales tables before initialization")
}

func runInit(cmd *cobra.Command, args []string) error {
	if initDropExisting {
		cfg.Init.DropExisting = true
	}

	if err := cfg.ValidateInit(); err != nil {
		return err
	}

	logging.Info().Str("dataset", cfg.Dataset).Msg("Loading dataset")
	snap, err := dataset.LoadDir(cfg.Dataset)
	if err != nil {
		return fmt.Errorf("loading dataset: %w", err)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.Connection)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	exists, err := db.SchemaExists(ctx, pool)
	if err != nil {
		return err
	}
	if exists {
		if !cfg.Init.DropExisting {
			return fmt.Errorf("sales schema already exists; use --drop-existing to reinitialize")
		}
		logging.Warn().Msg("Dropping existing schema")
		if err := db.DropSchema(ctx, pool); err != nil {
			return fmt.Errorf("failed to drop schema: %w", err)
		}
	}

	logging.Info().Msg("Creating schema")
	if err := db.CreateSchema(ctx, pool); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	if err := db.LoadSnapshot(ctx, pool, snap); err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	logging.Info().Msg("Initialization complete")
	return nil
}
