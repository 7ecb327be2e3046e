//-------------------------------------------------------------------------
//
// pgEdge Pizza Analytics
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pgEdge/pizza-analytics/internal/dataset"
	"github.com/pgEdge/pizza-analytics/internal/logging"
)

// insertBatchSize is the number of VALUES tuples per INSERT statement.
const insertBatchSize = 1000

// LoadSnapshot inserts a validated snapshot into the sales schema.
// Tables are loaded in dependency order so the foreign keys hold at
// every point.
func LoadSnapshot(ctx context.Context, pool *pgxpool.Pool, snap *dataset.Snapshot) error {
	logging.Info().
		Int("pizza_types", len(snap.PizzaTypes)).
		Int("pizzas", len(snap.Pizzas)).
		Int("orders", len(snap.Orders)).
		Int("order_details", len(snap.Details)).
		Msg("Loading snapshot")

	tuples := make([]string, 0, insertBatchSize)

	for _, pt := range snap.PizzaTypes {
		tuples = append(tuples, fmt.Sprintf("('%s', '%s', '%s', '%s')",
			escapeSingleQuote(pt.ID),
			escapeSingleQuote(pt.Name),
			escapeSingleQuote(pt.Category),
			escapeSingleQuote(pt.Ingredients),
		))
		if len(tuples) >= insertBatchSize {
			if err := insertBatch(ctx, pool, "pizza_types",
				"(pizza_type_id, name, category, ingredients)", tuples); err != nil {
				return err
			}
			tuples = tuples[:0]
		}
	}
	if err := flushBatch(ctx, pool, "pizza_types",
		"(pizza_type_id, name, category, ingredients)", &tuples); err != nil {
		return err
	}

	for _, p := range snap.Pizzas {
		tuples = append(tuples, fmt.Sprintf("('%s', '%s', '%s', %s)",
			escapeSingleQuote(p.ID),
			escapeSingleQuote(p.TypeID),
			escapeSingleQuote(p.Size),
			p.Price.StringFixed(2),
		))
		if len(tuples) >= insertBatchSize {
			if err := insertBatch(ctx, pool, "pizzas",
				"(pizza_id, pizza_type_id, size, price)", tuples); err != nil {
				return err
			}
			tuples = tuples[:0]
		}
	}
	if err := flushBatch(ctx, pool, "pizzas",
		"(pizza_id, pizza_type_id, size, price)", &tuples); err != nil {
		return err
	}

	for _, o := range snap.Orders {
		tuples = append(tuples, fmt.Sprintf("(%d, '%s', '%s')",
			o.ID,
			o.Date.Format(dataset.DateLayout),
			escapeSingleQuote(o.Time),
		))
		if len(tuples) >= insertBatchSize {
			if err := insertBatch(ctx, pool, "orders",
				"(order_id, order_date, order_time)", tuples); err != nil {
				return err
			}
			tuples = tuples[:0]
		}
	}
	if err := flushBatch(ctx, pool, "orders",
		"(order_id, order_date, order_time)", &tuples); err != nil {
		return err
	}

	for _, d := range snap.Details {
		tuples = append(tuples, fmt.Sprintf("(%d, %d, '%s', %d)",
			d.ID,
			d.OrderID,
			escapeSingleQuote(d.PizzaID),
			d.Quantity,
		))
		if len(tuples) >= insertBatchSize {
			if err := insertBatch(ctx, pool, "order_details",
				"(order_details_id, order_id, pizza_id, quantity)", tuples); err != nil {
				return err
			}
			tuples = tuples[:0]
		}
	}
	if err := flushBatch(ctx, pool, "order_details",
		"(order_details_id, order_id, pizza_id, quantity)", &tuples); err != nil {
		return err
	}

	logging.Info().Msg("Snapshot loaded")
	return nil
}

func insertBatch(ctx context.Context, pool *pgxpool.Pool, table, columns string, tuples []string) error {
	sql := fmt.Sprintf("INSERT INTO %s %s VALUES %s",
		table, columns, strings.Join(tuples, ", "))
	if _, err := pool.Exec(ctx, sql); err != nil {
		return fmt.Errorf("inserting into %s: %w", table, err)
	}
	return nil
}

func flushBatch(ctx context.Context, pool *pgxpool.Pool, table, columns string, tuples *[]string) error {
	if len(*tuples) == 0 {
		return nil
	}
	err := insertBatch(ctx, pool, table, columns, *tuples)
	*tuples = (*tuples)[:0]
	return err
}

func escapeSingleQuote(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
