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

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema SQL for the four sales relations. The CHECK and FOREIGN KEY
// constraints mirror the invariants the in-memory engine enforces.
const createSchemaSQL = `
-- Product types (one row per distinct menu item)
CREATE TABLE IF NOT EXISTS pizza_types (
    pizza_type_id VARCHAR(50) PRIMARY KEY,
    name          VARCHAR(100) NOT NULL,
    category      VARCHAR(50) NOT NULL,
    ingredients   TEXT NOT NULL
);

-- Sellable variants (size/price per product type)
CREATE TABLE IF NOT EXISTS pizzas (
    pizza_id      VARCHAR(50) PRIMARY KEY,
    pizza_type_id VARCHAR(50) NOT NULL REFERENCES pizza_types(pizza_type_id),
    size          VARCHAR(5) NOT NULL,
    price         NUMERIC(7,2) NOT NULL CHECK (price >= 0)
);

-- Placed orders
CREATE TABLE IF NOT EXISTS orders (
    order_id   INTEGER PRIMARY KEY,
    order_date DATE NOT NULL,
    order_time TIME NOT NULL
);

-- Line items
CREATE TABLE IF NOT EXISTS order_details (
    order_details_id INTEGER PRIMARY KEY,
    order_id         INTEGER NOT NULL REFERENCES orders(order_id),
    pizza_id         VARCHAR(50) NOT NULL REFERENCES pizzas(pizza_id),
    quantity         INTEGER NOT NULL CHECK (quantity > 0)
);

CREATE INDEX IF NOT EXISTS idx_order_details_order_id ON order_details(order_id);
CREATE INDEX IF NOT EXISTS idx_order_details_pizza_id ON order_details(pizza_id);
CREATE INDEX IF NOT EXISTS idx_orders_order_date ON orders(order_date);
`

const dropSchemaSQL = `
DROP TABLE IF EXISTS order_details CASCADE;
DROP TABLE IF EXISTS orders CASCADE;
DROP TABLE IF EXISTS pizzas CASCADE;
DROP TABLE IF EXISTS pizza_types CASCADE;
`

// CreateSchema creates the sales schema.
func CreateSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, createSchemaSQL)
	return err
}

// DropSchema drops the sales schema.
func DropSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, dropSchemaSQL)
	return err
}

// SchemaExists reports whether the sales schema is already present.
func SchemaExists(ctx context.Context, pool *pgxpool.Pool) (bool, error) {
	var exists bool
	err := pool.QueryRow(ctx, `
        SELECT EXISTS (
            SELECT 1 FROM information_schema.tables
            WHERE table_name = 'pizza_types'
        )
    `).Scan(&exists)
	return exists, err
}
