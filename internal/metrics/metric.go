//-------------------------------------------------------------------------
//
// pgEdge Pizza Analytics
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package metrics defines the metric battery and its registry. Each
// metric can be evaluated two ways: by the in-memory engine, or by the
// equivalent SQL query against a loaded PostgreSQL database. Both
// paths produce the same columns, the same ordering, and the same
// presentation rounding.
package metrics

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/jackc/pgx/v5"

	"github.com/pgEdge/pizza-analytics/internal/engine"
	"github.com/pgEdge/pizza-analytics/internal/report"
)

// DB is the query surface a metric needs. Both *pgxpool.Pool and
// *pgx.Conn satisfy it.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Options carries the caller-tunable knobs of the battery.
type Options struct {
	// TopN limits the flat top-N metrics.
	TopN int
	// RankN is the per-category rank cutoff.
	RankN int
	// DenseHours reports all 24 hours, zero counts included.
	DenseHours bool
}

// Metric is one member of the battery.
type Metric struct {
	// Name is the metric identifier.
	Name string

	// Description describes what the metric reports.
	Description string

	// Columns are the output column names, in order.
	Columns []string

	// Eval computes the metric with the in-memory engine.
	Eval func(e *engine.Engine, opts Options) (report.Table, error)

	// Query computes the metric against PostgreSQL.
	Query func(ctx context.Context, db DB, opts Options) (report.Table, error)
}

var (
	registry = make(map[string]Metric)
	order    []string
	mu       sync.RWMutex
)

// Register adds a metric to the registry. Registration order is
// preserved by All.
func Register(m Metric) {
	mu.Lock()
	defer mu.Unlock()
	if _, dup := registry[m.Name]; !dup {
		order = append(order, m.Name)
	}
	registry[m.Name] = m
}

// Get retrieves a metric by name.
func Get(name string) (Metric, error) {
	mu.RLock()
	defer mu.RUnlock()

	m, ok := registry[name]
	if !ok {
		return Metric{}, fmt.Errorf("unknown metric: %s", name)
	}
	return m, nil
}

// List returns all registered metric names, sorted.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns the battery in registration order.
func All() []Metric {
	mu.RLock()
	defer mu.RUnlock()

	ms := make([]Metric, 0, len(order))
	for _, name := range order {
		ms = append(ms, registry[name])
	}
	return ms
}
