//-------------------------------------------------------------------------
//
// pgEdge Pizza Analytics
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package metrics

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/pgEdge/pizza-analytics/internal/datagen"
	"github.com/pgEdge/pizza-analytics/internal/db"
	"github.com/pgEdge/pizza-analytics/internal/engine"
	"github.com/pgEdge/pizza-analytics/internal/testutil"
)

// The SQL battery must agree with the in-memory engine row for row on
// the same dataset. Run against a throwaway database seeded with a
// generated snapshot.
func TestBatteryAgainstPostgres(t *testing.T) {
	baseConnStr := testutil.SkipIfNoPostgres(t)
	connStr := testutil.CreateTestDB(t, baseConnStr)

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	pool, err := db.Connect(ctx, connStr)
	if err != nil {
		t.Fatalf("Failed to connect: %v", err)
	}
	defer pool.Close()

	if err := db.CreateSchema(ctx, pool); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	snap := datagen.NewGenerator(42).Snapshot(300)
	if err := db.LoadSnapshot(ctx, pool, snap); err != nil {
		t.Fatalf("Failed to load snapshot: %v", err)
	}

	e := engine.New(snap)
	opts := Options{TopN: 5, RankN: 3}

	for _, m := range All() {
		t.Run(m.Name, func(t *testing.T) {
			want, err := m.Eval(e, opts)
			if err != nil {
				t.Fatalf("Eval() error: %v", err)
			}
			got, err := m.Query(ctx, pool, opts)
			if err != nil {
				t.Fatalf("Query() error: %v", err)
			}

			if !reflect.DeepEqual(got.Columns, want.Columns) {
				t.Fatalf("columns differ: sql %v, engine %v", got.Columns, want.Columns)
			}
			if len(got.Rows) != len(want.Rows) {
				t.Fatalf("row counts differ: sql %d, engine %d", len(got.Rows), len(want.Rows))
			}
			for i := range want.Rows {
				if !reflect.DeepEqual(got.Rows[i], want.Rows[i]) {
					t.Errorf("row %d differs: sql %v, engine %v", i, got.Rows[i], want.Rows[i])
				}
			}
		})
	}
}

func TestBatteryDenseHoursAgainstPostgres(t *testing.T) {
	baseConnStr := testutil.SkipIfNoPostgres(t)
	connStr := testutil.CreateTestDB(t, baseConnStr)

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	pool, err := db.Connect(ctx, connStr)
	if err != nil {
		t.Fatalf("Failed to connect: %v", err)
	}
	defer pool.Close()

	if err := db.CreateSchema(ctx, pool); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	snap := datagen.NewGenerator(7).Snapshot(50)
	if err := db.LoadSnapshot(ctx, pool, snap); err != nil {
		t.Fatalf("Failed to load snapshot: %v", err)
	}

	e := engine.New(snap)
	opts := Options{DenseHours: true}

	m, err := Get("orders_by_hour")
	if err != nil {
		t.Fatal(err)
	}
	want, err := m.Eval(e, opts)
	if err != nil {
		t.Fatalf("Eval() error: %v", err)
	}
	got, err := m.Query(ctx, pool, opts)
	if err != nil {
		t.Fatalf("Query() error: %v", err)
	}
	if len(got.Rows) != 24 || len(want.Rows) != 24 {
		t.Fatalf("dense hours row counts: sql %d, engine %d, want 24", len(got.Rows), len(want.Rows))
	}
	if !reflect.DeepEqual(got.Rows, want.Rows) {
		t.Errorf("dense hour tables differ:\nsql:    %v\nengine: %v", got.Rows, want.Rows)
	}
}
