//-------------------------------------------------------------------------
//
// pgEdge Pizza Analytics
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package engine

import (
	"time"

	"github.com/shopspring/decimal"
)

// PricedPizza is the result of HighestPricedPizza.
type PricedPizza struct {
	Name    string
	PizzaID string
	Price   decimal.Decimal
}

// SizeTotal is one size with its total quantity sold.
type SizeTotal struct {
	Size     string
	Quantity int
}

// QuantityRow is one pizza type with its total quantity sold.
type QuantityRow struct {
	Name     string
	Quantity int
}

// CategoryQuantityRow is one category with its total quantity sold.
type CategoryQuantityRow struct {
	Category string
	Quantity int
}

// HourRow is one hour of day with its distinct order count.
type HourRow struct {
	Hour   int
	Orders int
}

// CategoryCountRow is one category with its distinct pizza type count.
type CategoryCountRow struct {
	Category string
	Count    int
}

// RevenueRow is one pizza type with its total revenue.
type RevenueRow struct {
	Name    string
	Revenue decimal.Decimal
}

// CategoryShareRow is one category with its revenue and its share of
// total revenue. Percentage carries full division precision; rounding
// happens at presentation.
type CategoryShareRow struct {
	Category   string
	Revenue    decimal.Decimal
	Percentage decimal.Decimal
}

// DailyRevenueRow is one order date with its daily revenue and the
// running total over all dates up to and including it.
type DailyRevenueRow struct {
	Date       time.Time
	Revenue    decimal.Decimal
	Cumulative decimal.Decimal
}

// RankedRevenueRow is one pizza type ranked by revenue within its
// category. Rank is a 1-based ordinal (row-number semantics: ranks are
// unique within a category even under equal revenue).
type RankedRevenueRow struct {
	Category string
	Name     string
	Revenue  decimal.Decimal
	Rank     int
}
