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
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pgEdge/pizza-analytics/internal/dataset"
)

var hundred = decimal.NewFromInt(100)

// TotalRevenue returns the sum of price x quantity over all line
// items. Zero line items is an EmptyInputError, not a zero total; the
// caller decides what an empty dataset means for its report.
func (e *Engine) TotalRevenue() (decimal.Decimal, error) {
	items, err := e.joinDetails(opTotalRevenue)
	if err != nil {
		return decimal.Zero, err
	}
	if len(items) == 0 {
		return decimal.Zero, &EmptyInputError{Operation: opTotalRevenue, Relation: "order_details"}
	}

	total := decimal.Zero
	for _, li := range items {
		total = total.Add(li.revenue())
	}
	return total, nil
}

// TopByRevenue returns the n pizza types with the highest total
// revenue, descending. Equal revenues are ordered by name ascending.
func (e *Engine) TopByRevenue(n int) ([]RevenueRow, error) {
	items, err := e.joinDetails(opTopByRevenue)
	if err != nil {
		return nil, err
	}

	totals := accumulate(items,
		func(li lineItem) string { return li.ptype.Name },
		func(sum decimal.Decimal, li lineItem) decimal.Decimal { return sum.Add(li.revenue()) })

	rows := sorted(totals,
		func(name string, rev decimal.Decimal) RevenueRow { return RevenueRow{Name: name, Revenue: rev} },
		func(a, b RevenueRow) bool {
			if !a.Revenue.Equal(b.Revenue) {
				return a.Revenue.GreaterThan(b.Revenue)
			}
			return a.Name < b.Name
		})

	return limit(rows, n), nil
}

// CategoryRevenuePercentage returns each category's revenue and its
// share of total revenue, descending by revenue. Percentages keep full
// division precision here; rounding to two places happens only at
// presentation, so shares may not sum to exactly 100 after rounding.
func (e *Engine) CategoryRevenuePercentage() ([]CategoryShareRow, error) {
	total, err := e.TotalRevenue()
	if err != nil {
		return nil, err
	}

	items, err := e.joinDetails(opCategoryRevenuePct)
	if err != nil {
		return nil, err
	}

	totals := accumulate(items,
		func(li lineItem) string { return li.ptype.Category },
		func(sum decimal.Decimal, li lineItem) decimal.Decimal { return sum.Add(li.revenue()) })

	return sorted(totals,
		func(cat string, rev decimal.Decimal) CategoryShareRow {
			return CategoryShareRow{
				Category:   cat,
				Revenue:    rev,
				Percentage: rev.Mul(hundred).Div(total),
			}
		},
		func(a, b CategoryShareRow) bool {
			if !a.Revenue.Equal(b.Revenue) {
				return a.Revenue.GreaterThan(b.Revenue)
			}
			return a.Category < b.Category
		}), nil
}

// CumulativeRevenueByDate returns daily revenue per distinct order
// date plus a running total, ordered by date ascending. This is the
// only operation with order-dependent semantics: the running total at
// a date is the sum of daily revenue for all dates up to it.
func (e *Engine) CumulativeRevenueByDate() ([]DailyRevenueRow, error) {
	items, err := e.joinDetails(opCumulativeRevenueByDate)
	if err != nil {
		return nil, err
	}

	daily := accumulate(items,
		func(li lineItem) string { return li.order.Date.Format(dataset.DateLayout) },
		func(sum decimal.Decimal, li lineItem) decimal.Decimal { return sum.Add(li.revenue()) })

	dates := make([]string, 0, len(daily))
	for d := range daily {
		dates = append(dates, d)
	}
	// ISO dates sort chronologically as strings.
	sort.Strings(dates)

	rows := make([]DailyRevenueRow, 0, len(dates))
	running := decimal.Zero
	for _, d := range dates {
		running = running.Add(daily[d])
		date, err := time.Parse(dataset.DateLayout, d)
		if err != nil {
			return nil, err
		}
		rows = append(rows, DailyRevenueRow{Date: date, Revenue: daily[d], Cumulative: running})
	}
	return rows, nil
}

// TopByRevenuePerCategory ranks pizza types by revenue within each
// category and returns the rows with rank <= n, ordered by (category,
// rank). Ranks are row-number style: unique ordinals even under equal
// revenue, with equal revenues ordered by name ascending.
func (e *Engine) TopByRevenuePerCategory(n int) ([]RankedRevenueRow, error) {
	items, err := e.joinDetails(opTopByRevenuePerCategory)
	if err != nil {
		return nil, err
	}

	type key struct{ category, name string }
	totals := accumulate(items,
		func(li lineItem) key { return key{li.ptype.Category, li.ptype.Name} },
		func(sum decimal.Decimal, li lineItem) decimal.Decimal { return sum.Add(li.revenue()) })

	rows := make([]RankedRevenueRow, 0, len(totals))
	for k, rev := range totals {
		rows = append(rows, RankedRevenueRow{Category: k.category, Name: k.name, Revenue: rev})
	}

	return rankWithin(rows,
		func(r RankedRevenueRow) string { return r.Category },
		func(a, b RankedRevenueRow) bool {
			if !a.Revenue.Equal(b.Revenue) {
				return a.Revenue.GreaterThan(b.Revenue)
			}
			return a.Name < b.Name
		},
		n,
		func(r RankedRevenueRow, rank int) RankedRevenueRow {
			r.Rank = rank
			return r
		}), nil
}
