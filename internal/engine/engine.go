//-------------------------------------------------------------------------
//
// pgEdge Pizza Analytics
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package engine computes the sales metric battery over an in-memory
// dataset snapshot. Every operation is a pure, deterministic, one-shot
// computation; the snapshot is never mutated. Ordering and tie-break
// policies are part of each operation's contract and are documented on
// the method.
package engine

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/pgEdge/pizza-analytics/internal/dataset"
)

// Operation names used in error reporting.
const (
	opTotalOrders             = "total_orders"
	opTotalRevenue            = "total_revenue"
	opHighestPricedPizza      = "highest_priced_pizza"
	opMostCommonSize          = "most_common_size"
	opTopByQuantity           = "top_n_by_quantity"
	opCategoryQuantityTotals  = "category_quantity_totals"
	opOrdersByHour            = "orders_by_hour"
	opAvgPizzasPerDay         = "avg_pizzas_per_day"
	opPizzaCountByCategory    = "pizza_count_by_category"
	opTopByRevenue            = "top_n_by_revenue"
	opCategoryRevenuePct      = "category_revenue_percentage"
	opCumulativeRevenueByDate = "cumulative_revenue_by_date"
	opTopByRevenuePerCategory = "top_n_by_revenue_per_category"
)

// Engine evaluates the metric battery over one snapshot. It holds the
// key-join lookup maps; the snapshot itself stays read-only.
type Engine struct {
	snap   *dataset.Snapshot
	pizzas map[string]dataset.Pizza
	types  map[string]dataset.PizzaType
	orders map[int]dataset.Order
}

// New builds an Engine over the snapshot. Referential integrity is
// still checked defensively inside each joining operation, so a
// snapshot that skipped Validate fails at query time rather than
// producing partial results.
func New(snap *dataset.Snapshot) *Engine {
	e := &Engine{
		snap:   snap,
		pizzas: make(map[string]dataset.Pizza, len(snap.Pizzas)),
		types:  make(map[string]dataset.PizzaType, len(snap.PizzaTypes)),
		orders: make(map[int]dataset.Order, len(snap.Orders)),
	}
	for _, p := range snap.Pizzas {
		e.pizzas[p.ID] = p
	}
	for _, t := range snap.PizzaTypes {
		e.types[t.ID] = t
	}
	for _, o := range snap.Orders {
		e.orders[o.ID] = o
	}
	return e
}

// lineItem is an order detail joined to its pizza, pizza type and
// order. Revenue is derived from it and never stored.
type lineItem struct {
	detail dataset.OrderDetail
	pizza  dataset.Pizza
	ptype  dataset.PizzaType
	order  dataset.Order
}

func (li lineItem) revenue() decimal.Decimal {
	return li.pizza.Price.Mul(decimal.NewFromInt(int64(li.detail.Quantity)))
}

// joinDetails resolves every order detail against the pizza, pizza
// type and order relations. The first dangling key fails the whole
// operation, naming the metric and the offending row.
func (e *Engine) joinDetails(op string) ([]lineItem, error) {
	items := make([]lineItem, 0, len(e.snap.Details))
	for _, d := range e.snap.Details {
		pizza, ok := e.pizzas[d.PizzaID]
		if !ok {
			return nil, &dataset.ReferentialIntegrityError{
				Operation: op,
				Relation:  "order_details",
				RowID:     strconv.Itoa(d.ID),
				Column:    "pizza_id",
				Missing:   d.PizzaID,
			}
		}
		ptype, ok := e.types[pizza.TypeID]
		if !ok {
			return nil, &dataset.ReferentialIntegrityError{
				Operation: op,
				Relation:  "pizzas",
				RowID:     pizza.ID,
				Column:    "pizza_type_id",
				Missing:   pizza.TypeID,
			}
		}
		order, ok := e.orders[d.OrderID]
		if !ok {
			return nil, &dataset.ReferentialIntegrityError{
				Operation: op,
				Relation:  "order_details",
				RowID:     strconv.Itoa(d.ID),
				Column:    "order_id",
				Missing:   strconv.Itoa(d.OrderID),
			}
		}
		items = append(items, lineItem{detail: d, pizza: pizza, ptype: ptype, order: order})
	}
	return items, nil
}
