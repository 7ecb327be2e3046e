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
	"strconv"

	"github.com/pgEdge/pizza-analytics/internal/dataset"
)

// TotalOrders returns the count of distinct order identifiers. It
// depends only on the orders relation, never on line items.
func (e *Engine) TotalOrders() int {
	return len(e.orders)
}

// HighestPricedPizza returns the pizza type name and price of the most
// expensive pizza variant. Ties are broken by the lowest pizza_id, so
// the result is deterministic even when the maximum price is shared.
func (e *Engine) HighestPricedPizza() (PricedPizza, error) {
	if len(e.snap.Pizzas) == 0 {
		return PricedPizza{}, &EmptyInputError{Operation: opHighestPricedPizza, Relation: "pizzas"}
	}

	var best dataset.Pizza
	found := false
	for _, p := range e.snap.Pizzas {
		if !found || p.Price.GreaterThan(best.Price) ||
			(p.Price.Equal(best.Price) && p.ID < best.ID) {
			best = p
			found = true
		}
	}

	ptype, ok := e.types[best.TypeID]
	if !ok {
		return PricedPizza{}, &dataset.ReferentialIntegrityError{
			Operation: opHighestPricedPizza,
			Relation:  "pizzas",
			RowID:     best.ID,
			Column:    "pizza_type_id",
			Missing:   best.TypeID,
		}
	}

	return PricedPizza{Name: ptype.Name, PizzaID: best.ID, Price: best.Price}, nil
}

// MostCommonSize returns the pizza size with the highest total
// quantity across all line items. Ties are broken by the
// lexicographically smallest size label.
func (e *Engine) MostCommonSize() (SizeTotal, error) {
	items, err := e.joinDetails(opMostCommonSize)
	if err != nil {
		return SizeTotal{}, err
	}
	if len(items) == 0 {
		return SizeTotal{}, &EmptyInputError{Operation: opMostCommonSize, Relation: "order_details"}
	}

	totals := accumulate(items,
		func(li lineItem) string { return li.pizza.Size },
		func(sum int, li lineItem) int { return sum + li.detail.Quantity })

	var best SizeTotal
	found := false
	for size, qty := range totals {
		if !found || qty > best.Quantity || (qty == best.Quantity && size < best.Size) {
			best = SizeTotal{Size: size, Quantity: qty}
			found = true
		}
	}
	return best, nil
}

// TopByQuantity returns the n pizza types with the highest total
// quantity sold, descending. Equal quantities are ordered by name
// ascending. An empty dataset yields an empty result, not an error.
func (e *Engine) TopByQuantity(n int) ([]QuantityRow, error) {
	items, err := e.joinDetails(opTopByQuantity)
	if err != nil {
		return nil, err
	}

	totals := accumulate(items,
		func(li lineItem) string { return li.ptype.Name },
		func(sum int, li lineItem) int { return sum + li.detail.Quantity })

	rows := sorted(totals,
		func(name string, qty int) QuantityRow { return QuantityRow{Name: name, Quantity: qty} },
		func(a, b QuantityRow) bool {
			if a.Quantity != b.Quantity {
				return a.Quantity > b.Quantity
			}
			return a.Name < b.Name
		})

	return limit(rows, n), nil
}

// CategoryQuantityTotals returns the total quantity sold per category,
// descending. Equal quantities are ordered by category ascending.
func (e *Engine) CategoryQuantityTotals() ([]CategoryQuantityRow, error) {
	items, err := e.joinDetails(opCategoryQuantityTotals)
	if err != nil {
		return nil, err
	}

	totals := accumulate(items,
		func(li lineItem) string { return li.ptype.Category },
		func(sum int, li lineItem) int { return sum + li.detail.Quantity })

	return sorted(totals,
		func(cat string, qty int) CategoryQuantityRow {
			return CategoryQuantityRow{Category: cat, Quantity: qty}
		},
		func(a, b CategoryQuantityRow) bool {
			if a.Quantity != b.Quantity {
				return a.Quantity > b.Quantity
			}
			return a.Category < b.Category
		}), nil
}

// OrdersByHour returns the distinct order count per hour of day,
// ascending by hour. Hours with zero orders are omitted; use
// OrdersByHourDense for the full 0-23 range.
func (e *Engine) OrdersByHour() ([]HourRow, error) {
	counts, err := e.hourCounts()
	if err != nil {
		return nil, err
	}

	rows := make([]HourRow, 0, len(counts))
	for hour, n := range counts {
		rows = append(rows, HourRow{Hour: hour, Orders: n})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Hour < rows[j].Hour })
	return rows, nil
}

// OrdersByHourDense returns one row for every hour 0-23, with zero
// counts for hours with no orders.
func (e *Engine) OrdersByHourDense() ([]HourRow, error) {
	counts, err := e.hourCounts()
	if err != nil {
		return nil, err
	}

	rows := make([]HourRow, 24)
	for h := range rows {
		rows[h] = HourRow{Hour: h, Orders: counts[h]}
	}
	return rows, nil
}

func (e *Engine) hourCounts() (map[int]int, error) {
	counts := make(map[int]int)
	for _, o := range e.snap.Orders {
		h := o.Hour()
		if h < 0 {
			return nil, &dataset.MalformedRowError{
				Relation: "orders",
				RowID:    strconv.Itoa(o.ID),
				Reason:   "unparseable time " + strconv.Quote(o.Time),
			}
		}
		counts[h]++
	}
	return counts, nil
}

// AvgPizzasPerDay returns the arithmetic mean of per-date quantity
// sums across all distinct dates that have at least one line item.
func (e *Engine) AvgPizzasPerDay() (float64, error) {
	items, err := e.joinDetails(opAvgPizzasPerDay)
	if err != nil {
		return 0, err
	}
	if len(items) == 0 {
		return 0, &EmptyInputError{Operation: opAvgPizzasPerDay, Relation: "order_details"}
	}

	perDay := accumulate(items,
		func(li lineItem) string { return li.order.Date.Format(dataset.DateLayout) },
		func(sum int, li lineItem) int { return sum + li.detail.Quantity })

	total := 0
	for _, qty := range perDay {
		total += qty
	}
	return float64(total) / float64(len(perDay)), nil
}

// PizzaCountByCategory returns the number of distinct pizza types per
// category, descending. This is a catalog-composition metric and is
// independent of orders.
func (e *Engine) PizzaCountByCategory() []CategoryCountRow {
	counts := accumulate(e.snap.PizzaTypes,
		func(pt dataset.PizzaType) string { return pt.Category },
		func(n int, _ dataset.PizzaType) int { return n + 1 })

	return sorted(counts,
		func(cat string, n int) CategoryCountRow { return CategoryCountRow{Category: cat, Count: n} },
		func(a, b CategoryCountRow) bool {
			if a.Count != b.Count {
				return a.Count > b.Count
			}
			return a.Category < b.Category
		})
}
