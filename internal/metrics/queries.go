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

	"github.com/pgEdge/pizza-analytics/internal/engine"
	"github.com/pgEdge/pizza-analytics/internal/report"
)

// The SQL battery. Every query casts its output columns to text and
// applies the same ordering, tie-breaks and two-place rounding as the
// engine path, so the two sources produce identical tables.

func queryTotalOrders(ctx context.Context, db DB, _ Options) (report.Table, error) {
	return queryTable(ctx, db, []string{"total_orders"}, `
        SELECT COUNT(DISTINCT order_id)::text
        FROM orders
    `)
}

func queryTotalRevenue(ctx context.Context, db DB, _ Options) (report.Table, error) {
	t := report.Table{Columns: []string{"total_revenue"}}

	var total *string
	err := db.QueryRow(ctx, `
        SELECT round(SUM(p.price * od.quantity), 2)::text
        FROM order_details od
        JOIN pizzas p ON p.pizza_id = od.pizza_id
    `).Scan(&total)
	if err != nil {
		return t, err
	}
	if total == nil {
		return t, &engine.EmptyInputError{Operation: "total_revenue", Relation: "order_details"}
	}
	t.Append(*total)
	return t, nil
}

func queryHighestPricedPizza(ctx context.Context, db DB, _ Options) (report.Table, error) {
	t, err := queryTable(ctx, db, []string{"pizza_name", "price"}, `
        SELECT pt.name, round(p.price, 2)::text
        FROM pizzas p
        JOIN pizza_types pt ON pt.pizza_type_id = p.pizza_type_id
        ORDER BY p.price DESC, p.pizza_id ASC
        LIMIT 1
    `)
	if err != nil {
		return t, err
	}
	if len(t.Rows) == 0 {
		return t, &engine.EmptyInputError{Operation: "highest_priced_pizza", Relation: "pizzas"}
	}
	return t, nil
}

func queryMostCommonSize(ctx context.Context, db DB, _ Options) (report.Table, error) {
	t, err := queryTable(ctx, db, []string{"pizza_size", "total_quantity"}, `
        SELECT p.size, SUM(od.quantity)::text
        FROM order_details od
        JOIN pizzas p ON p.pizza_id = od.pizza_id
        GROUP BY p.size
        ORDER BY SUM(od.quantity) DESC, p.size ASC
        LIMIT 1
    `)
	if err != nil {
		return t, err
	}
	if len(t.Rows) == 0 {
		return t, &engine.EmptyInputError{Operation: "most_common_size", Relation: "order_details"}
	}
	return t, nil
}

func queryTopByQuantity(ctx context.Context, db DB, opts Options) (report.Table, error) {
	return queryTable(ctx, db, []string{"pizza_name", "total_quantity"}, `
        SELECT pt.name, SUM(od.quantity)::text
        FROM order_details od
        JOIN pizzas p ON p.pizza_id = od.pizza_id
        JOIN pizza_types pt ON pt.pizza_type_id = p.pizza_type_id
        GROUP BY pt.name
        ORDER BY SUM(od.quantity) DESC, pt.name ASC
        LIMIT $1
    `, opts.TopN)
}

func queryCategoryQuantityTotals(ctx context.Context, db DB, _ Options) (report.Table, error) {
	return queryTable(ctx, db, []string{"pizza_category", "total_quantity"}, `
        SELECT pt.category, SUM(od.quantity)::text
        FROM order_details od
        JOIN pizzas p ON p.pizza_id = od.pizza_id
        JOIN pizza_types pt ON pt.pizza_type_id = p.pizza_type_id
        GROUP BY pt.category
        ORDER BY SUM(od.quantity) DESC, pt.category ASC
    `)
}

func queryOrdersByHour(ctx context.Context, db DB, opts Options) (report.Table, error) {
	if opts.DenseHours {
		return queryTable(ctx, db, []string{"order_hour", "total_orders"}, `
            SELECT h.hour::text, COUNT(DISTINCT o.order_id)::text
            FROM generate_series(0, 23) AS h(hour)
            LEFT JOIN orders o ON EXTRACT(HOUR FROM o.order_time) = h.hour
            GROUP BY h.hour
            ORDER BY h.hour ASC
        `)
	}
	return queryTable(ctx, db, []string{"order_hour", "total_orders"}, `
        SELECT EXTRACT(HOUR FROM order_time)::int::text, COUNT(DISTINCT order_id)::text
        FROM orders
        GROUP BY EXTRACT(HOUR FROM order_time)
        ORDER BY EXTRACT(HOUR FROM order_time) ASC
    `)
}

func queryAvgPizzasPerDay(ctx context.Context, db DB, _ Options) (report.Table, error) {
	t := report.Table{Columns: []string{"avg_pizzas_per_day"}}

	var avg *string
	err := db.QueryRow(ctx, `
        SELECT round(AVG(per_day.quantity), 2)::text
        FROM (
            SELECT o.order_date, SUM(od.quantity) AS quantity
            FROM orders o
            JOIN order_details od ON od.order_id = o.order_id
            GROUP BY o.order_date
        ) AS per_day
    `).Scan(&avg)
	if err != nil {
		return t, err
	}
	if avg == nil {
		return t, &engine.EmptyInputError{Operation: "avg_pizzas_per_day", Relation: "order_details"}
	}
	t.Append(*avg)
	return t, nil
}

func queryPizzaCountByCategory(ctx context.Context, db DB, _ Options) (report.Table, error) {
	return queryTable(ctx, db, []string{"pizza_category", "pizza_count"}, `
        SELECT category, COUNT(DISTINCT pizza_type_id)::text
        FROM pizza_types
        GROUP BY category
        ORDER BY COUNT(DISTINCT pizza_type_id) DESC, category ASC
    `)
}

func queryTopByRevenue(ctx context.Context, db DB, opts Options) (report.Table, error) {
	return queryTable(ctx, db, []string{"pizza_name", "total_revenue"}, `
        SELECT pt.name, round(SUM(p.price * od.quantity), 2)::text
        FROM order_details od
        JOIN pizzas p ON p.pizza_id = od.pizza_id
        JOIN pizza_types pt ON pt.pizza_type_id = p.pizza_type_id
        GROUP BY pt.name
        ORDER BY SUM(p.price * od.quantity) DESC, pt.name ASC
        LIMIT $1
    `, opts.TopN)
}

func queryCategoryRevenuePercentage(ctx context.Context, db DB, _ Options) (report.Table, error) {
	t, err := queryTable(ctx, db, []string{"pizza_category", "total_revenue", "revenue_pct"}, `
        SELECT pt.category,
               round(SUM(p.price * od.quantity), 2)::text,
               round(SUM(p.price * od.quantity) * 100
                     / SUM(SUM(p.price * od.quantity)) OVER (), 2)::text
        FROM order_details od
        JOIN pizzas p ON p.pizza_id = od.pizza_id
        JOIN pizza_types pt ON pt.pizza_type_id = p.pizza_type_id
        GROUP BY pt.category
        ORDER BY SUM(p.price * od.quantity) DESC, pt.category ASC
    `)
	if err != nil {
		return t, err
	}
	if len(t.Rows) == 0 {
		return t, &engine.EmptyInputError{Operation: "category_revenue_percentage", Relation: "order_details"}
	}
	return t, nil
}

func queryCumulativeRevenueByDate(ctx context.Context, db DB, _ Options) (report.Table, error) {
	return queryTable(ctx, db, []string{"order_date", "daily_revenue", "cumulative_revenue"}, `
        WITH daily AS (
            SELECT o.order_date, SUM(p.price * od.quantity) AS revenue
            FROM order_details od
            JOIN pizzas p ON p.pizza_id = od.pizza_id
            JOIN orders o ON o.order_id = od.order_id
            GROUP BY o.order_date
        )
        SELECT order_date::text,
               round(revenue, 2)::text,
               round(SUM(revenue) OVER (ORDER BY order_date), 2)::text
        FROM daily
        ORDER BY order_date ASC
    `)
}

func queryTopByRevenuePerCategory(ctx context.Context, db DB, opts Options) (report.Table, error) {
	return queryTable(ctx, db, []string{"pizza_category", "pizza_name", "total_revenue", "revenue_rank"}, `
        WITH type_revenue AS (
            SELECT pt.category, pt.name, SUM(p.price * od.quantity) AS revenue
            FROM order_details od
            JOIN pizzas p ON p.pizza_id = od.pizza_id
            JOIN pizza_types pt ON pt.pizza_type_id = p.pizza_type_id
            GROUP BY pt.category, pt.name
        ),
        ranked AS (
            SELECT category, name, revenue,
                   ROW_NUMBER() OVER (
                       PARTITION BY category
                       ORDER BY revenue DESC, name ASC
                   ) AS revenue_rank
            FROM type_revenue
        )
        SELECT category, name, round(revenue, 2)::text, revenue_rank::text
        FROM ranked
        WHERE revenue_rank <= $1
        ORDER BY category ASC, revenue_rank ASC
    `, opts.RankN)
}

// queryTable runs a query whose columns are all cast to text and
// collects the rows in order. NULLs become empty strings.
func queryTable(ctx context.Context, db DB, cols []string, sql string, args ...any) (report.Table, error) {
	t := report.Table{Columns: cols}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return t, err
	}
	defer rows.Close()

	for rows.Next() {
		vals := make([]*string, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return t, err
		}
		out := make([]string, len(cols))
		for i, v := range vals {
			if v != nil {
				out[i] = *v
			}
		}
		t.Rows = append(t.Rows, out)
	}
	return t, rows.Err()
}
