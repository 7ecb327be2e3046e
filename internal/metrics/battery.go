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
	"strconv"

	"github.com/pgEdge/pizza-analytics/internal/dataset"
	"github.com/pgEdge/pizza-analytics/internal/engine"
	"github.com/pgEdge/pizza-analytics/internal/report"
)

// Money and percentages round to two places here, at presentation.
// The engine accumulates at full precision.

func init() {
	Register(Metric{
		Name:        "total_orders",
		Description: "Count of distinct orders placed",
		Columns:     []string{"total_orders"},
		Eval: func(e *engine.Engine, _ Options) (report.Table, error) {
			t := report.Table{Columns: []string{"total_orders"}}
			t.Append(strconv.Itoa(e.TotalOrders()))
			return t, nil
		},
		Query: queryTotalOrders,
	})

	Register(Metric{
		Name:        "total_revenue",
		Description: "Total revenue across all line items",
		Columns:     []string{"total_revenue"},
		Eval: func(e *engine.Engine, _ Options) (report.Table, error) {
			t := report.Table{Columns: []string{"total_revenue"}}
			total, err := e.TotalRevenue()
			if err != nil {
				return t, err
			}
			t.Append(total.StringFixed(2))
			return t, nil
		},
		Query: queryTotalRevenue,
	})

	Register(Metric{
		Name:        "highest_priced_pizza",
		Description: "Most expensive pizza variant on the menu",
		Columns:     []string{"pizza_name", "price"},
		Eval: func(e *engine.Engine, _ Options) (report.Table, error) {
			t := report.Table{Columns: []string{"pizza_name", "price"}}
			top, err := e.HighestPricedPizza()
			if err != nil {
				return t, err
			}
			t.Append(top.Name, top.Price.StringFixed(2))
			return t, nil
		},
		Query: queryHighestPricedPizza,
	})

	Register(Metric{
		Name:        "most_common_size",
		Description: "Pizza size with the highest quantity sold",
		Columns:     []string{"pizza_size", "total_quantity"},
		Eval: func(e *engine.Engine, _ Options) (report.Table, error) {
			t := report.Table{Columns: []string{"pizza_size", "total_quantity"}}
			top, err := e.MostCommonSize()
			if err != nil {
				return t, err
			}
			t.Append(top.Size, strconv.Itoa(top.Quantity))
			return t, nil
		},
		Query: queryMostCommonSize,
	})

	Register(Metric{
		Name:        "top_n_by_quantity",
		Description: "Top pizza types by quantity sold",
		Columns:     []string{"pizza_name", "total_quantity"},
		Eval: func(e *engine.Engine, opts Options) (report.Table, error) {
			t := report.Table{Columns: []string{"pizza_name", "total_quantity"}}
			rows, err := e.TopByQuantity(opts.TopN)
			if err != nil {
				return t, err
			}
			for _, r := range rows {
				t.Append(r.Name, strconv.Itoa(r.Quantity))
			}
			return t, nil
		},
		Query: queryTopByQuantity,
	})

	Register(Metric{
		Name:        "category_quantity_totals",
		Description: "Quantity sold per category",
		Columns:     []string{"pizza_category", "total_quantity"},
		Eval: func(e *engine.Engine, _ Options) (report.Table, error) {
			t := report.Table{Columns: []string{"pizza_category", "total_quantity"}}
			rows, err := e.CategoryQuantityTotals()
			if err != nil {
				return t, err
			}
			for _, r := range rows {
				t.Append(r.Category, strconv.Itoa(r.Quantity))
			}
			return t, nil
		},
		Query: queryCategoryQuantityTotals,
	})

	Register(Metric{
		Name:        "orders_by_hour",
		Description: "Distinct orders per hour of day",
		Columns:     []string{"order_hour", "total_orders"},
		Eval: func(e *engine.Engine, opts Options) (report.Table, error) {
			t := report.Table{Columns: []string{"order_hour", "total_orders"}}
			var rows []engine.HourRow
			var err error
			if opts.DenseHours {
				rows, err = e.OrdersByHourDense()
			} else {
				rows, err = e.OrdersByHour()
			}
			if err != nil {
				return t, err
			}
			for _, r := range rows {
				t.Append(strconv.Itoa(r.Hour), strconv.Itoa(r.Orders))
			}
			return t, nil
		},
		Query: queryOrdersByHour,
	})

	Register(Metric{
		Name:        "avg_pizzas_per_day",
		Description: "Mean pizzas sold per order date",
		Columns:     []string{"avg_pizzas_per_day"},
		Eval: func(e *engine.Engine, _ Options) (report.Table, error) {
			t := report.Table{Columns: []string{"avg_pizzas_per_day"}}
			avg, err := e.AvgPizzasPerDay()
			if err != nil {
				return t, err
			}
			t.Append(strconv.FormatFloat(avg, 'f', 2, 64))
			return t, nil
		},
		Query: queryAvgPizzasPerDay,
	})

	Register(Metric{
		Name:        "pizza_count_by_category",
		Description: "Distinct pizza types per category (catalog composition)",
		Columns:     []string{"pizza_category", "pizza_count"},
		Eval: func(e *engine.Engine, _ Options) (report.Table, error) {
			t := report.Table{Columns: []string{"pizza_category", "pizza_count"}}
			for _, r := range e.PizzaCountByCategory() {
				t.Append(r.Category, strconv.Itoa(r.Count))
			}
			return t, nil
		},
		Query: queryPizzaCountByCategory,
	})

	Register(Metric{
		Name:        "top_n_by_revenue",
		Description: "Top pizza types by revenue",
		Columns:     []string{"pizza_name", "total_revenue"},
		Eval: func(e *engine.Engine, opts Options) (report.Table, error) {
			t := report.Table{Columns: []string{"pizza_name", "total_revenue"}}
			rows, err := e.TopByRevenue(opts.TopN)
			if err != nil {
				return t, err
			}
			for _, r := range rows {
				t.Append(r.Name, r.Revenue.StringFixed(2))
			}
			return t, nil
		},
		Query: queryTopByRevenue,
	})

	Register(Metric{
		Name:        "category_revenue_percentage",
		Description: "Revenue share per category",
		Columns:     []string{"pizza_category", "total_revenue", "revenue_pct"},
		Eval: func(e *engine.Engine, _ Options) (report.Table, error) {
			t := report.Table{Columns: []string{"pizza_category", "total_revenue", "revenue_pct"}}
			rows, err := e.CategoryRevenuePercentage()
			if err != nil {
				return t, err
			}
			for _, r := range rows {
				t.Append(r.Category, r.Revenue.StringFixed(2), r.Percentage.StringFixed(2))
			}
			return t, nil
		},
		Query: queryCategoryRevenuePercentage,
	})

	Register(Metric{
		Name:        "cumulative_revenue_by_date",
		Description: "Daily revenue with a running total",
		Columns:     []string{"order_date", "daily_revenue", "cumulative_revenue"},
		Eval: func(e *engine.Engine, _ Options) (report.Table, error) {
			t := report.Table{Columns: []string{"order_date", "daily_revenue", "cumulative_revenue"}}
			rows, err := e.CumulativeRevenueByDate()
			if err != nil {
				return t, err
			}
			for _, r := range rows {
				t.Append(r.Date.Format(dataset.DateLayout),
					r.Revenue.StringFixed(2), r.Cumulative.StringFixed(2))
			}
			return t, nil
		},
		Query: queryCumulativeRevenueByDate,
	})

	Register(Metric{
		Name:        "top_n_by_revenue_per_category",
		Description: "Top pizza types by revenue within each category",
		Columns:     []string{"pizza_category", "pizza_name", "total_revenue", "revenue_rank"},
		Eval: func(e *engine.Engine, opts Options) (report.Table, error) {
			t := report.Table{Columns: []string{"pizza_category", "pizza_name", "total_revenue", "revenue_rank"}}
			rows, err := e.TopByRevenuePerCategory(opts.RankN)
			if err != nil {
				return t, err
			}
			for _, r := range rows {
				t.Append(r.Category, r.Name, r.Revenue.StringFixed(2), strconv.Itoa(r.Rank))
			}
			return t, nil
		},
		Query: queryTopByRevenuePerCategory,
	})
}
