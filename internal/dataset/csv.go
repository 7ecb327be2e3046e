//-------------------------------------------------------------------------
//
// pgEdge Pizza Analytics
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// File names expected inside a dataset directory.
const (
	PizzaTypesFile   = "pizza_types.csv"
	PizzasFile       = "pizzas.csv"
	OrdersFile       = "orders.csv"
	OrderDetailsFile = "order_details.csv"
)

// LoadDir reads the four dataset CSV files from dir and returns a
// validated Snapshot. Columns are resolved by header name, not
// position, so column order in the files does not matter.
func LoadDir(dir string) (*Snapshot, error) {
	snap := &Snapshot{}

	if err := loadFile(dir, PizzaTypesFile, []string{"pizza_type_id", "name", "category", "ingredients"},
		func(get func(string) string) error {
			snap.PizzaTypes = append(snap.PizzaTypes, PizzaType{
				ID:          get("pizza_type_id"),
				Name:        get("name"),
				Category:    get("category"),
				Ingredients: get("ingredients"),
			})
			return nil
		}); err != nil {
		return nil, err
	}

	if err := loadFile(dir, PizzasFile, []string{"pizza_id", "pizza_type_id", "size", "price"},
		func(get func(string) string) error {
			price, err := decimal.NewFromString(get("price"))
			if err != nil {
				return &MalformedRowError{
					Relation: "pizzas",
					RowID:    get("pizza_id"),
					Reason:   fmt.Sprintf("unparseable price %q", get("price")),
				}
			}
			snap.Pizzas = append(snap.Pizzas, Pizza{
				ID:     get("pizza_id"),
				TypeID: get("pizza_type_id"),
				Size:   get("size"),
				Price:  price,
			})
			return nil
		}); err != nil {
		return nil, err
	}

	if err := loadFile(dir, OrdersFile, []string{"order_id", "date", "time"},
		func(get func(string) string) error {
			id, err := strconv.Atoi(get("order_id"))
			if err != nil {
				return &MalformedRowError{
					Relation: "orders",
					RowID:    get("order_id"),
					Reason:   "order_id is not an integer",
				}
			}
			date, err := time.Parse(DateLayout, get("date"))
			if err != nil {
				return &MalformedRowError{
					Relation: "orders",
					RowID:    get("order_id"),
					Reason:   fmt.Sprintf("unparseable date %q", get("date")),
				}
			}
			snap.Orders = append(snap.Orders, Order{
				ID:   id,
				Date: date,
				Time: get("time"),
			})
			return nil
		}); err != nil {
		return nil, err
	}

	if err := loadFile(dir, OrderDetailsFile, []string{"order_details_id", "order_id", "pizza_id", "quantity"},
		func(get func(string) string) error {
			id, err := strconv.Atoi(get("order_details_id"))
			if err != nil {
				return &MalformedRowError{
					Relation: "order_details",
					RowID:    get("order_details_id"),
					Reason:   "order_details_id is not an integer",
				}
			}
			orderID, err := strconv.Atoi(get("order_id"))
			if err != nil {
				return &MalformedRowError{
					Relation: "order_details",
					RowID:    get("order_details_id"),
					Reason:   "order_id is not an integer",
				}
			}
			qty, err := strconv.Atoi(get("quantity"))
			if err != nil {
				return &MalformedRowError{
					Relation: "order_details",
					RowID:    get("order_details_id"),
					Reason:   fmt.Sprintf("unparseable quantity %q", get("quantity")),
				}
			}
			snap.Details = append(snap.Details, OrderDetail{
				ID:       id,
				OrderID:  orderID,
				PizzaID:  get("pizza_id"),
				Quantity: qty,
			})
			return nil
		}); err != nil {
		return nil, err
	}

	if err := snap.Validate(); err != nil {
		return nil, err
	}
	return snap, nil
}

// loadFile reads one CSV file and calls row once per data row. The row
// callback receives a getter that resolves values by header name.
func loadFile(dir, name string, required []string, row func(get func(string) string) error) error {
	f, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		return fmt.Errorf("opening %s: %w", name, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	headers, err := r.Read()
	if err != nil {
		return fmt.Errorf("reading %s header: %w", name, err)
	}

	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range required {
		if _, ok := index[col]; !ok {
			return fmt.Errorf("%s: missing required column %q", name, col)
		}
	}

	records, err := r.ReadAll()
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}

	for _, rec := range records {
		get := func(col string) string {
			i := index[col]
			if i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}
		if err := row(get); err != nil {
			return err
		}
	}
	return nil
}
