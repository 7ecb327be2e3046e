//-------------------------------------------------------------------------
//
// pgEdge Pizza Analytics
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package dataset defines the four sales relations and loads them from
// CSV files. A loaded Snapshot is treated as read-only for the duration
// of an analysis; nothing in this repository mutates it.
package dataset

import (
	"time"

	"github.com/shopspring/decimal"
)

// Layouts used by the dataset CSV files.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

// PizzaType is one distinct product type on the menu.
type PizzaType struct {
	ID          string
	Name        string
	Category    string
	Ingredients string
}

// Pizza is a sellable variant of a PizzaType in a particular size.
type Pizza struct {
	ID     string
	TypeID string
	Size   string
	Price  decimal.Decimal
}

// Order is one placed order.
type Order struct {
	ID   int
	Date time.Time
	// Time is the time of day in HH:MM:SS form.
	Time string
}

// Hour returns the hour-of-day (0-23) of the order time. It accepts
// exactly what Validate accepts, single-digit hours included;
// malformed input yields -1.
func (o Order) Hour() int {
	t, err := time.Parse(TimeLayout, o.Time)
	if err != nil {
		return -1
	}
	return t.Hour()
}

// OrderDetail is one line item: a pizza variant and quantity within an
// order. Revenue is always Pizza.Price x Quantity, never stored.
type OrderDetail struct {
	ID       int
	OrderID  int
	PizzaID  string
	Quantity int
}

// Snapshot bundles the four relations loaded for one analysis run.
type Snapshot struct {
	PizzaTypes []PizzaType
	Pizzas     []Pizza
	Orders     []Order
	Details    []OrderDetail
}
