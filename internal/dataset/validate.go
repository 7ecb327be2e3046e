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
	"strconv"
	"time"
)

// Validate checks every row of the snapshot against the schema
// invariants: unique identifiers, non-negative prices, positive
// quantities, parseable times, and referential integrity. The first
// violation found is returned.
func (s *Snapshot) Validate() error {
	typeIDs := make(map[string]struct{}, len(s.PizzaTypes))
	for _, pt := range s.PizzaTypes {
		if pt.ID == "" {
			return &MalformedRowError{Relation: "pizza_types", RowID: pt.Name, Reason: "empty pizza_type_id"}
		}
		if _, dup := typeIDs[pt.ID]; dup {
			return &MalformedRowError{Relation: "pizza_types", RowID: pt.ID, Reason: "duplicate pizza_type_id"}
		}
		typeIDs[pt.ID] = struct{}{}
	}

	pizzaIDs := make(map[string]struct{}, len(s.Pizzas))
	for _, p := range s.Pizzas {
		if p.ID == "" {
			return &MalformedRowError{Relation: "pizzas", RowID: p.TypeID, Reason: "empty pizza_id"}
		}
		if _, dup := pizzaIDs[p.ID]; dup {
			return &MalformedRowError{Relation: "pizzas", RowID: p.ID, Reason: "duplicate pizza_id"}
		}
		pizzaIDs[p.ID] = struct{}{}

		if p.Price.IsNegative() {
			return &MalformedRowError{Relation: "pizzas", RowID: p.ID, Reason: "negative price"}
		}
		if _, ok := typeIDs[p.TypeID]; !ok {
			return &ReferentialIntegrityError{
				Operation: "validate",
				Relation:  "pizzas",
				RowID:     p.ID,
				Column:    "pizza_type_id",
				Missing:   p.TypeID,
			}
		}
	}

	orderIDs := make(map[int]struct{}, len(s.Orders))
	for _, o := range s.Orders {
		id := strconv.Itoa(o.ID)
		if _, dup := orderIDs[o.ID]; dup {
			return &MalformedRowError{Relation: "orders", RowID: id, Reason: "duplicate order_id"}
		}
		orderIDs[o.ID] = struct{}{}

		if o.Date.IsZero() {
			return &MalformedRowError{Relation: "orders", RowID: id, Reason: "missing date"}
		}
		if _, err := time.Parse(TimeLayout, o.Time); err != nil {
			return &MalformedRowError{Relation: "orders", RowID: id, Reason: "unparseable time " + strconv.Quote(o.Time)}
		}
	}

	detailIDs := make(map[int]struct{}, len(s.Details))
	for _, d := range s.Details {
		id := strconv.Itoa(d.ID)
		if _, dup := detailIDs[d.ID]; dup {
			return &MalformedRowError{Relation: "order_details", RowID: id, Reason: "duplicate order_details_id"}
		}
		detailIDs[d.ID] = struct{}{}

		if d.Quantity <= 0 {
			return &MalformedRowError{Relation: "order_details", RowID: id, Reason: "non-positive quantity"}
		}
		if _, ok := orderIDs[d.OrderID]; !ok {
			return &ReferentialIntegrityError{
				Operation: "validate",
				Relation:  "order_details",
				RowID:     id,
				Column:    "order_id",
				Missing:   strconv.Itoa(d.OrderID),
			}
		}
		if _, ok := pizzaIDs[d.PizzaID]; !ok {
			return &ReferentialIntegrityError{
				Operation: "validate",
				Relation:  "order_details",
				RowID:     id,
				Column:    "pizza_id",
				Missing:   d.PizzaID,
			}
		}
	}

	return nil
}
