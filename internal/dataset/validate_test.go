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
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func validSnapshot() *Snapshot {
	return &Snapshot{
		PizzaTypes: []PizzaType{
			{ID: "bbq_ckn", Name: "The Barbecue Chicken Pizza", Category: "Chicken"},
		},
		Pizzas: []Pizza{
			{ID: "bbq_ckn_m", TypeID: "bbq_ckn", Size: "M", Price: decimal.RequireFromString("16.75")},
		},
		Orders: []Order{
			{ID: 1, Date: time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC), Time: "11:38:36"},
		},
		Details: []OrderDetail{
			{ID: 1, OrderID: 1, PizzaID: "bbq_ckn_m", Quantity: 1},
		},
	}
}

func TestValidateOK(t *testing.T) {
	if err := validSnapshot().Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestValidateEmptySnapshot(t *testing.T) {
	// An empty snapshot is structurally valid; emptiness is judged per
	// metric, not at load time.
	if err := (&Snapshot{}).Validate(); err != nil {
		t.Errorf("Validate() on empty snapshot = %v, want nil", err)
	}
}

func TestValidateMalformedRows(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Snapshot)
	}{
		{"duplicate pizza_type_id", func(s *Snapshot) {
			s.PizzaTypes = append(s.PizzaTypes, s.PizzaTypes[0])
		}},
		{"empty pizza_type_id", func(s *Snapshot) {
			s.PizzaTypes = append(s.PizzaTypes, PizzaType{Name: "Nameless"})
		}},
		{"duplicate pizza_id", func(s *Snapshot) {
			s.Pizzas = append(s.Pizzas, s.Pizzas[0])
		}},
		{"negative price", func(s *Snapshot) {
			s.Pizzas[0].Price = decimal.RequireFromString("-1.00")
		}},
		{"duplicate order_id", func(s *Snapshot) {
			s.Orders = append(s.Orders, s.Orders[0])
		}},
		{"unparseable time", func(s *Snapshot) {
			s.Orders[0].Time = "25:99:00"
		}},
		{"missing date", func(s *Snapshot) {
			s.Orders[0].Date = time.Time{}
		}},
		{"duplicate order_details_id", func(s *Snapshot) {
			s.Details = append(s.Details, s.Details[0])
		}},
		{"zero quantity", func(s *Snapshot) {
			s.Details[0].Quantity = 0
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := validSnapshot()
			tt.mutate(snap)

			err := snap.Validate()
			var malformed *MalformedRowError
			if !errors.As(err, &malformed) {
				t.Errorf("Validate() = %v, want MalformedRowError", err)
			}
		})
	}
}

func TestValidateReferentialIntegrity(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Snapshot)
		column string
	}{
		{"pizza without type", func(s *Snapshot) {
			s.Pizzas = append(s.Pizzas, Pizza{ID: "ghost_m", TypeID: "ghost", Size: "M"})
		}, "pizza_type_id"},
		{"detail without order", func(s *Snapshot) {
			s.Details = append(s.Details, OrderDetail{ID: 2, OrderID: 404, PizzaID: "bbq_ckn_m", Quantity: 1})
		}, "order_id"},
		{"detail without pizza", func(s *Snapshot) {
			s.Details = append(s.Details, OrderDetail{ID: 2, OrderID: 1, PizzaID: "ghost_m", Quantity: 1})
		}, "pizza_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := validSnapshot()
			tt.mutate(snap)

			err := snap.Validate()
			var riErr *ReferentialIntegrityError
			if !errors.As(err, &riErr) {
				t.Fatalf("Validate() = %v, want ReferentialIntegrityError", err)
			}
			if riErr.Column != tt.column {
				t.Errorf("error column = %q, want %q", riErr.Column, tt.column)
			}
			if riErr.Operation != "validate" {
				t.Errorf("error operation = %q, want validate", riErr.Operation)
			}
		})
	}
}
