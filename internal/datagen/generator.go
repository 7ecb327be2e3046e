//-------------------------------------------------------------------------
//
// pgEdge Pizza Analytics
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package datagen

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pgEdge/pizza-analytics/internal/dataset"
	"github.com/pgEdge/pizza-analytics/internal/logging"
)

// Generator produces synthetic sales snapshots from the reference
// menu. The same seed always yields the same snapshot.
type Generator struct {
	faker *Faker
}

// NewGenerator creates a generator. A seed of 0 picks a random seed.
func NewGenerator(seed uint64) *Generator {
	if seed == 0 {
		return &Generator{faker: NewFaker()}
	}
	return &Generator{faker: NewFakerWithSeed(seed)}
}

// Snapshot generates a catalog plus the given number of orders spread
// over 90 days. The result passes dataset validation by construction.
func (g *Generator) Snapshot(orders int) *dataset.Snapshot {
	snap := &dataset.Snapshot{}

	for _, m := range menu {
		snap.PizzaTypes = append(snap.PizzaTypes, dataset.PizzaType{
			ID:          m.ID,
			Name:        m.Name,
			Category:    m.Category,
			Ingredients: m.Ingredients,
		})
		for _, size := range sizes {
			snap.Pizzas = append(snap.Pizzas, dataset.Pizza{
				ID:     m.ID + "_" + strings.ToLower(size),
				TypeID: m.ID,
				Size:   size,
				Price:  decimal.New(m.BasePrice+sizeOffsets[size], -2),
			})
		}
	}

	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	detailID := 1
	for id := 1; id <= orders; id++ {
		day := g.faker.Int(0, 89)
		hour := ChooseWeighted(g.faker, orderHours, hourWeights)
		order := dataset.Order{
			ID:   id,
			Date: start.AddDate(0, 0, day),
			Time: fmt.Sprintf("%02d:%02d:%02d", hour, g.faker.Int(0, 59), g.faker.Int(0, 59)),
		}
		snap.Orders = append(snap.Orders, order)

		lines := ChooseWeighted(g.faker, []int{1, 2, 3, 4}, []int{55, 28, 12, 5})
		for l := 0; l < lines; l++ {
			item := Choose(g.faker, menu)
			size := ChooseWeighted(g.faker, sizes, sizeWeights)
			snap.Details = append(snap.Details, dataset.OrderDetail{
				ID:       detailID,
				OrderID:  id,
				PizzaID:  item.ID + "_" + strings.ToLower(size),
				Quantity: ChooseWeighted(g.faker, []int{1, 2, 3}, []int{85, 12, 3}),
			})
			detailID++
		}
	}

	return snap
}

// WriteCSVDir writes the snapshot as the four dataset CSV files,
// creating dir if needed.
func WriteCSVDir(snap *dataset.Snapshot, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	logging.Info().
		Str("dir", dir).
		Int("orders", len(snap.Orders)).
		Int("order_details", len(snap.Details)).
		Msg("Writing dataset")

	if err := writeCSV(dir, dataset.PizzaTypesFile,
		[]string{"pizza_type_id", "name", "category", "ingredients"},
		len(snap.PizzaTypes), func(i int) []string {
			pt := snap.PizzaTypes[i]
			return []string{pt.ID, pt.Name, pt.Category, pt.Ingredients}
		}); err != nil {
		return err
	}

	if err := writeCSV(dir, dataset.PizzasFile,
		[]string{"pizza_id", "pizza_type_id", "size", "price"},
		len(snap.Pizzas), func(i int) []string {
			p := snap.Pizzas[i]
			return []string{p.ID, p.TypeID, p.Size, p.Price.StringFixed(2)}
		}); err != nil {
		return err
	}

	if err := writeCSV(dir, dataset.OrdersFile,
		[]string{"order_id", "date", "time"},
		len(snap.Orders), func(i int) []string {
			o := snap.Orders[i]
			return []string{strconv.Itoa(o.ID), o.Date.Format(dataset.DateLayout), o.Time}
		}); err != nil {
		return err
	}

	return writeCSV(dir, dataset.OrderDetailsFile,
		[]string{"order_details_id", "order_id", "pizza_id", "quantity"},
		len(snap.Details), func(i int) []string {
			d := snap.Details[i]
			return []string{strconv.Itoa(d.ID), strconv.Itoa(d.OrderID), d.PizzaID, strconv.Itoa(d.Quantity)}
		})
}

func writeCSV(dir, name string, header []string, n int, row func(int) []string) error {
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return fmt.Errorf("creating %s: %w", name, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", name, err)
	}
	for i := 0; i < n; i++ {
		if err := w.Write(row(i)); err != nil {
			f.Close()
			return fmt.Errorf("writing %s: %w", name, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return f.Close()
}
