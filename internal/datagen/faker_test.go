//-------------------------------------------------------------------------
//
// pgEdge Pizza Analytics
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package datagen

import "testing"

func TestIntRange(t *testing.T) {
	f := NewFakerWithSeed(1)
	for i := 0; i < 100; i++ {
		n := f.Int(3, 7)
		if n < 3 || n > 7 {
			t.Fatalf("Int(3, 7) = %d, out of range", n)
		}
	}
}

func TestIntDeterministic(t *testing.T) {
	a := NewFakerWithSeed(42)
	b := NewFakerWithSeed(42)
	for i := 0; i < 20; i++ {
		if x, y := a.Int(0, 1000), b.Int(0, 1000); x != y {
			t.Fatalf("same seed diverged at draw %d: %d != %d", i, x, y)
		}
	}
}

func TestChoose(t *testing.T) {
	f := NewFakerWithSeed(1)
	items := []string{"S", "M", "L"}

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		v := Choose(f, items)
		if v != "S" && v != "M" && v != "L" {
			t.Fatalf("Choose() = %q, not in items", v)
		}
		seen[v] = true
	}
	if len(seen) != 3 {
		t.Errorf("Choose() over 100 draws hit %d of 3 items", len(seen))
	}

	if v := Choose(f, []string(nil)); v != "" {
		t.Errorf("Choose() on empty slice = %q, want zero value", v)
	}
}

func TestChooseWeighted(t *testing.T) {
	f := NewFakerWithSeed(1)
	items := []int{1, 2, 3}
	weights := []int{0, 100, 0}

	// All the weight is on the middle item.
	for i := 0; i < 50; i++ {
		if v := ChooseWeighted(f, items, weights); v != 2 {
			t.Fatalf("ChooseWeighted() = %d, want 2", v)
		}
	}

	if v := ChooseWeighted(f, []int(nil), nil); v != 0 {
		t.Errorf("ChooseWeighted() on empty slice = %d, want zero value", v)
	}
}
