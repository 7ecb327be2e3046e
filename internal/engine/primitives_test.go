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
	"reflect"
	"testing"
)

func TestAccumulate(t *testing.T) {
	rows := []int{1, 2, 3, 4, 5, 6}
	got := accumulate(rows,
		func(n int) string {
			if n%2 == 0 {
				return "even"
			}
			return "odd"
		},
		func(sum, n int) int { return sum + n })

	want := map[string]int{"even": 12, "odd": 9}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("accumulate() = %v, want %v", got, want)
	}
}

func TestAccumulateEmpty(t *testing.T) {
	got := accumulate(nil,
		func(n int) int { return n },
		func(sum, n int) int { return sum + n })
	if len(got) != 0 {
		t.Errorf("accumulate(nil) = %v, want empty map", got)
	}
}

func TestSorted(t *testing.T) {
	groups := map[string]int{"b": 2, "a": 1, "c": 3}
	got := sorted(groups,
		func(k string, v int) string { return k },
		func(a, b string) bool { return a < b })

	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("sorted() = %v, want %v", got, want)
	}
}

func TestRankWithin(t *testing.T) {
	type row struct {
		part string
		val  int
		rank int
	}
	rows := []row{
		{part: "b", val: 5},
		{part: "a", val: 3},
		{part: "a", val: 9},
		{part: "b", val: 7},
		{part: "a", val: 1},
	}

	got := rankWithin(rows,
		func(r row) string { return r.part },
		func(a, b row) bool { return a.val > b.val },
		2,
		func(r row, rank int) row {
			r.rank = rank
			return r
		})

	want := []row{
		{part: "a", val: 9, rank: 1},
		{part: "a", val: 3, rank: 2},
		{part: "b", val: 7, rank: 1},
		{part: "b", val: 5, rank: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("rankWithin() = %v, want %v", got, want)
	}
}

func TestRankWithinLimitLargerThanPartition(t *testing.T) {
	type row struct {
		part string
		val  int
		rank int
	}
	rows := []row{{part: "a", val: 1}}

	got := rankWithin(rows,
		func(r row) string { return r.part },
		func(a, b row) bool { return a.val > b.val },
		10,
		func(r row, rank int) row {
			r.rank = rank
			return r
		})
	if len(got) != 1 || got[0].rank != 1 {
		t.Errorf("rankWithin() = %v, want single rank-1 row", got)
	}
}

func TestLimit(t *testing.T) {
	rows := []int{1, 2, 3}

	if got := limit(rows, 2); !reflect.DeepEqual(got, []int{1, 2}) {
		t.Errorf("limit(rows, 2) = %v", got)
	}
	if got := limit(rows, 5); !reflect.DeepEqual(got, rows) {
		t.Errorf("limit(rows, 5) = %v, want all rows", got)
	}
	if got := limit(rows, 0); len(got) != 0 {
		t.Errorf("limit(rows, 0) = %v, want empty", got)
	}
}
