//-------------------------------------------------------------------------
//
// pgEdge Pizza Analytics
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package engine

import "sort"

// The declarative shapes of the reference queries (joins, GROUP BY,
// window functions) reduce to three primitives: key join (the lookup
// maps built in New), group-by-accumulate, and rank-within-group. All
// thirteen metrics are built from these.

// accumulate folds rows into per-key accumulators. The zero value of A
// is the initial accumulator for each key.
func accumulate[R any, K comparable, A any](rows []R, key func(R) K, fold func(A, R) A) map[K]A {
	out := make(map[K]A)
	for _, r := range rows {
		k := key(r)
		out[k] = fold(out[k], r)
	}
	return out
}

// sorted collects the values of a group map into a slice ordered by
// less. Deterministic output requires less to be a total order over
// the rows (callers break value ties on the key).
func sorted[K comparable, A any, O any](groups map[K]A, row func(K, A) O, less func(a, b O) bool) []O {
	out := make([]O, 0, len(groups))
	for k, a := range groups {
		out = append(out, row(k, a))
	}
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// rankWithin partitions rows, orders each partition by less, and
// keeps the rows whose 1-based ordinal rank is at most limit. Output
// partitions are ordered by partition key ascending. The ordinal is
// row-number style: ties in less still receive distinct ranks.
func rankWithin[R any](rows []R, part func(R) string, less func(a, b R) bool, limit int, assign func(R, int) R) []R {
	partitions := make(map[string][]R)
	keys := make([]string, 0)
	for _, r := range rows {
		k := part(r)
		if _, seen := partitions[k]; !seen {
			keys = append(keys, k)
		}
		partitions[k] = append(partitions[k], r)
	}
	sort.Strings(keys)

	var out []R
	for _, k := range keys {
		p := partitions[k]
		sort.Slice(p, func(i, j int) bool { return less(p[i], p[j]) })
		for i, r := range p {
			if i >= limit {
				break
			}
			out = append(out, assign(r, i+1))
		}
	}
	return out
}

// limit truncates rows to at most n entries.
func limit[R any](rows []R, n int) []R {
	if n >= 0 && len(rows) > n {
		return rows[:n]
	}
	return rows
}
