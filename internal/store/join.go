//-------------------------------------------------------------------------
//
// pgEdge Retail Reports
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package store

// Pair is one matched row pair from a join.
type Pair[L, R any] struct {
	Left  L
	Right R
}

// HashJoin equality-joins two row slices on integer keys, building a hash
// table over the right side. Output preserves left insertion order, and
// matches for one left row preserve right insertion order. Not a query
// planner: just the fixed-report join primitive.
func HashJoin[L, R any](left []L, right []R, leftKey func(L) (int64, bool), rightKey func(R) int64) []Pair[L, R] {
	index := make(map[int64][]int, len(right))
	for i, r := range right {
		k := rightKey(r)
		index[k] = append(index[k], i)
	}

	var out []Pair[L, R]
	for _, l := range left {
		k, ok := leftKey(l)
		if !ok {
			continue
		}
		for _, i := range index[k] {
			out = append(out, Pair[L, R]{Left: l, Right: right[i]})
		}
	}
	return out
}

// LeftPair is one output row of a left join; Right is nil when the left
// row had no match.
type LeftPair[L, R any] struct {
	Left  L
	Right *R
}

// LeftJoin equality-joins like HashJoin but keeps unmatched left rows with
// a nil right side.
func LeftJoin[L, R any](left []L, right []R, leftKey func(L) (int64, bool), rightKey func(R) int64) []LeftPair[L, R] {
	index := make(map[int64][]int, len(right))
	for i, r := range right {
		k := rightKey(r)
		index[k] = append(index[k], i)
	}

	var out []LeftPair[L, R]
	for _, l := range left {
		k, ok := leftKey(l)
		matches := index[k]
		if !ok || len(matches) == 0 {
			out = append(out, LeftPair[L, R]{Left: l})
			continue
		}
		for _, i := range matches {
			out = append(out, LeftPair[L, R]{Left: l, Right: &right[i]})
		}
	}
	return out
}
