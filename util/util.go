package util

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// Mod is the mathematical modulo: the result always lies in 0..m-1,
// also for negative a.
func Mod[A constraints.Integer](a A, m A) A {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

func IndexOf[A comparable](items []A, item A) int {
	for i, v := range items {
		if v == item {
			return i
		}
	}
	return -1
}

// AppendUnique appends item unless it is already present, keeping
// insertion order.
func AppendUnique[A comparable](items []A, item A) []A {
	if IndexOf(items, item) >= 0 {
		return items
	}
	return append(items, item)
}
