package util

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// GetKeys returns the keys of m in ascending order.
func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// PosMod is a % n folded into [0, n).
func PosMod[A constraints.Integer](a A, n A) A {
	res := a % n
	if res < 0 {
		res += n
	}
	return res
}

// FloorDiv rounds toward negative infinity, so -1/12 is -1 and not 0.
func FloorDiv[A constraints.Signed](a A, n A) A {
	q := a / n
	if (a%n != 0) && ((a < 0) != (n < 0)) {
		q--
	}
	return q
}

func Unique[A comparable](items []A) []A {
	seen := make(map[A]bool, len(items))
	var res []A
	for _, v := range items {
		if !seen[v] {
			seen[v] = true
			res = append(res, v)
		}
	}
	return res
}
