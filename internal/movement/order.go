package movement

import (
	"cmp"
	"slices"
)

// Order returns the permutation of [0, len(keys)) that visits keys in
// non-decreasing order according to compare. The sort is stable: indices of
// equal keys keep their original relative order. keys is not modified.
func Order[K any](keys []K, compare func(a, b K) int) []int {
	perm := make([]int, len(keys))
	for i := range perm {
		perm[i] = i
	}

	slices.SortStableFunc(perm, func(i, j int) int {
		return compare(keys[i], keys[j])
	})

	return perm
}

// OrderInts orders integer keys.
func OrderInts(keys []int) []int {
	return Order(keys, cmp.Compare[int])
}

// OrderFloat64s orders float64 keys. NaN sorts before every other value.
func OrderFloat64s(keys []float64) []int {
	return Order(keys, cmp.Compare[float64])
}

// OrderFloat32s orders float32 keys. NaN sorts before every other value.
func OrderFloat32s(keys []float32) []int {
	return Order(keys, cmp.Compare[float32])
}
