package stats

import (
	"math"
)

// ShannonEntropy calculates the Shannon entropy of a distribution of counts
// in bits (log base 2). Non-positive counts are ignored.
func ShannonEntropy(counts []int) float64 {
	total := 0
	for _, c := range counts {
		if c > 0 {
			total += c
		}
	}
	if total == 0 {
		return 0
	}

	var entropy float64
	for _, c := range counts {
		if c > 0 {
			p := float64(c) / float64(total)
			entropy -= p * math.Log2(p)
		}
	}

	return entropy
}

// NormalizedEntropy divides ShannonEntropy by log2(n), where n is the number
// of categories, giving a value in [0, 1].
func NormalizedEntropy(counts []int) float64 {
	if len(counts) <= 1 {
		return 0
	}
	return ShannonEntropy(counts) / math.Log2(float64(len(counts)))
}
