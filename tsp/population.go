// Package tsp - population initializer.
//
// InitialPopulation rejection-samples uniform permutations into a set until
// the requested number of distinct tours is collected. Distinctness is a
// one-time guarantee of initialization: later generations may (and usually
// do) contain duplicates.
package tsp

import (
	"fmt"
	"math/rand"
)

// InitialPopulation returns size tours over n cities, pairwise distinct
// whenever size ≤ n!. When size exceeds n! (tiny instances), all n! distinct
// permutations are collected first and the remainder is padded with random
// permutations, so the call always terminates.
//
// Complexity: O(size·n) expected while size ≪ n!; coupon-collector bound
// O(n!·log(n!)·n) draws when size approaches n!.
func InitialPopulation(n, size int, rng *rand.Rand) ([]Tour, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d cities", ErrDimensionMismatch, n)
	}
	if size < 1 {
		return nil, fmt.Errorf("%w: population size %d", ErrInvalidOptions, size)
	}

	var (
		distinct = distinctLimit(n, size)
		pop      = make([]Tour, 0, size)
		seen     = make(map[string]struct{}, distinct)
		buf      = make([]byte, 0, 2*n)
		key      string
		ok       bool
	)
	for len(pop) < distinct {
		t := RandomPermutation(n, rng)
		key, buf = tourKey(t, buf)
		if _, ok = seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		pop = append(pop, t)
	}
	for len(pop) < size {
		pop = append(pop, RandomPermutation(n, rng))
	}

	return pop, nil
}

// distinctLimit returns min(n!, limit) without overflowing.
//
// Complexity: O(min(n, log limit)).
func distinctLimit(n, limit int) int {
	var (
		f = 1
		k int
	)
	for k = 2; k <= n; k++ {
		if f > limit/k {
			return limit
		}
		f *= k
	}

	return min(f, limit)
}
