// Package tsp - 2-opt local search refiner.
//
// TwoOpt improves a tour in place until no segment reversal reduces its cost.
// For indices 1 ≤ i < j < n, with a=T[i−1], b=T[i], c=T[j], d=T[(j+1) mod n],
// reversing T[i..j] replaces edges (a,b),(c,d) with (a,c),(b,d):
//
//	Δ = w(a,c) + w(b,d) − w(a,b) − w(c,d)
//
// A move is applied as soon as Δ < −eps and the sweep continues from the next
// pair on the modified tour. Sweeps repeat until one completes without a
// move, i.e. the tour is a local optimum of the 2-opt neighborhood.
//
// Design:
//   - Deterministic scanning order; no RNG usage.
//   - Reads go through the CostMatrix flat cache (no interface indirection).
//   - eps guards against endless loops on floating-point noise.
//
// Complexity:
//   - One sweep: O(n²) candidate checks, O(n) per applied move.
//   - Number of sweeps is unbounded a priori but small in practice.
package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/evotsp/matrix"
)

// TwoOpt runs 2-opt on t in place and returns the number of sweeps performed
// (the last one applies no move) and the total cost reduction.
//
// Contract:
//   - m non-nil, t a permutation of 0..m.N()-1, eps finite and ≥ 0.
//
// Complexity: O(sweeps·n²).
func TwoOpt(m *matrix.CostMatrix, t Tour, eps float64) (int, float64, error) {
	if err := validateMatrix(m); err != nil {
		return 0, 0, err
	}
	if err := t.Validate(m.N()); err != nil {
		return 0, 0, err
	}
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		return 0, 0, fmt.Errorf("%w: eps %g", ErrInvalidOptions, eps)
	}
	sweeps, gain := twoOpt(m, t, eps)

	return sweeps, round1e9(gain), nil
}

// twoOpt is the unchecked engine path.
func twoOpt(m *matrix.CostMatrix, t Tour, eps float64) (int, float64) {
	var (
		n      = len(t)
		sweeps int
		gain   float64
	)
	for {
		sweeps++
		improved := false

		var (
			a, b, c, d int
			i, j       int
			delta      float64
		)
		for i = 1; i < n-1; i++ {
			for j = i + 1; j < n; j++ {
				a = t[i-1]
				b = t[i]
				c = t[j]
				d = t[(j+1)%n]

				delta = (m.At(a, c) + m.At(b, d)) - (m.At(a, b) + m.At(c, d))
				if delta < -eps {
					reverseInPlace(t, i, j)
					gain -= delta
					improved = true
				}
			}
		}

		if !improved {
			return sweeps, gain
		}
	}
}

// RefinePopulation runs 2-opt on every member of pop in place, using up to
// workers goroutines, and returns the total cost reduction.
//
// Complexity: O(P·sweeps·n²) work.
func RefinePopulation(m *matrix.CostMatrix, pop []Tour, eps float64, workers int) (float64, error) {
	if err := validateMatrix(m); err != nil {
		return 0, err
	}
	for _, t := range pop {
		if err := t.Validate(m.N()); err != nil {
			return 0, err
		}
	}
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		return 0, fmt.Errorf("%w: eps %g", ErrInvalidOptions, eps)
	}

	return refinePopulation(m, pop, eps, workers), nil
}

// refinePopulation is the unchecked engine path. Each task owns pop[i] and
// gains[i] exclusively.
func refinePopulation(m *matrix.CostMatrix, pop []Tour, eps float64, workers int) float64 {
	gains := make([]float64, len(pop))
	forEach(len(pop), workers, func(i int) {
		_, gains[i] = twoOpt(m, pop[i], eps)
	})

	var total float64
	for _, g := range gains {
		total += g
	}

	return round1e9(total)
}
