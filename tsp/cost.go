// Package tsp - cost utilities.
//
// A tour's cost is the sum of its consecutive edges plus the closing edge
// back to the first city. Costs are stabilized to 1e-9 so that rotations and
// reversals of the same cycle report bit-identical values across platforms.
//
// Complexity:
//   - O(n) per tour, O(1) extra space.
package tsp

import (
	"math"

	"github.com/katalvlaran/evotsp/matrix"
)

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// TourCost returns the closed-cycle cost of t under m.
//
// Contract:
//   - m non-nil (ErrNilMatrix),
//   - t is a permutation of 0..m.N()-1 (ErrDimensionMismatch / ErrInvalidTour).
//
// Complexity: O(n).
func TourCost(m *matrix.CostMatrix, t Tour) (float64, error) {
	if err := validateMatrix(m); err != nil {
		return 0, err
	}
	if err := t.Validate(m.N()); err != nil {
		return 0, err
	}

	return tourCost(m, t), nil
}

// tourCost is the unchecked hot-path variant of TourCost.
//
// Complexity: O(n).
func tourCost(m *matrix.CostMatrix, t Tour) float64 {
	var (
		n   = len(t)
		sum float64
		i   int
	)
	if n == 0 {
		return 0
	}
	for i = 0; i < n-1; i++ {
		sum += m.At(t[i], t[i+1])
	}
	sum += m.At(t[n-1], t[0])

	return round1e9(sum)
}

// PopulationCosts validates every member of pop and returns their costs.
//
// Complexity: O(P·n).
func PopulationCosts(m *matrix.CostMatrix, pop []Tour) ([]float64, error) {
	if err := validateMatrix(m); err != nil {
		return nil, err
	}
	for _, t := range pop {
		if err := t.Validate(m.N()); err != nil {
			return nil, err
		}
	}

	return populationCosts(m, pop, 1), nil
}

// populationCosts evaluates every member, fanning out over workers goroutines.
// Each slot of the result is written by exactly one task.
//
// Complexity: O(P·n) work.
func populationCosts(m *matrix.CostMatrix, pop []Tour, workers int) []float64 {
	costs := make([]float64, len(pop))
	forEach(len(pop), workers, func(i int) {
		costs[i] = tourCost(m, pop[i])
	})

	return costs
}

// BestOf re-scans pop and returns its lowest-cost member (first on ties).
// Returns ErrDimensionMismatch for an empty population.
//
// Complexity: O(P·n).
func BestOf(m *matrix.CostMatrix, pop []Tour) (Tour, float64, error) {
	if len(pop) == 0 {
		return nil, 0, ErrDimensionMismatch
	}
	costs, err := PopulationCosts(m, pop)
	if err != nil {
		return nil, 0, err
	}
	i := argMin(costs)

	return pop[i].Clone(), costs[i], nil
}

// argMin returns the index of the first minimum of xs (−1 when empty).
//
// Complexity: O(n).
func argMin(xs []float64) int {
	var best = -1
	for i, x := range xs {
		if best < 0 || x < xs[best] {
			best = i
		}
	}

	return best
}

// round1e9 returns x rounded to 1e-9 absolute precision.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
