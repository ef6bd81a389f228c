// Package tsp - fitness evaluator.
//
// Fitness is relative to one population snapshot: with M the worst cost,
// an individual scores M − cost (the worst scores zero), and the scores are
// normalized into a probability distribution. Probabilities are never stored
// on a Tour; they are recomputed every generation.
package tsp

import (
	"cmp"
	"math"
	"slices"

	"github.com/katalvlaran/evotsp/matrix"
	"gonum.org/v1/gonum/floats"
)

// FitnessProbabilities converts costs into selection probabilities
// p_i = (max − c_i) / Σ_j (max − c_j).
//
// Degenerate populations (every cost equal, a single member, or a
// non-finite sum) fall back to the uniform distribution 1/len(costs).
//
// Complexity: O(P).
func FitnessProbabilities(costs []float64) []float64 {
	var n = len(costs)
	if n == 0 {
		return nil
	}

	var (
		maxCost = floats.Max(costs)
		fit     = make([]float64, n)
		i       int
	)
	for i = 0; i < n; i++ {
		fit[i] = maxCost - costs[i]
	}

	sum := floats.Sum(fit)
	if !(sum > 0) || math.IsInf(sum, 0) {
		for i = 0; i < n; i++ {
			fit[i] = 1 / float64(n)
		}
		return fit
	}
	floats.Scale(1/sum, fit)

	return fit
}

// PopulationFitness evaluates pop under m and returns its fitness probabilities.
//
// Complexity: O(P·n).
func PopulationFitness(m *matrix.CostMatrix, pop []Tour) ([]float64, error) {
	costs, err := PopulationCosts(m, pop)
	if err != nil {
		return nil, err
	}

	return FitnessProbabilities(costs), nil
}

// rankOrder returns population indices sorted by descending probability.
// Ties keep index order, so the ranking is deterministic.
//
// Complexity: O(P log P).
func rankOrder(probs []float64) []int {
	order := make([]int, len(probs))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(probs[b], probs[a])
	})

	return order
}
