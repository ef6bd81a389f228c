// Package tsp - swap mutation and the dynamic mutation-rate schedule.
package tsp

import "math/rand"

// MutationSchedule is a linear per-offspring mutation probability:
// Start at generation 0, End at the final generation.
type MutationSchedule struct {
	Start float64
	End   float64
}

// DefaultMutationSchedule returns 0.5·(1 − g/G): exploration early,
// exploitation late.
func DefaultMutationSchedule() MutationSchedule {
	return MutationSchedule{Start: 0.5, End: 0}
}

// Rate returns the mutation probability for generation g of a run with
// maxGenerations generations: Start + (End − Start)·g/maxGenerations.
// g is clamped to [0, maxGenerations]; maxGenerations ≤ 0 yields Start.
//
// Complexity: O(1).
func (s MutationSchedule) Rate(generation, maxGenerations int) float64 {
	if maxGenerations <= 0 {
		return s.Start
	}
	g := min(max(generation, 0), maxGenerations)
	if g == maxGenerations {
		return s.End
	}

	return s.Start + (s.End-s.Start)*float64(g)/float64(maxGenerations)
}

// SwapMutation exchanges the cities at two distinct positions drawn
// uniformly at random (resampling on collision). Tours shorter than two
// cities are left unchanged. The result is always a permutation.
//
// Complexity: O(1) expected.
func SwapMutation(t Tour, rng *rand.Rand) {
	var n = len(t)
	if n < 2 {
		return
	}
	i := rng.Intn(n)
	j := rng.Intn(n)
	for j == i {
		j = rng.Intn(n)
	}
	t[i], t[j] = t[j], t[i]
}
