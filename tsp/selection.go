// Package tsp - parent selection strategies.
//
// Both strategies read the fitness probabilities of one population snapshot
// and return population indices:
//
//   - Rank: individuals are sorted by descending probability and given linear
//     weights N, N−1, …, 1. Drawing by rank instead of raw fitness keeps a
//     single cost outlier from dominating selection pressure.
//   - Tournament: k uniform draws with replacement; the fittest draw wins.
//
// A Picker is built once per generation and then drawn from repeatedly.
package tsp

import (
	"fmt"
	"math/rand"
	"sort"
)

// Picker draws one parent index from a population snapshot.
type Picker interface {
	Pick(rng *rand.Rand) int
}

// RankPicker samples from the linear rank distribution of a snapshot.
type RankPicker struct {
	order []int     // population indices, best first
	cum   []float64 // cumulative rank probabilities, aligned with order
}

// NewRankPicker prepares rank selection over probs.
//
// Complexity: O(P log P).
func NewRankPicker(probs []float64) *RankPicker {
	var (
		n     = len(probs)
		order = rankOrder(probs)
		cum   = make([]float64, n)
		total = float64(n) * float64(n+1) / 2
		acc   float64
		r     int
	)
	for r = 0; r < n; r++ {
		acc += float64(n-r) / total
		cum[r] = acc
	}

	return &RankPicker{order: order, cum: cum}
}

// Pick draws u ∈ [0,1) and returns the first ranked individual whose
// cumulative probability is ≥ u; if rounding leaves none, the lowest-ranked
// individual is returned. Returns −1 on an empty snapshot.
//
// Complexity: O(log P).
func (p *RankPicker) Pick(rng *rand.Rand) int {
	var n = len(p.order)
	if n == 0 {
		return -1
	}
	u := rng.Float64()
	r := sort.SearchFloat64s(p.cum, u)
	if r >= n {
		return p.order[n-1]
	}

	return p.order[r]
}

// TournamentPicker runs k-way tournaments with replacement.
type TournamentPicker struct {
	probs []float64
	k     int
}

// NewTournamentPicker prepares tournament selection; k < 1 is treated as 1.
//
// Complexity: O(1).
func NewTournamentPicker(probs []float64, k int) *TournamentPicker {
	return &TournamentPicker{probs: probs, k: max(k, 1)}
}

// Pick samples k indices uniformly with replacement and returns the one with
// the highest probability (the earliest draw wins ties). Returns −1 on an
// empty snapshot.
//
// Complexity: O(k).
func (p *TournamentPicker) Pick(rng *rand.Rand) int {
	var n = len(p.probs)
	if n == 0 {
		return -1
	}

	var (
		best = -1
		idx  int
		i    int
	)
	for i = 0; i < p.k; i++ {
		idx = rng.Intn(n)
		if best < 0 || p.probs[idx] > p.probs[best] {
			best = idx
		}
	}

	return best
}

// PickerFactory builds a Picker over one generation's probabilities.
type PickerFactory func(probs []float64) Picker

// NewPickerFactory resolves kind once; the returned factory never fails.
//
// Complexity: O(1).
func NewPickerFactory(kind SelectionKind, tournamentSize int) (PickerFactory, error) {
	switch kind {
	case RankSelection:
		return func(probs []float64) Picker { return NewRankPicker(probs) }, nil
	case TournamentSelection:
		return func(probs []float64) Picker { return NewTournamentPicker(probs, tournamentSize) }, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedSelection, int(kind))
	}
}

// NewPicker builds the Picker for kind over probs.
//
// Complexity: as the chosen constructor.
func NewPicker(kind SelectionKind, probs []float64, tournamentSize int) (Picker, error) {
	factory, err := NewPickerFactory(kind, tournamentSize)
	if err != nil {
		return nil, err
	}

	return factory(probs), nil
}
