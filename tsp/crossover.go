// Package tsp - single-cut order crossover.
//
// Given parents P1, P2 of length n and a cut c ∈ [1, n−1]:
//
//	A = P1[:c] followed by the cities of P2 not yet in A, in P2 order,
//	B = P2[:c] followed by the cities of P1 not yet in B, in P1 order.
//
// Both children are permutations of the same city set by construction:
// the prefix contributes distinct cities and the scan of the other parent
// contributes exactly the missing ones.
package tsp

import (
	"fmt"
	"math/rand"
)

// OrderCrossover draws a cut uniformly from 1..n−1 and returns both children.
// Parents are validated; for n < 2 the children are copies of the parents.
//
// Complexity: O(n).
func OrderCrossover(p1, p2 Tour, rng *rand.Rand) (Tour, Tour, error) {
	if err := validateParents(p1, p2); err != nil {
		return nil, nil, err
	}
	a, b := orderCrossover(p1, p2, rng)

	return a, b, nil
}

// CrossoverAt is the deterministic form of OrderCrossover with an explicit cut.
// Returns ErrDimensionMismatch when cut ∉ [1, n−1] (n ≥ 2).
//
// Complexity: O(n).
func CrossoverAt(p1, p2 Tour, cut int) (Tour, Tour, error) {
	if err := validateParents(p1, p2); err != nil {
		return nil, nil, err
	}
	var n = len(p1)
	if n < 2 {
		return p1.Clone(), p2.Clone(), nil
	}
	if cut < 1 || cut > n-1 {
		return nil, nil, fmt.Errorf("%w: cut %d outside [1,%d]", ErrDimensionMismatch, cut, n-1)
	}

	return orderChild(p1, p2, cut), orderChild(p2, p1, cut), nil
}

// orderCrossover is the unchecked engine path.
func orderCrossover(p1, p2 Tour, rng *rand.Rand) (Tour, Tour) {
	var n = len(p1)
	if n < 2 {
		return p1.Clone(), p2.Clone()
	}
	cut := 1 + rng.Intn(n-1)

	return orderChild(p1, p2, cut), orderChild(p2, p1, cut)
}

// orderChild copies head[:cut] and appends the remaining cities in tail order.
//
// Complexity: O(n) time, O(n) space.
func orderChild(head, tail Tour, cut int) Tour {
	var (
		n     = len(head)
		child = make(Tour, 0, n)
		seen  = make([]bool, n)
	)
	for _, c := range head[:cut] {
		child = append(child, c)
		seen[c] = true
	}
	for _, c := range tail {
		if !seen[c] {
			child = append(child, c)
			seen[c] = true
		}
	}

	return child
}

// validateParents checks equal length and the permutation invariant.
func validateParents(p1, p2 Tour) error {
	if len(p1) != len(p2) {
		return fmt.Errorf("%w: parents of length %d and %d", ErrDimensionMismatch, len(p1), len(p2))
	}
	if len(p1) == 0 {
		return ErrDimensionMismatch
	}
	if err := p1.Validate(len(p1)); err != nil {
		return err
	}

	return p2.Validate(len(p2))
}
