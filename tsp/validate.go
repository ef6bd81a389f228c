// Package tsp - validation utilities.
//
// This file contains small, side-effect free checks for:
//  1. Options (ranges and combinations),
//  2. tours (permutation invariant),
//  3. the cost matrix handed to the engine.
//
// No logging, no panics on user input - only sentinel errors from types.go,
// wrapped with the offending field where that helps the caller.
package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/evotsp/matrix"
)

// Validate checks internal consistency of o.
//
// Complexity: O(1).
func (o Options) Validate() error {
	if o.PopulationSize < 1 {
		return fmt.Errorf("%w: PopulationSize must be >= 1, got %d", ErrInvalidOptions, o.PopulationSize)
	}
	if o.Generations < 0 {
		return fmt.Errorf("%w: Generations must be >= 0, got %d", ErrInvalidOptions, o.Generations)
	}
	if !isUnit(o.CrossoverRate) {
		return fmt.Errorf("%w: CrossoverRate must be in [0,1], got %g", ErrInvalidOptions, o.CrossoverRate)
	}
	if o.EliteSize < 0 || o.EliteSize > o.PopulationSize {
		return fmt.Errorf("%w: EliteSize must be in [0,%d], got %d", ErrInvalidOptions, o.PopulationSize, o.EliteSize)
	}
	if o.RefineEvery < 0 {
		return fmt.Errorf("%w: RefineEvery must be >= 0, got %d", ErrInvalidOptions, o.RefineEvery)
	}
	if err := o.Mutation.Validate(); err != nil {
		return err
	}
	switch o.Selection {
	case RankSelection:
	case TournamentSelection:
		if o.TournamentSize < 1 {
			return fmt.Errorf("%w: TournamentSize must be >= 1, got %d", ErrInvalidOptions, o.TournamentSize)
		}
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedSelection, int(o.Selection))
	}
	if o.Eps < 0 || math.IsNaN(o.Eps) || math.IsInf(o.Eps, 0) {
		return fmt.Errorf("%w: Eps must be a finite value >= 0, got %g", ErrInvalidOptions, o.Eps)
	}
	if o.Workers < 0 {
		return fmt.Errorf("%w: Workers must be >= 0, got %d", ErrInvalidOptions, o.Workers)
	}

	return nil
}

// Validate checks the schedule: both rates in [0,1] and End ≤ Start.
//
// Complexity: O(1).
func (s MutationSchedule) Validate() error {
	if !isUnit(s.Start) || !isUnit(s.End) {
		return fmt.Errorf("%w: mutation rates must be in [0,1], got start=%g end=%g", ErrInvalidOptions, s.Start, s.End)
	}
	if s.End > s.Start {
		return fmt.Errorf("%w: mutation schedule must not increase, got start=%g end=%g", ErrInvalidOptions, s.Start, s.End)
	}

	return nil
}

// ValidatePermutation checks that perm is a permutation of {0..n-1} of length n.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if n <= 0 || len(perm) != n {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		if v < 0 || v >= n || seen[v] {
			return ErrInvalidTour
		}
		seen[v] = true
	}

	return nil
}

// validateMatrix rejects nil matrices. Every other invariant is enforced by
// the matrix package at construction time.
func validateMatrix(m *matrix.CostMatrix) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// isUnit reports whether x is a finite value in [0,1].
func isUnit(x float64) bool {
	return x >= 0 && x <= 1
}
