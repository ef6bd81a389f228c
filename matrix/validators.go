// SPDX-License-Identifier: MIT
// Package matrix: validation shared by every constructor.
//
// Checks, in priority order:
//   - shape: n ≥ 2,
//   - NaN/±Inf anywhere,
//   - diagonal ≈ 0 (|a_ii| ≤ tol),
//   - off-diagonal ≥ 0.
//
// Symmetry is structural for *mat.SymDense; validateRowsSymmetric covers the
// one builder that starts from unconstrained [][]float64 input.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// symTol is the structural tolerance for symmetry and diagonal checks.
const symTol = 1e-12

// validateSym enforces the CostMatrix invariants on symmetric storage.
//
// Complexity: O(n²).
func validateSym(s *mat.SymDense, tol float64) error {
	if s == nil {
		return ErrNilMatrix
	}
	var n = s.SymmetricDim()
	if n < 2 {
		return ErrTooSmall
	}

	var (
		i, j int
		x    float64
	)
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			x = s.At(i, j)
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return fmt.Errorf("entry (%d,%d): %w", i, j, ErrNaNInf)
			}
			if i == j {
				if math.Abs(x) > tol {
					return fmt.Errorf("entry (%d,%d)=%g: %w", i, j, x, ErrNonZeroDiagonal)
				}
				continue
			}
			if x < 0 {
				return fmt.Errorf("entry (%d,%d)=%g: %w", i, j, x, ErrNegativeWeight)
			}
		}
	}

	return nil
}

// validateRowsSymmetric checks |a_ij − a_ji| ≤ tol for a square [][]float64.
// NaN entries are reported as ErrNaNInf rather than as asymmetry.
//
// Complexity: O(n²).
func validateRowsSymmetric(rows [][]float64, tol float64) error {
	var (
		n        = len(rows)
		i, j     int
		aij, aji float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			aij = rows[i][j]
			aji = rows[j][i]
			if math.IsNaN(aij) || math.IsNaN(aji) {
				return fmt.Errorf("entry (%d,%d): %w", i, j, ErrNaNInf)
			}
			if math.Abs(aij-aji) > tol {
				return fmt.Errorf("entries (%d,%d)=%g and (%d,%d)=%g: %w", i, j, aij, j, i, aji, ErrAsymmetry)
			}
		}
	}

	return nil
}
