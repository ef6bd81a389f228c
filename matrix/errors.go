// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every constructor returns one of these (possibly wrapped with position
// context via fmt.Errorf("...: %w", ErrX)); callers match with errors.Is.

package matrix

import "errors"

var (
	// ErrTooSmall is returned when the table has fewer than two cities.
	ErrTooSmall = errors.New("matrix: at least two cities are required")

	// ErrNonSquare signals that a square table was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrDimensionMismatch indicates that the number of supplied values does not
	// match the declared dimension (ragged rows, short triangles, etc.).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrAsymmetry signals that |a_ij − a_ji| exceeded the symmetry tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNonZeroDiagonal signals a diagonal entry farther than eps from zero.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero within eps")

	// ErrNaNInf signals a NaN or ±Inf entry. Incomplete tables are not supported.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNegativeWeight signals a negative travel cost.
	ErrNegativeWeight = errors.New("matrix: negative weight")

	// ErrNilMatrix indicates that a nil source matrix was passed to a builder.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
