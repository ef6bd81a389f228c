// SPDX-License-Identifier: MIT
// Package matrix: constructors for CostMatrix.
//
// Every builder writes into a fresh *mat.SymDense and delegates to freeze,
// so validation policy lives in exactly one place (validators.go).

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Point is a city location in the plane.
type Point struct {
	X, Y float64
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// FromPoints builds a Euclidean cost table over pts. Distances are not rounded.
//
// Complexity: O(n²).
func FromPoints(pts []Point) (*CostMatrix, error) {
	var n = len(pts)
	if n < 2 {
		return nil, ErrTooSmall
	}
	s := mat.NewSymDense(n, nil)

	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			s.SetSym(i, j, pts[i].Distance(pts[j]))
		}
	}

	return freeze(s)
}

// FromLowerTriangle builds a table from its row-wise lower triangle.
// With diagonal=true vals holds a_00, a_10, a_11, a_20, a_21, a_22, ...
// (n(n+1)/2 values); otherwise a_10, a_20, a_21, ... (n(n−1)/2 values).
//
// Complexity: O(n²).
func FromLowerTriangle(n int, vals []float64, diagonal bool) (*CostMatrix, error) {
	if n < 2 {
		return nil, ErrTooSmall
	}
	if len(vals) != triangleLen(n, diagonal) {
		return nil, fmt.Errorf("lower triangle of order %d: got %d values: %w", n, len(vals), ErrDimensionMismatch)
	}
	s := mat.NewSymDense(n, nil)

	var (
		i, j, hi int
		k        int
	)
	for i = 0; i < n; i++ {
		hi = i - 1
		if diagonal {
			hi = i
		}
		for j = 0; j <= hi; j++ {
			s.SetSym(i, j, vals[k])
			k++
		}
	}

	return freeze(s)
}

// FromUpperTriangle builds a table from its row-wise upper triangle.
// With diagonal=true vals holds a_00, a_01, ..., a_0(n−1), a_11, ...;
// otherwise a_01, ..., a_0(n−1), a_12, ...
//
// Complexity: O(n²).
func FromUpperTriangle(n int, vals []float64, diagonal bool) (*CostMatrix, error) {
	if n < 2 {
		return nil, ErrTooSmall
	}
	if len(vals) != triangleLen(n, diagonal) {
		return nil, fmt.Errorf("upper triangle of order %d: got %d values: %w", n, len(vals), ErrDimensionMismatch)
	}
	s := mat.NewSymDense(n, nil)

	var (
		i, j, lo int
		k        int
	)
	for i = 0; i < n; i++ {
		lo = i + 1
		if diagonal {
			lo = i
		}
		for j = lo; j < n; j++ {
			s.SetSym(i, j, vals[k])
			k++
		}
	}

	return freeze(s)
}

// FromRows builds a table from a full square [][]float64. Symmetry is checked
// against both triangles before the data is folded into symmetric storage.
//
// Complexity: O(n²).
func FromRows(rows [][]float64) (*CostMatrix, error) {
	var n = len(rows)
	if n < 2 {
		return nil, ErrTooSmall
	}
	var i, j int
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(rows[i]), n, ErrNonSquare)
		}
	}
	if err := validateRowsSymmetric(rows, symTol); err != nil {
		return nil, err
	}

	s := mat.NewSymDense(n, nil)
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			s.SetSym(i, j, rows[i][j])
		}
	}

	return freeze(s)
}

// FromSymmetric copies any gonum symmetric matrix into a CostMatrix.
//
// Complexity: O(n²).
func FromSymmetric(src mat.Symmetric) (*CostMatrix, error) {
	if src == nil {
		return nil, ErrNilMatrix
	}
	var n = src.SymmetricDim()
	if n < 2 {
		return nil, ErrTooSmall
	}
	s := mat.NewSymDense(n, nil)
	s.CopySym(src)

	return freeze(s)
}

// triangleLen returns the number of entries in a triangle of order n.
func triangleLen(n int, diagonal bool) int {
	if diagonal {
		return n * (n + 1) / 2
	}

	return n * (n - 1) / 2
}
