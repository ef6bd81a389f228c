// SPDX-License-Identifier: MIT
// Package matrix: CostMatrix, the symmetric read-only cost table.
//
// Storage is split in two:
//   - sym: a gonum *mat.SymDense, the canonical symmetric representation
//     exposed through Sym() for interop with gonum routines;
//   - w:   a flat row-major copy (len n*n) so hot paths read w[i*n+j]
//     without interface dispatch or bounds re-validation.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// CostMatrix is an immutable symmetric n×n table of non-negative travel costs
// with a zero diagonal. The zero value is not usable; build one with the
// From* constructors.
type CostMatrix struct {
	n   int           // number of cities
	sym *mat.SymDense // canonical symmetric storage
	w   []float64     // row-major cache, len == n*n
}

// N returns the number of cities.
// Complexity: O(1).
func (m *CostMatrix) N() int {
	return m.n
}

// At returns the cost of travelling between cities i and j.
// Indices are not re-validated: out-of-range indices panic like a slice access.
// Complexity: O(1).
func (m *CostMatrix) At(i, j int) float64 {
	return m.w[i*m.n+j]
}

// Row returns a copy of row i.
// Complexity: O(n).
func (m *CostMatrix) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.n {
		return nil, fmt.Errorf("CostMatrix.Row(%d): %w", i, ErrDimensionMismatch)
	}
	out := make([]float64, m.n)
	copy(out, m.w[i*m.n:(i+1)*m.n])

	return out, nil
}

// Sym returns a read-only gonum view of the table.
// The returned value must not be type-asserted back to *mat.SymDense and mutated.
// Complexity: O(1).
func (m *CostMatrix) Sym() mat.Symmetric {
	return m.sym
}

// String returns a compact description, e.g. "CostMatrix(70×70)".
func (m *CostMatrix) String() string {
	return fmt.Sprintf("CostMatrix(%d×%d)", m.n, m.n)
}

// freeze validates s and materializes the flat cache. s is owned by the
// returned CostMatrix afterwards.
//
// Complexity: O(n²).
func freeze(s *mat.SymDense) (*CostMatrix, error) {
	if err := validateSym(s, symTol); err != nil {
		return nil, err
	}

	var (
		n    = s.SymmetricDim()
		w    = make([]float64, n*n)
		i, j int
		x    float64
	)
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			x = s.At(i, j)
			w[i*n+j] = x
			w[j*n+i] = x
		}
	}

	return &CostMatrix{n: n, sym: s, w: w}, nil
}
