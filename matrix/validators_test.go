// Package matrix_test contains unit tests for CostMatrix validation.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/evotsp/matrix"
	"github.com/stretchr/testify/require"
)

// TestFromRows_Validation covers every sentinel reachable from FromRows.
func TestFromRows_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rows    [][]float64
		wantErr error
	}{
		{"nil", nil, matrix.ErrTooSmall},
		{"single city", [][]float64{{0}}, matrix.ErrTooSmall},
		{"ragged", [][]float64{{0, 1}, {1}}, matrix.ErrNonSquare},
		{"asymmetric", [][]float64{{0, 1}, {2, 0}}, matrix.ErrAsymmetry},
		{"nan", [][]float64{{0, math.NaN()}, {math.NaN(), 0}}, matrix.ErrNaNInf},
		{"inf", [][]float64{{0, math.Inf(1)}, {math.Inf(1), 0}}, matrix.ErrNaNInf},
		{"negative", [][]float64{{0, -1}, {-1, 0}}, matrix.ErrNegativeWeight},
		{"diagonal", [][]float64{{1, 2}, {2, 0}}, matrix.ErrNonZeroDiagonal},
		{"ok", [][]float64{{0, 5}, {5, 0}}, nil},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m, err := matrix.FromRows(tc.rows)
			if tc.wantErr == nil {
				require.NoError(t, err)
				require.NotNil(t, m)
				return
			}
			require.Error(t, err)
			require.Truef(t, errors.Is(err, tc.wantErr),
				"expected errors.Is(%v, %v)", err, tc.wantErr)
			require.Nil(t, m)
		})
	}
}

// TestFromRows_ToleratesTinyAsymmetry checks the 1e-12 symmetry tolerance.
func TestFromRows_ToleratesTinyAsymmetry(t *testing.T) {
	t.Parallel()

	m, err := matrix.FromRows([][]float64{
		{0, 1},
		{1 + 1e-14, 0},
	})
	require.NoError(t, err)
	require.InDelta(t, 1.0, m.At(0, 1), 1e-12)
	require.Equal(t, m.At(0, 1), m.At(1, 0))
}
