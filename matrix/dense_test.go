package matrix_test

import (
	"testing"

	"github.com/katalvlaran/evotsp/matrix"
	"github.com/stretchr/testify/require"
)

func TestCostMatrix_RowIsCopy(t *testing.T) {
	t.Parallel()

	m, err := matrix.FromRows([][]float64{
		{0, 2, 9},
		{2, 0, 6},
		{9, 6, 0},
	})
	require.NoError(t, err)

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 0, 6}, row)

	row[0] = 100
	require.Equal(t, 2.0, m.At(1, 0), "mutating Row output must not leak into the matrix")

	_, err = m.Row(3)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = m.Row(-1)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestCostMatrix_SymView(t *testing.T) {
	t.Parallel()

	m, err := matrix.FromRows([][]float64{{0, 3}, {3, 0}})
	require.NoError(t, err)

	s := m.Sym()
	require.Equal(t, 2, s.SymmetricDim())
	require.Equal(t, 3.0, s.At(1, 0))
	require.Equal(t, "CostMatrix(2×2)", m.String())
}
