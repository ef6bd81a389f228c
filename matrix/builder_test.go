package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/evotsp/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unitSquare returns the corners of the unit square in boundary order.
func unitSquare() []matrix.Point {
	return []matrix.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
}

func TestFromPoints_UnitSquare(t *testing.T) {
	t.Parallel()

	m, err := matrix.FromPoints(unitSquare())
	require.NoError(t, err)
	require.Equal(t, 4, m.N())

	assert.Equal(t, 0.0, m.At(0, 0))
	assert.Equal(t, 1.0, m.At(0, 1))
	assert.Equal(t, 1.0, m.At(1, 2))
	assert.InDelta(t, math.Sqrt2, m.At(0, 2), 1e-15)
	assert.Equal(t, m.At(2, 0), m.At(0, 2))
}

func TestFromPoints_TooSmall(t *testing.T) {
	t.Parallel()

	_, err := matrix.FromPoints([]matrix.Point{{X: 1, Y: 1}})
	require.ErrorIs(t, err, matrix.ErrTooSmall)
}

// TestFromPoints_CoincidentCities allows zero off-diagonal costs.
func TestFromPoints_CoincidentCities(t *testing.T) {
	t.Parallel()

	m, err := matrix.FromPoints([]matrix.Point{{X: 2, Y: 2}, {X: 2, Y: 2}, {X: 5, Y: 6}})
	require.NoError(t, err)
	assert.Equal(t, 0.0, m.At(0, 1))
	assert.Equal(t, 5.0, m.At(1, 2))
}

func TestFromLowerTriangle(t *testing.T) {
	t.Parallel()

	// 0
	// 3 0
	// 4 5 0
	withDiag, err := matrix.FromLowerTriangle(3, []float64{0, 3, 0, 4, 5, 0}, true)
	require.NoError(t, err)
	noDiag, err := matrix.FromLowerTriangle(3, []float64{3, 4, 5}, false)
	require.NoError(t, err)

	for _, m := range []*matrix.CostMatrix{withDiag, noDiag} {
		assert.Equal(t, 3.0, m.At(0, 1))
		assert.Equal(t, 3.0, m.At(1, 0))
		assert.Equal(t, 4.0, m.At(2, 0))
		assert.Equal(t, 5.0, m.At(1, 2))
	}
}

func TestFromUpperTriangle(t *testing.T) {
	t.Parallel()

	// 0 3 4
	//   0 5
	//     0
	withDiag, err := matrix.FromUpperTriangle(3, []float64{0, 3, 4, 0, 5, 0}, true)
	require.NoError(t, err)
	noDiag, err := matrix.FromUpperTriangle(3, []float64{3, 4, 5}, false)
	require.NoError(t, err)

	for _, m := range []*matrix.CostMatrix{withDiag, noDiag} {
		assert.Equal(t, 3.0, m.At(1, 0))
		assert.Equal(t, 4.0, m.At(0, 2))
		assert.Equal(t, 5.0, m.At(2, 1))
	}
}

func TestTriangle_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.FromLowerTriangle(3, []float64{1, 2}, false)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.FromUpperTriangle(1, nil, false)
	require.ErrorIs(t, err, matrix.ErrTooSmall)

	// Non-zero diagonal supplied explicitly.
	_, err = matrix.FromLowerTriangle(2, []float64{7, 1, 0}, true)
	require.ErrorIs(t, err, matrix.ErrNonZeroDiagonal)

	_, err = matrix.FromLowerTriangle(2, []float64{-1}, false)
	require.True(t, errors.Is(err, matrix.ErrNegativeWeight))
}

func TestFromSymmetric_RoundTrip(t *testing.T) {
	t.Parallel()

	src, err := matrix.FromPoints(unitSquare())
	require.NoError(t, err)

	cp, err := matrix.FromSymmetric(src.Sym())
	require.NoError(t, err)
	require.Equal(t, src.N(), cp.N())

	var i, j int
	for i = 0; i < src.N(); i++ {
		for j = 0; j < src.N(); j++ {
			require.Equal(t, src.At(i, j), cp.At(i, j))
		}
	}

	_, err = matrix.FromSymmetric(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
