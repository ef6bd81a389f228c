package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evotsp/tsp"
)

func TestCrossoverAt_Example(t *testing.T) {
	p1 := tsp.Tour{0, 1, 2, 3, 4}
	p2 := tsp.Tour{4, 3, 2, 1, 0}

	a, b, err := tsp.CrossoverAt(p1, p2, 2)
	require.NoError(t, err)
	assert.Equal(t, tsp.Tour{0, 1, 4, 3, 2}, a)
	assert.Equal(t, tsp.Tour{4, 3, 0, 1, 2}, b)

	// Parents are untouched.
	assert.Equal(t, tsp.Tour{0, 1, 2, 3, 4}, p1)
	assert.Equal(t, tsp.Tour{4, 3, 2, 1, 0}, p2)
}

// Every cut of every random parent pair yields two valid permutations whose
// prefixes come from the respective parents.
func TestCrossoverAt_AllCutsPreservePermutation(t *testing.T) {
	const n = 9
	rng := tsp.NewRand(seedDet)

	Repeat(t, 20, func(t *testing.T, _ int) {
		p1 := tsp.RandomPermutation(n, rng)
		p2 := tsp.RandomPermutation(n, rng)
		for cut := 1; cut < n; cut++ {
			a, b, err := tsp.CrossoverAt(p1, p2, cut)
			require.NoError(t, err)
			mustPermutation(t, a, n)
			mustPermutation(t, b, n)
			assert.Equal(t, p1[:cut], a[:cut])
			assert.Equal(t, p2[:cut], b[:cut])
		}
	})
}

func TestCrossoverAt_IdenticalParents(t *testing.T) {
	p := tsp.Tour{3, 1, 4, 0, 2}
	a, b, err := tsp.CrossoverAt(p, p, 3)
	require.NoError(t, err)
	assert.Equal(t, p, a)
	assert.Equal(t, p, b)
}

func TestCrossoverAt_Errors(t *testing.T) {
	p := tsp.Tour{0, 1, 2, 3}

	_, _, err := tsp.CrossoverAt(p, p, 0)
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)
	_, _, err = tsp.CrossoverAt(p, p, 4)
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)
	_, _, err = tsp.CrossoverAt(p, tsp.Tour{0, 1, 2}, 1)
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)
	_, _, err = tsp.CrossoverAt(p, tsp.Tour{0, 1, 1, 3}, 1)
	require.ErrorIs(t, err, tsp.ErrInvalidTour)
	_, _, err = tsp.CrossoverAt(nil, nil, 1)
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)
}

func TestOrderCrossover_Random(t *testing.T) {
	const n = 25
	rng := tsp.NewRand(seedDet)

	Repeat(t, 50, func(t *testing.T, _ int) {
		p1 := tsp.RandomPermutation(n, rng)
		p2 := tsp.RandomPermutation(n, rng)
		a, b, err := tsp.OrderCrossover(p1, p2, rng)
		require.NoError(t, err)
		mustPermutation(t, a, n)
		mustPermutation(t, b, n)
		// The cut is at least one, so each child starts like its head parent.
		assert.Equal(t, p1[0], a[0])
		assert.Equal(t, p2[0], b[0])
	})
}

func TestOrderCrossover_SingleCity(t *testing.T) {
	a, b, err := tsp.OrderCrossover(tsp.Tour{0}, tsp.Tour{0}, tsp.NewRand(1))
	require.NoError(t, err)
	assert.Equal(t, tsp.Tour{0}, a)
	assert.Equal(t, tsp.Tour{0}, b)
}
