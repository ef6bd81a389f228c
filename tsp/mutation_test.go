package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evotsp/tsp"
)

func TestSwapMutation_ExactlyTwoPositionsChange(t *testing.T) {
	const n = 10
	rng := tsp.NewRand(seedDet)

	Repeat(t, 100, func(t *testing.T, _ int) {
		orig := tsp.RandomPermutation(n, rng)
		mut := orig.Clone()
		tsp.SwapMutation(mut, rng)
		mustPermutation(t, mut, n)

		var diff []int
		for i := range orig {
			if orig[i] != mut[i] {
				diff = append(diff, i)
			}
		}
		require.Len(t, diff, 2)
		assert.Equal(t, orig[diff[0]], mut[diff[1]])
		assert.Equal(t, orig[diff[1]], mut[diff[0]])
	})
}

func TestSwapMutation_Tiny(t *testing.T) {
	rng := tsp.NewRand(1)

	one := tsp.Tour{0}
	tsp.SwapMutation(one, rng)
	assert.Equal(t, tsp.Tour{0}, one)

	two := tsp.Tour{0, 1}
	tsp.SwapMutation(two, rng)
	assert.Equal(t, tsp.Tour{1, 0}, two)

	tsp.SwapMutation(nil, rng)
}

func TestMutationSchedule_Rate(t *testing.T) {
	s := tsp.DefaultMutationSchedule()
	const gens = 2000

	assert.Equal(t, 0.5, s.Rate(0, gens))
	assert.Equal(t, 0.25, s.Rate(1000, gens))
	assert.Equal(t, 0.0, s.Rate(gens, gens))

	// Clamped outside [0, gens].
	assert.Equal(t, 0.5, s.Rate(-3, gens))
	assert.Equal(t, 0.0, s.Rate(gens+7, gens))

	// No budget ⇒ start rate.
	assert.Equal(t, 0.5, s.Rate(4, 0))

	prev := s.Rate(0, gens)
	for g := 1; g <= gens; g++ {
		r := s.Rate(g, gens)
		require.LessOrEqual(t, r, prev, "rate increased at g=%d", g)
		require.GreaterOrEqual(t, r, 0.0)
		prev = r
	}
}

func TestMutationSchedule_Custom(t *testing.T) {
	s := tsp.MutationSchedule{Start: 0.9, End: 0.1}
	assert.InDelta(t, 0.5, s.Rate(50, 100), 1e-12)
	assert.Equal(t, 0.1, s.Rate(100, 100))
	require.NoError(t, s.Validate())

	require.ErrorIs(t, tsp.MutationSchedule{Start: 0.1, End: 0.2}.Validate(), tsp.ErrInvalidOptions)
	require.ErrorIs(t, tsp.MutationSchedule{Start: 1.5, End: 0}.Validate(), tsp.ErrInvalidOptions)
	require.ErrorIs(t, tsp.MutationSchedule{Start: 0.5, End: -0.1}.Validate(), tsp.ErrInvalidOptions)
}
