package tsp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/evotsp/tsp"
)

func TestFitnessProbabilities(t *testing.T) {
	probs := tsp.FitnessProbabilities([]float64{10, 20, 30, 40})
	require.Len(t, probs, 4)
	assert.InDelta(t, 1.0, floats.Sum(probs), 1e-12)

	// max − cost = 30, 20, 10, 0 over a sum of 60.
	assert.InDeltaSlice(t, []float64{0.5, 1.0 / 3, 1.0 / 6, 0}, probs, 1e-12)
}

func TestFitnessProbabilities_WorstScoresZero(t *testing.T) {
	probs := tsp.FitnessProbabilities([]float64{7, 3, 7, 5})
	assert.Zero(t, probs[0])
	assert.Zero(t, probs[2])
	assert.Greater(t, probs[1], probs[3])
}

func TestFitnessProbabilities_UniformFallback(t *testing.T) {
	cases := map[string][]float64{
		"all equal": {4, 4, 4, 4},
		"single":    {9},
		"infinite":  {1, math.Inf(1)},
	}
	for name, costs := range cases {
		t.Run(name, func(t *testing.T) {
			probs := tsp.FitnessProbabilities(costs)
			require.Len(t, probs, len(costs))
			for _, p := range probs {
				assert.InDelta(t, 1/float64(len(costs)), p, 1e-15)
			}
		})
	}
	assert.Nil(t, tsp.FitnessProbabilities(nil))
}

func TestPopulationFitness(t *testing.T) {
	m := unitSquare(t)
	probs, err := tsp.PopulationFitness(m, []tsp.Tour{{0, 1, 2, 3}, {0, 2, 1, 3}})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 0}, probs, 1e-12)

	_, err = tsp.PopulationFitness(m, []tsp.Tour{{0, 1}})
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)
}
