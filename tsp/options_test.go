package tsp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evotsp/tsp"
)

func TestDefaultOptions(t *testing.T) {
	o := tsp.DefaultOptions()
	require.NoError(t, o.Validate())

	assert.Equal(t, 200, o.PopulationSize)
	assert.Equal(t, 2000, o.Generations)
	assert.Equal(t, 0.8, o.CrossoverRate)
	assert.Equal(t, 7, o.EliteSize)
	assert.Equal(t, 10, o.RefineEvery)
	assert.Equal(t, tsp.RankSelection, o.Selection)
	assert.Equal(t, tsp.MutationSchedule{Start: 0.5, End: 0}, o.Mutation)
	assert.Equal(t, 1e-12, o.Eps)
}

func TestOptions_Validate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(o *tsp.Options)
		want   error
	}{
		{"zero population", func(o *tsp.Options) { o.PopulationSize = 0 }, tsp.ErrInvalidOptions},
		{"negative generations", func(o *tsp.Options) { o.Generations = -1 }, tsp.ErrInvalidOptions},
		{"crossover above one", func(o *tsp.Options) { o.CrossoverRate = 1.2 }, tsp.ErrInvalidOptions},
		{"crossover NaN", func(o *tsp.Options) { o.CrossoverRate = math.NaN() }, tsp.ErrInvalidOptions},
		{"elite above population", func(o *tsp.Options) { o.EliteSize = o.PopulationSize + 1 }, tsp.ErrInvalidOptions},
		{"negative elite", func(o *tsp.Options) { o.EliteSize = -1 }, tsp.ErrInvalidOptions},
		{"negative refine", func(o *tsp.Options) { o.RefineEvery = -5 }, tsp.ErrInvalidOptions},
		{"rising mutation", func(o *tsp.Options) { o.Mutation = tsp.MutationSchedule{Start: 0.1, End: 0.3} }, tsp.ErrInvalidOptions},
		{"empty tournament", func(o *tsp.Options) {
			o.Selection = tsp.TournamentSelection
			o.TournamentSize = 0
		}, tsp.ErrInvalidOptions},
		{"unknown selection", func(o *tsp.Options) { o.Selection = tsp.SelectionKind(42) }, tsp.ErrUnsupportedSelection},
		{"negative eps", func(o *tsp.Options) { o.Eps = -1e-9 }, tsp.ErrInvalidOptions},
		{"infinite eps", func(o *tsp.Options) { o.Eps = math.Inf(1) }, tsp.ErrInvalidOptions},
		{"negative workers", func(o *tsp.Options) { o.Workers = -2 }, tsp.ErrInvalidOptions},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o := tsp.DefaultOptions()
			tc.mutate(&o)
			require.ErrorIs(t, o.Validate(), tc.want)
		})
	}
}

func TestOptions_ValidateEdges(t *testing.T) {
	o := tsp.DefaultOptions()
	o.EliteSize = o.PopulationSize
	o.CrossoverRate = 0
	o.RefineEvery = 0
	o.Generations = 0
	o.Workers = 0
	o.Mutation = tsp.MutationSchedule{}
	require.NoError(t, o.Validate())
}
