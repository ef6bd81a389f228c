// Package tsp_test provides lightweight testing helpers shared across *_test.go
// files in this package.
package tsp_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evotsp/matrix"
	"github.com/katalvlaran/evotsp/tsp"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// epsTiny matches tsp.DefaultEps (1e-12).
	epsTiny = 1e-12

	// epsCost absorbs the 1e-9 cost stabilization when comparing sums.
	epsCost = 1e-8

	// seedDet is a deterministic seed for RNG-based components.
	seedDet = int64(7)
)

// Repeat runs fn n times as numbered subtests.
func Repeat(t *testing.T, n int, fn func(t *testing.T, i int)) {
	t.Helper()
	for i := 0; i < n; i++ {
		t.Run("iter", func(t *testing.T) { fn(t, i) })
	}
}

// unitSquare returns the 4-city instance whose optimal tour costs exactly 4.
func unitSquare(t testing.TB) *matrix.CostMatrix {
	t.Helper()
	m, err := matrix.FromRows([][]float64{
		{0, 1, math.Sqrt2, 1},
		{1, 0, 1, math.Sqrt2},
		{math.Sqrt2, 1, 0, 1},
		{1, math.Sqrt2, 1, 0},
	})
	require.NoError(t, err)

	return m
}

// circlePoints places n points on a circle of radius r, in angular order.
func circlePoints(n int, r float64) []matrix.Point {
	pts := make([]matrix.Point, n)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = matrix.Point{X: r * math.Cos(a), Y: r * math.Sin(a)}
	}

	return pts
}

// circle returns the Euclidean matrix of circlePoints(n, r). The identity tour
// is optimal and costs the polygon perimeter.
func circle(t testing.TB, n int, r float64) *matrix.CostMatrix {
	t.Helper()
	m, err := matrix.FromPoints(circlePoints(n, r))
	require.NoError(t, err)

	return m
}

// perimeter is the cost of the regular n-gon inscribed in a circle of radius r.
func perimeter(n int, r float64) float64 {
	return float64(n) * 2 * r * math.Sin(math.Pi/float64(n))
}

// randomPoints returns n points uniformly drawn from [0,100)².
func randomPoints(n int, seed int64) []matrix.Point {
	rng := rand.New(rand.NewSource(seed))
	pts := make([]matrix.Point, n)
	for i := range pts {
		pts[i] = matrix.Point{X: 100 * rng.Float64(), Y: 100 * rng.Float64()}
	}

	return pts
}

// randomInstance returns the Euclidean matrix of randomPoints(n, seed).
func randomInstance(t testing.TB, n int, seed int64) *matrix.CostMatrix {
	t.Helper()
	m, err := matrix.FromPoints(randomPoints(n, seed))
	require.NoError(t, err)

	return m
}

// mustPermutation asserts the permutation invariant for tour over n cities.
func mustPermutation(t testing.TB, tour tsp.Tour, n int) {
	t.Helper()
	require.NoError(t, tour.Validate(n), "tour %v is not a permutation of 0..%d", tour, n-1)
}

// mustCost returns the validated cost of tour under m.
func mustCost(t testing.TB, m *matrix.CostMatrix, tour tsp.Tour) float64 {
	t.Helper()
	c, err := tsp.TourCost(m, tour)
	require.NoError(t, err)

	return c
}

// smallOptions returns a fast configuration suitable for unit tests.
func smallOptions() tsp.Options {
	o := tsp.DefaultOptions()
	o.PopulationSize = 30
	o.Generations = 25
	o.EliteSize = 2
	o.RefineEvery = 5
	o.Seed = seedDet

	return o
}
