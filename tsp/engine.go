// Package tsp - evolution controller.
//
// Engine owns one run: it validates its inputs once, then Run iterates the
// generational state machine described in doc.go until the generation budget
// is spent. The cost matrix is shared read-only; the population, the RNG and
// the best-ever record are private to Run.
package tsp

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/evotsp/matrix"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Engine is a configured evolutionary solver for one cost matrix.
// An Engine is immutable; each Run starts from Options.Seed, so repeated
// Runs reproduce the same result and concurrent Runs are safe.
type Engine struct {
	m         *matrix.CostMatrix
	opts      Options
	newPicker PickerFactory
}

// NewEngine validates m and opts and returns a ready Engine.
func NewEngine(m *matrix.CostMatrix, opts Options) (*Engine, error) {
	if err := validateMatrix(m); err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	newPicker, err := NewPickerFactory(opts.Selection, opts.TournamentSize)
	if err != nil {
		return nil, err
	}

	return &Engine{m: m, opts: opts, newPicker: newPicker}, nil
}

// Options returns the engine configuration.
func (e *Engine) Options() Options {
	return e.opts
}

// runState is the mutable state of one Run.
type runState struct {
	rng   *rand.Rand
	pop   []Tour
	costs []float64
	probs []float64
	res   Result
}

// Run executes the generation loop. The context is checked at every
// generational barrier; on cancellation Run returns the result accumulated so
// far together with the wrapped context error.
//
// Complexity per generation: O(P log P) ranking, O(P·n) reproduction and
// evaluation, plus O(P·sweeps·n²) on refinement generations.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	var (
		o  = e.opts
		n  = e.m.N()
		st = &runState{rng: rngFromSeed(o.Seed)}
	)

	pop, err := InitialPopulation(n, o.PopulationSize, st.rng)
	if err != nil {
		return Result{}, err
	}
	st.evaluate(e.m, pop, o.Workers)
	st.trackBest(0)

	var g int
	for g = 0; g < o.Generations; g++ {
		if err = ctx.Err(); err != nil {
			return st.result(), fmt.Errorf("tsp: run stopped before generation %d: %w", g+1, err)
		}
		stats := e.step(st, g)
		if o.Observer != nil {
			o.Observer.OnGeneration(stats)
		}
	}

	return st.result(), nil
}

// step performs generation g (0-based) and returns its statistics.
func (e *Engine) step(st *runState, g int) GenerationStats {
	var (
		o    = e.opts
		n    = e.m.N()
		next = make([]Tour, 0, o.PopulationSize)
		i    int
	)

	// 1-2. Rank the snapshot and carry the elites over by value.
	order := rankOrder(st.probs)
	for i = 0; i < o.EliteSize; i++ {
		next = append(next, st.pop[order[i]].Clone())
	}

	// 3. Reproduction: select, pair sequentially, cross over, mutate.
	picker := e.newPicker(st.probs)
	parents := make([]Tour, o.parentCount())
	for i = range parents {
		parents[i] = st.pop[picker.Pick(st.rng)]
	}

	rate := o.Mutation.Rate(g, o.Generations)
	offspring := make([]Tour, 0, len(parents))
	for i = 0; i+1 < len(parents); i += 2 {
		a, b := orderCrossover(parents[i], parents[i+1], st.rng)
		if st.rng.Float64() < rate {
			SwapMutation(a, st.rng)
		}
		if st.rng.Float64() < rate {
			SwapMutation(b, st.rng)
		}
		offspring = append(offspring, a, b)
	}
	produced := len(offspring)

	// 4. Replacement: newest offspring first, then fresh random tours.
	var injected int
	for len(next) < o.PopulationSize {
		if k := len(offspring); k > 0 {
			next = append(next, offspring[k-1])
			offspring = offspring[:k-1]
			continue
		}
		next = append(next, RandomPermutation(n, st.rng))
		injected++
	}

	// 5. Periodic refinement.
	var (
		refined = o.RefineEvery > 0 && g%o.RefineEvery == 0
		gain    float64
	)
	if refined {
		gain = refinePopulation(e.m, next, o.Eps, o.Workers)
	}

	// 6-7. Re-evaluate and report the current snapshot.
	st.evaluate(e.m, next, o.Workers)
	st.trackBest(g + 1)
	st.res.Generations = g + 1

	mean, std := stat.MeanStdDev(st.costs, nil)
	if len(st.costs) < 2 {
		std = 0
	}

	return GenerationStats{
		Generation:   g + 1,
		BestCost:     floats.Min(st.costs),
		MeanCost:     mean,
		StdDevCost:   std,
		WorstCost:    floats.Max(st.costs),
		BestEverCost: st.res.BestCost,
		MutationRate: rate,
		Refined:      refined,
		RefineGain:   gain,
		Offspring:    produced,
		Injected:     injected,
		Evaluations:  st.res.Evaluations,
	}
}

// evaluate installs pop as the current snapshot and recomputes its costs and
// fitness probabilities.
func (st *runState) evaluate(m *matrix.CostMatrix, pop []Tour, workers int) {
	st.pop = pop
	st.costs = populationCosts(m, pop, workers)
	st.probs = FitnessProbabilities(st.costs)
	st.res.Evaluations += len(pop)
}

// trackBest updates the best-ever record from the current snapshot.
func (st *runState) trackBest(generation int) {
	i := argMin(st.costs)
	if i < 0 {
		return
	}
	if st.res.Best == nil || st.costs[i] < st.res.BestCost {
		st.res.Best = st.pop[i].Clone()
		st.res.BestCost = st.costs[i]
		st.res.BestGeneration = generation
	}
}

// result snapshots the run outcome.
func (st *runState) result() Result {
	res := st.res
	res.Population = st.pop
	res.Costs = st.costs
	if i := argMin(st.costs); i >= 0 {
		res.FinalBestCost = st.costs[i]
	}

	return res
}
