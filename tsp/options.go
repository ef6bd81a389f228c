// Package tsp - run configuration.
//
// Options replaces every compile-time tunable of a classic GA with an explicit
// runtime field. DefaultOptions reproduces the reference constants:
// 200 tours, 2000 generations, crossover rate 0.8, 7 elites, 2-opt every
// 10 generations, mutation probability 0.5·(1 − g/G), rank selection.
package tsp

import "strings"

// Default knob values returned by DefaultOptions.
const (
	DefaultPopulationSize = 200
	DefaultGenerations    = 2000
	DefaultCrossoverRate  = 0.8
	DefaultEliteSize      = 7
	DefaultRefineEvery    = 10
	DefaultTournamentSize = 5
	DefaultEps            = 1e-12
)

// SelectionKind names a parent-selection policy.
type SelectionKind int

const (
	// RankSelection draws from a linear rank distribution (best = N, worst = 1).
	RankSelection SelectionKind = iota
	// TournamentSelection returns the fittest of TournamentSize uniform draws.
	TournamentSelection
)

// String returns the lower-case policy name.
func (k SelectionKind) String() string {
	switch k {
	case RankSelection:
		return "rank"
	case TournamentSelection:
		return "tournament"
	default:
		return "unknown"
	}
}

// ParseSelection maps "rank" / "tournament" (case-insensitive) to a SelectionKind.
func ParseSelection(s string) (SelectionKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rank":
		return RankSelection, nil
	case "tournament":
		return TournamentSelection, nil
	default:
		return 0, ErrUnsupportedSelection
	}
}

// Options configures an evolutionary run.
type Options struct {
	// PopulationSize is the fixed number of tours per generation (≥ 1).
	PopulationSize int

	// Generations is the generation budget (≥ 0). It is the only termination rule.
	Generations int

	// CrossoverRate in [0,1]: int(CrossoverRate·PopulationSize) parents are drawn
	// per generation.
	CrossoverRate float64

	// EliteSize tours are copied unchanged into the next generation (0..PopulationSize).
	EliteSize int

	// RefineEvery is the 2-opt cadence: refinement runs when generation%RefineEvery==0
	// (0-based). 0 disables refinement.
	RefineEvery int

	// Mutation is the per-offspring mutation probability schedule.
	Mutation MutationSchedule

	// Selection picks the parent-selection policy.
	Selection SelectionKind

	// TournamentSize is the sample size k for TournamentSelection (≥ 1).
	TournamentSize int

	// Seed seeds the run's single RNG. 0 ⇒ a fixed default seed.
	Seed int64

	// Eps is the 2-opt acceptance tolerance: a move is applied when Δ < −Eps.
	Eps float64

	// Workers bounds the goroutines used for cost evaluation and 2-opt.
	// 0 or 1 ⇒ sequential.
	Workers int

	// Observer, if non-nil, is called once per generation.
	Observer Observer
}

// DefaultOptions returns the reference configuration.
func DefaultOptions() Options {
	return Options{
		PopulationSize: DefaultPopulationSize,
		Generations:    DefaultGenerations,
		CrossoverRate:  DefaultCrossoverRate,
		EliteSize:      DefaultEliteSize,
		RefineEvery:    DefaultRefineEvery,
		Mutation:       DefaultMutationSchedule(),
		Selection:      RankSelection,
		TournamentSize: DefaultTournamentSize,
		Seed:           0,
		Eps:            DefaultEps,
		Workers:        1,
	}
}

// parentCount returns how many parents are drawn per generation.
func (o Options) parentCount() int {
	return int(o.CrossoverRate * float64(o.PopulationSize))
}
