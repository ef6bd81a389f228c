package tsp

import "errors"

var (
	// ErrDimensionMismatch is returned when tours or parents disagree on the
	// number of cities, or a cut/position index is out of range.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrInvalidTour is returned when a tour is not a permutation of 0..n-1.
	ErrInvalidTour = errors.New("tsp: tour is not a permutation of the cities")

	// ErrNilMatrix is returned when a nil cost matrix is supplied.
	ErrNilMatrix = errors.New("tsp: nil cost matrix")

	// ErrInvalidOptions is returned (wrapped with the offending field) by Options.Validate.
	ErrInvalidOptions = errors.New("tsp: invalid options")

	// ErrUnsupportedSelection is returned for an unknown SelectionKind.
	ErrUnsupportedSelection = errors.New("tsp: unsupported selection strategy")
)

// Tour is an ordered visiting sequence: a permutation of the city indices
// 0..n-1. The closing edge from the last city back to the first is implicit.
type Tour []int

// Result is the outcome of an evolutionary run.
type Result struct {
	// Population is the final population, in generation order.
	Population []Tour

	// Costs holds the tour cost of each member of Population.
	Costs []float64

	// Best is the lowest-cost tour evaluated during the whole run
	// (initial population included). It may no longer be in Population.
	Best Tour

	// BestCost is the cost of Best.
	BestCost float64

	// BestGeneration is the 1-based generation that produced Best
	// (0 when it came from the initial population).
	BestGeneration int

	// FinalBestCost is the minimum cost within the final Population snapshot.
	FinalBestCost float64

	// Generations is the number of completed generations.
	Generations int

	// Evaluations is the total number of tour cost evaluations.
	Evaluations int
}

// GenerationStats describes one completed generation.
type GenerationStats struct {
	Generation   int     // 1-based generation number
	BestCost     float64 // best cost in the current population snapshot
	MeanCost     float64 // arithmetic mean of the population costs
	StdDevCost   float64 // sample standard deviation of the population costs
	WorstCost    float64 // worst cost in the current population snapshot
	BestEverCost float64 // best cost seen so far in the run
	MutationRate float64 // mutation probability applied to this generation's offspring
	Refined      bool    // whether 2-opt ran on this generation
	RefineGain   float64 // total cost removed by 2-opt (0 when not refined)
	Offspring    int     // children produced by crossover
	Injected     int     // random permutations used to pad the population
	Evaluations  int     // cumulative cost evaluations
}

// Observer receives one callback per completed generation, synchronously,
// on the goroutine running the engine.
type Observer interface {
	OnGeneration(s GenerationStats)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(s GenerationStats)

// OnGeneration calls f(s).
func (f ObserverFunc) OnGeneration(s GenerationStats) { f(s) }

// MultiObserver fans a callback out to several observers in order.
// Nil entries are skipped.
type MultiObserver []Observer

// OnGeneration forwards s to every non-nil observer.
func (mo MultiObserver) OnGeneration(s GenerationStats) {
	for _, o := range mo {
		if o != nil {
			o.OnGeneration(s)
		}
	}
}
