package report

import (
	"errors"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/evotsp/tsp"
)

// ErrEmptyHistory is returned when a summary or plot is requested before any
// generation was recorded.
var ErrEmptyHistory = errors.New("report: no generations recorded")

// History records every GenerationStats it observes, in order.
// Like every tsp.Observer it is called from the engine goroutine only.
type History struct {
	Stats []tsp.GenerationStats
}

// OnGeneration implements tsp.Observer.
func (h *History) OnGeneration(s tsp.GenerationStats) {
	h.Stats = append(h.Stats, s)
}

// Len returns the number of recorded generations.
func (h *History) Len() int {
	return len(h.Stats)
}

// Summary condenses a History.
type Summary struct {
	Generations int

	FirstBest float64 // population best after generation 1
	FinalBest float64 // population best after the last generation
	BestEver  float64 // lowest cost seen during the run

	// Improvement is FirstBest − BestEver.
	Improvement float64

	// MeanBest and StdDevBest describe the per-generation best-cost series.
	MeanBest   float64
	StdDevBest float64

	// LastImprovement is the generation at which BestEver was last lowered.
	LastImprovement int

	Refinements int
	RefineGain  float64
	Offspring   int
	Injected    int
	Evaluations int
}

// Summary computes convergence statistics over the recorded generations.
//
// Complexity: O(G).
func (h *History) Summary() (Summary, error) {
	var g = len(h.Stats)
	if g == 0 {
		return Summary{}, ErrEmptyHistory
	}

	var (
		best  = make([]float64, g)
		gains = make([]float64, 0, g)
		s     Summary
		prev  = h.Stats[0].BestEverCost
	)
	s.LastImprovement = h.Stats[0].Generation
	for i, st := range h.Stats {
		best[i] = st.BestCost
		if st.Refined {
			s.Refinements++
			gains = append(gains, st.RefineGain)
		}
		if st.BestEverCost < prev {
			prev = st.BestEverCost
			s.LastImprovement = st.Generation
		}
		s.Offspring += st.Offspring
		s.Injected += st.Injected
	}

	last := h.Stats[g-1]
	s.Generations = g
	s.FirstBest = best[0]
	s.FinalBest = last.BestCost
	s.BestEver = last.BestEverCost
	s.Improvement = s.FirstBest - s.BestEver
	s.Evaluations = last.Evaluations
	if len(gains) > 0 {
		s.RefineGain = floats.Sum(gains)
	}
	s.MeanBest, s.StdDevBest = stat.MeanStdDev(best, nil)
	if g < 2 {
		s.StdDevBest = 0
	}

	return s, nil
}

// RunStats is the spread of final costs over repeated independent runs.
type RunStats struct {
	Runs   int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// SummarizeRuns computes RunStats over costs.
//
// Complexity: O(R).
func SummarizeRuns(costs []float64) (RunStats, error) {
	if len(costs) == 0 {
		return RunStats{}, ErrEmptyHistory
	}
	mean, std := stat.MeanStdDev(costs, nil)
	if len(costs) < 2 {
		std = 0
	}

	return RunStats{
		Runs:   len(costs),
		Mean:   mean,
		StdDev: std,
		Min:    floats.Min(costs),
		Max:    floats.Max(costs),
	}, nil
}
