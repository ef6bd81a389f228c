// Package metrics exposes the progress of an evolutionary run as Prometheus
// metrics. A Collector is a tsp.Observer: attach it to Options.Observer (or a
// tsp.MultiObserver) and serve the registry it was registered with.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/evotsp/tsp"
)

const namespace = "evotsp"

// Collector mirrors GenerationStats into gauges and counters.
// Every series carries the constant label run_id.
type Collector struct {
	generation   prometheus.Gauge
	bestCost     prometheus.Gauge
	bestEverCost prometheus.Gauge
	meanCost     prometheus.Gauge
	mutationRate prometheus.Gauge

	refinements prometheus.Counter
	injected    prometheus.Counter
	offspring   prometheus.Counter
}

// NewCollector builds the run metrics and registers them with reg.
// Registering two collectors with the same runID on one registry fails.
func NewCollector(reg prometheus.Registerer, runID string) (*Collector, error) {
	labels := prometheus.Labels{"run_id": runID}
	gauge := func(name, help string) prometheus.Gauge {
		return prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: name, Help: help, ConstLabels: labels,
		})
	}
	counter := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: name, Help: help, ConstLabels: labels,
		})
	}

	c := &Collector{
		generation:   gauge("generation", "Last completed generation (1-based)."),
		bestCost:     gauge("best_cost", "Best tour cost in the current population."),
		bestEverCost: gauge("best_ever_cost", "Best tour cost seen during the run."),
		meanCost:     gauge("mean_cost", "Mean tour cost of the current population."),
		mutationRate: gauge("mutation_rate", "Mutation probability applied in the last generation."),
		refinements:  counter("refinements_total", "Generations on which 2-opt refinement ran."),
		injected:     counter("injected_tours_total", "Random tours used to pad the population."),
		offspring:    counter("offspring_total", "Children produced by crossover."),
	}

	for _, m := range []prometheus.Collector{
		c.generation, c.bestCost, c.bestEverCost, c.meanCost, c.mutationRate,
		c.refinements, c.injected, c.offspring,
	} {
		if err := reg.Register(m); err != nil {
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}

	return c, nil
}

// OnGeneration implements tsp.Observer.
func (c *Collector) OnGeneration(s tsp.GenerationStats) {
	c.generation.Set(float64(s.Generation))
	c.bestCost.Set(s.BestCost)
	c.bestEverCost.Set(s.BestEverCost)
	c.meanCost.Set(s.MeanCost)
	c.mutationRate.Set(s.MutationRate)

	if s.Refined {
		c.refinements.Inc()
	}
	c.injected.Add(float64(s.Injected))
	c.offspring.Add(float64(s.Offspring))
}
