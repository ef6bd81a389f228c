// Package evotsp solves the symmetric Travelling Salesman Problem with a
// genetic algorithm: order crossover, swap mutation on a linear schedule,
// elitism, rank or tournament selection and periodic 2-opt refinement.
//
// 🚀 What is inside?
//
//	matrix/      — immutable symmetric CostMatrix + builders (points, triangles, rows)
//	tsp/         — tours, fitness, GA operators, 2-opt and the Engine / Solve entry points
//	tsplib/      — TSPLIB reader (NODE_COORD_SECTION, EDGE_WEIGHT_SECTION)
//	report/      — progress lines, convergence History, Summary and plots
//	metrics/     — Prometheus collector fed by tsp.Observer
//	config/      — YAML overlay for tsp.Options
//	cmd/evotsp/  — command-line solver for .tsp files
//	examples/    — small runnable programs
//
// ✨ Guarantees
//
//   - Deterministic – one seed fixes the whole run, whatever the worker count
//   - Every tour is a valid permutation, cost is recomputed, never cached stale
//   - The best tour ever seen is kept, even if later generations lose it
//
// Quick start:
//
//	m, _ := matrix.FromPoints(points)
//	res, err := tsp.Solve(m, tsp.DefaultOptions())
//
//	go install github.com/katalvlaran/evotsp/cmd/evotsp@latest
package evotsp
