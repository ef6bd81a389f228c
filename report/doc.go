// Package report turns solver output into human-facing artifacts:
//
//   - ProgressPrinter: a tsp.Observer printing one progress line per generation,
//   - History: a tsp.Observer recording every generation, with a convergence
//     Summary (gonum stat/floats) and a PNG Plot (gonum plot),
//   - SummarizeRuns: spread of the final costs of repeated independent runs,
//   - FinalLine / RouteLine / WriteMatrix: the fixed-format result lines.
//
// Nothing here influences the search; every type only reads GenerationStats.
package report
