// Package tsp provides an evolutionary (genetic) solver for the symmetric
// Travelling Salesman Problem on a matrix.CostMatrix.
//
// The engine keeps a fixed-size population of tours (permutations of the
// city indices) and, once per generation:
//
//  1. ranks the population by fitness probability,
//  2. copies the EliteSize best tours unchanged (elitism),
//  3. draws CrossoverRate·PopulationSize parents with the configured
//     selection strategy (rank or tournament), pairs them sequentially and
//     produces two children per pair by single-cut order crossover,
//  4. mutates every child with a linearly decaying probability (swap mutation),
//  5. fills the next population from the offspring pool, newest first,
//     padding with fresh random permutations when the pool runs dry,
//  6. every RefineEvery generations runs 2-opt to a local optimum on every
//     member,
//  7. re-evaluates costs and fitness probabilities and reports the
//     generation through an optional Observer.
//
// The loop stops after a fixed generation budget; there is no cost-based
// early termination. Alongside the population the engine keeps the best tour
// ever evaluated (Result.Best), so an improvement that elitism fails to
// carry forward is never lost from the result.
//
// Determinism:
//   - One *rand.Rand per Run, seeded once from Options.Seed (0 ⇒ fixed default)
//     and threaded through every stochastic operator.
//   - Options.Workers > 1 parallelizes cost evaluation and 2-opt only; those
//     steps use no randomness, so results are identical for any worker count.
//
// The individual operators (RandomPermutation, InitialPopulation,
// FitnessProbabilities, NewRankPicker, NewTournamentPicker, OrderCrossover,
// SwapMutation, TwoOpt) are exported for reuse and testing.
//
// Errors are sentinels from types.go matched with errors.Is; the package
// never logs and never panics on user input.
package tsp
