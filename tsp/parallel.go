// Package tsp - bounded fan-out for per-individual work.
//
// Cost evaluation and 2-opt refinement are independent per tour within a
// generation. forEach runs them on at most `workers` goroutines and returns
// only when every task finished, which is the generational barrier: no work
// of generation g+1 starts before generation g is fully formed.
package tsp

import "github.com/sourcegraph/conc/pool"

// forEach calls fn(i) for i in [0,n). workers ≤ 1 runs inline.
// fn must only write state owned by index i.
//
// Complexity: O(n) scheduling overhead plus the work of fn.
func forEach(n, workers int, fn func(i int)) {
	if workers <= 1 || n < 2 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	p := pool.New().WithMaxGoroutines(min(workers, n))
	for i := 0; i < n; i++ {
		i := i
		p.Go(func() { fn(i) })
	}
	p.Wait()
}
