// Package tsp - one-call entry points.
//
//   - Solve: NewEngine + Run with a background context.
//   - SolveContext: same, honouring cancellation at generation barriers.
package tsp

import (
	"context"

	"github.com/katalvlaran/evotsp/matrix"
)

// Solve runs the evolutionary search on m with opts.
//
// Errors: ErrNilMatrix, ErrInvalidOptions, ErrUnsupportedSelection.
func Solve(m *matrix.CostMatrix, opts Options) (Result, error) {
	return SolveContext(context.Background(), m, opts)
}

// SolveContext is Solve with a caller-supplied context.
func SolveContext(ctx context.Context, m *matrix.CostMatrix, opts Options) (Result, error) {
	e, err := NewEngine(m, opts)
	if err != nil {
		return Result{}, err
	}

	return e.Run(ctx)
}
