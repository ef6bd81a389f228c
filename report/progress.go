package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/evotsp/matrix"
	"github.com/katalvlaran/evotsp/tsp"
)

// ProgressPrinter writes "Generation <g> - Best Cost: <cost>" for every
// generation it observes. The first write error stops further output and is
// kept for Err.
type ProgressPrinter struct {
	W   io.Writer
	err error
}

// NewProgressPrinter returns a printer writing to w.
func NewProgressPrinter(w io.Writer) *ProgressPrinter {
	return &ProgressPrinter{W: w}
}

// OnGeneration implements tsp.Observer.
func (p *ProgressPrinter) OnGeneration(s tsp.GenerationStats) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.W, "Generation %d - Best Cost: %g\n", s.Generation, s.BestCost)
}

// Err returns the first write error, if any.
func (p *ProgressPrinter) Err() error {
	return p.err
}

// FinalLine writes "Final best cost: <cost>".
func FinalLine(w io.Writer, cost float64) error {
	_, err := fmt.Fprintf(w, "Final best cost: %g\n", cost)

	return err
}

// RouteLine writes "Best route: c0 c1 ... c0" using the closed canonical form
// of t, so equivalent cycles always print identically.
func RouteLine(w io.Writer, t tsp.Tour) error {
	closed := t.Closed()
	parts := make([]string, len(closed))
	for i, c := range closed {
		parts[i] = strconv.Itoa(c)
	}
	_, err := fmt.Fprintf(w, "Best route: %s\n", strings.Join(parts, " "))

	return err
}

// WriteMatrix dumps m row by row under a "Distance Matrix:" heading.
//
// Complexity: O(n²).
func WriteMatrix(w io.Writer, m *matrix.CostMatrix) error {
	if _, err := io.WriteString(w, "Distance Matrix:\n"); err != nil {
		return err
	}

	var (
		n  = m.N()
		sb strings.Builder
		i  int
		j  int
	)
	for i = 0; i < n; i++ {
		sb.Reset()
		for j = 0; j < n; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatFloat(m.At(i, j), 'g', -1, 64))
		}
		sb.WriteByte('\n')
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}

	return nil
}
