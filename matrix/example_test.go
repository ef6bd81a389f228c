package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/evotsp/matrix"
)

// ExampleFromLowerTriangle builds the cost table of a three-city instance
// given as an explicit lower triangle including the diagonal.
func ExampleFromLowerTriangle() {
	m, err := matrix.FromLowerTriangle(3, []float64{
		0,
		3, 0,
		4, 5, 0,
	}, true)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(m)
	fmt.Println(m.At(0, 2), m.At(2, 1))
	// Output:
	// CostMatrix(3×3)
	// 4 5
}
