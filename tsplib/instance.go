package tsplib

import "github.com/katalvlaran/evotsp/matrix"

// Section names reported in Instance.Section.
const (
	NodeCoordSection  = "NODE_COORD_SECTION"
	EdgeWeightSection = "EDGE_WEIGHT_SECTION"
)

// Edge weight formats accepted in EDGE_WEIGHT_SECTION.
const (
	LowerDiagRow = "LOWER_DIAG_ROW"
	UpperDiagRow = "UPPER_DIAG_ROW"
	LowerRow     = "LOWER_ROW"
	UpperRow     = "UPPER_ROW"
	FullMatrix   = "FULL_MATRIX"
)

// Instance is a parsed TSPLIB problem.
type Instance struct {
	Name             string
	Comment          string
	Type             string
	Dimension        int
	EdgeWeightType   string
	EdgeWeightFormat string

	// Section is the data section the matrix was built from.
	Section string

	// Points holds the city coordinates for NODE_COORD_SECTION instances
	// (nil otherwise).
	Points []matrix.Point

	// Matrix is the validated symmetric cost table.
	Matrix *matrix.CostMatrix
}
