package tsplib

import (
	"math"

	"github.com/katalvlaran/evotsp/matrix"
)

// Coordinate edge weight types accepted in NODE_COORD_SECTION.
const (
	Euc2D  = "EUC_2D"
	Ceil2D = "CEIL_2D"
	Man2D  = "MAN_2D"
	Max2D  = "MAX_2D"
	Att    = "ATT"
	Geo    = "GEO"
)

// Constants of the TSPLIB geographical distance.
const (
	geoPi     = 3.141592
	geoRadius = 6378.388
)

// metric is a symmetric distance between two coordinates.
type metric func(a, b matrix.Point) float64

// coordMetric returns the distance function for an EDGE_WEIGHT_TYPE.
// EUC_2D (and an absent type) keeps the unrounded Euclidean distance.
func coordMetric(edgeWeightType string) (metric, bool) {
	switch edgeWeightType {
	case "", Euc2D:
		return matrix.Point.Distance, true
	case Ceil2D:
		return func(a, b matrix.Point) float64 { return math.Ceil(a.Distance(b)) }, true
	case Man2D:
		return func(a, b matrix.Point) float64 { return math.Abs(a.X-b.X) + math.Abs(a.Y-b.Y) }, true
	case Max2D:
		return func(a, b matrix.Point) float64 { return math.Max(math.Abs(a.X-b.X), math.Abs(a.Y-b.Y)) }, true
	case Att:
		return attDistance, true
	case Geo:
		return geoDistance, true
	default:
		return nil, false
	}
}

// attDistance is the pseudo-Euclidean distance of the att48/att532 instances.
func attDistance(a, b matrix.Point) float64 {
	r := math.Sqrt(((a.X-b.X)*(a.X-b.X) + (a.Y-b.Y)*(a.Y-b.Y)) / 10)
	t := nint(r)
	if t < r {
		return t + 1
	}

	return t
}

// geoDistance is the great-circle distance in km; X is latitude and Y is
// longitude, both written as DDD.MM (degrees and minutes).
func geoDistance(a, b matrix.Point) float64 {
	latA, lonA := geoRadians(a.X), geoRadians(a.Y)
	latB, lonB := geoRadians(b.X), geoRadians(b.Y)

	q1 := math.Cos(lonA - lonB)
	q2 := math.Cos(latA - latB)
	q3 := math.Cos(latA + latB)

	return math.Trunc(geoRadius*math.Acos(0.5*((1+q1)*q2-(1-q1)*q3)) + 1)
}

func geoRadians(v float64) float64 {
	deg := math.Trunc(v)
	minutes := v - deg

	return geoPi * (deg + 5*minutes/3) / 180
}

func nint(x float64) float64 {
	return math.Floor(x + 0.5)
}

// coordMatrix builds the cost table of pts under dist.
//
// Complexity: O(n²).
func coordMatrix(pts []matrix.Point, dist metric) (*matrix.CostMatrix, error) {
	var (
		n    = len(pts)
		vals = make([]float64, 0, max(n*(n-1)/2, 0))
		i, j int
	)
	for i = 1; i < n; i++ {
		for j = 0; j < i; j++ {
			vals = append(vals, dist(pts[i], pts[j]))
		}
	}

	return matrix.FromLowerTriangle(n, vals, false)
}
