package tsplib

import "errors"

var (
	// ErrUnsupportedSection is returned when no recognized data section is
	// found, or an unknown *_SECTION precedes it.
	ErrUnsupportedSection = errors.New("tsplib: unknown or unsupported section type")

	// ErrUnsupportedFormat is returned for an EDGE_WEIGHT_FORMAT or
	// EDGE_WEIGHT_TYPE this package cannot interpret.
	ErrUnsupportedFormat = errors.New("tsplib: unsupported edge weight format")

	// ErrUnsupportedType is returned when TYPE is present and is not TSP.
	ErrUnsupportedType = errors.New("tsplib: unsupported problem type")

	// ErrDimension is returned for a missing or invalid DIMENSION, or when the
	// amount of section data disagrees with it.
	ErrDimension = errors.New("tsplib: dimension mismatch")

	// ErrSyntax is returned for a malformed header value or data line.
	ErrSyntax = errors.New("tsplib: syntax error")
)
