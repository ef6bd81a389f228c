// Package tsplib reads symmetric TSP instances in the TSPLIB text format
// and turns them into a matrix.CostMatrix.
//
// Supported input:
//   - Header lines "KEY : VALUE", "KEY: VALUE" or "KEY VALUE". NAME, COMMENT,
//     TYPE, DIMENSION, EDGE_WEIGHT_TYPE and EDGE_WEIGHT_FORMAT are recorded;
//     other keys are ignored.
//   - NODE_COORD_SECTION: "id x y" lines. Line order defines city order.
//     EDGE_WEIGHT_TYPE picks the metric: EUC_2D or absent (unrounded
//     Euclidean), CEIL_2D, MAN_2D, MAX_2D, ATT (pseudo-Euclidean) or GEO
//     (great circle over DDD.MM coordinates, X latitude).
//   - EDGE_WEIGHT_SECTION: whitespace separated weights laid out by
//     EDGE_WEIGHT_FORMAT: LOWER_DIAG_ROW (the default when the key is
//     absent), UPPER_DIAG_ROW, LOWER_ROW, UPPER_ROW or FULL_MATRIX.
//
// A data section ends at "EOF", at a blank line, or at the next keyword line.
// Only the first data section is used; TYPE must be TSP when present.
//
// Errors are sentinels (ErrUnsupportedSection, ErrUnsupportedFormat,
// ErrUnsupportedType, ErrDimension, ErrSyntax) wrapped with the line number
// where that helps; matrix validation errors are wrapped unchanged.
package tsplib
