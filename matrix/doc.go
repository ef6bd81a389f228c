// SPDX-License-Identifier: MIT
// Package matrix provides the immutable cost table consumed by the evotsp solvers.
//
// A CostMatrix is an n×n table of pairwise travel costs with the following
// guarantees, enforced once at construction time:
//
//   - n ≥ 2,
//   - every entry is finite and non-negative,
//   - the diagonal is zero (within a 1e-12 tolerance),
//   - the table is symmetric (storage is a gonum *mat.SymDense).
//
// Builders cover the two ways problem instances describe costs:
//
//   - FromPoints          — Euclidean distances between 2-D coordinates.
//   - FromLowerTriangle   — explicit row-wise lower triangle (with/without diagonal).
//   - FromUpperTriangle   — explicit row-wise upper triangle (with/without diagonal).
//   - FromRows            — a full square table (must already be symmetric).
//   - FromSymmetric       — any gonum mat.Symmetric.
//
// After construction the matrix is read-only and safe to share between
// goroutines without locking. At is an unchecked O(1) read from a flat
// row-major cache; it is meant for hot loops whose indices were validated
// upfront (tours are validated permutations).
//
// Errors are package sentinels (see errors.go) matched with errors.Is.
package matrix
