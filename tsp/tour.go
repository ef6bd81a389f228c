// Package tsp - tour utilities.
//
// Helpers that operate purely on tour structure, without a cost matrix:
//   - Tour.Validate / ValidatePermutation: permutation invariant.
//   - Tour.Clone: independent copy.
//   - Tour.Canonical: rotation to city 0 plus a fixed orientation, so two
//     tours describing the same cycle compare equal.
//   - Tour.Closed: canonical form with the closing city appended.
//   - SameCycle: equality modulo rotation and reversal.
//   - reverseInPlace: the 2-opt move primitive.
//   - tourKey: compact byte key used by the uniqueness set of the initializer.
package tsp

import (
	"encoding/binary"
	"slices"
	"strconv"
	"strings"
)

// Validate checks that t is a permutation of 0..n-1.
//
// Complexity: O(n).
func (t Tour) Validate(n int) error {
	return ValidatePermutation(t, n)
}

// Clone returns an independent copy of t (nil stays nil).
//
// Complexity: O(n).
func (t Tour) Clone() Tour {
	if t == nil {
		return nil
	}
	out := make(Tour, len(t))
	copy(out, t)

	return out
}

// Canonical returns a copy rotated so that the lowest city index comes first,
// oriented so that out[1] ≤ out[n−1]. Rotations and reversals of the same
// cycle share one canonical form.
//
// Complexity: O(n).
func (t Tour) Canonical() Tour {
	var n = len(t)
	if n == 0 {
		return Tour{}
	}

	var (
		i     int
		pivot int
	)
	for i = 1; i < n; i++ {
		if t[i] < t[pivot] {
			pivot = i
		}
	}

	out := make(Tour, n)
	for i = 0; i < n; i++ {
		out[i] = t[(pivot+i)%n]
	}
	if n > 2 && out[1] > out[n-1] {
		reverseInPlace(out, 1, n-1)
	}

	return out
}

// Closed returns the canonical tour with its first city repeated at the end,
// e.g. [0 1 3 2 0].
//
// Complexity: O(n).
func (t Tour) Closed() []int {
	c := t.Canonical()
	if len(c) == 0 {
		return []int{}
	}

	return append([]int(c), c[0])
}

// String renders the tour as "[0 2 3 1]".
func (t Tour) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, c := range t {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(c))
	}
	sb.WriteByte(']')

	return sb.String()
}

// SameCycle reports whether a and b describe the same closed cycle, allowing
// any rotation and either direction.
//
// Complexity: O(n).
func SameCycle(a, b Tour) bool {
	if len(a) != len(b) {
		return false
	}

	return slices.Equal(a.Canonical(), b.Canonical())
}

// reverseInPlace reverses the inclusive segment t[i..j].
//
// Complexity: O(j−i) time, O(1) space.
func reverseInPlace(t Tour, i, j int) {
	for i < j {
		t[i], t[j] = t[j], t[i]
		i++
		j--
	}
}

// tourKey encodes t as a compact string for set membership.
// buf is reused scratch space; the returned string owns its bytes.
//
// Complexity: O(n).
func tourKey(t Tour, buf []byte) (string, []byte) {
	buf = buf[:0]
	for _, c := range t {
		buf = binary.AppendUvarint(buf, uint64(c))
	}

	return string(buf), buf
}
