// SPDX-License-Identifier: MIT
// Package: edmindex/index
//
// adjust.go — realignment of index sets after embedding.

package index

// Adjust realigns set with a data matrix from which the embedding step has
// removed g.EmbeddingShift() rows.
//
// The removed rows are the first shift rows when tau < 0 and the last shift
// rows when tau > 0. rows is the raw row count before embedding; when it is
// not positive, len(set) stands in for it. Indices that point at removed
// rows are dropped by value; for tau < 0 the survivors are then decremented
// by shift. tau > 0 needs no renumbering because the removed rows were at
// the tail.
//
// The input is not modified. Complexity: O(len(set)).
func Adjust(set []int, rows int, g Geometry) []int {
	shift := g.EmbeddingShift()
	out := make([]int, 0, len(set))
	if shift == 0 || g.Tau == 0 {
		return append(out, set...)
	}

	n := rows
	if n <= 0 {
		n = len(set)
	}
	lo, hi := 0, shift
	if g.Tau > 0 {
		lo, hi = n-shift, n
	}
	removed := func(v int) bool { return v >= lo && v < hi }

	hit := false
	for _, v := range set {
		if removed(v) {
			hit = true
			break
		}
	}

	for _, v := range set {
		if hit && removed(v) {
			continue
		}
		if g.Tau < 0 {
			v -= shift
		}
		out = append(out, v)
	}

	return out
}
