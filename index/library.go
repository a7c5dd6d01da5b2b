// SPDX-License-Identifier: MIT
// Package: edmindex/index
//
// library.go — library index generation and span checks.

package index

import (
	"fmt"

	"github.com/katalvlaran/edmindex/ranges"
)

// Library builds the ascending, duplicate-free training set from segs.
//
// strict enables the start < stop check required by projection and
// locally weighted methods; other methods tolerate the degenerate "1 1".
// An empty segs yields an empty set.
//
// Complexity: O(Σ segment lengths).
func Library(segs []ranges.Segment, g Geometry, strict bool) ([]int, error) {
	if len(segs) == 0 {
		return []int{}, nil
	}
	if err := checkSegments(segs, strict); err != nil {
		return nil, err
	}
	if err := g.checkBounds(); err != nil {
		return nil, err
	}

	var lib []int
	if g.Tp >= 0 {
		lib = libraryForward(segs, g)
	} else {
		lib = libraryBackward(segs, g)
	}

	for i := 1; i < len(lib); i++ {
		if lib[i] <= lib[i-1] {
			return nil, fmt.Errorf("%w: row %d follows row %d", ErrOverlap, lib[i]+1, lib[i-1]+1)
		}
	}

	return lib, nil
}

// libraryForward handles Tp >= 0: the forecast target lies after the anchor,
// so segments followed by a gap lose rows at their end.
func libraryForward(segs []ranges.Segment, g Geometry) []int {
	disjoint := len(segs) > 1
	shift := g.Shift()
	lib := make([]int, 0, totalLen(segs))

	for _, s := range segs[:len(segs)-1] {
		stop := s.Stop - (g.E - 1) - g.Tp + 1
		if !g.Embedded {
			stop += shift
		}
		// The target row of the last anchor must stay inside the segment.
		if limit := s.Stop - g.Tp; stop > limit {
			stop = limit
		}
		lib = appendRows(lib, s.Start, stop)
	}

	last := segs[len(segs)-1]
	start := last.Start
	if !g.Embedded && disjoint {
		start += 1 + shift
	}

	return appendRows(lib, start, last.Stop)
}

// libraryBackward handles Tp < 0: the forecast target lies before the anchor,
// so segment starts advance by |Tp| and segment ends are kept.
func libraryBackward(segs []ranges.Segment, g Geometry) []int {
	disjoint := len(segs) > 1
	shift := g.Shift()
	back := -g.Tp
	lib := make([]int, 0, totalLen(segs))

	for _, s := range segs[:len(segs)-1] {
		lib = appendRows(lib, s.Start+back, s.Stop)
	}

	last := segs[len(segs)-1]
	start := last.Start + back
	if !g.Embedded && disjoint {
		start += 1 + shift
	}

	return appendRows(lib, start, last.Stop)
}

// CheckSpan verifies that at least one raw segment is long enough to hold a
// full vector and its target.
func CheckSpan(segs []ranges.Segment, g Geometry) error {
	if err := g.checkBounds(); err != nil {
		return err
	}
	need := g.VectorLength()
	if longest := ranges.MaxLen(segs); need > longest {
		return fmt.Errorf("%w: E = %d Tp = %d tau = %d needs %d rows, longest segment has %d",
			ErrSpan, g.E, g.Tp, g.Tau, need, longest)
	}

	return nil
}

// checkSegments applies the bound checks shared by library and prediction.
// Endpoints and the total row count are capped at MaxRow before anything
// is allocated.
func checkSegments(segs []ranges.Segment, strict bool) error {
	for _, s := range segs {
		if strict && s.Start >= s.Stop {
			return fmt.Errorf("%w: start %d stop %d", ErrStartNotBelowStop, s.Start, s.Stop)
		}
		if s.Start < 1 || s.Stop < 1 {
			return fmt.Errorf("%w: %s", ErrBelowOne, s)
		}
		if s.Start > MaxRow || s.Stop > MaxRow {
			return fmt.Errorf("%w: %s, max %d", ErrSpanTooLarge, s, MaxRow)
		}
	}
	if n := totalLen(segs); n > MaxRow {
		return fmt.Errorf("%w: %d rows, max %d", ErrSpanTooLarge, n, MaxRow)
	}

	return nil
}

// appendRows appends the 0-based rows for 1-based positions from..to.
// The loop exits on r == to, so r never steps past to.
func appendRows(dst []int, from, to int) []int {
	if from > to {
		return dst
	}
	for r := from; ; r++ {
		dst = append(dst, r-1)
		if r == to {
			return dst
		}
	}
}

func totalLen(segs []ranges.Segment) int {
	n := 0
	for _, s := range segs {
		if l := s.Len(); l > 0 {
			n += l
		}
	}

	return n
}
