// SPDX-License-Identifier: MIT
// Package: edmindex/index
//
// types.go — Geometry and the sentinel errors of the index package.

package index

import (
	"fmt"

	"github.com/katalvlaran/edmindex"
)

var (
	// ErrBelowOne is returned when a segment endpoint is below 1.
	ErrBelowOne = fmt.Errorf("%w: indices less than 1 not allowed", edmindex.ErrRange)

	// ErrStartNotBelowStop is returned in strict mode when start >= stop.
	ErrStartNotBelowStop = fmt.Errorf("%w: segment start must be below stop", edmindex.ErrRange)

	// ErrNotIncreasing is returned when prediction rows are not strictly increasing.
	ErrNotIncreasing = fmt.Errorf("%w: prediction indices are not strictly increasing", edmindex.ErrRange)

	// ErrOverlap is returned when library segments overlap or are out of order.
	ErrOverlap = fmt.Errorf("%w: library segments overlap or are out of order", edmindex.ErrRange)

	// ErrSpanTooLarge is returned when a segment endpoint, the total row
	// count or a geometry scalar exceeds MaxRow.
	ErrSpanTooLarge = fmt.Errorf("%w: row span exceeds supported maximum", edmindex.ErrRange)

	// ErrSpan is returned when no library segment can host one vector.
	ErrSpan = fmt.Errorf("%w: embedding vector span exceeds every library segment", edmindex.ErrConsistency)
)

// MaxRow is the largest 1-based row position, total row count and
// |E|, |Tp| or |tau| accepted. Larger values are rejected before any
// allocation so index arithmetic cannot overflow.
const MaxRow = 1 << 28

// Geometry holds the scalars that shape an embedding vector.
type Geometry struct {
	E        int  // embedding dimension
	Tp       int  // prediction horizon, any sign
	Tau      int  // delay between coordinates, any sign
	Embedded bool // data rows are already state-space vectors
}

// Shift is the boundary adjustment applied to raw (unembedded) library
// segments: max(E-2, 0).
func (g Geometry) Shift() int {
	if g.E > 2 {
		return g.E - 2
	}

	return 0
}

// EmbeddingShift is the number of rows the embedding step removes:
// |tau|·(E-1), or 0 when E < 2.
func (g Geometry) EmbeddingShift() int {
	if g.E < 2 {
		return 0
	}

	return abs(g.Tau) * (g.E - 1)
}

// VectorLength is the number of raw rows one embedded vector plus its
// forecast target spans.
func (g Geometry) VectorLength() int {
	lag := (g.E - 1) * g.Tau
	start := max(max(lag, 0), g.Tp)
	end := min(min(lag, g.Tp), 0)

	return abs(start-end) + 1
}

// checkBounds rejects geometry scalars beyond MaxRow.
func (g Geometry) checkBounds() error {
	if abs(g.E) > MaxRow || abs(g.Tp) > MaxRow || abs(g.Tau) > MaxRow {
		return fmt.Errorf("%w: E = %d Tp = %d tau = %d", ErrSpanTooLarge, g.E, g.Tp, g.Tau)
	}

	return nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
