// SPDX-License-Identifier: MIT
// Package: edmindex/index

// Package index derives zero-based row-index sets from 1-based segments.
//
// Library generation (Library) accounts for the embedding geometry:
//
//	Tp ≥ 0 — every segment but the last is cut at its end so no anchor row
//	         forecasts into the gap that follows it; the last segment of a
//	         disjoint library on raw data starts 1+shift rows later.
//	Tp < 0 — the cut moves to segment starts: each start advances by |Tp|
//	         (the target lies behind the anchor), and the last segment of a
//	         disjoint library on raw data advances a further 1+shift rows.
//
// with shift = max(E-2, 0). The two branches live in separate functions
// (libraryForward, libraryBackward) because the boundaries they guard are
// different ends of a segment.
//
// Prediction generation (Prediction) converts segments without any shift and
// requires a strictly increasing result.
//
// CheckSpan rejects geometry whose vector span, from VectorLength, exceeds
// every library segment.
//
// Adjust renumbers a set after the embedding step has removed
// |tau|·(E-1) rows: leading rows for tau < 0, trailing rows for tau > 0.
//
// All functions are pure; inputs are never mutated.
package index
