// SPDX-License-Identifier: MIT
// Package: edmindex/params
//
// resolved.go — the validated result and its post-embedding adjustment.

package params

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/edmindex/colspec"
	"github.com/katalvlaran/edmindex/index"
	"github.com/katalvlaran/edmindex/ranges"
)

// Resolved is the output of Validate. The embedded Parameters hold the final
// E and Knn after defaulting; everything else is derived.
type Resolved struct {
	Parameters

	ColumnSpec colspec.Columns
	TargetSpec colspec.Target

	// Library is the ascending, duplicate-free set of 0-based training rows.
	Library []int

	// Prediction is the strictly increasing set of 0-based query rows.
	Prediction []int

	// LibrarySizes is set for CCM only.
	LibrarySizes          []int
	GeneratedLibrarySizes bool

	LibrarySegments    []ranges.Segment
	PredictionSegments []ranges.Segment
	DisjointLibrary    bool

	// Adjusted is true once AdjustForEmbedding has renumbered the sets.
	Adjusted bool
}

// Geometry returns the embedding geometry of r.
func (r *Resolved) Geometry() index.Geometry {
	return index.Geometry{E: r.E, Tp: r.Tp, Tau: r.Tau, Embedded: r.Embedded}
}

// AdjustForEmbedding returns a copy of r whose Library and Prediction refer to
// the rows that survive the embedding step, which removes |tau|·(E-1) rows
// from a raw series of the given length. Pre-embedded data loses no rows and
// comes back unchanged apart from the Adjusted flag.
//
// rows may be 0, in which case each set's own length stands in for the raw
// row count. A second adjustment fails with ErrAlreadyAdjusted.
func (r *Resolved) AdjustForEmbedding(rows int) (*Resolved, error) {
	if r.Adjusted {
		return nil, ErrAlreadyAdjusted
	}

	out := *r
	out.LibrarySizes = slices.Clone(r.LibrarySizes)
	out.LibrarySegments = slices.Clone(r.LibrarySegments)
	out.PredictionSegments = slices.Clone(r.PredictionSegments)
	out.Adjusted = true

	if r.Embedded {
		out.Library = slices.Clone(r.Library)
		out.Prediction = slices.Clone(r.Prediction)
		return &out, nil
	}

	g := r.Geometry()
	out.Library = index.Adjust(r.Library, rows, g)
	out.Prediction = index.Adjust(r.Prediction, rows, g)

	return &out, nil
}

// String returns a human-readable summary. The format is advisory.
func (r *Resolved) String() string {
	var b strings.Builder
	b.WriteString("Parameters: -------------------------------------------\n")
	fmt.Fprintf(&b, "Method: %s E=%d Tp=%d knn=%d tau=%d theta=%g\n",
		r.Method, r.E, r.Tp, r.Knn, r.Tau, r.Theta)
	switch r.ColumnSpec.Kind() {
	case colspec.ByName:
		fmt.Fprintf(&b, "Column Names : [ %s ]\n", r.ColumnSpec)
	case colspec.ByIndex:
		fmt.Fprintf(&b, "Column Index : [ %s ]\n", r.ColumnSpec)
	}
	if r.TargetSpec.Set() {
		fmt.Fprintf(&b, "Target: %s\n", r.TargetSpec)
	}
	if len(r.LibrarySizes) > 0 {
		fmt.Fprintf(&b, "Library Sizes: %v\n", r.LibrarySizes)
	}
	fmt.Fprintf(&b, "Library: %s  Prediction: %s\n", span(r.Library), span(r.Prediction))
	b.WriteString("-------------------------------------------------------\n")

	return b.String()
}

// span renders the first and last element of set as "[first : last]".
func span(set []int) string {
	if len(set) == 0 {
		return "[]"
	}

	return fmt.Sprintf("[%d : %d]", set[0], set[len(set)-1])
}
