// SPDX-License-Identifier: MIT
// Package: edmindex/params
//
// errors.go — sentinel errors of the params package.

package params

import (
	"fmt"

	"github.com/katalvlaran/edmindex"
)

var (
	// ErrUnknownMethod is returned for a method outside Embed, Simplex, SMap and CCM.
	ErrUnknownMethod = fmt.Errorf("%w: prediction method error", edmindex.ErrConfiguration)

	// ErrTauZero is returned when tau is 0 and the data is not pre-embedded.
	ErrTauZero = fmt.Errorf("%w: tau must be non-zero", edmindex.ErrConfiguration)

	// ErrNoColumns is returned when a method needs columns and none resolve.
	ErrNoColumns = fmt.Errorf("%w: no valid columns found", edmindex.ErrConfiguration)

	// ErrSamples is returned for random cross-mapping with fewer than one sample.
	ErrSamples = fmt.Errorf("%w: CCM samples must be > 0", edmindex.ErrConfiguration)

	// ErrDimension is returned when E < 1 for a method that embeds.
	ErrDimension = fmt.Errorf("%w: E must be >= 1", edmindex.ErrConfiguration)

	// ErrMultivariateSMap is returned for several S-Map columns on raw data.
	ErrMultivariateSMap = fmt.Errorf("%w: multivariable S-Map must use embedded = true "+
		"to ensure data/dimension correspondence", edmindex.ErrConfiguration)

	// ErrEmptyLibrary is returned when Simplex or S-Map ends with no library rows.
	ErrEmptyLibrary = fmt.Errorf("%w: library indices not found", edmindex.ErrConfiguration)

	// ErrEmptyPrediction is returned when Simplex or S-Map ends with no prediction rows.
	ErrEmptyPrediction = fmt.Errorf("%w: prediction indices not found", edmindex.ErrConfiguration)

	// ErrKnnTooSmall is returned when knn is below the method floor.
	ErrKnnTooSmall = fmt.Errorf("%w: knn below method minimum", edmindex.ErrConsistency)

	// ErrAlreadyAdjusted is returned by a second AdjustForEmbedding.
	ErrAlreadyAdjusted = fmt.Errorf("%w: index sets already adjusted for embedding", edmindex.ErrConfiguration)
)
