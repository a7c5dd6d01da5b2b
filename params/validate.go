// SPDX-License-Identifier: MIT
// Package: edmindex/params
//
// validate.go — the validation pipeline from Parameters to Resolved.

package params

import (
	"fmt"

	"github.com/katalvlaran/edmindex/colspec"
	"github.com/katalvlaran/edmindex/index"
	"github.com/katalvlaran/edmindex/libsize"
	"github.com/katalvlaran/edmindex/ranges"
)

// stage is one pass of the validation pipeline. It fills fields of the
// Resolved under construction; r never escapes when a stage fails.
type stage func(r *Resolved, cfg config) error

// pipeline lists the passes in execution order. Geometry defaulting runs
// before library generation because the library shift depends on the final E.
var pipeline = []stage{
	checkMethod,
	checkTau,
	resolveColumns,
	checkSamples,
	resolveGeometry,
	resolveLibrarySizes,
	buildLibrary,
	buildPrediction,
	finalize,
}

// Validate derives the index sets described by p.
//
// On success the returned Resolved carries the final E and knn, the
// resolved column and target specifiers, Library, Prediction and, for CCM,
// LibrarySizes. On failure the error belongs to one taxonomy class (see
// edmindex.KindOf) and no Resolved is returned.
func Validate(p Parameters, opts ...Option) (*Resolved, error) {
	cfg := newConfig(opts...)
	r := &Resolved{Parameters: p}
	for _, run := range pipeline {
		if err := run(r, cfg); err != nil {
			return nil, err
		}
	}

	return r, nil
}

func checkMethod(r *Resolved, _ config) error {
	switch r.Method {
	case Embed, Simplex, SMap, CCM:
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownMethod, r.Method)
	}
}

func checkTau(r *Resolved, _ config) error {
	if !r.Embedded && r.Tau == 0 {
		return ErrTauZero
	}

	return nil
}

func resolveColumns(r *Resolved, _ config) error {
	r.ColumnSpec = colspec.ParseColumns(r.Columns)
	r.TargetSpec = colspec.ParseTarget(r.Target)
	if r.ColumnSpec.Empty() && r.Method.embeds() {
		return fmt.Errorf("%s: %w", r.Method, ErrNoColumns)
	}

	return nil
}

func checkSamples(r *Resolved, _ config) error {
	if r.Method == CCM && r.RandomLib && r.Samples < 1 {
		return fmt.Errorf("%w, got %d", ErrSamples, r.Samples)
	}

	return nil
}

func resolveLibrarySizes(r *Resolved, _ config) error {
	if r.Method != CCM {
		return nil
	}
	sizes, err := libsize.Parse(r.LibSizes, r.E)
	if err != nil {
		return err
	}
	r.LibrarySizes = sizes.Values
	r.GeneratedLibrarySizes = sizes.Generated

	return nil
}

func buildLibrary(r *Resolved, _ config) error {
	segs, err := ranges.ParsePairs(r.Lib)
	if err != nil {
		return fmt.Errorf("library: %w", err)
	}
	if len(segs) == 0 {
		r.Library = []int{}
		return nil
	}

	g := r.Geometry()
	lib, err := index.Library(segs, g, r.Method.strictSegments())
	if err != nil {
		return fmt.Errorf("library: %w", err)
	}
	if r.Method.embeds() {
		if err = index.CheckSpan(segs, g); err != nil {
			return fmt.Errorf("library: %w", err)
		}
	}

	r.Library = lib
	r.LibrarySegments = segs
	r.DisjointLibrary = index.Disjoint(segs)

	return nil
}

func buildPrediction(r *Resolved, cfg config) error {
	segs, err := ranges.ParsePairs(r.Pred)
	if err != nil {
		return fmt.Errorf("prediction: %w", err)
	}

	pred, err := index.Prediction(segs, r.Method.strictSegments())
	if err != nil {
		return fmt.Errorf("prediction: %w", err)
	}
	if index.Disjoint(segs) {
		cfg.advise(r.Verbose, "WARNING: disjoint prediction sets are not fully supported. Use with caution.")
	}

	r.Prediction = pred
	r.PredictionSegments = segs

	return nil
}

// finalize enforces non-empty sets for Simplex and S-Map, applies the S-Map
// knn default, and gives the remaining methods a single-row default.
func finalize(r *Resolved, cfg config) error {
	if !r.Method.strictSegments() {
		if len(r.Library) == 0 {
			r.Library = []int{0}
		}
		if len(r.Prediction) == 0 {
			r.Prediction = []int{0}
		}
		return nil
	}

	if len(r.Library) == 0 {
		return ErrEmptyLibrary
	}
	if len(r.Prediction) == 0 {
		return ErrEmptyPrediction
	}
	if r.Method == SMap {
		return resolveSMapKnn(r, cfg)
	}

	return nil
}
