// SPDX-License-Identifier: MIT
// Package: edmindex/params
//
// geometry.go — resolution of E, Tp and tau into an index.Geometry.

package params

import "fmt"

// minSMapKnn is the S-Map knn floor.
const minSMapKnn = 2

// resolveGeometry applies the method-specific E and knn rules that must hold
// before any index set is generated.
//
//   - Simplex, CCM: embedded data forces E to the column count; knn < 1
//     defaults to E+1; knn < E+1 fails.
//   - SMap: several columns force E to the column count on embedded data and
//     fail on raw data. knn is settled in finalize, once the library exists.
//   - Embed: nothing to check.
func resolveGeometry(r *Resolved, cfg config) error {
	switch r.Method {
	case Simplex, CCM:
		if r.Embedded {
			forceColumnDimension(r, cfg)
		}
		if err := checkDimension(r); err != nil {
			return err
		}
		if r.Knn < 1 {
			r.Knn = r.E + 1
			cfg.advise(r.Verbose, "Set knn = %d (E+1) for %s.", r.Knn, r.Method)
		}
		if r.Knn < r.E+1 {
			return fmt.Errorf("%w: %s knn of %d is less than E+1 = %d", ErrKnnTooSmall, r.Method, r.Knn, r.E+1)
		}

	case SMap:
		if r.ColumnSpec.Len() > 1 {
			if !r.Embedded {
				return ErrMultivariateSMap
			}
			forceColumnDimension(r, cfg)
		}
		return checkDimension(r)

	case Embed:
	}

	return nil
}

// forceColumnDimension sets E to the column count of embedded data.
func forceColumnDimension(r *Resolved, cfg config) {
	n := r.ColumnSpec.Len()
	if n == 0 || n == r.E {
		return
	}
	cfg.advise(r.Verbose, "Set E = %d (number of columns) for embedded %s.", n, r.Method)
	r.E = n
}

func checkDimension(r *Resolved) error {
	if r.E < 1 {
		return fmt.Errorf("%w: %s E = %d", ErrDimension, r.Method, r.E)
	}

	return nil
}

// resolveSMapKnn defaults knn to the library size and enforces the floor.
func resolveSMapKnn(r *Resolved, cfg config) error {
	if r.Knn == 0 {
		r.Knn = len(r.Library)
		cfg.advise(r.Verbose, "Set knn = %d (library size) for SMap.", r.Knn)
	}
	if r.Knn < minSMapKnn {
		return fmt.Errorf("%w: SMap knn of %d is less than %d", ErrKnnTooSmall, r.Knn, minSMapKnn)
	}

	return nil
}
