// SPDX-License-Identifier: MIT
// Package: edmindex/libsize

// Package libsize expands the cross-mapping library-size specifier into the
// ordered list of library sizes at which convergence is evaluated.
//
// Two forms are accepted:
//
//	"start stop increment"  — exactly three integers with increment < stop:
//	                          generates start, start+increment, … ≤ stop.
//	"n1 n2 …"               — any other token list: the sizes themselves.
//
// Known ambiguity: three explicit sizes whose last value is smaller than the
// second ("10 20 5") are read as a generating triple, and a genuine triple
// whose increment is not below stop ("10 20 30") is read as a list. The
// heuristic is kept as is; there is no syntax to force either reading.
package libsize
