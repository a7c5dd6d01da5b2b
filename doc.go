// SPDX-License-Identifier: MIT
// Package: edmindex

// Package edmindex compiles the configuration of time-delay-embedding
// forecasts (Simplex projection, S-Map, convergent cross mapping) into the
// zero-based row-index sets those methods train and predict on.
//
// What it does:
//
//	Given 1-based range strings ("1 100 201 300"), an embedding dimension E,
//	a prediction horizon Tp, a delay tau and a method selector, it derives
//	the library (training rows) and prediction (query rows) index sets that
//	are consistent with the embedding geometry, and renumbers them once the
//	embedding step has dropped tau·(E-1) boundary rows.
//
// Layout:
//
//	ranges/  — tokenizer and (start, stop) segment parser
//	colspec/ — column and target specifiers (indices or names)
//	libsize/ — cross-mapping library-size sequences
//	index/   — library/prediction generators, span check, post-embedding adjuster
//	params/  — Parameters → Validate → Resolved pipeline, file loading, summary
//
// Errors:
//
//	Every failure belongs to exactly one class of the taxonomy declared in
//	errors.go (ErrFormat, ErrRange, ErrConfiguration, ErrConsistency).
//	Subpackages wrap these classes in their own sentinels, so both
//	errors.Is(err, ranges.ErrOddTokens) and errors.Is(err, edmindex.ErrFormat)
//	hold for the same value. Use KindOf to switch on the class.
//
// Quick example:
//
//	p := params.Default()
//	p.Method = params.Simplex
//	p.Lib, p.Pred = "1 100", "101 150"
//	p.E, p.Tp, p.Columns, p.Target = 3, 1, "x", "x"
//	r, err := params.Validate(p)
//	if err != nil {
//		switch edmindex.KindOf(err) { ... }
//	}
//	fmt.Println(r.Library[0], r.Prediction[0])
package edmindex
