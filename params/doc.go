// SPDX-License-Identifier: MIT
// Package: edmindex/params

// Package params turns raw forecasting parameters into validated index sets.
//
// Lifecycle:
//
//	p := params.Default()          // raw, immutable input (or params.Load(path))
//	r, err := params.Validate(p)   // ordered passes → *Resolved, or a taxonomy error
//	r2, err := r.AdjustForEmbedding(nRows) // after the external embedding step
//
// Validate runs, in order: method check, tau check, column/target
// resolution, cross-mapping sample check, geometry defaulting (E, knn),
// library sizes, library generation with span check, prediction
// generation, and the final emptiness/knn pass. The first failure aborts;
// no partially built Resolved is ever returned.
//
// Diagnostics (knn or E defaulted, disjoint prediction sets) go to the sink
// given by WithLogf and only when Parameters.Verbose is set. Without a sink
// they are discarded.
package params
