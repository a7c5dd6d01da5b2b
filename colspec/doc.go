// SPDX-License-Identifier: MIT
// Package: edmindex/colspec

// Package colspec resolves column and target specifiers.
//
// A specifier is either a list of integer column positions or a list of
// column names, never a mix: if every token is purely numeric the whole
// specifier is read as positions, otherwise every token is a name. The
// result is a tagged value (Columns, Target) built once at the API boundary
// so later stages never re-inspect raw strings.
package colspec
