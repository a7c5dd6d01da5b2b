// SPDX-License-Identifier: MIT
// Package: edmindex
//
// errors.go — the error taxonomy shared by every subpackage.
//
// Error policy:
//   • Only the four class sentinels below are declared here.
//   • Subpackages declare narrower sentinels that wrap one class with %w.
//   • Callers branch with errors.Is or KindOf, never on message text.

package edmindex

import "errors"

// ErrFormat marks malformed range or size strings: odd token counts,
// unparsable integers.
var ErrFormat = errors.New("edmindex: format error")

// ErrRange marks index bounds below 1, a segment start not below its stop
// where that is required, and non-increasing prediction sequences.
var ErrRange = errors.New("edmindex: range error")

// ErrConfiguration marks an unusable parameter combination: unknown method,
// no resolvable columns, zero tau on raw data, sample count < 1.
var ErrConfiguration = errors.New("edmindex: configuration error")

// ErrConsistency marks geometry that cannot be hosted by the library: a
// vector span longer than every segment, or knn below the method floor.
var ErrConsistency = errors.New("edmindex: consistency error")

// Kind classifies an error by taxonomy class.
type Kind int

const (
	// KindNone is the class of a nil error.
	KindNone Kind = iota
	// KindFormat corresponds to ErrFormat.
	KindFormat
	// KindRange corresponds to ErrRange.
	KindRange
	// KindConfiguration corresponds to ErrConfiguration.
	KindConfiguration
	// KindConsistency corresponds to ErrConsistency.
	KindConsistency
	// KindUnknown is any non-nil error outside the taxonomy.
	KindUnknown
)

// String returns the class name.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindFormat:
		return "format"
	case KindRange:
		return "range"
	case KindConfiguration:
		return "configuration"
	case KindConsistency:
		return "consistency"
	default:
		return "unknown"
	}
}

// KindOf reports the taxonomy class of err.
// Complexity: O(depth of the wrap chain).
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrFormat):
		return KindFormat
	case errors.Is(err, ErrRange):
		return KindRange
	case errors.Is(err, ErrConfiguration):
		return KindConfiguration
	case errors.Is(err, ErrConsistency):
		return KindConsistency
	default:
		return KindUnknown
	}
}
