// SPDX-License-Identifier: MIT
// Package: edmindex/libsize
//
// libsize.go — library-size list and sequence expansion.

package libsize

import (
	"fmt"

	"github.com/katalvlaran/edmindex"
	"github.com/katalvlaran/edmindex/ranges"
)

// minStart is the smallest library size a generated sequence may begin at.
const minStart = 3

// MaxSizes caps the number of sizes a triple may generate.
const MaxSizes = 1 << 20

var (
	// ErrIncrement is returned when a generating triple has increment < 1.
	ErrIncrement = fmt.Errorf("%w: library size increment must be >= 1", edmindex.ErrRange)

	// ErrStartStop is returned when a generating triple has start > stop.
	ErrStartStop = fmt.Errorf("%w: library size start exceeds stop", edmindex.ErrRange)

	// ErrStartBelowE is returned when a generated sequence starts below E.
	ErrStartBelowE = fmt.Errorf("%w: library size start is below E", edmindex.ErrRange)

	// ErrStartTooSmall is returned when a generated sequence starts below 3.
	ErrStartTooSmall = fmt.Errorf("%w: library size start is below 3", edmindex.ErrRange)

	// ErrTooManySizes is returned when a triple would generate more than MaxSizes values.
	ErrTooManySizes = fmt.Errorf("%w: library size sequence too long", edmindex.ErrRange)

	// ErrNonPositive is returned when an explicit size is < 1.
	ErrNonPositive = fmt.Errorf("%w: library size must be >= 1", edmindex.ErrRange)
)

// Sizes is the expanded specifier.
type Sizes struct {
	// Values are the library sizes in specifier order.
	Values []int
	// Generated is true when Values came from a start/stop/increment triple.
	Generated bool
}

// Parse expands spec. e is the embedding dimension used to bound the first
// generated size. An empty spec yields empty Sizes and no error.
func Parse(spec string, e int) (Sizes, error) {
	vals, err := ranges.ParseInts(spec)
	if err != nil {
		return Sizes{}, fmt.Errorf("library sizes: %w", err)
	}
	if len(vals) == 0 {
		return Sizes{}, nil
	}

	if len(vals) == 3 && vals[2] < vals[1] {
		out, err := Sequence(vals[0], vals[1], vals[2], e)
		if err != nil {
			return Sizes{}, err
		}
		return Sizes{Values: out, Generated: true}, nil
	}

	for _, v := range vals {
		if v < 1 {
			return Sizes{}, fmt.Errorf("%w, got %d", ErrNonPositive, v)
		}
	}

	return Sizes{Values: vals}, nil
}

// Sequence generates start, start+increment, … ≤ stop after validating the
// triple against e. The count is floor((stop-start)/increment)+1.
func Sequence(start, stop, increment, e int) ([]int, error) {
	switch {
	case increment < 1:
		return nil, fmt.Errorf("%w, got %d", ErrIncrement, increment)
	case start > stop:
		return nil, fmt.Errorf("%w: start %d stop %d", ErrStartStop, start, stop)
	case start < e:
		return nil, fmt.Errorf("%w: start %d E %d", ErrStartBelowE, start, e)
	case start < minStart:
		return nil, fmt.Errorf("%w, got %d", ErrStartTooSmall, start)
	}

	n := (stop-start)/increment + 1
	if n > MaxSizes {
		return nil, fmt.Errorf("%w: %d sizes, max %d", ErrTooManySizes, n, MaxSizes)
	}
	out := make([]int, n)
	for i := range out {
		out[i] = start + i*increment
	}

	return out, nil
}
