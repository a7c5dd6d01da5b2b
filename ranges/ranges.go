// SPDX-License-Identifier: MIT
// Package: edmindex/ranges
//
// ranges.go — tokenizing and pairing of range strings.

package ranges

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/edmindex"
)

// Delimiters lists the runes that separate tokens.
const Delimiters = " \t,\n"

// ErrOddTokens is returned by ParsePairs when the token count is odd.
var ErrOddTokens = fmt.Errorf("%w: must be even number of integers", edmindex.ErrFormat)

// ErrBadInteger is returned when a token is not a base-10 integer.
var ErrBadInteger = fmt.Errorf("%w: invalid integer", edmindex.ErrFormat)

// Segment is a 1-based, inclusive row range as written by the user.
type Segment struct {
	Start int
	Stop  int
}

// Len returns the number of rows covered by the segment (Stop-Start+1).
func (s Segment) Len() int { return s.Stop - s.Start + 1 }

// String renders the segment as "start:stop".
func (s Segment) String() string { return fmt.Sprintf("%d:%d", s.Start, s.Stop) }

// Split breaks s into tokens on any of Delimiters. Empty tokens are dropped,
// so leading, trailing and repeated separators are harmless.
// Complexity: O(len(s)).
func Split(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return strings.ContainsRune(Delimiters, r)
	})
}

// ParseInts splits s and converts every token to an int.
// An empty string yields an empty, non-nil slice.
func ParseInts(s string) ([]int, error) {
	tokens := Split(s)
	out := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("%w %q", ErrBadInteger, tok)
		}
		out = append(out, v)
	}

	return out, nil
}

// ParsePairs parses s into consecutive (start, stop) segments.
// No bound checks are applied here; callers decide which bounds apply.
func ParsePairs(s string) ([]Segment, error) {
	vals, err := ParseInts(s)
	if err != nil {
		return nil, err
	}
	if len(vals)%2 != 0 {
		return nil, fmt.Errorf("%w, got %d", ErrOddTokens, len(vals))
	}

	segs := make([]Segment, 0, len(vals)/2)
	for i := 0; i < len(vals); i += 2 {
		segs = append(segs, Segment{Start: vals[i], Stop: vals[i+1]})
	}

	return segs, nil
}

// MaxLen returns the largest Len over segs, or 0 for an empty slice.
func MaxLen(segs []Segment) int {
	best := 0
	for _, s := range segs {
		if n := s.Len(); n > best {
			best = n
		}
	}

	return best
}
