// SPDX-License-Identifier: MIT
// Package: edmindex/index
//
// prediction.go — prediction index generation.

package index

import (
	"fmt"

	"github.com/katalvlaran/edmindex/ranges"
)

// Prediction converts segs to 0-based rows without any geometry shift and
// requires the result to be strictly increasing. An empty segs yields an
// empty set.
func Prediction(segs []ranges.Segment, strict bool) ([]int, error) {
	if len(segs) == 0 {
		return []int{}, nil
	}
	if err := checkSegments(segs, strict); err != nil {
		return nil, err
	}

	pred := make([]int, 0, totalLen(segs))
	for _, s := range segs {
		pred = appendRows(pred, s.Start, s.Stop)
	}

	for i := 1; i < len(pred); i++ {
		if pred[i] <= pred[i-1] {
			return nil, fmt.Errorf("%w: row %d follows row %d", ErrNotIncreasing, pred[i]+1, pred[i-1]+1)
		}
	}

	return pred, nil
}

// Disjoint reports whether segs describe more than one block.
func Disjoint(segs []ranges.Segment) bool { return len(segs) > 1 }
