// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package unifrac implements the UniFrac distance
// between pairs of ecological samples
// placed on a shared phylogenetic tree.
//
// The distance is calculated with the EMDUniFrac algorithm
// (Gorman and Koslicki, 2020),
// an earth mover's distance formulation
// in which the optimal transport of abundance
// is constrained to the branches of the tree.
// As the tree metric has no shortcuts,
// the transport cost reduces to the absolute abundance imbalance
// on each branch,
// so a pair of samples is solved
// with a single post-order pass over the tree.
package unifrac

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// ErrTreeMismatch is used to wrap errors
// produced by comparing abundance vectors
// that were not projected on the same tree,
// or that were projected with different modes.
// It indicates a programming error
// rather than a user data error.
var ErrTreeMismatch = errors.New("mismatched abundance vectors")

// ErrDegenerateTree is used to wrap errors
// produced by an unweighted comparison
// in which the union of the two samples
// spans no branch length at all.
var ErrDegenerateTree = errors.New("degenerate tree")

// Dist returns the UniFrac distance
// between two abundance vectors
// projected on the same tree.
//
// If the vectors are weighted,
// the result is the weighted UniFrac distance,
// the minimum transport cost
// between the two abundance distributions.
// If the vectors are presence-absence vectors,
// the result is the unweighted UniFrac distance,
// the transport cost of the presence imbalance
// normalized by the total branch length
// spanned by the union of both samples.
func Dist(a, b *Vector) (float64, error) {
	if a.tree != b.tree {
		return 0, fmt.Errorf("%w: different trees", ErrTreeMismatch)
	}
	if a.weighted != b.weighted {
		return 0, fmt.Errorf("%w: different modes", ErrTreeMismatch)
	}

	// Scratch accumulators local to this call,
	// so the input vectors stay read-only
	// and can be shared between concurrent calls.
	accA := slices.Clone(a.freq)
	accB := slices.Clone(b.freq)

	t := a.tree
	root := t.Root()
	var cost, span float64
	for n := 0; n < root; n++ {
		l := t.Length(n)
		cost += math.Abs(accA[n]-accB[n]) * l
		if accA[n]+accB[n] > 0 {
			span += l
		}

		// fold the subtree abundance into the parent
		p := t.Parent(n)
		accA[p] += accA[n]
		accB[p] += accB[n]
	}

	if a.weighted {
		return cost, nil
	}
	if span == 0 {
		return 0, fmt.Errorf("%w: no branch length on the sample union", ErrDegenerateTree)
	}
	return cost / span, nil
}
