// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package unifrac

import (
	"errors"
	"fmt"

	"github.com/js-arias/unifrac/phylo"
)

// ErrUnknownTaxon is used to wrap errors
// produced by a sample that references a taxon
// that is not a terminal of the tree.
var ErrUnknownTaxon = errors.New("unknown taxon")

// ErrEmptySample is used to wrap errors
// produced by a weighted projection of a sample
// without any abundance.
var ErrEmptySample = errors.New("empty sample")

// A Vector is the abundance distribution of a sample
// projected on the nodes of a phylogenetic tree.
//
// It stores one value per tree node,
// indexed by the node IDs of the tree,
// with non-zero values only at terminal nodes.
// A vector is immutable after construction
// and can be shared by any number
// of concurrent distance calculations.
type Vector struct {
	tree     *phylo.Tree
	weighted bool
	freq     []float64
}

// Weighted projects the raw abundance counts of a sample
// as relative frequencies
// on the terminals of the tree.
//
// Taxa of the tree without a count are taken as absent.
// A taxon with a count that is not a terminal of the tree
// is an error.
func Weighted(t *phylo.Tree, counts map[string]float64) (*Vector, error) {
	v := &Vector{
		tree:     t,
		weighted: true,
		freq:     make([]float64, t.Len()),
	}

	var total float64
	for tax, c := range counts {
		n, ok := t.Leaf(tax)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTaxon, tax)
		}
		v.freq[n] = c
		total += c
	}
	if total == 0 {
		return nil, fmt.Errorf("%w: no abundance counts", ErrEmptySample)
	}

	for n := range v.freq {
		v.freq[n] /= total
	}
	return v, nil
}

// Presence projects the raw abundance counts of a sample
// as presence-absence indicators
// on the terminals of the tree.
//
// Taxa of the tree without a count are taken as absent.
// A taxon with a count that is not a terminal of the tree
// is an error.
func Presence(t *phylo.Tree, counts map[string]float64) (*Vector, error) {
	v := &Vector{
		tree: t,
		freq: make([]float64, t.Len()),
	}

	for tax, c := range counts {
		n, ok := t.Leaf(tax)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTaxon, tax)
		}
		if c > 0 {
			v.freq[n] = 1
		}
	}
	return v, nil
}

// Tree returns the tree
// in which the vector is projected.
func (v *Vector) Tree() *phylo.Tree {
	return v.tree
}

// IsWeighted returns true
// if the vector stores relative frequencies
// instead of presence-absence indicators.
func (v *Vector) IsWeighted() bool {
	return v.weighted
}

// Freq returns the projected abundance
// at the indicated node.
func (v *Vector) Freq(n int) float64 {
	return v.freq[n]
}
