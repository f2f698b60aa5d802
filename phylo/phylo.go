// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package phylo implements a rooted phylogenetic tree
// with branch lengths
// indexed for distance calculations.
//
// Nodes are numbered by a post-order traversal,
// so the children of a node always have
// a smaller index than their parent,
// and the root is the last node.
// A tree is immutable after construction
// and can be read concurrently
// without locking.
package phylo

import (
	"errors"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// ErrMalformedTree is used to wrap errors
// produced by a structural defect of a source tree,
// such as a negative branch length,
// a repeated taxon name,
// or an unnamed terminal.
var ErrMalformedTree = errors.New("malformed tree")

// A Tree is a rooted phylogenetic tree
// stored as flat arrays
// indexed by post-order node IDs.
type Tree struct {
	parent []int     // parent node, -1 for the root
	length []float64 // branch length to the parent, 0 for the root
	taxon  []string  // taxon name, empty for internal nodes
	leaves map[string]int
}

// A node is the raw definition of a tree node
// used during construction.
type node struct {
	parent int
	length float64
	taxon  string
}

// newTree creates a tree from a node list
// already sorted in post-order.
func newTree(nodes []node) (*Tree, error) {
	if len(nodes) == 0 {
		return nil, fmt.Errorf("%w: empty tree", ErrMalformedTree)
	}

	t := &Tree{
		parent: make([]int, len(nodes)),
		length: make([]float64, len(nodes)),
		taxon:  make([]string, len(nodes)),
		leaves: make(map[string]int),
	}
	for i, n := range nodes {
		if n.length < 0 {
			return nil, fmt.Errorf("%w: negative branch length %.6f", ErrMalformedTree, n.length)
		}
		if n.parent >= 0 && n.parent <= i {
			return nil, fmt.Errorf("%w: node %d before its child", ErrMalformedTree, n.parent)
		}
		if n.parent < 0 && i != len(nodes)-1 {
			return nil, fmt.Errorf("%w: root is not the last node", ErrMalformedTree)
		}
		t.parent[i] = n.parent
		t.length[i] = n.length
		if n.taxon == "" {
			continue
		}
		if _, dup := t.leaves[n.taxon]; dup {
			return nil, fmt.Errorf("%w: repeated taxon %q", ErrMalformedTree, n.taxon)
		}
		t.taxon[i] = n.taxon
		t.leaves[n.taxon] = i
	}
	return t, nil
}

// Len returns the number of nodes of the tree.
func (t *Tree) Len() int {
	return len(t.parent)
}

// Root returns the ID of the root node,
// always the last node of the tree.
func (t *Tree) Root() int {
	return len(t.parent) - 1
}

// Parent returns the ID of the parent
// of the indicated node.
// It returns -1 for the root.
func (t *Tree) Parent(n int) int {
	return t.parent[n]
}

// Length returns the length of the branch
// that connects the indicated node
// with its parent.
// The root has a length of 0.
func (t *Tree) Length(n int) float64 {
	return t.length[n]
}

// Taxon returns the taxon name of a terminal node.
// It returns an empty string for internal nodes.
func (t *Tree) Taxon(n int) string {
	return t.taxon[n]
}

// Leaf returns the node ID of the terminal
// with the indicated taxon name,
// and false if the taxon is not in the tree.
func (t *Tree) Leaf(taxon string) (int, bool) {
	n, ok := t.leaves[taxon]
	return n, ok
}

// Taxa returns the taxon names of all terminals,
// sorted alphabetically.
func (t *Tree) Taxa() []string {
	taxa := make([]string, 0, len(t.leaves))
	for tax := range t.leaves {
		taxa = append(taxa, tax)
	}
	slices.Sort(taxa)
	return taxa
}

// TotalLength returns the sum of all branch lengths.
func (t *Tree) TotalLength() float64 {
	return floats.Sum(t.length)
}
