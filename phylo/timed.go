// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package phylo

import (
	"fmt"

	"github.com/js-arias/timetree"
)

const millionYears = 1_000_000

// FromTimed returns the indexed form
// of a time calibrated tree.
//
// Branch lengths are the age difference
// between a node and its parent,
// in million years.
func FromTimed(src *timetree.Tree) (*Tree, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: undefined tree", ErrMalformedTree)
	}

	var nodes []node
	pos := make(map[int]int, len(src.Nodes()))

	var walk func(id int)
	walk = func(id int) {
		for _, c := range src.Children(id) {
			walk(c)
		}

		n := node{parent: -1}
		if !src.IsRoot(id) {
			n.length = float64(src.Age(src.Parent(id))-src.Age(id)) / millionYears
		}
		if src.IsTerm(id) {
			n.taxon = src.Taxon(id)
		}
		pos[id] = len(nodes)
		nodes = append(nodes, n)
	}
	walk(src.Root())

	// The parent of a node is visited after the node,
	// so parent IDs are resolved in a second pass.
	ids := make([]int, len(nodes))
	for id, i := range pos {
		ids[i] = id
	}
	for i, id := range ids {
		if src.IsRoot(id) {
			continue
		}
		nodes[i].parent = pos[src.Parent(id)]
	}
	return newTree(nodes)
}
