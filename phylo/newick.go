// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package phylo

import (
	"fmt"
	"io"

	"github.com/evolbioinfo/gotree/io/newick"
	"github.com/evolbioinfo/gotree/tree"
)

// Newick reads a tree in newick
// (parenthetical) format
// and returns its indexed form.
//
// Terminals without a name,
// repeated taxon names,
// and negative branch lengths
// are rejected.
// Branches without an explicit length
// are taken as zero length branches.
func Newick(r io.Reader) (*Tree, error) {
	p := newick.NewParser(r)
	src, err := p.Parse()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedTree, err)
	}
	return fromNewick(src)
}

func fromNewick(src *tree.Tree) (*Tree, error) {
	var nodes []node
	var parents []int
	pos := make(map[int]int)

	var fail error
	src.PostOrder(func(cur, prev *tree.Node, e *tree.Edge) bool {
		n := node{parent: -1}
		pID := -1
		if prev != nil {
			pID = prev.Id()
			l := e.Length()
			if l == tree.NIL_LENGTH {
				l = 0
			}
			n.length = l
		}
		if cur.Tip() {
			if cur.Name() == "" {
				fail = fmt.Errorf("%w: terminal without name", ErrMalformedTree)
				return false
			}
			n.taxon = cur.Name()
		}
		pos[cur.Id()] = len(nodes)
		nodes = append(nodes, n)
		parents = append(parents, pID)
		return true
	})
	if fail != nil {
		return nil, fail
	}

	// The parent of a node is visited after the node,
	// so parent IDs are resolved in a second pass.
	for i, p := range parents {
		if p < 0 {
			continue
		}
		nodes[i].parent = pos[p]
	}
	return newTree(nodes)
}
