// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package unifrac

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/js-arias/unifrac/phylo"
	"gonum.org/v1/gonum/mat"
)

// A Matrix is a symmetric matrix
// of pairwise UniFrac distances
// between a set of samples.
// The diagonal is always zero.
type Matrix struct {
	names []string
	d     *mat.SymDense
}

// Len returns the number of samples of the matrix.
func (m *Matrix) Len() int {
	return len(m.names)
}

// Sample returns the ID of the i-th sample.
func (m *Matrix) Sample(i int) string {
	return m.names[i]
}

// Samples returns the sample IDs of the matrix,
// in matrix order.
func (m *Matrix) Samples() []string {
	names := make([]string, len(m.names))
	copy(names, m.names)
	return names
}

// Dist returns the distance
// between the i-th and j-th samples.
func (m *Matrix) Dist(i, j int) float64 {
	if i == j {
		return 0
	}
	return m.d.At(i, j)
}

// A pair is a single pairwise comparison task.
type pair struct {
	i, j int
}

type pairChanType struct {
	start, end int
}

// pair blocks
var pairBlocks = 1000

// DistMatrix calculates the UniFrac distances
// between all pairs of the given samples
// and returns the symmetric distance matrix.
//
// All vectors must be projections on the tree t,
// built with the same mode;
// vectors are validated before any calculation starts
// and a validation failure aborts the whole run.
// Use cpu to define the number of processes
// used for the calculation.
// The default (zero) uses all available CPU.
func DistMatrix(t *phylo.Tree, names []string, vs []*Vector, cpu int) (*Matrix, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: expecting one or more samples", ErrTreeMismatch)
	}
	if len(names) != len(vs) {
		return nil, fmt.Errorf("%w: %d samples, %d vectors", ErrTreeMismatch, len(names), len(vs))
	}
	for i, v := range vs {
		if v.tree != t {
			return nil, fmt.Errorf("%w: sample %q: vector from a different tree", ErrTreeMismatch, names[i])
		}
		if v.weighted != vs[0].weighted {
			return nil, fmt.Errorf("%w: sample %q: vector with a different mode", ErrTreeMismatch, names[i])
		}
	}
	if cpu <= 0 {
		cpu = runtime.GOMAXPROCS(0)
	}

	m := &Matrix{
		names: append([]string(nil), names...),
		d:     mat.NewSymDense(len(names), nil),
	}

	pairs := make([]pair, 0, len(vs)*(len(vs)-1)/2)
	for i := range vs {
		for j := i + 1; j < len(vs); j++ {
			pairs = append(pairs, pair{i: i, j: j})
		}
	}

	// Each task owns a disjoint set of matrix cells,
	// so the workers write without locking.
	errs := make([]error, len(pairs))
	pairChan := make(chan pairChanType, cpu*2)
	var wg sync.WaitGroup
	for range cpu {
		go func() {
			for c := range pairChan {
				for k := c.start; k < c.end; k++ {
					p := pairs[k]
					d, err := Dist(vs[p.i], vs[p.j])
					if err != nil {
						errs[k] = fmt.Errorf("samples %q, %q: %v", names[p.i], names[p.j], err)
						continue
					}
					m.d.SetSym(p.i, p.j, d)
				}
				wg.Done()
			}
		}()
	}
	for i := 0; i < len(pairs); i += pairBlocks {
		wg.Add(1)
		end := i + pairBlocks
		if end > len(pairs) {
			end = len(pairs)
		}
		pairChan <- pairChanType{
			start: i,
			end:   end,
		}
	}
	wg.Wait()
	close(pairChan)

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return m, nil
}
