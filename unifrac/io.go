// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package unifrac

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// TSV writes a distance matrix
// as a square tab-delimited matrix.
//
// The first row is the header:
// the corner cell "sample"
// followed by the sample IDs;
// each data row contains a sample ID
// followed by the distances to every sample,
// with six decimal digits.
// The diagonal is always zero.
//
// Here is an example file:
//
//	sample	sample-1	sample-2	sample-3
//	sample-1	0.000000	0.250000	1.000000
//	sample-2	0.250000	0.000000	0.750000
//	sample-3	1.000000	0.750000	0.000000
func (m *Matrix) TSV(w io.Writer) error {
	tab := csv.NewWriter(w)
	tab.Comma = '\t'
	tab.UseCRLF = true

	header := append([]string{"sample"}, m.names...)
	if err := tab.Write(header); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}

	row := make([]string, m.Len()+1)
	for i := 0; i < m.Len(); i++ {
		row[0] = m.names[i]
		for j := 0; j < m.Len(); j++ {
			row[j+1] = strconv.FormatFloat(m.Dist(i, j), 'f', 6, 64)
		}
		if err := tab.Write(row); err != nil {
			return fmt.Errorf("sample %q: %v", m.names[i], err)
		}
	}

	tab.Flush()
	if err := tab.Error(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	return nil
}

// ReadTSV reads a distance matrix
// from a square tab-delimited matrix file
// with the layout written by TSV.
//
// The matrix must be symmetric,
// with a zero diagonal
// and without negative distances.
func ReadTSV(r io.Reader) (*Matrix, error) {
	tab := csv.NewReader(r)
	tab.Comma = '\t'
	tab.Comment = '#'

	head, err := tab.Read()
	if err != nil {
		return nil, fmt.Errorf("while reading header: %v", err)
	}
	if len(head) < 2 {
		return nil, fmt.Errorf("header: expecting one or more sample IDs")
	}
	names := make([]string, 0, len(head)-1)
	for _, s := range head[1:] {
		s = strings.TrimSpace(s)
		if s == "" {
			return nil, fmt.Errorf("header: empty sample ID")
		}
		names = append(names, s)
	}

	m := &Matrix{
		names: names,
		d:     mat.NewSymDense(len(names), nil),
	}
	for i := range names {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("sample %q: missing row", names[i])
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}
		if s := strings.TrimSpace(row[0]); s != names[i] {
			return nil, fmt.Errorf("on row %d: got sample %q, want %q", ln, s, names[i])
		}
		for j := range names {
			v, err := strconv.ParseFloat(strings.TrimSpace(row[j+1]), 64)
			if err != nil {
				return nil, fmt.Errorf("on row %d: sample %q: %v", ln, names[j], err)
			}
			if v < 0 {
				return nil, fmt.Errorf("on row %d: sample %q: negative distance", ln, names[j])
			}
			if j == i {
				if v != 0 {
					return nil, fmt.Errorf("on row %d: non-zero diagonal", ln)
				}
				continue
			}
			if j < i {
				if m.d.At(i, j) != v {
					return nil, fmt.Errorf("on row %d: sample %q: non-symmetric distance", ln, names[j])
				}
				continue
			}
			m.d.SetSym(i, j, v)
		}
	}
	return m, nil
}
