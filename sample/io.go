// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package sample

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadTSV reads an abundance table
// from a TSV file.
//
// The first row is the header:
// the first column is ignored
// and the remaining columns are the sample IDs.
// Each data row contains a taxon name
// followed by the raw abundance count of the taxon
// in each sample.
// Empty cells are read as zero counts.
//
// Here is an example file:
//
//	taxon	sample-1	sample-2	sample-3
//	Escherichia coli	125	0	3
//	Bacillus subtilis	0	44	17
//	Vibrio cholerae	12	0	0
func ReadTSV(r io.Reader) (*Table, error) {
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
	samples := make([]string, 0, len(head)-1)
	for _, s := range head[1:] {
		s = strings.TrimSpace(s)
		if s == "" {
			return nil, fmt.Errorf("header: empty sample ID")
		}
		samples = append(samples, s)
	}

	// register the samples first
	// to keep the column order of the file,
	// even for all zero samples
	t := New()
	for _, s := range samples {
		if _, ok := t.counts[s]; ok {
			return nil, fmt.Errorf("header: repeated sample ID %q", s)
		}
		t.counts[s] = make(map[string]float64)
		t.samples = append(t.samples, s)
	}

	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		tax := strings.Join(strings.Fields(row[0]), " ")
		if tax == "" {
			return nil, fmt.Errorf("on row %d: empty taxon name", ln)
		}
		for i, s := range samples {
			v := strings.TrimSpace(row[i+1])
			if v == "" {
				continue
			}
			c, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, fmt.Errorf("on row %d: taxon %q: sample %q: %v", ln, tax, s, err)
			}
			if err := t.Add(s, tax, c); err != nil {
				return nil, fmt.Errorf("on row %d: %v", ln, err)
			}
		}
	}
	return t, nil
}
