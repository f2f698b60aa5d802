// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package sample implements a sample-feature table
// that stores the abundance of a set of taxa
// on a set of ecological samples.
package sample

import (
	"errors"
	"fmt"
	"slices"
)

// ErrNegCount is used to wrap errors
// produced by a negative abundance value.
var ErrNegCount = errors.New("negative abundance count")

// A Table is a collection of abundance counts
// of taxa in samples.
// A taxon without an explicit count in a sample
// has a count of zero.
type Table struct {
	samples []string
	taxa    map[string]bool
	counts  map[string]map[string]float64
}

// New creates a new empty abundance table.
func New() *Table {
	return &Table{
		taxa:   make(map[string]bool),
		counts: make(map[string]map[string]float64),
	}
}

// Add adds an abundance count of a taxon
// in the indicated sample.
// If the taxon already has a count in the sample,
// the given value will be added to it.
func (t *Table) Add(sample, taxon string, count float64) error {
	if count < 0 {
		return fmt.Errorf("%w: taxon %q on sample %q: %.6f", ErrNegCount, taxon, sample, count)
	}

	c, ok := t.counts[sample]
	if !ok {
		c = make(map[string]float64)
		t.counts[sample] = c
		t.samples = append(t.samples, sample)
	}
	t.taxa[taxon] = true
	c[taxon] += count
	return nil
}

// Samples returns the sample IDs of the table,
// in the order of addition
// (i.e. the column order of the source file).
func (t *Table) Samples() []string {
	return t.samples
}

// Taxa returns the taxon names of the table,
// sorted alphabetically.
func (t *Table) Taxa() []string {
	taxa := make([]string, 0, len(t.taxa))
	for tax := range t.taxa {
		taxa = append(taxa, tax)
	}
	slices.Sort(taxa)
	return taxa
}

// Counts returns the abundance counts of a sample
// as a map of taxon names to raw counts.
func (t *Table) Counts(sample string) map[string]float64 {
	c := make(map[string]float64, len(t.counts[sample]))
	for tax, v := range t.counts[sample] {
		c[tax] = v
	}
	return c
}
