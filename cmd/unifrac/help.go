// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package main

import "github.com/js-arias/command"

func init() {
	app.Add(formatsGuide)
}

var formatsGuide = &command.Command{
	Usage: "formats",
	Short: "about the file formats",
	Long: `
UniFrac reads and writes three kinds of files: phylogenetic tree files,
abundance table files, and distance matrix files. This guide explains the
layout of each one.

Phylogenetic trees are read from newick (parenthetical) files, with branch
lengths in any unit; for example:

	((a:1,b:1):1,(c:1,d:1):1);

Terminals must be named, taxon names must be unique, and branch lengths must
not be negative. Branches without an explicit length are read as zero length
branches. Alternatively, with the flag --timed, trees can be read from
tab-delimited files with time calibrated trees (the format used by the
phygeo and timetree tools); in that case branch lengths are age differences
in million years.

Abundance tables are tab-delimited files. The first row is the header: the
first column, usually named "taxon", is reserved for the taxon names, and
each remaining column is a sample ID. Each data row contains a taxon name
followed by the raw abundance count of the taxon in each sample. Empty cells
are read as zero counts. Here is an example file:

	taxon	sample-1	sample-2	sample-3
	Escherichia coli	125	0	3
	Bacillus subtilis	0	44	17
	Vibrio cholerae	12	0	0

Counts must not be negative. Every taxon in the table must be a terminal of
the tree; taxa of the tree without a row in the table are taken as absent
from all samples.

Distance matrices are tab-delimited files with a square symmetric matrix.
The first row is the header: the corner cell "sample" followed by the sample
IDs; each data row contains a sample ID followed by the distance to every
sample, with six decimal digits, and a zero diagonal. Here is an example
file:

	sample	sample-1	sample-2	sample-3
	sample-1	0.000000	0.250000	1.000000
	sample-2	0.250000	0.000000	0.750000
	sample-3	1.000000	0.750000	0.000000
	`,
}
