// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package matrix implements a command to calculate
// the pairwise UniFrac distance matrix
// of a set of samples.
package matrix

import (
	"bufio"
	"fmt"
	"os"
	"runtime"

	"github.com/js-arias/command"
	"github.com/js-arias/timetree"
	"github.com/js-arias/unifrac/phylo"
	"github.com/js-arias/unifrac/sample"
	"github.com/js-arias/unifrac/unifrac"
)

var Command = &command.Command{
	Usage: `matrix -t|--tree <tree-file> -i|--input <table-file>
	[--timed <tree-name>] [--weighted]
	[-o|--output <file>] [--cpu <number>]`,
	Short: "calculate a UniFrac distance matrix",
	Long: `
Command matrix reads a phylogenetic tree and a sample-feature abundance
table, calculates the UniFrac distance between each pair of samples, and
writes the resulting distance matrix.

The flag --tree, or -t, is required and sets the tree file. By default the
file must be a newick (parenthetical) tree file. If the flag --timed is set,
the file must be a tab-delimited file with time calibrated trees (the format
used by the phygeo and timetree tools), and the value of the flag is the name
of the tree to be used; in that case, branch lengths are age differences in
million years.

The flag --input, or -i, is required and sets the abundance table file, a
tab-delimited file with one row per taxon and one column per sample. Use the
command 'unifrac help formats' to learn the details of the file formats.
Every taxon in the table must be a terminal of the tree; taxa of the tree
absent from the table are taken as zero abundances.

By default, the unweighted UniFrac distance is calculated, using only the
presence or absence of each taxon. If the flag --weighted is set, the
weighted UniFrac distance is calculated, using the relative abundance of
each taxon; in that case samples without any abundance are rejected.

Any invalid sample aborts the whole run before any distance is calculated,
and no output is produced.

The output is printed in the standard output. To define an output file, use
the flag --output, or -o; on failure no output file is written.

By default, all available CPUs will be used in the calculations. Set the flag
--cpu to use a different number of CPUs.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var treeFile string
var timedName string
var inFile string
var output string
var weighted bool
var numCPU int

func setFlags(c *command.Command) {
	c.Flags().StringVar(&treeFile, "tree", "", "")
	c.Flags().StringVar(&treeFile, "t", "", "")
	c.Flags().StringVar(&timedName, "timed", "", "")
	c.Flags().StringVar(&inFile, "input", "", "")
	c.Flags().StringVar(&inFile, "i", "", "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
	c.Flags().BoolVar(&weighted, "weighted", false, "")
	c.Flags().IntVar(&numCPU, "cpu", runtime.GOMAXPROCS(0), "")
}

func run(c *command.Command, args []string) error {
	if treeFile == "" {
		return c.UsageError("expecting tree file, flag --tree")
	}
	if inFile == "" {
		return c.UsageError("expecting abundance table file, flag --input")
	}

	t, err := readTree(treeFile, timedName)
	if err != nil {
		return err
	}
	tab, err := readTable(inFile)
	if err != nil {
		return err
	}

	// project and validate all samples
	// before any distance is calculated
	names := tab.Samples()
	vs := make([]*unifrac.Vector, 0, len(names))
	for _, s := range names {
		var v *unifrac.Vector
		var err error
		if weighted {
			v, err = unifrac.Weighted(t, tab.Counts(s))
		} else {
			v, err = unifrac.Presence(t, tab.Counts(s))
		}
		if err != nil {
			return fmt.Errorf("on table %q: sample %q: %v", inFile, s, err)
		}
		vs = append(vs, v)
	}

	m, err := unifrac.DistMatrix(t, names, vs, numCPU)
	if err != nil {
		return err
	}

	if output == "" {
		return m.TSV(c.Stdout())
	}
	return writeMatrix(m)
}

func readTree(name, timed string) (*phylo.Tree, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if timed != "" {
		coll, err := timetree.ReadTSV(f)
		if err != nil {
			return nil, fmt.Errorf("while reading file %q: %v", name, err)
		}
		st := coll.Tree(timed)
		if st == nil {
			return nil, fmt.Errorf("on file %q: tree %q not found", name, timed)
		}
		t, err := phylo.FromTimed(st)
		if err != nil {
			return nil, fmt.Errorf("on file %q: tree %q: %v", name, timed, err)
		}
		return t, nil
	}

	t, err := phylo.Newick(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return t, nil
}

func readTable(name string) (*sample.Table, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tab, err := sample.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return tab, nil
}

func writeMatrix(m *unifrac.Matrix) (err error) {
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	bw := bufio.NewWriter(f)
	if err := m.TSV(bw); err != nil {
		return fmt.Errorf("while writing to %q: %v", output, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing to %q: %v", output, err)
	}
	return nil
}
