// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package taxa implements a command to print
// the list of terminal taxa of a tree file.
package taxa

import (
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/timetree"
	"github.com/js-arias/unifrac/phylo"
	"github.com/js-arias/unifrac/sample"
	"golang.org/x/exp/slices"
)

var Command = &command.Command{
	Usage: `taxa [--timed <tree-name>] [--counts <table-file>]
	<tree-file>`,
	Short: "print a list of the taxa of a tree",
	Long: `
Command taxa reads a phylogenetic tree file and prints the name of its
terminal taxa in the standard output.

The argument of the command is the name of the tree file, by default a newick
(parenthetical) tree file. If the flag --timed is set, the file must be a
tab-delimited file with time calibrated trees (the format used by the phygeo
and timetree tools), and the value of the flag is the name of the tree to be
used.

If the flag --counts is set with an abundance table file, only the taxa of
the tree with a row in the table will be printed.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var timedName string
var countsFile string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&timedName, "timed", "", "")
	c.Flags().StringVar(&countsFile, "counts", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting tree file")
	}

	t, err := readTree(args[0], timedName)
	if err != nil {
		return err
	}
	taxa := t.Taxa()

	if countsFile != "" {
		tab, err := readTable(countsFile)
		if err != nil {
			return err
		}
		inTable := make(map[string]bool)
		for _, tax := range tab.Taxa() {
			inTable[tax] = true
		}
		taxa = slices.DeleteFunc(taxa, func(tax string) bool {
			return !inTable[tax]
		})
	}

	for _, tax := range taxa {
		fmt.Fprintf(c.Stdout(), "%s\n", tax)
	}
	return nil
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
