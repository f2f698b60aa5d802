// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package hist implements a command to plot
// the distribution of the distances of a matrix
// as a histogram.
package hist

import (
	"fmt"
	"os"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/unifrac/unifrac"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var Command = &command.Command{
	Usage: `hist [-o|--output <file>] [--bins <number>]
	<matrix-file>`,
	Short: "plot a histogram of the distances of a matrix",
	Long: `
Command hist reads a distance matrix file and plots the distribution of the
distances of all sample pairs as a histogram, in PNG format. The diagonal of
the matrix is not included.

The argument of the command is the name of the matrix file.

By default, 20 bins will be used. Use the flag --bins to set a different
number of bins.

By default, the output file name is the name of the matrix file with the
'-hist.png' suffix. A different file name can be set with the flag --output,
or -o.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var output string
var bins int

func setFlags(c *command.Command) {
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
	c.Flags().IntVar(&bins, "bins", 20, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting matrix file")
	}

	m, err := readMatrix(args[0])
	if err != nil {
		return err
	}
	if m.Len() < 2 {
		return fmt.Errorf("on file %q: expecting two or more samples", args[0])
	}

	vals := make(plotter.Values, 0, m.Len()*(m.Len()-1)/2)
	for i := 0; i < m.Len(); i++ {
		for j := i + 1; j < m.Len(); j++ {
			vals = append(vals, m.Dist(i, j))
		}
	}

	h, err := plotter.NewHist(vals, bins)
	if err != nil {
		return err
	}

	p := plot.New()
	p.X.Label.Text = "UniFrac distance"
	p.Y.Label.Text = "pairs"
	p.Add(h)

	if output == "" {
		output = strings.TrimSuffix(args[0], ".tab") + "-hist.png"
	}
	if err := p.Save(6*vg.Inch, 4*vg.Inch, output); err != nil {
		return err
	}
	return nil
}

func readMatrix(name string) (*unifrac.Matrix, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := unifrac.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return m, nil
}
