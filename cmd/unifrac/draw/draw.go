// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package draw implements a command to draw
// a distance matrix as a heat map image.
package draw

import (
	"bufio"
	"fmt"
	"image/png"
	"os"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/unifrac/heat"
	"github.com/js-arias/unifrac/unifrac"
)

var Command = &command.Command{
	Usage: `draw [-o|--output <file>] [--cell <pixels>] [--gray]
	<matrix-file>`,
	Short: "draw a distance matrix as a heat map",
	Long: `
Command draw reads a distance matrix file and draws it as a heat map image,
in PNG format, with one colored cell per sample pair.

The argument of the command is the name of the matrix file.

Cells are colored by the distance of the pair scaled by the maximum distance
of the matrix, using a color blind friendly gradient. If the flag --gray is
set, a gray scale will be used instead, white for a zero distance and black
for the maximum distance.

By default, each cell is 10 pixels wide. Use the flag --cell to set a
different cell size.

By default, the output file name is the name of the matrix file with the
'.png' extension. A different file name can be set with the flag --output, or
-o.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var output string
var cellSize int
var grayFlag bool

func setFlags(c *command.Command) {
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
	c.Flags().IntVar(&cellSize, "cell", 10, "")
	c.Flags().BoolVar(&grayFlag, "gray", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting matrix file")
	}

	m, err := readMatrix(args[0])
	if err != nil {
		return err
	}

	img := &heat.Image{
		M:    m,
		Cell: cellSize,
		Gray: grayFlag,
	}
	img.Format()

	if output == "" {
		output = strings.TrimSuffix(args[0], ".tab") + ".png"
	}
	return writeImage(img)
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

func writeImage(img *heat.Image) (err error) {
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
	if err := png.Encode(bw, img); err != nil {
		return fmt.Errorf("while writing to %q: %v", output, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing to %q: %v", output, err)
	}
	return nil
}
