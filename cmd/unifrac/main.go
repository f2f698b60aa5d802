// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// UniFrac is a tool to calculate phylogenetic distances
// between ecological samples.
package main

import (
	"github.com/js-arias/command"
	"github.com/js-arias/unifrac/cmd/unifrac/draw"
	"github.com/js-arias/unifrac/cmd/unifrac/hist"
	"github.com/js-arias/unifrac/cmd/unifrac/matrix"
	"github.com/js-arias/unifrac/cmd/unifrac/taxa"
)

var app = &command.Command{
	Usage: "unifrac <command> [<argument>...]",
	Short: "a tool to calculate phylogenetic distances between samples",
}

func init() {
	app.Add(draw.Command)
	app.Add(hist.Command)
	app.Add(matrix.Command)
	app.Add(taxa.Command)
}

func main() {
	app.Main()
}
