// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// PhyloTab is a tool to explore phylogenetic trees
// linked to tabular metadata.
package main

import (
	"github.com/js-arias/command"
	"github.com/js-arias/phylotab/cmd/phylotab/chart"
	"github.com/js-arias/phylotab/cmd/phylotab/cols"
	"github.com/js-arias/phylotab/cmd/phylotab/draw"
	"github.com/js-arias/phylotab/cmd/phylotab/export"
	"github.com/js-arias/phylotab/cmd/phylotab/list"
	"github.com/js-arias/phylotab/cmd/phylotab/set"
	"github.com/js-arias/phylotab/cmd/phylotab/terms"
)

var app = &command.Command{
	Usage: "phylotab <command> [<argument>...]",
	Short: "a tool to explore phylogenetic trees linked to tabular metadata",
}

func init() {
	app.Add(chart.Command)
	app.Add(cols.Command)
	app.Add(draw.Command)
	app.Add(export.Command)
	app.Add(list.Command)
	app.Add(set.Command)
	app.Add(terms.Command)
}

func main() {
	app.Main()
}
