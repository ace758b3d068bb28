// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package draw implements a command to draw
// the tree of a PhyloTab project as an SVG file,
// with nodes colored by a categorical descriptor.
package draw

import (
	"bufio"
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/phylotab/descriptor"
	"github.com/js-arias/phylotab/metadata"
	"github.com/js-arias/phylotab/newick"
	"github.com/js-arias/phylotab/project"
	"github.com/js-arias/phylotab/treecolor"
)

var Command = &command.Command{
	Usage: `draw [--color <descriptor>]
	[--step <value>]
	[-o|--output <out-prefix>]
	<project-file>`,
	Short: "draw the project tree as an SVG file",
	Long: `
Command draw reads a PhyloTab project and draws the tree into an SVG-encoded
file.

The argument of the command is the name of the project file.

If the flag --color is set to the name of a categorical descriptor, each
terminal will be colored by the value of the descriptor in its matching
record, and each internal node will take the color of its descendants when
all of them share the same color. Terminals without a matching record, and
clades with disagreeing descendants, are drawn with a neutral gray. If the
flag is not given, or the descriptor is numerical, all nodes will be drawn
with the neutral gray.

By default, the horizontal scale is set so that the tree is about 600 pixel
units wide; use the flag --step to set the number of pixel units per branch
length unit (it can have decimal points).

By default, the name of the tree file will be used as the output file name.
Use the flag -o, or --output, to define a prefix for the resulting file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var stepX float64
var colorKey string
var outPrefix string

func setFlags(c *command.Command) {
	c.Flags().Float64Var(&stepX, "step", 0, "")
	c.Flags().StringVar(&colorKey, "color", "", "")
	c.Flags().StringVar(&outPrefix, "output", "", "")
	c.Flags().StringVar(&outPrefix, "o", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	tf := p.Path(project.Tree)
	if tf == "" {
		return nil
	}
	t, err := readTree(tf)
	if err != nil {
		return err
	}

	var recs []metadata.Record
	var info *descriptor.Info
	if colorKey != "" {
		rf := p.Path(project.Records)
		if rf == "" {
			return fmt.Errorf("project %q: no records defined", args[0])
		}
		d, err := readRecords(rf)
		if err != nil {
			return err
		}
		infos := descriptor.Classify(d.Records(), d.Keys())
		i, ok := infos[colorKey]
		if !ok {
			return fmt.Errorf("unknown descriptor %q", colorKey)
		}
		recs = d.Records()
		info = &i
	}

	cols := treecolor.Assign(t, recs, colorKey, info)
	return writeSVG(tf, makeSVGTree(t, cols, stepX))
}

func readTree(name string) (*newick.Node, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := newick.Read(f)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return t, nil
}

func readRecords(name string) (*metadata.Data, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d, err := metadata.ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return d, nil
}

func writeSVG(name string, t svgTree) (err error) {
	if outPrefix != "" {
		name = outPrefix
	}
	name += ".svg"

	f, err := os.Create(name)
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
	if err := t.draw(bw); err != nil {
		return fmt.Errorf("while writing file %q: %v", name, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing file %q: %v", name, err)
	}
	return nil
}
