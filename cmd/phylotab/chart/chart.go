// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package chart implements a command to plot
// two numerical descriptors of a PhyloTab project
// as a scatter chart.
package chart

import (
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/phylotab/descriptor"
	"github.com/js-arias/phylotab/metadata"
	"github.com/js-arias/phylotab/project"
	"github.com/js-arias/phylotab/treecolor"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var Command = &command.Command{
	Usage: `chart --x <descriptor> --y <descriptor>
	[--color <descriptor>]
	[-o|--output <out-file>]
	<project-file>`,
	Short: "plot two numerical descriptors as a scatter chart",
	Long: `
Command chart reads the metadata records of a PhyloTab project and plots two
numerical descriptors as a scatter chart in a PNG file.

The argument of the command is the name of the project file.

The flags --x and --y indicate the descriptors used for the horizontal and
vertical axes; both must be classified as numerical. Records with a missing
value in any of the two descriptors are ignored.

If the flag --color is set to the name of a categorical descriptor, the
points will be colored by the value of the descriptor, using the same colors
used for the tree drawing, and a legend will be added.

By default, the output file is named after the two descriptors; use the flag
-o, or --output, to define a different file name.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var xKey string
var yKey string
var colorKey string
var output string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&xKey, "x", "", "")
	c.Flags().StringVar(&yKey, "y", "", "")
	c.Flags().StringVar(&colorKey, "color", "", "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	if xKey == "" || yKey == "" {
		return c.UsageError("expecting --x and --y flags")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	rf := p.Path(project.Records)
	if rf == "" {
		return fmt.Errorf("project %q: no records defined", args[0])
	}
	d, err := readRecords(rf)
	if err != nil {
		return err
	}

	infos := descriptor.Classify(d.Records(), d.Keys())
	for _, k := range []string{xKey, yKey} {
		info, ok := infos[k]
		if !ok {
			return fmt.Errorf("unknown descriptor %q", k)
		}
		if info.Type != descriptor.Numerical {
			return fmt.Errorf("descriptor %q is not numerical", k)
		}
	}

	plt := plot.New()
	plt.X.Label.Text = xKey
	plt.Y.Label.Text = yKey

	if colorKey != "" {
		info, ok := infos[colorKey]
		if !ok {
			return fmt.Errorf("unknown descriptor %q", colorKey)
		}
		if info.Type != descriptor.Categorical {
			return fmt.Errorf("descriptor %q is not categorical", colorKey)
		}
		if err := addGroups(plt, d, info.Levels); err != nil {
			return err
		}
	} else {
		s, err := plotter.NewScatter(points(d.Records()))
		if err != nil {
			return err
		}
		plt.Add(s)
	}

	if output == "" {
		output = fmt.Sprintf("%s-%s.png", xKey, yKey)
	}
	if err := plt.Save(6*vg.Inch, 4*vg.Inch, output); err != nil {
		return err
	}
	return nil
}

// AddGroups adds one scatter per level
// of the coloring descriptor,
// each with the color used for the tree drawing,
// and a legend entry.
func addGroups(plt *plot.Plot, d *metadata.Data, levels []string) error {
	for _, lv := range levels {
		recs := d.Filter(func(r metadata.Record) bool {
			return r.Descriptors[colorKey].String() == lv
		})
		pts := points(recs)
		if len(pts) == 0 {
			continue
		}
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		s.GlyphStyle.Color = treecolor.Scale(lv)
		plt.Add(s)
		plt.Legend.Add(lv, s)
	}
	return nil
}

func points(recs []metadata.Record) plotter.XYs {
	var pts plotter.XYs
	for _, r := range recs {
		x := r.Descriptors[xKey]
		y := r.Descriptors[yKey]
		if x.Kind() != metadata.Number || y.Kind() != metadata.Number {
			continue
		}
		pts = append(pts, plotter.XY{X: x.Float(), Y: y.Float()})
	}
	return pts
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
