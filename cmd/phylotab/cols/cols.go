// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package cols implements a command to print
// the descriptors of a PhyloTab project
// with their inferred type and domain.
package cols

import (
	"fmt"
	"os"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/phylotab/descriptor"
	"github.com/js-arias/phylotab/metadata"
	"github.com/js-arias/phylotab/project"
)

var Command = &command.Command{
	Usage: "cols <project-file>",
	Short: "print the descriptors of a project",
	Long: `
Command cols reads the metadata records of a PhyloTab project, classifies
each descriptor as numerical or categorical, and prints the descriptors with
their inferred type and value domain in the standard output.

A descriptor is numerical if most of its values are numbers and it has many
distinct values; its domain is the range of the observed numbers. Any other
descriptor is categorical; its domain is the sorted list of its distinct
values.

Classification is made over the full record set, so the reported domains are
the ones used for coloring and chart axes.

The argument of the command is the name of the project file.
	`,
	Run: run,
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	rf := p.Path(project.Records)
	if rf == "" {
		return nil
	}
	d, err := readRecords(rf)
	if err != nil {
		return err
	}

	keys := d.Keys()
	infos := descriptor.Classify(d.Records(), keys)

	fmt.Fprintf(c.Stdout(), "descriptor\ttype\tdomain\n")
	for _, k := range keys {
		info := infos[k]
		var domain string
		if info.Type == descriptor.Numerical {
			domain = fmt.Sprintf("[%g, %g]", info.Min, info.Max)
		} else {
			domain = strings.Join(info.Levels, ", ")
		}
		fmt.Fprintf(c.Stdout(), "%s\t%s\t%s\n", k, info.Type, domain)
	}
	return nil
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
