// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package terms implements a command to print
// the list of the terminals of the tree
// in a PhyloTab project.
package terms

import (
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/phylotab/metadata"
	"github.com/js-arias/phylotab/newick"
	"github.com/js-arias/phylotab/project"
)

var Command = &command.Command{
	Usage: "terms [--orphans] <project-file>",
	Short: "print a list of tree terminals",
	Long: `
Command terms reads the tree of a PhyloTab project and prints the name of
the terminals in the standard output.

By default all terminals will be printed. If the flag --orphans is given,
only the terminals without a matching metadata record will be printed; such
terminals are drawn with the neutral color.

The argument of the command is the name of the project file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var orphans bool

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&orphans, "orphans", false, "")
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

	var d *metadata.Data
	if orphans {
		rf := p.Path(project.Records)
		if rf == "" {
			return fmt.Errorf("project %q: no records defined", args[0])
		}
		d, err = readRecords(rf)
		if err != nil {
			return err
		}
	}

	for _, term := range t.Terms() {
		if orphans {
			if _, ok := d.Record(term); ok {
				continue
			}
		}
		fmt.Fprintf(c.Stdout(), "%s\n", term)
	}
	return nil
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
