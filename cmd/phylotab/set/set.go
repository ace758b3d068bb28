// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package set implements a command to set
// the data files of a PhyloTab project.
package set

import (
	"errors"
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/phylotab/metadata"
	"github.com/js-arias/phylotab/newick"
	"github.com/js-arias/phylotab/project"
)

var Command = &command.Command{
	Usage: `set [--tree <tree-file>] [--records <csv-file>]
	<project-file>`,
	Short: "set the data files of a project",
	Long: `
Command set adds data files to a PhyloTab project. If the project file does
not exist, a new project will be created.

The argument of the command is the name of the project file.

The flag --tree sets the file with the phylogenetic tree, in Newick format.
The flag --records sets the file with the metadata records, a CSV file with
an "accession" field, an optional "pmid" field, and any number of descriptor
fields.

Each file is validated before the project is updated; an invalid file leaves
the project untouched.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var treeFile string
var recordsFile string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&treeFile, "tree", "", "")
	c.Flags().StringVar(&recordsFile, "records", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	if treeFile == "" && recordsFile == "" {
		return c.UsageError("expecting --tree or --records flag")
	}

	p, err := openProject(args[0])
	if err != nil {
		return err
	}

	if treeFile != "" {
		if err := validTree(treeFile); err != nil {
			return err
		}
		p.Add(project.Tree, treeFile)
	}
	if recordsFile != "" {
		if err := validRecords(recordsFile); err != nil {
			return err
		}
		p.Add(project.Records, recordsFile)
	}

	if err := p.Write(); err != nil {
		return err
	}
	return nil
}

func openProject(name string) (*project.Project, error) {
	p, err := project.Read(name)
	if errors.Is(err, os.ErrNotExist) {
		p = project.New()
		p.SetName(name)
		return p, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func validTree(name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := newick.Read(f); err != nil {
		return fmt.Errorf("while reading file %q: %v", name, err)
	}
	return nil
}

func validRecords(name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := metadata.ReadCSV(f); err != nil {
		return fmt.Errorf("while reading file %q: %v", name, err)
	}
	return nil
}
