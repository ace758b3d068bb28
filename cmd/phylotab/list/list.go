// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package list implements a command to print
// the list of data files in a PhyloTab project.
package list

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/phylotab/project"
)

var Command = &command.Command{
	Usage: "list <project-file>",
	Short: "print a list of the data files of a project",
	Long: `
Command list reads a PhyloTab project and prints the datasets defined in the
project, and their file paths, in the standard output.

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

	for _, s := range p.Sets() {
		fmt.Fprintf(c.Stdout(), "%s\t%s\n", s, p.Path(s))
	}
	return nil
}
