// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package export implements a command to write
// the metadata records of a PhyloTab project
// as a CSV file,
// optionally filtered by accession or publication.
package export

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/phylotab/metadata"
	"github.com/js-arias/phylotab/project"
)

var Command = &command.Command{
	Usage: `export [--accession <substring>] [--paper <substring>]
	[-o|--output <out-file>]
	<project-file>`,
	Short: "export metadata records as a CSV file",
	Long: `
Command export reads the metadata records of a PhyloTab project and writes
them as a CSV file in the standard output.

The argument of the command is the name of the project file.

If the flag --accession, or the flag --paper, is given, only the records
whose accession, or publication identifier, contain the indicated substring
will be written. Filtering only selects records: descriptor values are
written as they were read.

Use the flag -o, or --output, to write the records into a file instead of
the standard output.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var accFlag string
var paperFlag string
var output string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&accFlag, "accession", "", "")
	c.Flags().StringVar(&paperFlag, "paper", "", "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
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

	recs := d.Filter(func(r metadata.Record) bool {
		if accFlag != "" && !strings.Contains(r.Accession, accFlag) {
			return false
		}
		if paperFlag != "" && !strings.Contains(r.Paper, paperFlag) {
			return false
		}
		return true
	})

	if output == "" {
		return metadata.Write(c.Stdout(), d.Keys(), recs)
	}
	return writeFile(output, d.Keys(), recs)
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

func writeFile(name string, keys []string, recs []metadata.Record) (err error) {
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
	if err := metadata.Write(bw, keys, recs); err != nil {
		return fmt.Errorf("while writing file %q: %v", name, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing file %q: %v", name, err)
	}
	return nil
}
