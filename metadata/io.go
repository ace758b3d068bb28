// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package metadata

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"
)

// ErrNoRecords is returned when the input table
// does not contain any data row.
var ErrNoRecords = errors.New("no records in data")

// ReadCSV reads a collection of metadata records
// from a comma-separated file.
//
// The file must have a header row
// with an "accession" field.
// A "pmid" or "paperid" field,
// if present,
// is used as the source publication of each record.
// Any other field is read as a descriptor.
//
// Here is an example file:
//
//	accession,pmid,host,year,titer
//	AB12,331112,human,2001,1350
//	AB13,331112,swine,2003,NA
//	AB20,339845,human,2004,820
func ReadCSV(r io.Reader) (*Data, error) {
	tab := csv.NewReader(r)
	tab.Comment = '#'

	head, err := tab.Read()
	if err != nil {
		return nil, fmt.Errorf("while reading header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(strings.TrimSpace(h))
		fields[h] = i
	}
	acc, ok := fields["accession"]
	if !ok {
		return nil, fmt.Errorf("expecting field %q", "accession")
	}
	paper, hasPaper := fields["pmid"]
	if !hasPaper {
		paper, hasPaper = fields["paperid"]
	}

	reserved := map[int]bool{acc: true}
	if hasPaper {
		reserved[paper] = true
	}
	var keys []string
	cols := make(map[string]int)
	for i, h := range head {
		if reserved[i] {
			continue
		}
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		keys = append(keys, h)
		cols[h] = i
	}
	slices.Sort(keys)

	d := &Data{keys: keys}
	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		rec := Record{
			Accession:   strings.TrimSpace(row[acc]),
			Descriptors: make(map[string]Value, len(keys)),
		}
		if hasPaper {
			rec.Paper = strings.TrimSpace(row[paper])
		}
		for _, k := range keys {
			rec.Descriptors[k] = ParseValue(row[cols[k]])
		}
		d.recs = append(d.recs, rec)
	}
	if len(d.recs) == 0 {
		return nil, ErrNoRecords
	}
	return d, nil
}

// CSV writes all the records of a collection
// as a comma-separated file.
func (d *Data) CSV(w io.Writer) error {
	return Write(w, d.keys, d.recs)
}

// Write writes a set of records
// with the given descriptor keys
// as a comma-separated file.
// Missing values are written as empty fields.
func Write(w io.Writer, keys []string, recs []Record) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# phylotab records\n")
	fmt.Fprintf(bw, "# data save on: %s\n", time.Now().Format(time.RFC3339))
	tab := csv.NewWriter(bw)
	tab.UseCRLF = true

	header := append([]string{"accession", "pmid"}, keys...)
	if err := tab.Write(header); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}

	for _, r := range recs {
		row := make([]string, 0, len(header))
		row = append(row, r.Accession, r.Paper)
		for _, k := range keys {
			row = append(row, r.Descriptors[k].String())
		}
		if err := tab.Write(row); err != nil {
			return fmt.Errorf("when writing data: %v", err)
		}
	}

	tab.Flush()
	if err := tab.Error(); err != nil {
		return fmt.Errorf("when writing data: %v", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("when writing data: %v", err)
	}
	return nil
}
