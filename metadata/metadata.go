// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package metadata provides a collection of tabular records
// associated with the terminals of a phylogenetic tree.
//
// Each record has an accession
// (the identifier used to join the record with a tree terminal),
// a reference to a source publication,
// and a set of descriptor values
// coerced into numbers,
// text,
// or an explicit missing marker.
package metadata

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

// A Kind is the kind of a coerced descriptor value.
type Kind int

// Valid value kinds.
const (
	// The value is absent
	// (an empty field or an NA marker).
	Missing Kind = iota

	// The value is a finite number.
	Number

	// The value is free text.
	Text
)

// A Value is a single descriptor value of a record.
// The zero value is a missing value.
type Value struct {
	kind Kind
	num  float64
	str  string
}

// ParseValue coerces a raw field into a value.
// The field is trimmed;
// an empty field or a case-insensitive "NA"
// is read as a missing value;
// a field that parses as a finite number
// is read as a number;
// any other field is kept as text.
// Coercion happens once,
// at ingestion time,
// and values are immutable afterwards.
func ParseValue(s string) Value {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "na") {
		return Value{}
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(v, 0) && !math.IsNaN(v) {
		return Value{kind: Number, num: v, str: s}
	}
	return Value{kind: Text, str: s}
}

// Kind returns the kind of a value.
func (v Value) Kind() Kind {
	return v.kind
}

// Float returns the numeric value of a number.
// It is zero for any other kind.
func (v Value) Float() float64 {
	return v.num
}

// String returns the raw trimmed field of a value,
// for both numbers and text.
// It is empty for a missing value.
func (v Value) String() string {
	return v.str
}

// A Record is a single row of the metadata table.
type Record struct {
	// Accession is the identifier used to join the record
	// with a tree terminal.
	// A record is not required to match any terminal.
	Accession string

	// Paper is the identifier of the source publication
	// (for example a PubMed ID).
	Paper string

	// Descriptors maps each descriptor
	// to its coerced value.
	// All records of a collection
	// have the same descriptor keys.
	Descriptors map[string]Value
}

// Data is a collection of metadata records.
type Data struct {
	keys []string
	recs []Record
}

// Keys returns the descriptors defined in the collection,
// sorted alphabetically.
func (d *Data) Keys() []string {
	return slices.Clone(d.keys)
}

// Len returns the number of records in the collection.
func (d *Data) Len() int {
	return len(d.recs)
}

// Records returns all the records of the collection.
func (d *Data) Records() []Record {
	return slices.Clone(d.recs)
}

// Record returns the first record
// with the given accession.
func (d *Data) Record(accession string) (Record, bool) {
	accession = strings.TrimSpace(accession)
	for _, r := range d.recs {
		if r.Accession == accession {
			return r, true
		}
	}
	return Record{}, false
}

// Filter returns the records accepted by the keep function.
// Filtering is a view over the full collection:
// it never changes the collection,
// and descriptor classification made over the full collection
// remains valid for any filtered view.
func (d *Data) Filter(keep func(Record) bool) []Record {
	var recs []Record
	for _, r := range d.recs {
		if keep(r) {
			recs = append(recs, r)
		}
	}
	return recs
}
