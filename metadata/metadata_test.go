// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package metadata_test

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/phylotab/metadata"
)

func TestParseValue(t *testing.T) {
	numbers := map[string]float64{
		"3.5":  3.5,
		" 7 ":  7,
		"1e3":  1000,
		"-2":   -2,
		"2001": 2001,
	}
	for s, w := range numbers {
		v := metadata.ParseValue(s)
		if v.Kind() != metadata.Number {
			t.Errorf("value %q: got kind %v, want a number", s, v.Kind())
			continue
		}
		if v.Float() != w {
			t.Errorf("value %q: got %v, want %v", s, v.Float(), w)
		}
		if g := v.String(); g != strings.TrimSpace(s) {
			t.Errorf("value %q: raw field: got %q, want %q", s, g, strings.TrimSpace(s))
		}
	}

	missing := []string{"", "   ", "NA", "na", "Na"}
	for _, s := range missing {
		if v := metadata.ParseValue(s); v.Kind() != metadata.Missing {
			t.Errorf("value %q: got kind %v, want missing", s, v.Kind())
		}
	}

	text := []string{"human", "12b", "NaN", "Inf", "two words"}
	for _, s := range text {
		v := metadata.ParseValue(s)
		if v.Kind() != metadata.Text {
			t.Errorf("value %q: got kind %v, want text", s, v.Kind())
			continue
		}
		if v.String() != s {
			t.Errorf("value %q: raw field: got %q", s, v.String())
		}
	}
}

var testCSV = `# test records
accession,pmid,host,year,titer
AB12,331112,human,2001,1350
AB13,331112,swine,2003,NA
AB20,339845,human,2004,820
`

func TestReadCSV(t *testing.T) {
	d, err := metadata.ReadCSV(strings.NewReader(testCSV))
	if err != nil {
		t.Fatalf("unable to read CSV data: %v", err)
	}
	testData(t, "csv", d)
}

func TestReadCSVPaperID(t *testing.T) {
	csv := strings.Replace(testCSV, "pmid", "paperID", 1)
	d, err := metadata.ReadCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("unable to read CSV data: %v", err)
	}
	testData(t, "paperID", d)
}

func TestReadCSVErrors(t *testing.T) {
	noAcc := "name,host\nAB12,human\n"
	if _, err := metadata.ReadCSV(strings.NewReader(noAcc)); err == nil {
		t.Errorf("reading data without accession: expecting error")
	}

	noRows := "accession,pmid,host\n"
	if _, err := metadata.ReadCSV(strings.NewReader(noRows)); !errors.Is(err, metadata.ErrNoRecords) {
		t.Errorf("reading data without rows: got error %v, want %v", err, metadata.ErrNoRecords)
	}
}

func TestCSV(t *testing.T) {
	d, err := metadata.ReadCSV(strings.NewReader(testCSV))
	if err != nil {
		t.Fatalf("unable to read CSV data: %v", err)
	}

	var w bytes.Buffer
	if err := d.CSV(&w); err != nil {
		t.Fatalf("unable to write CSV data: %v", err)
	}
	t.Logf("output:\n%s\n", w.String())

	nd, err := metadata.ReadCSV(strings.NewReader(w.String()))
	if err != nil {
		t.Fatalf("unable to read CSV data: %v", err)
	}
	testData(t, "round-trip", nd)
}

func TestFilter(t *testing.T) {
	d, err := metadata.ReadCSV(strings.NewReader(testCSV))
	if err != nil {
		t.Fatalf("unable to read CSV data: %v", err)
	}

	recs := d.Filter(func(r metadata.Record) bool {
		return r.Paper == "331112"
	})
	if len(recs) != 2 {
		t.Fatalf("filter: got %d records, want 2", len(recs))
	}
	for _, r := range recs {
		if r.Paper != "331112" {
			t.Errorf("filter: got record %q", r.Accession)
		}
	}

	// filtering is a view:
	// the collection is unchanged.
	if d.Len() != 3 {
		t.Errorf("records: got %d, want 3", d.Len())
	}
}

func testData(t testing.TB, name string, d *metadata.Data) {
	t.Helper()

	keys := []string{"host", "titer", "year"}
	if g := d.Keys(); !reflect.DeepEqual(g, keys) {
		t.Errorf("%s: keys: got %v, want %v", name, g, keys)
	}
	if d.Len() != 3 {
		t.Errorf("%s: records: got %d, want 3", name, d.Len())
	}

	r, ok := d.Record("AB12")
	if !ok {
		t.Fatalf("%s: expecting record %q", name, "AB12")
	}
	if r.Paper != "331112" {
		t.Errorf("%s: record %q: paper: got %q, want %q", name, "AB12", r.Paper, "331112")
	}
	if v := r.Descriptors["host"]; v.Kind() != metadata.Text || v.String() != "human" {
		t.Errorf("%s: record %q: host: got %q", name, "AB12", v.String())
	}
	if v := r.Descriptors["titer"]; v.Kind() != metadata.Number || v.Float() != 1350 {
		t.Errorf("%s: record %q: titer: got %v", name, "AB12", v.Float())
	}

	r, ok = d.Record("AB13")
	if !ok {
		t.Fatalf("%s: expecting record %q", name, "AB13")
	}
	if v := r.Descriptors["titer"]; v.Kind() != metadata.Missing {
		t.Errorf("%s: record %q: titer: got kind %v, want missing", name, "AB13", v.Kind())
	}

	if _, ok := d.Record("XX99"); ok {
		t.Errorf("%s: unexpected record %q", name, "XX99")
	}
}
