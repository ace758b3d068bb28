// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package treecolor_test

import (
	"image/color"
	"testing"

	"github.com/js-arias/phylotab/descriptor"
	"github.com/js-arias/phylotab/metadata"
	"github.com/js-arias/phylotab/newick"
	"github.com/js-arias/phylotab/treecolor"
)

func newRecords(habitat map[string]string) []metadata.Record {
	recs := make([]metadata.Record, 0, len(habitat))
	for acc, h := range habitat {
		recs = append(recs, metadata.Record{
			Accession: acc,
			Descriptors: map[string]metadata.Value{
				"habitat": metadata.ParseValue(h),
			},
		})
	}
	return recs
}

func classify(t testing.TB, recs []metadata.Record) *descriptor.Info {
	t.Helper()

	infos := descriptor.Classify(recs, []string{"habitat"})
	info, ok := infos["habitat"]
	if !ok {
		t.Fatalf("expecting info for descriptor %q", "habitat")
	}
	return &info
}

func parse(t testing.TB, s string) *newick.Node {
	t.Helper()

	n, err := newick.Parse(s)
	if err != nil {
		t.Fatalf("unable to parse tree: %v", err)
	}
	return n
}

func TestAssign(t *testing.T) {
	root := parse(t, "((A,B,C)M,(D,E)N)R;")
	recs := newRecords(map[string]string{
		"A": "forest",
		"B": "forest",
		"C": "forest",
		"D": "forest",
		"E": "desert",
	})
	info := classify(t, recs)

	cols := treecolor.Assign(root, recs, "habitat", info)

	forest := treecolor.Scale("forest")
	if forest == treecolor.Neutral {
		t.Fatalf("scale: %q maps to the neutral color", "forest")
	}

	m := root.Children[0]
	if g := cols[m]; g != forest {
		t.Errorf("clade M: got %v, want %v", g, forest)
	}
	for _, c := range m.Children {
		if g := cols[c]; g != forest {
			t.Errorf("terminal %q: got %v, want %v", c.Name, g, forest)
		}
	}

	// one disagreeing terminal
	// makes the clade neutral,
	// and the mixed color propagates to the root.
	n := root.Children[1]
	if g := cols[n]; g != treecolor.Neutral {
		t.Errorf("clade N: got %v, want neutral", g)
	}
	if g := cols[root]; g != treecolor.Neutral {
		t.Errorf("root: got %v, want neutral", g)
	}
}

func TestAssignShared(t *testing.T) {
	root := parse(t, "((A,B)M,(C,D)N)R;")
	recs := newRecords(map[string]string{
		"A": "forest",
		"B": "forest",
		"C": "forest",
		"D": "forest",
	})
	info := classify(t, recs)

	cols := treecolor.Assign(root, recs, "habitat", info)

	// agreement at two depths:
	// both clades and the root share the color.
	forest := treecolor.Scale("forest")
	for _, n := range []*newick.Node{root, root.Children[0], root.Children[1]} {
		if g := cols[n]; g != forest {
			t.Errorf("node %q: got %v, want %v", n.Name, g, forest)
		}
	}
}

func TestAssignOrphan(t *testing.T) {
	root := parse(t, "(A,Z)R;")
	recs := newRecords(map[string]string{
		"A": "forest",
	})
	info := classify(t, recs)

	cols := treecolor.Assign(root, recs, "habitat", info)

	// a terminal without a matching record
	// is neutral,
	// never an error.
	if g := cols[root.Children[1]]; g != treecolor.Neutral {
		t.Errorf("orphan terminal: got %v, want neutral", g)
	}
	if g := cols[root]; g != treecolor.Neutral {
		t.Errorf("root: got %v, want neutral", g)
	}
}

func TestAssignMissingValue(t *testing.T) {
	root := parse(t, "(A,B)R;")
	recs := newRecords(map[string]string{
		"A": "forest",
		"B": "NA",
	})
	info := classify(t, recs)

	cols := treecolor.Assign(root, recs, "habitat", info)
	if g := cols[root.Children[1]]; g != treecolor.Neutral {
		t.Errorf("missing value: got %v, want neutral", g)
	}
}

func TestAssignNeutral(t *testing.T) {
	root := parse(t, "((A,B)M,C)R;")
	recs := newRecords(map[string]string{
		"A": "forest",
		"B": "forest",
		"C": "forest",
	})

	// without a descriptor every node is neutral
	cols := treecolor.Assign(root, nil, "", nil)
	testNeutral(t, "no descriptor", root, cols)

	// a numerical descriptor never colors the tree
	info := &descriptor.Info{Type: descriptor.Numerical, Min: 0, Max: 1}
	cols = treecolor.Assign(root, recs, "habitat", info)
	testNeutral(t, "numerical", root, cols)
}

func testNeutral(t testing.TB, name string, n *newick.Node, cols map[*newick.Node]color.RGBA) {
	t.Helper()

	if g := cols[n]; g != treecolor.Neutral {
		t.Errorf("%s: node %q: got %v, want neutral", name, n.Name, g)
	}
	for _, c := range n.Children {
		testNeutral(t, name, c, cols)
	}
}

func TestScaleStability(t *testing.T) {
	// the color of a value depends only on the value,
	// so a filtered or reordered domain
	// keeps the same colors.
	root := parse(t, "(A,B)R;")
	recs := newRecords(map[string]string{
		"A": "forest",
		"B": "desert",
	})
	info := classify(t, recs)
	cols := treecolor.Assign(root, recs, "habitat", info)

	sub := newRecords(map[string]string{
		"A": "forest",
	})
	subInfo := classify(t, sub)
	subCols := treecolor.Assign(root, sub, "habitat", subInfo)

	a := root.Children[0]
	if cols[a] != subCols[a] {
		t.Errorf("terminal %q: color changed under filtering: %v vs %v", a.Name, cols[a], subCols[a])
	}
}
