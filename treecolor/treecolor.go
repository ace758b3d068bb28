// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package treecolor implements a bottom-up color assignment
// over a phylogenetic tree,
// using a categorical descriptor
// of the metadata records
// joined at the terminals.
//
// An internal node takes the color of its children
// only when every child has the same color;
// any disagreement makes the clade neutral,
// so a colored clade reads as
// "every terminal of this clade shares the trait".
package treecolor

import (
	"hash/fnv"
	"image/color"

	"github.com/js-arias/blind"
	"github.com/js-arias/phylotab/descriptor"
	"github.com/js-arias/phylotab/metadata"
	"github.com/js-arias/phylotab/newick"
)

// Neutral is the color of nodes without data,
// of terminals without a matching record,
// and of clades with disagreeing descendants.
var Neutral = color.RGBA{R: 128, G: 128, B: 128, A: 255}

// Number of slots over the iridescent scheme.
const slots = 12

// Scale returns the color of a categorical value,
// one of a small set of slots
// over the iridescent color scheme of Paul Tol.
// The color depends only on the value itself,
// not on its position in a domain,
// so a value keeps its color
// when filtering reorders or shrinks the domain.
func Scale(v string) color.RGBA {
	h := fnv.New32a()
	h.Write([]byte(v))
	i := h.Sum32() % slots
	return blind.Sequential(blind.Iridescent, (float64(i)+0.5)/slots)
}

// Assign returns the color of every node
// of the tree rooted at root,
// joining terminals with records by accession.
//
// If info is nil,
// or the descriptor is not categorical,
// every node is neutral.
// The tree itself is never modified:
// colors are returned as a parallel map.
func Assign(root *newick.Node, recs []metadata.Record, key string, info *descriptor.Info) map[*newick.Node]color.RGBA {
	cols := make(map[*newick.Node]color.RGBA)
	if info == nil || info.Type != descriptor.Categorical {
		paint(root, cols)
		return cols
	}

	byAcc := make(map[string]metadata.Record, len(recs))
	for _, r := range recs {
		if _, ok := byAcc[r.Accession]; ok {
			continue
		}
		byAcc[r.Accession] = r
	}

	assign(root, byAcc, key, cols)
	return cols
}

func paint(n *newick.Node, cols map[*newick.Node]color.RGBA) {
	cols[n] = Neutral
	for _, c := range n.Children {
		paint(c, cols)
	}
}

// Assign colors a subtree in a single post-order pass
// and returns the color of its root.
// The reduction is a strict equality:
// a single disagreeing child makes the node neutral,
// never a majority vote.
func assign(n *newick.Node, byAcc map[string]metadata.Record, key string, cols map[*newick.Node]color.RGBA) color.RGBA {
	if n.IsTerm() {
		c := Neutral
		if r, ok := byAcc[n.Name]; ok {
			if v := r.Descriptors[key]; v.Kind() != metadata.Missing {
				c = Scale(v.String())
			}
		}
		cols[n] = c
		return c
	}

	shared := assign(n.Children[0], byAcc, key, cols)
	for _, child := range n.Children[1:] {
		c := assign(child, byAcc, key, cols)
		if c != shared {
			shared = Neutral
		}
	}
	cols[n] = shared
	return shared
}
