// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package draw

import (
	"fmt"
	"image/color"
	"io"

	"github.com/js-arias/phylotab/newick"
)

// Pixel units between consecutive terminals.
const stepY = 20

// Margins and the space reserved for terminal labels,
// in pixel units.
const (
	margin     = 10
	labelSpace = 200
)

// An svgTree is a tree laid out for an SVG drawing:
// terminals are evenly spaced rows,
// an internal node sits at the middle of its children,
// and the horizontal position is the accumulated branch length
// from the root.
type svgTree struct {
	root *newick.Node
	cols map[*newick.Node]color.RGBA

	x, y map[*newick.Node]float64

	width  float64
	height float64
}

func makeSVGTree(t *newick.Node, cols map[*newick.Node]color.RGBA, step float64) svgTree {
	st := svgTree{
		root: t,
		cols: cols,
		x:    make(map[*newick.Node]float64),
		y:    make(map[*newick.Node]float64),
	}

	st.setX(t, 0)
	var maxX float64
	for _, x := range st.x {
		if x > maxX {
			maxX = x
		}
	}
	if maxX == 0 {
		// A tree without branch lengths:
		// use unit lengths.
		st.setDepthX(t, 0)
		for _, x := range st.x {
			if x > maxX {
				maxX = x
			}
		}
	}
	if maxX == 0 {
		maxX = 1
	}
	if step == 0 {
		step = 600 / maxX
	}
	for n, x := range st.x {
		st.x[n] = x*step + margin
	}

	terms := 0
	st.setY(t, &terms)

	st.width = maxX*step + 2*margin + labelSpace
	st.height = float64(terms)*stepY + 2*margin
	return st
}

func (st svgTree) setX(n *newick.Node, x float64) {
	x += n.BranchLength
	st.x[n] = x
	for _, c := range n.Children {
		st.setX(c, x)
	}
}

func (st svgTree) setDepthX(n *newick.Node, x float64) {
	st.x[n] = x
	for _, c := range n.Children {
		st.setDepthX(c, x+1)
	}
}

func (st svgTree) setY(n *newick.Node, terms *int) float64 {
	if n.IsTerm() {
		*terms++
		y := float64(*terms)*stepY - stepY/2 + margin
		st.y[n] = y
		return y
	}

	first := st.setY(n.Children[0], terms)
	last := first
	for _, c := range n.Children[1:] {
		last = st.setY(c, terms)
	}
	y := (first + last) / 2
	st.y[n] = y
	return y
}

func (st svgTree) draw(w io.Writer) error {
	fmt.Fprintf(w, "<?xml version=\"1.0\"?>\n")
	fmt.Fprintf(w, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%.2f\" height=\"%.2f\">\n", st.width, st.height)
	fmt.Fprintf(w, "<g stroke=\"black\" stroke-width=\"2\" fill=\"none\">\n")
	st.drawBranches(w, st.root)
	fmt.Fprintf(w, "</g>\n")
	fmt.Fprintf(w, "<g stroke=\"black\" stroke-width=\"1\">\n")
	st.drawNodes(w, st.root)
	fmt.Fprintf(w, "</g>\n")
	fmt.Fprintf(w, "<g font-family=\"Verdana\" font-size=\"12\">\n")
	st.drawLabels(w, st.root)
	fmt.Fprintf(w, "</g>\n")
	if _, err := fmt.Fprintf(w, "</svg>\n"); err != nil {
		return err
	}
	return nil
}

func (st svgTree) drawBranches(w io.Writer, n *newick.Node) {
	if n.IsTerm() {
		return
	}

	first := n.Children[0]
	last := n.Children[len(n.Children)-1]
	fmt.Fprintf(w, "<line x1=\"%.2f\" y1=\"%.2f\" x2=\"%.2f\" y2=\"%.2f\"/>\n", st.x[n], st.y[first], st.x[n], st.y[last])
	for _, c := range n.Children {
		fmt.Fprintf(w, "<line x1=\"%.2f\" y1=\"%.2f\" x2=\"%.2f\" y2=\"%.2f\"/>\n", st.x[n], st.y[c], st.x[c], st.y[c])
		st.drawBranches(w, c)
	}
}

func (st svgTree) drawNodes(w io.Writer, n *newick.Node) {
	c := st.cols[n]
	fmt.Fprintf(w, "<circle cx=\"%.2f\" cy=\"%.2f\" r=\"4\" fill=\"#%02x%02x%02x\"/>\n", st.x[n], st.y[n], c.R, c.G, c.B)
	for _, d := range n.Children {
		st.drawNodes(w, d)
	}
}

func (st svgTree) drawLabels(w io.Writer, n *newick.Node) {
	if n.IsTerm() {
		fmt.Fprintf(w, "<text x=\"%.2f\" y=\"%.2f\">%s</text>\n", st.x[n]+8, st.y[n]+4, n.Name)
		return
	}
	for _, c := range n.Children {
		st.drawLabels(w, c)
	}
}
