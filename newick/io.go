// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package newick

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Read reads a tree in Newick format.
//
// Here is an example tree:
//
//	((Loxodonta:5.9,Mammuthus:5.9):20.5,Elephas:26.4)Elephantidae;
func Read(r io.Reader) (*Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("newick: while reading tree: %v", err)
	}
	return Parse(string(data))
}

// Newick writes a tree in the Newick format,
// with names and non-zero branch lengths,
// ending with a semicolon.
func (n *Node) Newick(w io.Writer) error {
	bw := bufio.NewWriter(w)
	n.write(bw)
	bw.WriteString(";\n")
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("newick: while writing tree: %v", err)
	}
	return nil
}

func (n *Node) write(w *bufio.Writer) {
	if !n.IsTerm() {
		w.WriteByte('(')
		for i, c := range n.Children {
			if i > 0 {
				w.WriteByte(',')
			}
			c.write(w)
		}
		w.WriteByte(')')
	}
	w.WriteString(n.Name)
	if n.BranchLength > 0 {
		w.WriteByte(':')
		w.WriteString(strconv.FormatFloat(n.BranchLength, 'g', -1, 64))
	}
}
