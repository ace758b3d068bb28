// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package newick implements reading and writing
// of phylogenetic trees
// in the Newick format.
//
// Only bare node names and branch lengths are supported.
// Quoted labels, comments, and NHX-style annotations
// are not part of the format read by this package.
package newick

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// ErrEmptyTree is returned when the input
// does not contain any tree.
var ErrEmptyTree = errors.New("empty tree")

// ErrFormat is returned when the input
// cannot be parsed as a consistent tree,
// for example when a group is not closed.
var ErrFormat = errors.New("invalid newick format")

// TermName is the name given to an unnamed terminal.
const TermName = "internal"

// A Node is a node of a rooted phylogenetic tree.
//
// A node is a terminal
// (i.e., a leaf of the tree)
// if it has no children.
// The parser is the only constructor of nodes,
// and each node is owned by its parent,
// so the tree is always single-rooted and acyclic.
type Node struct {
	// Name of the node.
	// Terminals are always named
	// (unnamed terminals receive the TermName placeholder);
	// internal nodes might be unnamed.
	Name string

	// BranchLength is the length of the branch
	// that connects the node with its parent.
	// Unspecified or unparsable lengths are stored as 0.
	BranchLength float64

	// Children of the node,
	// in the order in which they were read.
	Children []*Node
}

// IsTerm returns true if the node is a terminal.
func (n *Node) IsTerm() bool {
	return len(n.Children) == 0
}

// Terms returns the names of the terminals
// of the tree rooted at the node,
// sorted alphabetically.
func (n *Node) Terms() []string {
	terms := make(map[string]bool)
	n.addTerms(terms)

	ls := make([]string, 0, len(terms))
	for name := range terms {
		ls = append(ls, name)
	}
	slices.Sort(ls)
	return ls
}

func (n *Node) addTerms(terms map[string]bool) {
	if n.IsTerm() {
		terms[n.Name] = true
		return
	}
	for _, c := range n.Children {
		c.addTerms(terms)
	}
}

// Parse reads a tree from a Newick string.
// The tree might end with a semicolon.
func Parse(s string) (*Node, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, ";")
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("newick: %w", ErrEmptyTree)
	}

	p := &parser{s: s}
	n, err := p.subtree()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.s) {
		return nil, fmt.Errorf("newick: position %d: %w: unexpected %q", p.pos, ErrFormat, p.s[p.pos])
	}
	return n, nil
}

// A parser keeps the state of a parsing,
// the source text and the position of the cursor.
type parser struct {
	s   string
	pos int
}

func (p *parser) peek() byte {
	if p.pos >= len(p.s) {
		return 0
	}
	return p.s[p.pos]
}

// Subtree parses a subtree
// starting at the current position.
// A subtree is either a parenthesized group of subtrees
// or a single terminal,
// in both cases followed by an optional name
// and an optional branch length.
func (p *parser) subtree() (*Node, error) {
	if p.peek() != '(' {
		n := &Node{}
		p.nameAndLength(n, true)
		return n, nil
	}

	p.pos++
	n := &Node{}
	for {
		c, err := p.subtree()
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, c)

		r := p.peek()
		if r == ',' {
			p.pos++
			continue
		}
		if r == ')' {
			p.pos++
			break
		}
		return nil, fmt.Errorf("newick: position %d: %w: unclosed group", p.pos, ErrFormat)
	}
	p.nameAndLength(n, false)
	return n, nil
}

// NameAndLength parses the name and branch length
// that follow a subtree,
// stopping at the next ',', ')', or ';'.
// An unnamed terminal receives the TermName placeholder;
// a malformed or negative length is read as 0.
func (p *parser) nameAndLength(n *Node, term bool) {
	start := p.pos
	colon := -1
	for p.pos < len(p.s) {
		c := p.s[p.pos]
		if c == ',' || c == '(' || c == ')' || c == ';' {
			break
		}
		if c == ':' && colon < 0 {
			colon = p.pos
		}
		p.pos++
	}

	name := p.s[start:p.pos]
	var length string
	if colon >= 0 {
		name = p.s[start:colon]
		length = p.s[colon+1 : p.pos]
	}

	n.Name = strings.TrimSpace(name)
	if n.Name == "" && term {
		n.Name = TermName
	}

	if v, err := strconv.ParseFloat(strings.TrimSpace(length), 64); err == nil && v > 0 && !math.IsInf(v, 0) {
		n.BranchLength = v
	}
}
