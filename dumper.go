// Copyright (c) 2025 bandiaoz
// SPDX-License-Identifier: MIT

package trie

import (
	"fmt"
	"io"
	"strings"
)

type nodeType byte

const (
	leafNode         nodeType = iota // value, no children
	fullNode                         // value and children
	intermediateNode                 // only children, no value
)

func (n *node) hasType() nodeType {
	switch {
	case n.hasValue && len(n.children) == 0:
		return leafNode
	case n.hasValue:
		return fullNode
	default:
		return intermediateNode
	}
}

func (nt nodeType) String() string {
	switch nt {
	case leafNode:
		return "LEAF"
	case fullNode:
		return "FULL"
	case intermediateNode:
		return "IMED"
	default:
		return "unreachable"
	}
}

// ##################################################
//  useful during development, debugging and testing
// ##################################################

// dumpString is just a wrapper for dump.
func (t Trie) dumpString() string {
	w := new(strings.Builder)
	t.dump(w)

	return w.String()
}

// dump the trie structure and all the nodes to w.
func (t Trie) dump(w io.Writer) {
	if t.root == nil {
		fmt.Fprintln(w, "### empty trie")
		return
	}

	s := t.root.statsRec()
	fmt.Fprintf(w, "### size(%d) nodes(%d) values(%d) leaves(%d)\n", t.size, s.nodes, s.values, s.leaves)

	t.root.dumpRec(w, nil)
}

// dumpRec, rec-descent the node graph.
func (n *node) dumpRec(w io.Writer, path []byte) {
	// dump this node
	n.dump(w, path)

	// the node may have childs, rec-descent down
	for _, b := range n.sortedEdges() {
		n.children[b].dumpRec(w, append(path, b))
	}
}

// dump the node to w.
func (n *node) dump(w io.Writer, path []byte) {
	depth := len(path)
	indent := strings.Repeat(".", depth)

	// node type with depth and byte path
	fmt.Fprintf(w, "%s[%s] depth: %d path: %q\n", indent, n.hasType(), depth, path)

	if len(n.children) != 0 {
		fmt.Fprintf(w, "%sedges(%d): %q\n", indent, len(n.children), n.sortedEdges())
	}

	if n.hasValue {
		fmt.Fprintf(w, "%svalue: %v\n", indent, n.value)
	}
}
