// Copyright (c) 2025 bandiaoz
// SPDX-License-Identifier: MIT

package trie

import "slices"

// node is one position in the key space.
//
// A node and its children map are immutable once published in any Trie
// version; mutation happens only on fresh clones before they become
// reachable. A published node with neither value nor children never
// exists, Remove prunes such nodes away.
type node struct {
	// children maps one key byte to the shared child for that edge.
	// The map itself may be shared between nodes of different versions
	// and must never be written after publication.
	children map[byte]*node

	// the stored value, meaningful only if hasValue is set
	value    any
	hasValue bool
}

// cloneFlat returns a copy of n with a private, writable children map.
// Child pointers and the value are shared, not copied.
//
// The spare slot in the map allocation covers the common case of the
// caller re-pointing or adding exactly one edge afterwards.
func (n *node) cloneFlat() *node {
	c := &node{value: n.value, hasValue: n.hasValue}

	c.children = make(map[byte]*node, len(n.children)+1)
	for b, kid := range n.children {
		c.children[b] = kid
	}
	return c
}

// sortedEdges returns the edge bytes of n in ascending order,
// map iteration order is not deterministic.
func (n *node) sortedEdges() []byte {
	edges := make([]byte, 0, len(n.children))
	for b := range n.children {
		edges = append(edges, b)
	}
	slices.Sort(edges)
	return edges
}

// walk calls fn for every stored key/value pair reachable from n,
// in ascending key order. path is the byte path from the root to n.
func (n *node) walk(path []byte, fn func(key string, val any)) {
	if n == nil {
		return
	}
	if n.hasValue {
		fn(string(path), n.value)
	}
	for _, b := range n.sortedEdges() {
		n.children[b].walk(append(path, b), fn)
	}
}

// stats, count nodes and values during development and testing.
type stats struct {
	nodes  int
	values int
	leaves int // nodes without children
}

// statsRec, rec-descent the node graph.
func (n *node) statsRec() stats {
	s := stats{nodes: 1}
	if n.hasValue {
		s.values++
	}
	if len(n.children) == 0 {
		s.leaves++
	}

	for _, kid := range n.children {
		ks := kid.statsRec()

		s.nodes += ks.nodes
		s.values += ks.values
		s.leaves += ks.leaves
	}
	return s
}
