// Copyright (c) 2025 bandiaoz
// SPDX-License-Identifier: MIT

package trie

import (
	"fmt"
	"io"
	"strings"
)

// String returns a hierarchical tree diagram of the stored keys with
// their values, just a wrapper for [Trie.Fprint].
func (t Trie) String() string {
	w := new(strings.Builder)
	_ = t.Fprint(w)

	return w.String()
}

// Fprint writes a hierarchical tree diagram of the stored keys to w.
// Keys nest under their longest stored proper prefix, keys without a
// stored prefix hang directly below the root symbol.
//
//	▼
//	├─ "car" (2)
//	│  └─ "cart" (4)
//	├─ "cat" (1)
//	└─ "dog" (3)
func (t Trie) Fprint(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "▼"); err != nil {
		return err
	}
	if t.root == nil {
		return nil
	}

	// the empty key sits at the root position and covers every other key
	if t.root.hasValue {
		if _, err := fmt.Fprintf(w, "└─ %q (%v)\n", "", t.root.value); err != nil {
			return err
		}
		return t.root.fprintRec(w, nil, "   ")
	}

	return t.root.fprintRec(w, nil, "")
}

// fprintRec, rec-descent the node graph, printing the value nodes
// directly covered by n, one indent level per cover relation.
func (n *node) fprintRec(w io.Writer, path []byte, pad string) error {
	type kid struct {
		path []byte
		n    *node
	}

	// gather the directly covered value nodes, skipping interior
	// nodes that only route the key bytes
	var kids []kid
	var gather func(m *node, p []byte)
	gather = func(m *node, p []byte) {
		for _, b := range m.sortedEdges() {
			c := m.children[b]
			cp := append(append([]byte(nil), p...), b)

			if c.hasValue {
				kids = append(kids, kid{cp, c})
				continue
			}
			gather(c, cp)
		}
	}
	gather(n, path)

	for i, k := range kids {
		glyph, space := "├─ ", "│  "
		if i == len(kids)-1 {
			glyph, space = "└─ ", "   "
		}

		if _, err := fmt.Fprintf(w, "%s%q (%v)\n", pad+glyph, k.path, k.n.value); err != nil {
			return err
		}
		if err := k.n.fprintRec(w, k.path, pad+space); err != nil {
			return err
		}
	}
	return nil
}
