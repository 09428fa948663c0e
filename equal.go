// Copyright (c) 2025 bandiaoz
// SPDX-License-Identifier: MIT

package trie

import "github.com/bandiaoz/CMU15-445/internal/value"

// Equal reports whether t and o store the same set of keys with equal
// values.
//
// Subtrees shared between the two versions compare by pointer identity,
// so comparing a version against a close derivative of it is cheap.
// Values implementing [value.Equaler] are compared with their own Equal
// method, everything else falls back to reflect.DeepEqual.
func (t Trie) Equal(o Trie) bool {
	if t.size != o.size {
		return false
	}
	return t.root.equalRec(o.root)
}

// equalRec, rec-descent the two node graphs in lockstep.
func (n *node) equalRec(o *node) bool {
	if n == o {
		// shared subtree, identical by construction
		return true
	}
	if n == nil || o == nil {
		return false
	}

	if n.hasValue != o.hasValue {
		return false
	}
	if n.hasValue && !value.Equal(n.value, o.value) {
		return false
	}

	if len(n.children) != len(o.children) {
		return false
	}
	for b, kid := range n.children {
		oKid, ok := o.children[b]
		if !ok || !kid.equalRec(oKid) {
			return false
		}
	}
	return true
}
