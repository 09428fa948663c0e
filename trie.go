// Copyright (c) 2025 bandiaoz
// SPDX-License-Identifier: MIT

package trie

// Trie is a persistent key/value index over byte-sequence keys with
// type-erased payload values.
//
// The zero value is an empty trie, ready to use.
//
// Put, Remove and Update never modify the receiver; they return a new
// Trie that shares all nodes off the modified path with the receiver.
// Old versions stay valid for as long as they are referenced, node
// lifetime is governed entirely by reachability.
type Trie struct {
	// root of the shared-immutable node graph, nil for the empty trie
	root *node

	// the number of keys stored in this version
	size int
}

// Size returns the number of keys stored in this version of the trie.
func (t Trie) Size() int {
	return t.size
}

// IsEmpty reports whether this version of the trie stores no keys.
func (t Trie) IsEmpty() bool {
	return t.root == nil
}

// Get returns the type-erased value stored at key.
//
// The second return value reports whether key is present. An absent key
// is a normal outcome, not an error. For type-checked access use the
// generic [Get] function.
//
// The cost is O(len(key)), independent of the size of the trie.
func (t Trie) Get(key string) (any, bool) {
	n := t.root
	for i := 0; i < len(key); i++ {
		if n == nil {
			return nil, false
		}
		n = n.children[key[i]]
	}

	if n == nil || !n.hasValue {
		return nil, false
	}
	return n.value, true
}

// Put returns a new Trie with val stored at key, the receiver is
// unchanged.
//
// All nodes on the path from the root to key are cloned, all nodes off
// that path are shared between the receiver and the result. Storing at
// an existing key replaces its value and keeps the subtree below it.
// The empty key addresses the root position itself.
func (t Trie) Put(key string, val any) Trie {
	// descend along existing edges, recording the untouched path
	stack := make([]*node, 0, len(key))
	cur := t.root

	idx := 0
	for ; idx < len(key) && cur != nil; idx++ {
		stack = append(stack, cur)
		cur = cur.children[key[idx]]
	}

	// terminal value node; a node already sitting at the key position
	// keeps its children, replacing only the value
	leaf := &node{value: val, hasValue: true}

	existed := false
	if idx == len(key) && cur != nil {
		leaf.children = cur.children
		existed = cur.hasValue
	}

	// fresh single-child chain for the unmatched key suffix
	child := leaf
	for j := len(key) - 1; j >= idx; j-- {
		child = &node{children: map[byte]*node{key[j]: child}}
	}

	// rebuild the recorded path bottom-up, cloning each visited node
	// and re-pointing exactly one edge per level
	for j := len(stack) - 1; j >= 0; j-- {
		parent := stack[j].cloneFlat()
		parent.children[key[j]] = child
		child = parent
	}

	size := t.size
	if !existed {
		size++
	}
	return Trie{root: child, size: size}
}

// Remove returns a new Trie with key removed, the receiver is
// unchanged.
//
// Removing an absent key is a no-op, the receiver is returned as is,
// same root, not an error. A terminal node left with neither value nor
// children is pruned, and pruning propagates upward: every ancestor
// that becomes childless and valueless is dropped as well, no version
// ever exposes a node without value and without children.
func (t Trie) Remove(key string) Trie {
	pt, _, _ := t.getAndRemove(key)
	return pt
}

// GetAndRemove is similar to Remove but additionally returns the
// removed value and whether key was present.
func (t Trie) GetAndRemove(key string) (pt Trie, val any, ok bool) {
	return t.getAndRemove(key)
}

// getAndRemove is the internal implementation of Remove and
// GetAndRemove.
func (t Trie) getAndRemove(key string) (pt Trie, val any, ok bool) {
	// descend along existing edges, recording the untouched path
	stack := make([]*node, 0, len(key))
	cur := t.root

	idx := 0
	for ; idx < len(key) && cur != nil; idx++ {
		stack = append(stack, cur)
		cur = cur.children[key[idx]]
	}

	// key not present, hand back the receiver unchanged
	if idx != len(key) || cur == nil || !cur.hasValue {
		return t, nil, false
	}
	val = cur.value

	// strip the value; a terminal node without children is pruned
	var child *node
	if len(cur.children) > 0 {
		child = &node{children: cur.children}
	}

	// rebuild the recorded path bottom-up; a pruned child drops the
	// edge instead of re-pointing it, and an ancestor that thereby
	// becomes childless and valueless is pruned in turn
	for j := len(stack) - 1; j >= 0; j-- {
		parent := stack[j]

		if child == nil && !parent.hasValue && len(parent.children) == 1 {
			continue
		}

		nn := parent.cloneFlat()
		if child == nil {
			delete(nn.children, key[j])
		} else {
			nn.children[key[j]] = child
		}
		child = nn
	}

	return Trie{root: child, size: t.size - 1}, val, true
}

// Update returns a new Trie where the value at key is the result of cb,
// the receiver is unchanged.
//
// cb is called with the current value and whether key was present; the
// value it returns is stored under key. Update never removes a key.
func (t Trie) Update(key string, cb func(val any, ok bool) any) (pt Trie, newVal any) {
	old, ok := t.Get(key)
	newVal = cb(old, ok)

	return t.Put(key, newVal), newVal
}

// items materializes all stored key/value pairs, test and debug helper.
func (t Trie) items() map[string]any {
	m := make(map[string]any, t.size)
	t.root.walk(nil, func(key string, val any) { m[key] = val })
	return m
}
