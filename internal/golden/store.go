// Copyright (c) 2025 bandiaoz
// SPDX-License-Identifier: MIT

// Package golden provides a simple and slow key/value store as a golden
// reference for the trie tests.
package golden

import "slices"

// Store is a flat map-backed key/value store with the same whole-key
// semantics as the trie, obviously correct and used as test oracle.
type Store map[string]any

// Put stores val under key, replacing a previous value.
func (s Store) Put(key string, val any) {
	s[key] = val
}

// Get returns the value stored under key.
func (s Store) Get(key string) (any, bool) {
	val, ok := s[key]
	return val, ok
}

// Delete removes key and reports whether it was present.
func (s Store) Delete(key string) (existed bool) {
	_, existed = s[key]
	delete(s, key)

	return existed
}

// Len returns the number of stored keys.
func (s Store) Len() int {
	return len(s)
}

// Keys returns all stored keys in ascending order.
func (s Store) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}

// Clone returns an independent copy of the store, used to snapshot the
// oracle next to a trie version.
func (s Store) Clone() Store {
	c := make(Store, len(s))
	for k, v := range s {
		c[k] = v
	}
	return c
}
