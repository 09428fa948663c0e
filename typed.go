// Copyright (c) 2025 bandiaoz
// SPDX-License-Identifier: MIT

package trie

// Get returns the value of type T stored at key in t.
//
// Values are stored type-erased; Get succeeds only if key is present
// and its value is assertable to T. A type mismatch is reported exactly
// like an absent key, ok == false, never as an error: the trie is
// heterogeneous across keys and the caller states the expected type
// per lookup.
func Get[T any](t Trie, key string) (val T, ok bool) {
	v, found := t.Get(key)
	if !found {
		return val, false
	}

	val, ok = v.(T)
	return val, ok
}

// Put returns a new Trie with val stored at key, the receiver t is
// unchanged. Typed convenience wrapper around [Trie.Put].
func Put[T any](t Trie, key string, val T) Trie {
	return t.Put(key, val)
}
