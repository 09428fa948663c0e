// Copyright (c) 2025 bandiaoz
// SPDX-License-Identifier: MIT

// Package value provides utilities for working with type-erased and
// generic payload values at runtime.
//
// The trie stores values without knowing their concrete types, but
// still has to compare them (Trie.Equal) and lets callers duplicate
// them across versions. Equaler and Cloner give payload types a hook to
// override the generic fallbacks.
//
// This is an internal package used by the trie implementation.
package value

import "reflect"

// Equaler is a generic interface for types that can decide their own
// equality logic. It can be used to override the potentially expensive
// default comparison with [reflect.DeepEqual].
type Equaler[V any] interface {
	Equal(other V) bool
}

// Equal compares two values of type V for equality.
// If V implements Equaler[V], that custom equality method is used,
// avoiding the potentially expensive reflect.DeepEqual.
// Otherwise, reflect.DeepEqual is used as a fallback.
func Equal[V any](v1, v2 V) bool {
	// you can't assert directly on a type parameter
	if v1, ok := any(v1).(Equaler[V]); ok {
		return v1.Equal(v2)
	}
	// fallback
	return reflect.DeepEqual(v1, v2)
}

// Cloner is an interface that enables deep cloning of values of type V.
// Trie versions share stored values by reference; a caller that needs a
// private copy of a pointer-shaped payload before storing it in a
// derived version can rely on this contract.
type Cloner[V any] interface {
	Clone() V
}

// CloneVal returns a deep clone of val by calling Clone when
// val implements Cloner[V]. If val does not implement
// Cloner[V] or the Cloner receiver is nil (val is a nil pointer),
// CloneVal returns val unchanged.
func CloneVal[V any](val V) V {
	// you can't assert directly on a type parameter
	c, ok := any(val).(Cloner[V])
	if !ok || c == nil {
		return val
	}
	return c.Clone()
}
