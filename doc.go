// Copyright (c) 2025 bandiaoz
// SPDX-License-Identifier: MIT

// Package trie implements a persistent (immutable, structurally shared)
// key/value index over byte-sequence keys.
//
// Every mutating operation (Put, Remove, Update) returns a new Trie and
// leaves the receiver untouched. The old and the new version share all
// nodes off the modified path, only the nodes from the root down to the
// touched position are cloned (copy-on-write). This gives snapshot
// isolation for free: each Trie value is a consistent point-in-time
// view, any number of goroutines may read different, or the same,
// versions concurrently without locking.
//
// Values are stored type-erased, different keys may hold different
// value types within one trie. The generic [Get] accessor checks the
// expected type at lookup time; a mismatch is reported as not found,
// never as an error.
//
// The structure indexes whole keys only: there is no iteration or
// range-scan API and no radix compression.
package trie
